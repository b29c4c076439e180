package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "12", want: 1200},
		{in: "12.5", want: 1250},
		{in: "12.50", want: 1250},
		{in: "0.05", want: 5},
		{in: "-3.00", want: -300},
		{in: ".75", want: 75},
		{in: "1.234", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "12.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMoney)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_Percent_HalfEven(t *testing.T) {
	tests := []struct {
		name  string
		total Money
		want  Money
	}{
		{name: "exact", total: Euros(140), want: Euros(21)},
		{name: "twenty euros", total: Euros(20), want: Euros(3)},
		// 0.10 * 15% = 1.5 cent -> 2 (к четному)
		{name: "half rounds up to even", total: Cents(10), want: Cents(2)},
		// 0.30 * 15% = 4.5 cent -> 4 (к четному)
		{name: "half rounds down to even", total: Cents(30), want: Cents(4)},
		// 0.07 * 15% = 1.05 cent -> 1
		{name: "below half", total: Cents(7), want: Cents(1)},
		{name: "zero", total: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.total.Percent(15))
		})
	}
}

func TestMoney_StringAndJSON(t *testing.T) {
	m := MustParseMoney("119.00")
	assert.Equal(t, "119.00", m.String())
	assert.Equal(t, "-0.05", Cents(-5).String())

	data, err := json.Marshal(struct {
		Total Money `json:"total"`
	}{Total: m})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":119.00}`, string(data))

	var decoded struct {
		Total Money `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"total":"7.5"}`), &decoded))
	assert.Equal(t, Cents(750), decoded.Total)
}

func TestMoney_Scan(t *testing.T) {
	var m Money

	require.NoError(t, m.Scan([]byte("30.00")))
	assert.Equal(t, Euros(30), m)

	require.NoError(t, m.Scan(float64(12.5)))
	assert.Equal(t, Cents(1250), m)

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())

	assert.Error(t, m.Scan(true))

	v, err := Euros(5).Value()
	require.NoError(t, err)
	assert.Equal(t, "5.00", v)
}
