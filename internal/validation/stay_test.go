package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/ptr"
)

var today = time.Date(2027, time.June, 1, 15, 30, 0, 0, time.UTC)

func validTentStay() Stay {
	return Stay{
		Subtype:    domain.SubtypeTent,
		StartDate:  time.Date(2027, time.June, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2027, time.June, 12, 0, 0, 0, 0, time.UTC),
		Adults:     2,
		TentWidth:  ptr.Ptr(3.0),
		TentLength: ptr.Ptr(4.0),
	}
}

func fields(err error) []string {
	var fe FieldErrors
	if !errors.As(err, &fe) {
		return nil
	}
	names := make([]string, 0, len(fe))
	for _, e := range fe {
		names = append(names, e.Field)
	}
	return names
}

func TestValidator_ValidateStay_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateStay(validTentStay(), today))

	campingCar := Stay{
		Subtype:       domain.SubtypeCampingCar,
		StartDate:     time.Date(2027, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2027, time.June, 5, 0, 0, 0, 0, time.UTC),
		Electricity:   true,
		Adults:        3,
		VehicleLength: ptr.Ptr(7.5),
		CableLength:   ptr.Ptr(25.0),
	}
	assert.NoError(t, v.ValidateStay(campingCar, today), "arrival today is allowed")

	mobilHome := Stay{
		Subtype:   domain.SubtypeMobilHome,
		StartDate: time.Date(2027, time.June, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, time.June, 4, 0, 0, 0, 0, time.UTC),
		Adults:    1,
	}
	assert.NoError(t, v.ValidateStay(mobilHome, today))
}

func TestValidator_ValidateStay_Dates(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{name: "end before start", start: time.Date(2027, time.June, 12, 0, 0, 0, 0, time.UTC), end: time.Date(2027, time.June, 10, 0, 0, 0, 0, time.UTC)},
		{name: "end equals start", start: time.Date(2027, time.June, 12, 0, 0, 0, 0, time.UTC), end: time.Date(2027, time.June, 12, 0, 0, 0, 0, time.UTC)},
		{name: "start in the past", start: time.Date(2027, time.May, 31, 0, 0, 0, 0, time.UTC), end: time.Date(2027, time.June, 2, 0, 0, 0, 0, time.UTC)},
		{name: "missing dates", start: time.Time{}, end: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay := validTentStay()
			stay.StartDate = tt.start
			stay.EndDate = tt.end
			// Поля тоже невалидны, но даты проверяются первыми
			stay.Adults = 0

			assert.ErrorIs(t, v.ValidateStay(stay, today), ErrInvalidDateRange)
		})
	}
}

func TestValidator_ValidateStay_ConditionalFields(t *testing.T) {
	v := New()

	t.Run("tent requires dimensions", func(t *testing.T) {
		stay := validTentStay()
		stay.Subtype = domain.SubtypeCarTent
		stay.TentWidth = nil
		stay.TentLength = nil

		err := v.ValidateStay(stay, today)
		require.Error(t, err)
		assert.ElementsMatch(t, []string{"tentWidth", "tentLength"}, fields(err))
	})

	t.Run("van requires vehicle length", func(t *testing.T) {
		stay := validTentStay()
		stay.Subtype = domain.SubtypeVan

		err := v.ValidateStay(stay, today)
		require.Error(t, err)
		assert.Equal(t, []string{"vehicleLength"}, fields(err))
	})

	t.Run("camping car does not require vehicle length", func(t *testing.T) {
		stay := validTentStay()
		stay.Subtype = domain.SubtypeCampingCar
		stay.TentWidth = nil
		stay.TentLength = nil

		assert.NoError(t, v.ValidateStay(stay, today))
	})

	t.Run("electricity requires cable length", func(t *testing.T) {
		stay := validTentStay()
		stay.Electricity = true

		err := v.ValidateStay(stay, today)
		require.Error(t, err)
		assert.Equal(t, []string{"cableLength"}, fields(err))
	})
}

func TestValidator_ValidateStay_Counts(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		mod   func(s *Stay)
		field string
	}{
		{name: "no adults", mod: func(s *Stay) { s.Adults = 0 }, field: "adults"},
		{name: "too many adults", mod: func(s *Stay) { s.Adults = 11 }, field: "adults"},
		{name: "too many pets", mod: func(s *Stay) { s.Pets = 3 }, field: "pets"},
		{name: "negative children", mod: func(s *Stay) { s.ChildrenUnder8 = -1 }, field: "childrenUnder8"},
		{name: "unknown subtype", mod: func(s *Stay) { s.Subtype = "yurt" }, field: "subtype"},
		{name: "zero tent width", mod: func(s *Stay) { s.TentWidth = ptr.Ptr(0.0) }, field: "tentWidth"},
		{name: "tent width in centimetres", mod: func(s *Stay) { s.TentWidth = ptr.Ptr(3.25) }, field: "tentWidth"},
		{name: "cable length in centimetres", mod: func(s *Stay) {
			s.Electricity = true
			s.CableLength = ptr.Ptr(12.05)
		}, field: "cableLength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay := validTentStay()
			tt.mod(&stay)

			err := v.ValidateStay(stay, today)
			require.Error(t, err)
			assert.Contains(t, fields(err), tt.field)
		})
	}
}

func TestValidator_Contact(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(Contact{LastName: "Martin", FirstName: "Anne", Email: "anne@example.com", Phone: "0601020304"}))

	err := v.Struct(Contact{LastName: "Martin", Email: "not-an-email", Phone: "0601020304"})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"firstName", "email"}, fields(err))
}
