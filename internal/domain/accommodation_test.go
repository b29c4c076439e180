package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		subtype Subtype
		want    Category
	}{
		{SubtypeTent, CategoryTent},
		{SubtypeCarTent, CategoryTent},
		{SubtypeCaravan, CategoryCaravan},
		{SubtypeFourgon, CategoryCaravan},
		{SubtypeVan, CategoryCaravan},
		{SubtypeCampingCar, CategoryCampingCar},
		{SubtypeMobilHome, CategoryOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.subtype), func(t *testing.T) {
			got, err := CategoryOf(tt.subtype)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestCategoryOf_Unknown(t *testing.T) {
	_, err := CategoryOf("motorhome")
	assert.ErrorIs(t, err, ErrUnknownSubtype)
	assert.False(t, Subtype("motorhome").IsValid())
}

func TestSubtype_ConditionalFields(t *testing.T) {
	assert.True(t, SubtypeCarTent.IsTentLike())
	assert.False(t, SubtypeCarTent.IsVehicleLike())

	assert.False(t, SubtypeCampingCar.IsVehicleLike())
	assert.True(t, SubtypeFourgon.IsVehicleLike())
	assert.True(t, SubtypeVan.IsVehicleLike())
	assert.False(t, SubtypeVan.IsTentLike())

	assert.False(t, SubtypeMobilHome.IsTentLike())
	assert.False(t, SubtypeMobilHome.IsVehicleLike())
}

func TestSubtype_Label(t *testing.T) {
	assert.Equal(t, "Voiture tente", SubtypeCarTent.Label())
	assert.Equal(t, "unknown", Subtype("unknown").Label())
}
