package domain_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoquest/internal/domain"
)

func TestNewTrashBin_GeneratesCodeWhenBlank(t *testing.T) {
	now := time.UnixMilli(1735689600123)

	bin, err := domain.NewTrashBin("Taman Kota", "  ", "-6.2", "106.8", now)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^BIN-\d+$`), bin.BinCode)
	assert.Equal(t, "BIN-1735689600123", bin.BinCode)
	assert.Equal(t, "-6.2", bin.Latitude.String())
	assert.Equal(t, "106.8", bin.Longitude.String())
}

func TestNewTrashBin_KeepsSuppliedCode(t *testing.T) {
	bin, err := domain.NewTrashBin("Pasar", "BIN-001", "-6.175392", "106.827153", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "BIN-001", bin.BinCode)
}

func TestNewTrashBin_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name, binName, lat, lng, field string
	}{
		{name: "non numeric latitude", binName: "A", lat: "abc", lng: "106.8", field: "latitude"},
		{name: "non numeric longitude", binName: "A", lat: "-6.2", lng: "east", field: "longitude"},
		{name: "empty latitude", binName: "A", lat: "", lng: "106.8", field: "latitude"},
		{name: "NaN", binName: "A", lat: "NaN", lng: "106.8", field: "latitude"},
		{name: "infinity", binName: "A", lat: "-6.2", lng: "Inf", field: "longitude"},
		{name: "latitude out of range", binName: "A", lat: "91", lng: "0", field: "latitude"},
		{name: "longitude out of range", binName: "A", lat: "0", lng: "-180.5", field: "longitude"},
		{name: "missing name", binName: " ", lat: "0", lng: "0", field: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewTrashBin(tt.binName, "", tt.lat, tt.lng, time.Now())
			require.Error(t, err)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
