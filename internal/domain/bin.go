package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	maxLatitude  = decimal.NewFromInt(90)
	maxLongitude = decimal.NewFromInt(180)
)

// TrashBinDraft is a validated trash bin ready to be stored.
type TrashBinDraft struct {
	Name      string
	BinCode   string
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
}

// NewTrashBin validates human-entered coordinates and assigns a bin code when
// none is given. Supplied codes are kept as-is, duplicates included.
func NewTrashBin(name, code, lat, lng string, now time.Time) (TrashBinDraft, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return TrashBinDraft{}, invalid("name", "name is required")
	}

	latitude, err := parseCoordinate("latitude", lat, maxLatitude)
	if err != nil {
		return TrashBinDraft{}, err
	}
	longitude, err := parseCoordinate("longitude", lng, maxLongitude)
	if err != nil {
		return TrashBinDraft{}, err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		code = GenerateBinCode(now)
	}

	return TrashBinDraft{
		Name:      name,
		BinCode:   code,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}

// GenerateBinCode returns BIN-<epoch milliseconds>.
func GenerateBinCode(now time.Time) string {
	return fmt.Sprintf("BIN-%d", now.UnixMilli())
}

func parseCoordinate(field, raw string, limit decimal.Decimal) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, invalid(field, field+" must be a number")
	}
	if d.Abs().GreaterThan(limit) {
		return decimal.Decimal{}, invalid(field, fmt.Sprintf("%s must be between -%s and %s", field, limit, limit))
	}
	return d, nil
}
