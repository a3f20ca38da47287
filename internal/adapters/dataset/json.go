// Package dataset loads listing snapshots from the ingestion collaborator's
// JSON hand-off files.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/okian/homerank/internal/domain/model"
)

// rawListing mirrors the scraped feed's record shape. The feed is lenient
// about types: numerics arrive as numbers, numeric strings, empty strings, or
// null depending on the source page, so every numeric field goes through a
// coercing wrapper.
type rawListing struct {
	OuID         flexString `json:"ouId"`
	ID           flexString `json:"id"`
	AddressText  string     `json:"address_text"`
	HouseNumber  flexString `json:"house_number"`
	City         string     `json:"city"`
	ZipCode      flexString `json:"zip_code"`
	Price        flexFloat  `json:"price"`
	M2           flexFloat  `json:"m2"`
	Rooms        flexFloat  `json:"rooms"`
	Built        flexFloat  `json:"built"`
	DaysOnMarket flexFloat  `json:"days_on_market"`
	Latitude     flexFloat  `json:"latitude"`
	Longitude    flexFloat  `json:"longitude"`
	EnergyClass  string     `json:"energy_class"`
	LotSize      flexFloat  `json:"lot_size"`
	BasementSize flexFloat  `json:"basement_size"`
}

// flexFloat coerces JSON numbers, numeric strings, null, and empty strings to
// a float64. Unparsable input degrades to 0 rather than failing the record;
// per-factor fallbacks handle the rest downstream.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil //nolint:nilerr // malformed values degrade to the fallback
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil //nolint:nilerr // malformed values degrade to the fallback
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil //nolint:nilerr // malformed values degrade to the fallback
	}
	*f = flexFloat(v)
	return nil
}

// flexString coerces JSON strings, numbers, and null to a string.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(strings.TrimSpace(v))
		return nil
	}
	// Bare number; keep its literal form.
	*s = flexString(data)
	return nil
}

// Load reads a listings JSON file (an array of records) and converts it to
// domain listings. A record never fails individually: unparsable numerics
// become zero values and missing identity is resolved at snapshot build.
func Load(path string) ([]model.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read listings file: %w", err)
	}
	return Parse(data)
}

// Parse converts raw JSON bytes into domain listings.
func Parse(data []byte) ([]model.Listing, error) {
	var raws []rawListing
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}

	listings := make([]model.Listing, 0, len(raws))
	for _, r := range raws {
		id := string(r.OuID)
		if id == "" {
			id = string(r.ID)
		}
		address := strings.TrimSpace(r.AddressText)
		if hn := string(r.HouseNumber); hn != "" {
			address = strings.TrimSpace(address + " " + hn)
		}
		listings = append(listings, model.Listing{
			ID:           id,
			Address:      address,
			City:         r.City,
			PostalCode:   string(r.ZipCode),
			Latitude:     float64(r.Latitude),
			Longitude:    float64(r.Longitude),
			EnergyRating: r.EnergyClass,
			FloorArea:    float64(r.M2),
			LotArea:      float64(r.LotSize),
			BasementArea: float64(r.BasementSize),
			Rooms:        float64(r.Rooms),
			BuildYear:    int(r.Built),
			Price:        float64(r.Price),
			DaysListed:   int(r.DaysOnMarket),
		})
	}
	return listings, nil
}
