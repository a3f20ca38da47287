// Command gen-listings writes a synthetic listings dataset in the ingestion
// JSON format, useful for exercising the scoring service locally.
package main

import (
	"crypto/rand"
	"encoding/json"
	"flag"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Default configuration constants.
const (
	defaultNumListings = 500
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
)

// Value ranges for generated listings. Coordinates stay inside the greater
// Aarhus bounding box so transit scores spread across the full 0-10 range.
const (
	latMin   = 56.05
	latRange = 0.30
	lonMin   = 10.00
	lonRange = 0.35

	priceMin   = 800_000.0
	priceRange = 6_200_000.0

	houseAreaMin   = 45.0
	houseAreaRange = 255.0

	lotAreaMax = 2500.0

	basementAreaMax = 120.0

	roomsMin   = 2
	roomsRange = 6

	buildYearMin   = 1890
	buildYearRange = 135

	daysListedMax = 365
)

var energyClasses = []string{"A", "A", "B", "B", "C", "C", "C", "D", "D", "E", "F", "G", "-"}

var zipCodes = []string{"8000", "8200", "8210", "8220", "8230", "8240", "8260", "8270", "8310", "8520"}

var cities = map[string]string{
	"8000": "Aarhus C",
	"8200": "Aarhus N",
	"8210": "Aarhus V",
	"8220": "Brabrand",
	"8230": "Åbyhøj",
	"8240": "Risskov",
	"8260": "Viby J",
	"8270": "Højbjerg",
	"8310": "Tranbjerg J",
	"8520": "Lystrup",
}

var streets = []string{
	"Silkeborgvej", "Randersvej", "Viborgvej", "Grenåvej", "Skanderborgvej",
	"Oddervej", "Marselis Boulevard", "Langelandsgade", "Nørrebrogade", "Tordenskjoldsgade",
}

// listing mirrors the ingestion hand-off record shape.
type listing struct {
	OuID         string  `json:"ouId"`
	AddressText  string  `json:"address_text"`
	HouseNumber  string  `json:"house_number"`
	City         string  `json:"city"`
	ZipCode      string  `json:"zip_code"`
	Price        float64 `json:"price"`
	M2           float64 `json:"m2"`
	Rooms        float64 `json:"rooms"`
	Built        float64 `json:"built"`
	DaysOnMarket float64 `json:"days_on_market"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	EnergyClass  string  `json:"energy_class"`
	LotSize      float64 `json:"lot_size"`
	BasementSize float64 `json:"basement_size"`
}

// randomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func randomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// randomInt returns a random int in [0, n).
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

func generateListing() listing {
	zip := zipCodes[randomInt(len(zipCodes))]

	l := listing{
		OuID:         uuid.New().String(),
		AddressText:  streets[randomInt(len(streets))],
		HouseNumber:  strconv.Itoa(1 + randomInt(180)),
		City:         cities[zip],
		ZipCode:      zip,
		Price:        priceMin + randomFloat()*priceRange,
		M2:           houseAreaMin + randomFloat()*houseAreaRange,
		Rooms:        float64(roomsMin + randomInt(roomsRange)),
		Built:        float64(buildYearMin + randomInt(buildYearRange)),
		DaysOnMarket: float64(randomInt(daysListedMax)),
		Latitude:     latMin + randomFloat()*latRange,
		Longitude:    lonMin + randomFloat()*lonRange,
		EnergyClass:  energyClasses[randomInt(len(energyClasses))],
	}

	// Roughly a third of listings are apartments: no lot, no basement.
	if randomInt(3) > 0 {
		l.LotSize = randomFloat() * lotAreaMax
		l.BasementSize = randomFloat() * basementAreaMax
	}
	return l
}

func main() {
	var (
		numListings = flag.Int("n", defaultNumListings, "Number of listings to generate")
		outputFile  = flag.String("output", "", "Output file (default: listings_TIMESTAMP.json)")
	)
	flag.Parse()

	if *numListings < 1 {
		os.Stderr.WriteString("number of listings must be positive\n")
		os.Exit(1)
	}

	listings := make([]listing, *numListings)
	for i := range listings {
		listings[i] = generateListing()
	}

	path := *outputFile
	if path == "" {
		path = "listings_" + time.Now().UTC().Format("20060102T150405Z") + ".json"
	}

	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		os.Stderr.WriteString("failed to encode listings: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		os.Stderr.WriteString("failed to write " + path + ": " + err.Error() + "\n")
		os.Exit(1)
	}

	os.Stdout.WriteString("wrote " + strconv.Itoa(*numListings) + " listings to " + path + "\n")
}
