package geo

import "math"

// Scoring constants for transit proximity.
const (
	// MaxRadiusKM is the distance at which the transit score reaches zero.
	MaxRadiusKM = 25.0

	earthRadiusKM = 6371.0
	maxScore      = 10.0
)

// Calculator converts a listing coordinate into a 0-10 transit score against
// a station directory. It is stateless and safe for concurrent use.
type Calculator struct {
	dir *Directory
}

// NewCalculator creates a transit score calculator over the given directory.
func NewCalculator(dir *Directory) *Calculator {
	return &Calculator{dir: dir}
}

// NearestDistanceKM returns the great-circle distance in km from the given
// coordinate to the closest station. It returns +Inf for an empty directory.
func (c *Calculator) NearestDistanceKM(lat, lon float64) float64 {
	best := math.Inf(1)
	for _, s := range c.dir.stations {
		if d := haversineKM(lat, lon, s.Lat, s.Lon); d < best {
			best = d
		}
	}
	return best
}

// Score maps the distance to the nearest station onto [0, 10]: 10 at the
// station, falling linearly to 0 at MaxRadiusKM. Missing or zero-valued
// coordinates score 0; that is a documented fallback, not an error.
func (c *Calculator) Score(lat, lon float64) float64 {
	if lat == 0 || lon == 0 {
		return 0
	}
	d := c.NearestDistanceKM(lat, lon)
	score := maxScore * (1 - d/MaxRadiusKM)
	return math.Max(0, math.Min(maxScore, score))
}

// haversineKM computes the great-circle distance between two WGS84 points.
func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(a))
}
