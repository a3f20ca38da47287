// Package geo scores listings on proximity to public transit.
package geo

// Station is one named transit point in the directory.
type Station struct {
	Name string
	Lat  float64
	Lon  float64
}

// defaultStations is the deployed reference table: regional train stations and
// light-rail stops around Aarhus. Changing this table is a deployment-time
// configuration change, not a runtime input.
var defaultStations = []Station{
	{Name: "Aarhus H", Lat: 56.1496, Lon: 10.2045},
	{Name: "Skanderborg St", Lat: 55.9384, Lon: 9.9316},
	{Name: "Randers St", Lat: 56.4608, Lon: 10.0364},
	{Name: "Hadsten St", Lat: 56.3259, Lon: 10.0449},
	{Name: "Hinnerup St", Lat: 56.2827, Lon: 10.0419},
	{Name: "Langå St", Lat: 56.3889, Lon: 9.9028},
	{Name: "Risskov (Letbane)", Lat: 56.1836, Lon: 10.2238},
	{Name: "Skejby (Letbane)", Lat: 56.1927, Lon: 10.1722},
	{Name: "Universitetshospitalet (Letbane)", Lat: 56.1988, Lon: 10.1842},
	{Name: "Skejby Sygehus (Letbane)", Lat: 56.2033, Lon: 10.1742},
	{Name: "Lisbjerg Skole (Letbane)", Lat: 56.2178, Lon: 10.1662},
	{Name: "Lisbjerg Kirkeby (Letbane)", Lat: 56.2267, Lon: 10.1602},
	{Name: "Lystrup (Letbane)", Lat: 56.2356, Lon: 10.1542},
	{Name: "Ryomgård (Letbane)", Lat: 56.3792, Lon: 10.4928},
	{Name: "Grenaa (Letbane)", Lat: 56.4158, Lon: 10.8767},
}

// Directory is a static, read-only set of transit points. All stations are
// weighted identically; there is no station-type bonus.
type Directory struct {
	stations []Station
}

// Option applies a configuration option to the Directory.
type Option func(*Directory)

// WithStations replaces the built-in station table.
func WithStations(stations []Station) Option {
	return func(d *Directory) {
		if len(stations) > 0 {
			d.stations = stations
		}
	}
}

// NewDirectory creates a station directory, defaulting to the deployed table.
func NewDirectory(opts ...Option) *Directory {
	d := &Directory{stations: defaultStations}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Stations returns a copy of the directory's station table.
func (d *Directory) Stations() []Station {
	out := make([]Station, len(d.stations))
	copy(out, d.stations)
	return out
}

// Len returns the number of stations in the directory.
func (d *Directory) Len() int {
	return len(d.stations)
}
