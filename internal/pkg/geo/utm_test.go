package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridref-microservice/internal/pkg/geo"
)

func TestLatLonToUTM(t *testing.T) {
	tests := []struct {
		name           string
		lat, lon       float64
		wantZone       int
		wantHemisphere string
		wantEasting    float64
		wantNorthing   float64
	}{
		{
			name: "barcelona",
			lat:  41.39, lon: 2.16,
			wantZone: 31, wantHemisphere: "N",
			wantEasting: 429772.4468, wantNorthing: 4582392.6177,
		},
		{
			name: "sydney southern hemisphere false northing",
			lat:  -33.87, lon: 151.21,
			wantZone: 56, wantHemisphere: "S",
			wantEasting: 334435.7061, wantNorthing: 6250816.3977,
		},
		{
			name: "kolkata region",
			lat:  22.5, lon: 88.5,
			wantZone: 45, wantHemisphere: "N",
			wantEasting: 654295.1861, wantNorthing: 2488944.6784,
		},
		{
			name: "just north of equator",
			lat:  0.01, lon: 0.01,
			wantZone: 31, wantHemisphere: "N",
			wantEasting: 167135.7301, wantNorthing: 1106.8174,
		},
		{
			name: "just south of equator",
			lat:  -0.01, lon: -0.01,
			wantZone: 30, wantHemisphere: "S",
			wantEasting: 832864.2699, wantNorthing: 9998893.1826,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			utm := geo.LatLonToUTM(tt.lat, tt.lon)
			assert.Equal(t, tt.wantZone, utm.Zone)
			assert.Equal(t, tt.wantHemisphere, utm.Hemisphere)
			assert.InDelta(t, tt.wantEasting, utm.Easting, 1e-3)
			assert.InDelta(t, tt.wantNorthing, utm.Northing, 1e-3)
		})
	}
}

// Зоны для Норвегии и Шпицбергена переопределяются.
func TestUTMZoneOverrides(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		wantZone int
	}{
		{"southwest norway forced to 32", 60.0, 5.0, 32},
		{"jutland edge forced to 32", 57.0, 8.0, 32},
		{"below norway band keeps standard zone", 55.9, 5.0, 31},
		{"svalbard west", 73.0, 5.0, 31},
		{"svalbard 9..21", 75.0, 20.0, 33},
		{"svalbard 21..33", 78.0, 25.0, 35},
		{"svalbard 33..42", 73.0, 40.0, 37},
		{"east of svalbard windows unchanged", 73.0, 50.0, 39},
		{"standard zone formula", 41.39, 2.16, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			utm := geo.LatLonToUTM(tt.lat, tt.lon)
			assert.Equal(t, tt.wantZone, utm.Zone)
		})
	}
}

// Прямое и обратное преобразование должны сходиться в пределах 1e-5 градуса
// (ряды усечённые, бит-в-бит совпадение не гарантируется).
func TestUTMRoundTrip(t *testing.T) {
	lats := []float64{-75, -45, -33.87, -10, -0.01, 0.01, 10, 22.5, 41.39, 60, 75, 83}
	lons := []float64{-179, -120, -61.5, -0.01, 0.01, 37.2, 88.5, 151.21, 179}

	for _, lat := range lats {
		for _, lon := range lons {
			utm := geo.LatLonToUTM(lat, lon)
			require.GreaterOrEqual(t, utm.Zone, 1)
			require.LessOrEqual(t, utm.Zone, 60)

			p := geo.UTMToLatLon(utm.Zone, utm.Hemisphere, utm.Easting, utm.Northing)
			assert.InDelta(t, lat, p.Lat, 1e-5, "lat for (%v,%v)", lat, lon)
			assert.InDelta(t, lon, p.Lon, 1e-5, "lon for (%v,%v)", lat, lon)
		}
	}
}

func TestUTMToLatLon(t *testing.T) {
	p := geo.UTMToLatLon(31, "N", 429772.4468, 4582392.6177)
	assert.InDelta(t, 41.39, p.Lat, 1e-6)
	assert.InDelta(t, 2.16, p.Lon, 1e-6)

	p = geo.UTMToLatLon(56, "S", 334435.7061, 6250816.3977)
	assert.InDelta(t, -33.87, p.Lat, 1e-6)
	assert.InDelta(t, 151.21, p.Lon, 1e-6)
}
