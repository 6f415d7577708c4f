package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridref-microservice/internal/domain"
	"github.com/gridref-microservice/internal/pkg/geo"
)

func TestTileBounds(t *testing.T) {
	world := geo.TileBounds(0, 0, 0)
	assert.InDelta(t, -85.0511287798066, world.MinLat, 1e-9)
	assert.InDelta(t, 85.0511287798066, world.MaxLat, 1e-9)
	assert.InDelta(t, -180.0, world.MinLon, 1e-9)
	assert.InDelta(t, 180.0, world.MaxLon, 1e-9)

	box := geo.TileBounds(2, 3, 3)
	assert.InDelta(t, 0.0, box.MinLat, 1e-9)
	assert.InDelta(t, 40.97989806962013, box.MaxLat, 1e-9)
	assert.InDelta(t, -90.0, box.MinLon, 1e-9)
	assert.InDelta(t, -45.0, box.MaxLon, 1e-9)

	assert.LessOrEqual(t, box.MinLat, box.MaxLat)
	assert.LessOrEqual(t, box.MinLon, box.MaxLon)
}

func TestTilePolygon(t *testing.T) {
	ring := geo.TilePolygon(2, 3, 3)
	require.Len(t, ring, 5)

	// Кольцо замкнуто
	assert.Equal(t, ring[0], ring[4])

	// Углы согласованы с ограничивающим прямоугольником
	box := geo.TileBounds(2, 3, 3)
	for _, p := range ring {
		assert.True(t, box.Contains(p), "corner %v outside %v", p, box)
	}

	assert.InDelta(t, box.MinLon, ring[0].Lon, 1e-9)
	assert.InDelta(t, box.MaxLat, ring[0].Lat, 1e-9)
	assert.InDelta(t, box.MaxLon, ring[1].Lon, 1e-9)
	assert.InDelta(t, box.MinLat, ring[2].Lat, 1e-9)
}

func TestMGRSBounds(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		want      domain.BoundingBox
	}{
		{
			name:      "100km square",
			reference: "45QXE",
			want: domain.BoundingBox{
				MinLat: 21.69950760265098, MinLon: 87.96966341983993,
				MaxLat: 22.597818777641994, MaxLon: 88.93954323162008,
			},
		},
		{
			name:      "1m cell",
			reference: "31TDF2977282392",
			want: domain.BoundingBox{
				MinLat: 41.38998990646509, MinLon: 2.159988741516963,
				MaxLat: 41.389998889576844, MaxLon: 2.1600007153824934,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, approximate, err := geo.MGRSBounds(tt.reference)
			require.NoError(t, err)
			assert.False(t, approximate)
			assert.InDelta(t, tt.want.MinLat, box.MinLat, 1e-8)
			assert.InDelta(t, tt.want.MinLon, box.MinLon, 1e-8)
			assert.InDelta(t, tt.want.MaxLat, box.MaxLat, 1e-8)
			assert.InDelta(t, tt.want.MaxLon, box.MaxLon, 1e-8)

			pos, err := geo.DecodeMGRS(tt.reference)
			require.NoError(t, err)
			assert.True(t, box.Contains(domain.Point{Lat: pos.Lat, Lon: pos.Lon}))
		})
	}
}

func TestMGRSBoundsApproximate(t *testing.T) {
	box, approximate, err := geo.MGRSBounds("31CAA")
	require.NoError(t, err)
	assert.True(t, approximate)
	assert.InDelta(t, -71.84325247861169, box.MinLat, 1e-8)
	assert.InDelta(t, -70.94494130362067, box.MaxLat, 1e-8)
}

func TestMGRSBoundsInvalid(t *testing.T) {
	_, _, err := geo.MGRSBounds("ZZ")
	assert.ErrorIs(t, err, geo.ErrInvalidReference)
}
