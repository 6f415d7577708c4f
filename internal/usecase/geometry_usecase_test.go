package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gridref-microservice/internal/usecase"
)

func TestGeometryUseCase_GeoJSONToWKT(t *testing.T) {
	uc := usecase.NewGeometryUseCase(zap.NewNop())

	tests := []struct {
		name    string
		geojson string
		want    string
	}{
		{
			name:    "point",
			geojson: `{"type":"Point","coordinates":[30,10]}`,
			want:    "POINT(30 10)",
		},
		{
			name:    "point with fractional coordinates",
			geojson: `{"type":"Point","coordinates":[2.1718645141479236,49.46968365011461]}`,
			want:    "POINT(2.1718645141479236 49.46968365011461)",
		},
		{
			name:    "lowercase type",
			geojson: `{"type":"point","coordinates":[30,10]}`,
			want:    "POINT(30 10)",
		},
		{
			name:    "multipoint",
			geojson: `{"type":"MultiPoint","coordinates":[[10,40],[40,30]]}`,
			want:    "MULTIPOINT((10 40), (40 30))",
		},
		{
			name:    "linestring",
			geojson: `{"type":"LineString","coordinates":[[30,10],[10,30],[40,40]]}`,
			want:    "LINESTRING(30 10, 10 30, 40 40)",
		},
		{
			name:    "multilinestring",
			geojson: `{"type":"MultiLineString","coordinates":[[[10,10],[20,20]],[[40,40],[30,30]]]}`,
			want:    "MULTILINESTRING((10 10, 20 20), (40 40, 30 30))",
		},
		{
			name:    "polygon",
			geojson: `{"type":"Polygon","coordinates":[[[30,10],[40,40],[20,40],[10,20],[30,10]]]}`,
			want:    "POLYGON((30 10, 40 40, 20 40, 10 20, 30 10))",
		},
		{
			name:    "polygon with hole",
			geojson: `{"type":"Polygon","coordinates":[[[35,10],[45,45],[15,40],[10,20],[35,10]],[[20,30],[35,35],[30,20],[20,30]]]}`,
			want:    "POLYGON((35 10, 45 45, 15 40, 10 20, 35 10), (20 30, 35 35, 30 20, 20 30))",
		},
		{
			name:    "multipolygon",
			geojson: `{"type":"MultiPolygon","coordinates":[[[[30,20],[45,40],[10,40],[30,20]]],[[[15,5],[40,10],[10,20],[5,10],[15,5]]]]}`,
			want:    "MULTIPOLYGON(((30 20, 45 40, 10 40, 30 20)), ((15 5, 40 10, 10 20, 5 10, 15 5)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wkt, err := uc.GeoJSONToWKT([]byte(tt.geojson))
			require.NoError(t, err)
			assert.Equal(t, tt.want, wkt)
		})
	}
}

func TestGeometryUseCase_GeoJSONToWKT_Errors(t *testing.T) {
	uc := usecase.NewGeometryUseCase(zap.NewNop())

	t.Run("unsupported geometry type", func(t *testing.T) {
		_, err := uc.GeoJSONToWKT([]byte(`{"type":"GeometryCollection","coordinates":[]}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, usecase.ErrUnsupportedGeometry)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := uc.GeoJSONToWKT([]byte(`{"type":"Point","coordinates":`))
		assert.Error(t, err)
	})

	t.Run("point with single coordinate", func(t *testing.T) {
		_, err := uc.GeoJSONToWKT([]byte(`{"type":"Point","coordinates":[30]}`))
		assert.Error(t, err)
	})

	t.Run("linestring with broken pair", func(t *testing.T) {
		_, err := uc.GeoJSONToWKT([]byte(`{"type":"LineString","coordinates":[[30,10],[10]]}`))
		assert.Error(t, err)
	})
}
