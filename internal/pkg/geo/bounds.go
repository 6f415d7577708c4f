package geo

import (
	"math"
	"strings"

	"github.com/gridref-microservice/internal/domain"
)

// Плоская аппроксимация: метров в градусе широты на экваторе.
// Годится только потому, что ячейки MGRS не больше 100 км;
// точность деградирует у полюсов.
const metersPerDegree = 111320.0

// TileBounds возвращает ограничивающий прямоугольник XYZ тайла
// через углы (x,y) и (x+1,y+1) с min/max по каждой оси.
func TileBounds(x, y, zoom int) domain.BoundingBox {
	nw := TileToDegrees(x, y, zoom)
	se := TileToDegrees(x+1, y+1, zoom)

	return domain.BoundingBox{
		MinLat: math.Min(nw.Lat, se.Lat),
		MinLon: math.Min(nw.Lon, se.Lon),
		MaxLat: math.Max(nw.Lat, se.Lat),
		MaxLon: math.Max(nw.Lon, se.Lon),
	}
}

// TilePolygon возвращает замкнутое кольцо из углов тайла
// (NW, NE, SE, SW, NW) для отрисовки контура на карте.
func TilePolygon(x, y, zoom int) []domain.Point {
	nw := TileToDegrees(x, y, zoom)
	ne := TileToDegrees(x+1, y, zoom)
	se := TileToDegrees(x+1, y+1, zoom)
	sw := TileToDegrees(x, y+1, zoom)
	return []domain.Point{nw, ne, se, sw, nw}
}

// MGRSBounds возвращает приблизительный прямоугольник ячейки MGRS:
// центр декодируется через DecodeMGRS, размер ячейки берётся из числа
// цифр ссылки (0 цифр - 100 км, иначе 10^(5-precision) метров), а
// полуразмер переводится в градусы плоской аппроксимацией с поправкой
// cos(lat) по долготе.
func MGRSBounds(reference string) (domain.BoundingBox, bool, error) {
	position, err := DecodeMGRS(reference)
	if err != nil {
		return domain.BoundingBox{}, false, err
	}

	ref := strings.TrimSpace(reference)
	gridSize := squareSize
	if len(ref) > 5 {
		precision := (len(ref) - 5) / 2
		gridSize = 1
		for i := 0; i < 5-precision; i++ {
			gridSize *= 10
		}
	}

	latDegPerMeter := 1 / metersPerDegree
	lonDegPerMeter := 1 / (metersPerDegree * math.Cos(position.Lat*math.Pi/180.0))

	latOffset := gridSize * latDegPerMeter / 2
	lonOffset := gridSize * lonDegPerMeter / 2

	return domain.BoundingBox{
		MinLat: position.Lat - latOffset,
		MinLon: position.Lon - lonOffset,
		MaxLat: position.Lat + latOffset,
		MaxLon: position.Lon + lonOffset,
	}, position.Approximate, nil
}
