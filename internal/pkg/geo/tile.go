// Package geo реализует преобразования между системами координат:
// XYZ тайлы (Web Mercator), UTM, MGRS и широта/долгота WGS84.
// Все функции чистые, без состояния и без внешних геодезических библиотек.
package geo

import (
	"math"

	"github.com/gridref-microservice/internal/domain"
)

// TileToDegrees возвращает северо-западный (верхний левый) угол XYZ тайла.
// Стандартная формула slippy map: lon = x/n*360-180,
// lat = atan(sinh(pi*(1-2y/n))). Диапазоны входа не проверяются:
// zoom=0 даёт единственный тайл на весь мир.
func TileToDegrees(x, y, zoom int) domain.Point {
	n := math.Pow(2, float64(zoom))
	lon := float64(x)/n*360.0 - 180.0
	latRad := math.Atan(math.Sinh(math.Pi * (1 - 2*float64(y)/n)))
	return domain.Point{
		Lat: latRad * 180.0 / math.Pi,
		Lon: lon,
	}
}

// DegreesToTile возвращает тайл, содержащий точку, на заданном zoom.
// Приведение к int усекает к нулю, что совпадает с floor на допустимой
// области входа.
func DegreesToTile(lat, lon float64, zoom int) domain.TileCoordinate {
	latRad := lat * math.Pi / 180.0
	n := math.Pow(2, float64(zoom))
	x := int((lon + 180.0) / 360.0 * n)
	y := int((1.0 - math.Asinh(math.Tan(latRad))/math.Pi) / 2.0 * n)
	return domain.TileCoordinate{X: x, Y: y, Zoom: zoom}
}
