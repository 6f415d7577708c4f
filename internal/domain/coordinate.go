package domain

// Point - точка в WGS84
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TileCoordinate - адрес тайла в схеме XYZ (Web Mercator)
type TileCoordinate struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Zoom int `json:"zoom"`
}

// UTMCoordinate - координата в проекции UTM
type UTMCoordinate struct {
	Zone       int     `json:"zone"`
	Hemisphere string  `json:"hemisphere"`
	Easting    float64 `json:"easting"`
	Northing   float64 `json:"northing"`
}

// MGRSPosition - результат декодирования MGRS ссылки.
// Approximate выставляется, когда ни один кандидат цикла northing
// не попал в ожидаемый широтный пояс и выбран ближайший к его середине.
type MGRSPosition struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Approximate bool    `json:"approximate"`
}

// BoundingBox - ограничивающий прямоугольник в WGS84
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Center возвращает центр прямоугольника
func (b BoundingBox) Center() Point {
	return Point{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lon: (b.MinLon + b.MaxLon) / 2,
	}
}

// Contains проверяет, попадает ли точка внутрь прямоугольника
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}
