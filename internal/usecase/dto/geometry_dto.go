package dto

import "encoding/json"

// GeoJSONToWKTRequest - запрос на преобразование GeoJSON геометрии в WKT
type GeoJSONToWKTRequest struct {
	Geometry json.RawMessage `json:"geometry" validate:"required"`
}

// GeoJSONToWKTResponse - результат преобразования
type GeoJSONToWKTResponse struct {
	WKT string `json:"wkt"`
}
