package dto

import "github.com/gridref-microservice/internal/domain"

// LocateTileRequest - запрос на поиск тайла, содержащего точку
type LocateTileRequest struct {
	Lat  float64 `json:"lat" validate:"min=-90,max=90"`
	Lon  float64 `json:"lon" validate:"min=-180,max=180"`
	Zoom int     `json:"zoom" validate:"min=0,max=22"`
}

// ToUTMRequest - запрос на проекцию точки в UTM
type ToUTMRequest struct {
	Lat float64 `json:"lat" validate:"min=-84,max=84"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// FromUTMRequest - запрос на обратную проекцию из UTM
type FromUTMRequest struct {
	Zone       int     `json:"zone" validate:"min=1,max=60"`
	Hemisphere string  `json:"hemisphere" validate:"required,oneof=N S"`
	Easting    float64 `json:"easting" validate:"min=0"`
	Northing   float64 `json:"northing" validate:"min=0,max=10000000"`
}

// EncodeMGRSRequest - запрос на кодирование точки в MGRS
type EncodeMGRSRequest struct {
	Lat       float64 `json:"lat" validate:"min=-90,max=90"`
	Lon       float64 `json:"lon" validate:"min=-180,max=180"`
	Precision int     `json:"precision" validate:"min=0,max=5"`
}

// EncodeMGRSResponse - закодированная MGRS ссылка
type EncodeMGRSResponse struct {
	Reference string `json:"reference"`
}

// TilePolygonResponse - замкнутое кольцо углов тайла
type TilePolygonResponse struct {
	Tile domain.TileCoordinate `json:"tile"`
	Ring []domain.Point        `json:"ring"`
}

// MGRSBoundsResponse - прямоугольник ячейки MGRS
type MGRSBoundsResponse struct {
	Reference   string             `json:"reference"`
	Bounds      domain.BoundingBox `json:"bounds"`
	Approximate bool               `json:"approximate"`
}
