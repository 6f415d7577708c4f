package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrUnsupportedGeometry - тип геометрии GeoJSON не поддерживается
var ErrUnsupportedGeometry = errors.New("unsupported geometry type")

// GeometryUseCase - преобразование GeoJSON геометрий в WKT.
// Полноценный разбор WKT/WKB и вычисление extent остаются за внешней
// геометрической библиотекой host-приложения.
type GeometryUseCase struct {
	logger *zap.Logger
}

func NewGeometryUseCase(logger *zap.Logger) *GeometryUseCase {
	return &GeometryUseCase{logger: logger}
}

type geoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// GeoJSONToWKT преобразует GeoJSON геометрию в WKT строку.
// Поддерживаются все шесть базовых типов: Point, MultiPoint, LineString,
// MultiLineString, Polygon, MultiPolygon.
func (uc *GeometryUseCase) GeoJSONToWKT(raw []byte) (string, error) {
	var g geoJSONGeometry
	if err := json.Unmarshal(raw, &g); err != nil {
		return "", fmt.Errorf("failed to parse geojson: %w", err)
	}

	wkt, err := geometryToWKT(g)
	if err != nil {
		uc.logger.Debug("GeoJSON to WKT conversion failed",
			zap.String("type", g.Type),
			zap.Error(err))
		return "", err
	}

	return wkt, nil
}

func geometryToWKT(g geoJSONGeometry) (string, error) {
	switch strings.ToUpper(g.Type) {
	case "POINT":
		var c []float64
		if err := json.Unmarshal(g.Coordinates, &c); err != nil || len(c) < 2 {
			return "", fmt.Errorf("invalid point coordinates: %w", errCoords(err))
		}
		return fmt.Sprintf("POINT(%s %s)", num(c[0]), num(c[1])), nil

	case "MULTIPOINT":
		var cs [][]float64
		if err := json.Unmarshal(g.Coordinates, &cs); err != nil {
			return "", fmt.Errorf("invalid multipoint coordinates: %w", err)
		}
		points := make([]string, 0, len(cs))
		for _, c := range cs {
			if len(c) < 2 {
				return "", fmt.Errorf("invalid multipoint coordinates: %w", errCoords(nil))
			}
			points = append(points, fmt.Sprintf("(%s %s)", num(c[0]), num(c[1])))
		}
		return fmt.Sprintf("MULTIPOINT(%s)", strings.Join(points, ", ")), nil

	case "LINESTRING":
		var cs [][]float64
		if err := json.Unmarshal(g.Coordinates, &cs); err != nil {
			return "", fmt.Errorf("invalid linestring coordinates: %w", err)
		}
		line, err := lineToWKT(cs)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("LINESTRING(%s)", line), nil

	case "MULTILINESTRING":
		var lines [][][]float64
		if err := json.Unmarshal(g.Coordinates, &lines); err != nil {
			return "", fmt.Errorf("invalid multilinestring coordinates: %w", err)
		}
		parts := make([]string, 0, len(lines))
		for _, cs := range lines {
			line, err := lineToWKT(cs)
			if err != nil {
				return "", err
			}
			parts = append(parts, "("+line+")")
		}
		return fmt.Sprintf("MULTILINESTRING(%s)", strings.Join(parts, ", ")), nil

	case "POLYGON":
		var rings [][][]float64
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
			return "", fmt.Errorf("invalid polygon coordinates: %w", err)
		}
		poly, err := ringsToWKT(rings)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("POLYGON(%s)", poly), nil

	case "MULTIPOLYGON":
		var polys [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &polys); err != nil {
			return "", fmt.Errorf("invalid multipolygon coordinates: %w", err)
		}
		parts := make([]string, 0, len(polys))
		for _, rings := range polys {
			poly, err := ringsToWKT(rings)
			if err != nil {
				return "", err
			}
			parts = append(parts, "("+poly+")")
		}
		return fmt.Sprintf("MULTIPOLYGON(%s)", strings.Join(parts, ", ")), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedGeometry, g.Type)
	}
}

func lineToWKT(cs [][]float64) (string, error) {
	pairs := make([]string, 0, len(cs))
	for _, c := range cs {
		if len(c) < 2 {
			return "", fmt.Errorf("invalid coordinate pair: %w", errCoords(nil))
		}
		pairs = append(pairs, num(c[0])+" "+num(c[1]))
	}
	return strings.Join(pairs, ", "), nil
}

func ringsToWKT(rings [][][]float64) (string, error) {
	parts := make([]string, 0, len(rings))
	for _, ring := range rings {
		line, err := lineToWKT(ring)
		if err != nil {
			return "", err
		}
		parts = append(parts, "("+line+")")
	}
	return strings.Join(parts, ", "), nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func errCoords(err error) error {
	if err != nil {
		return err
	}
	return errors.New("coordinate pair must have two values")
}
