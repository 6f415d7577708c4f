package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gridref-microservice/internal/domain"
	"github.com/gridref-microservice/internal/domain/repository"
	"github.com/gridref-microservice/internal/pkg/geo"
	"github.com/gridref-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// ConvertUseCase - преобразования между системами координат.
// Сами преобразования чистые; кешируются только производные
// прямоугольники (MGRS ячейки и тайлы), так как их запрашивают
// повторно при каждой отрисовке контура.
type ConvertUseCase struct {
	cacheRepo      repository.CacheRepository
	logger         *zap.Logger
	boundsCacheTTL time.Duration
	tileCacheTTL   time.Duration
}

func NewConvertUseCase(
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	boundsCacheTTL time.Duration,
	tileCacheTTL time.Duration,
) *ConvertUseCase {
	return &ConvertUseCase{
		cacheRepo:      cacheRepo,
		logger:         logger,
		boundsCacheTTL: boundsCacheTTL,
		tileCacheTTL:   tileCacheTTL,
	}
}

// TileTopLeft возвращает северо-западный угол тайла
func (uc *ConvertUseCase) TileTopLeft(x, y, zoom int) domain.Point {
	return geo.TileToDegrees(x, y, zoom)
}

// LocateTile возвращает тайл, содержащий точку
func (uc *ConvertUseCase) LocateTile(req dto.LocateTileRequest) domain.TileCoordinate {
	return geo.DegreesToTile(req.Lat, req.Lon, req.Zoom)
}

// TilePolygon возвращает замкнутое кольцо углов тайла
func (uc *ConvertUseCase) TilePolygon(x, y, zoom int) []domain.Point {
	return geo.TilePolygon(x, y, zoom)
}

// TileBounds возвращает прямоугольник тайла, кешируя результат
func (uc *ConvertUseCase) TileBounds(ctx context.Context, x, y, zoom int) (domain.BoundingBox, error) {
	cacheKey := fmt.Sprintf("bounds:tile:%d:%d:%d", zoom, x, y)
	cached, err := uc.cacheRepo.Get(ctx, cacheKey)
	if err == nil && cached != nil {
		var box domain.BoundingBox
		if err := json.Unmarshal(cached, &box); err == nil {
			return box, nil
		}
	}

	box := geo.TileBounds(x, y, zoom)

	if data, err := json.Marshal(box); err == nil {
		if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.tileCacheTTL); err != nil {
			uc.logger.Warn("Failed to cache tile bounds", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return box, nil
}

// ToUTM проецирует точку WGS84 в UTM
func (uc *ConvertUseCase) ToUTM(req dto.ToUTMRequest) domain.UTMCoordinate {
	return geo.LatLonToUTM(req.Lat, req.Lon)
}

// FromUTM возвращает точку WGS84 для UTM координаты
func (uc *ConvertUseCase) FromUTM(req dto.FromUTMRequest) domain.Point {
	return geo.UTMToLatLon(req.Zone, req.Hemisphere, req.Easting, req.Northing)
}

// EncodeMGRS кодирует точку в MGRS ссылку
func (uc *ConvertUseCase) EncodeMGRS(req dto.EncodeMGRSRequest) (string, error) {
	reference, err := geo.EncodeMGRS(req.Lat, req.Lon, req.Precision)
	if err != nil {
		uc.logger.Debug("MGRS encode failed",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon),
			zap.Error(err))
		return "", err
	}
	return reference, nil
}

// DecodeMGRS декодирует MGRS ссылку в точку WGS84
func (uc *ConvertUseCase) DecodeMGRS(reference string) (domain.MGRSPosition, error) {
	position, err := geo.DecodeMGRS(reference)
	if err != nil {
		uc.logger.Debug("MGRS decode failed",
			zap.String("reference", reference),
			zap.Error(err))
		return domain.MGRSPosition{}, err
	}

	if position.Approximate {
		uc.logger.Warn("MGRS decode used closest-band fallback",
			zap.String("reference", reference),
			zap.Float64("lat", position.Lat),
			zap.Float64("lon", position.Lon))
	}

	return position, nil
}

// MGRSBounds возвращает прямоугольник ячейки MGRS, кешируя результат
func (uc *ConvertUseCase) MGRSBounds(ctx context.Context, reference string) (dto.MGRSBoundsResponse, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	cacheKey := fmt.Sprintf("bounds:mgrs:%s", reference)
	cached, err := uc.cacheRepo.Get(ctx, cacheKey)
	if err == nil && cached != nil {
		var resp dto.MGRSBoundsResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return resp, nil
		}
	}

	box, approximate, err := geo.MGRSBounds(reference)
	if err != nil {
		uc.logger.Debug("MGRS bounds failed",
			zap.String("reference", reference),
			zap.Error(err))
		return dto.MGRSBoundsResponse{}, err
	}

	resp := dto.MGRSBoundsResponse{
		Reference:   reference,
		Bounds:      box,
		Approximate: approximate,
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.boundsCacheTTL); err != nil {
			uc.logger.Warn("Failed to cache MGRS bounds", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return resp, nil
}
