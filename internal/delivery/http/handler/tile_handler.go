package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gridref-microservice/internal/domain"
	"github.com/gridref-microservice/internal/pkg/errors"
	"github.com/gridref-microservice/internal/pkg/utils"
	"github.com/gridref-microservice/internal/pkg/validator"
	"github.com/gridref-microservice/internal/usecase"
	"github.com/gridref-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// TileHandler - обработчик для запросов по XYZ тайлам
type TileHandler struct {
	convertUC *usecase.ConvertUseCase
	logger    *zap.Logger
}

// NewTileHandler - создание нового TileHandler
func NewTileHandler(convertUC *usecase.ConvertUseCase, logger *zap.Logger) *TileHandler {
	return &TileHandler{
		convertUC: convertUC,
		logger:    logger,
	}
}

// parseTileParams разбирает z/x/y из пути и проверяет инвариант x,y < 2^zoom
func parseTileParams(c *fiber.Ctx) (x, y, z int, err error) {
	z, errZ := strconv.Atoi(c.Params("z"))
	x, errX := strconv.Atoi(c.Params("x"))
	y, errY := strconv.Atoi(c.Params("y"))
	if errZ != nil || errX != nil || errY != nil {
		return 0, 0, 0, errors.ErrInvalidTileCoordinates
	}
	if !utils.ValidateZoom(z) {
		return 0, 0, 0, errors.ErrInvalidZoom
	}
	if !utils.ValidateTile(x, y, z) {
		return 0, 0, 0, errors.ErrInvalidTileCoordinates
	}
	return x, y, z, nil
}

// GetTileCoords godoc
// @Summary Северо-западный угол тайла
// @Description Возвращает широту/долготу верхнего левого угла XYZ тайла.
// @Tags Tiles
// @Produce json
// @Param z path int true "Zoom (0-22)"
// @Param x path int true "Tile X"
// @Param y path int true "Tile Y"
// @Success 200 {object} utils.SuccessResponse{data=domain.Point}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/tiles/{z}/{x}/{y}/coords [get]
func (h *TileHandler) GetTileCoords(c *fiber.Ctx) error {
	x, y, z, err := parseTileParams(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	point := h.convertUC.TileTopLeft(x, y, z)
	return utils.SendSuccess(c, point, nil)
}

// GetTileBounds godoc
// @Summary Прямоугольник тайла
// @Description Возвращает ограничивающий прямоугольник XYZ тайла в WGS84.
// @Tags Tiles
// @Produce json
// @Param z path int true "Zoom (0-22)"
// @Param x path int true "Tile X"
// @Param y path int true "Tile Y"
// @Success 200 {object} utils.SuccessResponse{data=domain.BoundingBox}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/tiles/{z}/{x}/{y}/bounds [get]
func (h *TileHandler) GetTileBounds(c *fiber.Ctx) error {
	x, y, z, err := parseTileParams(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	box, err := h.convertUC.TileBounds(c.Context(), x, y, z)
	if err != nil {
		h.logger.Error("Failed to get tile bounds",
			zap.Int("z", z), zap.Int("x", x), zap.Int("y", y),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, box, nil)
}

// GetTilePolygon godoc
// @Summary Контур тайла
// @Description Возвращает замкнутое кольцо углов тайла для отрисовки на карте.
// @Tags Tiles
// @Produce json
// @Param z path int true "Zoom (0-22)"
// @Param x path int true "Tile X"
// @Param y path int true "Tile Y"
// @Success 200 {object} utils.SuccessResponse{data=dto.TilePolygonResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/tiles/{z}/{x}/{y}/polygon [get]
func (h *TileHandler) GetTilePolygon(c *fiber.Ctx) error {
	x, y, z, err := parseTileParams(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	ring := h.convertUC.TilePolygon(x, y, z)
	return utils.SendSuccess(c, dto.TilePolygonResponse{
		Tile: domain.TileCoordinate{X: x, Y: y, Zoom: z},
		Ring: ring,
	}, nil)
}

// LocateTile godoc
// @Summary Поиск тайла по точке
// @Description Возвращает XYZ тайл, содержащий точку, на заданном zoom.
// @Tags Tiles
// @Accept json
// @Produce json
// @Param request body dto.LocateTileRequest true "Точка и zoom"
// @Success 200 {object} utils.SuccessResponse{data=domain.TileCoordinate}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/tiles/locate [post]
func (h *TileHandler) LocateTile(c *fiber.Ctx) error {
	var req dto.LocateTileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	tile := h.convertUC.LocateTile(req)
	return utils.SendSuccess(c, tile, nil)
}
