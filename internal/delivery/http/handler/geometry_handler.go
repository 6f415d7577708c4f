package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gridref-microservice/internal/pkg/errors"
	"github.com/gridref-microservice/internal/pkg/utils"
	"github.com/gridref-microservice/internal/pkg/validator"
	"github.com/gridref-microservice/internal/usecase"
	"github.com/gridref-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeometryHandler - обработчик преобразований геометрий
type GeometryHandler struct {
	geometryUC *usecase.GeometryUseCase
	logger     *zap.Logger
}

// NewGeometryHandler - создание нового GeometryHandler
func NewGeometryHandler(geometryUC *usecase.GeometryUseCase, logger *zap.Logger) *GeometryHandler {
	return &GeometryHandler{
		geometryUC: geometryUC,
		logger:     logger,
	}
}

// GeoJSONToWKT godoc
// @Summary Преобразование GeoJSON в WKT
// @Description Преобразует GeoJSON геометрию в WKT строку. Поддерживаются Point, MultiPoint, LineString, MultiLineString, Polygon, MultiPolygon.
// @Tags Geometry
// @Accept json
// @Produce json
// @Param request body dto.GeoJSONToWKTRequest true "GeoJSON геометрия"
// @Success 200 {object} utils.SuccessResponse{data=dto.GeoJSONToWKTResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/geometry/geojson-to-wkt [post]
func (h *GeometryHandler) GeoJSONToWKT(c *fiber.Ctx) error {
	var req dto.GeoJSONToWKTRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	wkt, err := h.geometryUC.GeoJSONToWKT(req.Geometry)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidGeometry)
	}

	return utils.SendSuccess(c, dto.GeoJSONToWKTResponse{WKT: wkt}, nil)
}
