package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gridref-microservice/internal/pkg/errors"
	"github.com/gridref-microservice/internal/pkg/geo"
	"github.com/gridref-microservice/internal/pkg/utils"
	"github.com/gridref-microservice/internal/pkg/validator"
	"github.com/gridref-microservice/internal/usecase"
	"github.com/gridref-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// MGRSHandler - обработчик для MGRS кодирования и декодирования
type MGRSHandler struct {
	convertUC *usecase.ConvertUseCase
	logger    *zap.Logger
}

// NewMGRSHandler - создание нового MGRSHandler
func NewMGRSHandler(convertUC *usecase.ConvertUseCase, logger *zap.Logger) *MGRSHandler {
	return &MGRSHandler{
		convertUC: convertUC,
		logger:    logger,
	}
}

// mapMGRSError переводит ошибки кодека в ошибки API
func mapMGRSError(err error) error {
	switch {
	case stderrors.Is(err, geo.ErrOutOfCoverage):
		return errors.ErrOutOfCoverage
	case stderrors.Is(err, geo.ErrInvalidReference):
		return errors.ErrInvalidMGRS
	}
	return err
}

// Encode godoc
// @Summary Кодирование точки в MGRS
// @Description Кодирует точку WGS84 в MGRS ссылку с точностью 0-5 (от 100км квадрата до 1м).
// @Tags MGRS
// @Accept json
// @Produce json
// @Param request body dto.EncodeMGRSRequest true "Точка и точность"
// @Success 200 {object} utils.SuccessResponse{data=dto.EncodeMGRSResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/mgrs/encode [post]
func (h *MGRSHandler) Encode(c *fiber.Ctx) error {
	var req dto.EncodeMGRSRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	reference, err := h.convertUC.EncodeMGRS(req)
	if err != nil {
		return utils.SendError(c, mapMGRSError(err))
	}

	return utils.SendSuccess(c, dto.EncodeMGRSResponse{Reference: reference}, nil)
}

// Decode godoc
// @Summary Декодирование MGRS ссылки
// @Description Декодирует MGRS ссылку в точку WGS84. Флаг approximate выставляется, когда перебор циклов northing не нашёл кандидата в поясе ссылки и выбран ближайший.
// @Tags MGRS
// @Produce json
// @Param reference path string true "MGRS ссылка (например 31TDF2977282392)"
// @Success 200 {object} utils.SuccessResponse{data=domain.MGRSPosition}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/mgrs/{reference} [get]
func (h *MGRSHandler) Decode(c *fiber.Ctx) error {
	reference := c.Params("reference")

	position, err := h.convertUC.DecodeMGRS(reference)
	if err != nil {
		return utils.SendError(c, mapMGRSError(err))
	}

	return utils.SendSuccess(c, position, nil)
}

// Bounds godoc
// @Summary Прямоугольник ячейки MGRS
// @Description Возвращает приблизительный ограничивающий прямоугольник ячейки MGRS (плоская аппроксимация, ячейки не больше 100 км).
// @Tags MGRS
// @Produce json
// @Param reference path string true "MGRS ссылка"
// @Success 200 {object} utils.SuccessResponse{data=dto.MGRSBoundsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/mgrs/{reference}/bounds [get]
func (h *MGRSHandler) Bounds(c *fiber.Ctx) error {
	reference := c.Params("reference")

	resp, err := h.convertUC.MGRSBounds(c.Context(), reference)
	if err != nil {
		return utils.SendError(c, mapMGRSError(err))
	}

	return utils.SendSuccess(c, resp, nil)
}
