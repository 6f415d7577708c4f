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

// UTMHandler - обработчик для UTM преобразований
type UTMHandler struct {
	convertUC *usecase.ConvertUseCase
	logger    *zap.Logger
}

// NewUTMHandler - создание нового UTMHandler
func NewUTMHandler(convertUC *usecase.ConvertUseCase, logger *zap.Logger) *UTMHandler {
	return &UTMHandler{
		convertUC: convertUC,
		logger:    logger,
	}
}

// ToUTM godoc
// @Summary Проекция точки в UTM
// @Description Проецирует точку WGS84 в UTM с учётом исключений для Норвегии и Шпицбергена.
// @Tags UTM
// @Accept json
// @Produce json
// @Param request body dto.ToUTMRequest true "Точка WGS84"
// @Success 200 {object} utils.SuccessResponse{data=domain.UTMCoordinate}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/utm/from-latlon [post]
func (h *UTMHandler) ToUTM(c *fiber.Ctx) error {
	var req dto.ToUTMRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	utm := h.convertUC.ToUTM(req)
	return utils.SendSuccess(c, utm, nil)
}

// FromUTM godoc
// @Summary Обратная проекция из UTM
// @Description Возвращает точку WGS84 для UTM координаты (усечённый ряд, точность до долей метра).
// @Tags UTM
// @Accept json
// @Produce json
// @Param request body dto.FromUTMRequest true "UTM координата"
// @Success 200 {object} utils.SuccessResponse{data=domain.Point}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/utm/to-latlon [post]
func (h *UTMHandler) FromUTM(c *fiber.Ctx) error {
	var req dto.FromUTMRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidUTM)
	}

	point := h.convertUC.FromUTM(req)
	return utils.SendSuccess(c, point, nil)
}
