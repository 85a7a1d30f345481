package handlers

import (
	"errors"

	"finboard/internal/dto"
	"finboard/internal/models"
	"finboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LookupHandler struct {
	lookupService *service.LookupService
	logger        *zap.Logger
}

func NewLookupHandler(lookupService *service.LookupService, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{
		lookupService: lookupService,
		logger:        logger,
	}
}

// List godoc
// @Summary List lookup rows of one kind
// @Description List the caller's payees, payment_methods, categories or subcategories, name ascending
// @Tags lookups
// @Produce json
// @Param kind path string true "Lookup kind" Enums(payees, payment_methods, categories, subcategories)
// @Param q query string false "Search term; names come back segmented into matched/unmatched spans"
// @Security Bearer
// @Success 200 {array} dto.LookupResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /lookups/{kind} [get]
func (h *LookupHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	kind := models.LookupKind(c.Params("kind"))
	resp, err := h.lookupService.List(c.Context(), kind, userID, c.Query("q"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidLookup) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown lookup kind",
			})
		}
		h.logger.Error("Lookup list failed", zap.String("kind", string(kind)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list lookups",
		})
	}

	return c.JSON(resp)
}

// Create godoc
// @Summary Create a lookup row
// @Description Create a payee, payment method, category or subcategory owned by the caller
// @Tags lookups
// @Accept json
// @Produce json
// @Param kind path string true "Lookup kind" Enums(payees, payment_methods, categories, subcategories)
// @Param request body dto.CreateLookupRequest true "Lookup"
// @Security Bearer
// @Success 201 {object} dto.LookupResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /lookups/{kind} [post]
func (h *LookupHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateLookupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	kind := models.LookupKind(c.Params("kind"))
	resp, err := h.lookupService.Create(c.Context(), kind, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLookup) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Lookup creation failed", zap.String("kind", string(kind)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create lookup",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}
