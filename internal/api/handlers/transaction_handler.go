package handlers

import (
	"errors"
	"time"

	"finboard/internal/daterange"
	"finboard/internal/dto"
	"finboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// List godoc
// @Summary List transactions in a date range
// @Description List the caller's transactions whose due date falls inside the window resolved from the range token. Returns an empty list when nothing matches or the read fails.
// @Tags transactions
// @Produce json
// @Param range query string false "Range token: day, week, month, year or custom" default(month)
// @Param start query string false "Reference or custom start date (YYYY-MM-DD)"
// @Param end query string false "Custom end date (YYYY-MM-DD)"
// @Security Bearer
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Router /transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	r, start, end := rangeParams(c)
	return c.JSON(h.txService.Fetch(c.Context(), userID, r, start, end))
}

// Summary godoc
// @Summary Summarize transactions in a date range
// @Description Per-type totals and balance over the resolved window
// @Tags transactions
// @Produce json
// @Param range query string false "Range token: day, week, month, year or custom" default(month)
// @Param start query string false "Reference or custom start date (YYYY-MM-DD)"
// @Param end query string false "Custom end date (YYYY-MM-DD)"
// @Security Bearer
// @Success 200 {object} dto.TransactionSummaryResponse
// @Failure 401 {object} map[string]string
// @Router /transactions/summary [get]
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	r, start, end := rangeParams(c)
	return c.JSON(h.txService.Summarize(c.Context(), userID, r, start, end))
}

// Create godoc
// @Summary Create a transaction
// @Description Create a transaction owned by the caller
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.txService.Create(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransaction) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Transaction creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// rangeParams reads the range token and optional date bounds. Bounds
// that fail to parse are treated as absent; the resolver then applies
// its month fallback.
func rangeParams(c *fiber.Ctx) (daterange.Range, *time.Time, *time.Time) {
	r := daterange.Range(c.Query("range", string(daterange.RangeMonth)))

	var start, end *time.Time
	if s := c.Query("start"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			start = &t
		}
	}
	if s := c.Query("end"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			end = &t
		}
	}
	return r, start, end
}
