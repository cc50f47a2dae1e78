package audit

import (
	"context"
	"errors"
	"strconv"

	"storage-audit/core/catalog"
	"storage-audit/core/logger"
	"storage-audit/core/utils"
	"storage-audit/feature/history"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RunLister lists recorded runs.
type RunLister interface {
	List(ctx context.Context, limit int) ([]history.Run, error)
}

// Handler serves persisted audit records.
type Handler struct {
	cache  *catalog.Cache
	runs   RunLister
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler. runs may be nil when no database is
// configured.
func NewHandler(cache *catalog.Cache, runs RunLister, logger *zap.Logger) *Handler {
	return &Handler{
		cache:  cache,
		runs:   runs,
		logger: logger,
	}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/local", h.HandleLocal)
	group.Get("/remote", h.HandleRemote)
	group.Get("/diff", h.HandleDiff)
	group.Get("/history", h.HandleHistory)
}

// HandleLocal returns the local catalog.
func (h *Handler) HandleLocal(c *fiber.Ctx) error {
	record, err := h.cache.Local()
	if err != nil {
		return h.recordError(c, err)
	}
	return c.JSON(record)
}

// HandleRemote returns the remote catalog for the optional bag filter.
func (h *Handler) HandleRemote(c *fiber.Ctx) error {
	bag, ok := bagFilter(c)
	if !ok {
		return invalidBag(c)
	}
	record, err := h.cache.Remote(bag)
	if err != nil {
		return h.recordError(c, err)
	}
	return c.JSON(record)
}

// HandleDiff returns the diff report for the optional bag filter.
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	bag, ok := bagFilter(c)
	if !ok {
		return invalidBag(c)
	}
	record, err := h.cache.Diff(bag)
	if err != nil {
		return h.recordError(c, err)
	}
	return c.JSON(record)
}

// HandleHistory returns the most recent recorded runs.
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	if h.runs == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "history requires a database"})
	}

	limit := history.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be a positive integer"})
		}
		limit = n
	}

	runs, err := h.runs.List(c.Context(), limit)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if runs == nil {
		runs = []history.Run{}
	}
	return c.JSON(runs)
}

func (h *Handler) recordError(c *fiber.Ctx, err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	l := logger.WithRayID(h.logger, c)
	var parseErr *catalog.ParseError
	if errors.As(err, &parseErr) {
		l.Error("Malformed record", zap.String("path", parseErr.Path), zap.Error(parseErr.Err))
	} else {
		l.Error("Failed to read record", zap.Error(err))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func bagFilter(c *fiber.Ctx) (string, bool) {
	bag := c.Query("bag")
	if bag == "" {
		return "", true
	}
	return bag, utils.IsNumeric(bag)
}

func invalidBag(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bag must be a numeric filter"})
}
