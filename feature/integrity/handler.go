package integrity

import (
	"roster-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/records", h.HandleRecordsCheck)
}

// HandleIntegrityCheck runs every check.
// @Summary Run All Integrity Checks
// @Description Checks the export folders, the record table and the stored records. A check that cannot run reports its error.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	report := h.service.RunAll(c.Context())
	if !report.Healthy {
		logger.WithRayID(h.service.logger, c).Warn("Integrity checks found problems",
			zap.String("structure", report.Structure.Status),
			zap.String("database_error", report.DatabaseError),
			zap.String("records_error", report.RecordsError))
	}
	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes the export folders.
// @Summary Check Structure
// @Description Checks that the storage bucket has an export folder per schema. Optionally creates missing folders.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} StructureResult "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix")

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) == 0 || !fix {
		return c.JSON(StructureResult{Status: "checked", Missing: missing})
	}

	l.Info("Creating missing export folders", zap.Strings("missing", missing))
	if err := h.service.FixStructure(c.Context(), missing); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(StructureResult{
			Status:  "error",
			Missing: missing,
			Error:   err.Error(),
		})
	}
	return c.JSON(StructureResult{Status: "fixed", Missing: missing})
}

// HandleDatabaseCheck checks the record table.
// @Summary Check Database
// @Description Checks that the record table exists and has every column of the record model.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.DatabaseReport "Database Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDatabase()
	if err != nil {
		l.Error("Database check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleRecordsCheck validates stored records against their schemas.
// @Summary Check Stored Records
// @Description Validates every stored record against its schema and reports repeated primary keys.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {array} checks.RecordsReport "Records Reports"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/records [get]
func (h *Handler) HandleRecordsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting stored records check")

	reports, err := h.service.CheckRecords(c.Context())
	if err != nil {
		l.Error("Records check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(reports)
}
