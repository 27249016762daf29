package records

import (
	"errors"
	"io"
	"strconv"

	"roster-manager/core/fileio"
	"roster-manager/core/importer"
	"roster-manager/core/logger"
	"roster-manager/core/reconcile"
	"roster-manager/core/schema"
	"roster-manager/core/validate"
	"roster-manager/feature/records/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for records.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the schema and record routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/schemas", h.HandleListSchemas)

	group := app.Group("/records/:baseName")
	group.Get("/", h.HandleListRecords)
	group.Post("/import", h.HandleImport)
	group.Post("/upload", h.HandleUpload)
	group.Post("/import-object", h.HandleImportObject)
	group.Post("/diff", h.HandleDiff)
	group.Post("/apply", h.HandleApply)
	group.Get("/export", h.HandleExport)
	group.Post("/export", h.HandleUploadExport)
	group.Get("/exports", h.HandleListExports)
}

// HandleListSchemas lists the registered schemas.
// @Summary List Schemas
// @Description List every registered record schema with its keys, aliases and required fields.
// @Tags schemas
// @Produce json
// @Success 200 {array} models.SchemaInfo "Schemas"
// @Router /schemas [get]
func (h *Handler) HandleListSchemas(c *fiber.Ctx) error {
	return c.JSON(h.service.Schemas())
}

// HandleListRecords returns the stored records of a schema.
// @Summary List Stored Records
// @Tags records
// @Produce json
// @Param baseName path string true "Schema base name (e.g. 'instructors')"
// @Success 200 {object} models.RecordsResponse "Stored records"
// @Failure 404 {object} map[string]string "Unknown schema"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records/{baseName} [get]
func (h *Handler) HandleListRecords(c *fiber.Ctx) error {
	baseName := c.Params("baseName")

	records, count, err := h.service.Records(c.Context(), baseName)
	if err != nil {
		return h.fail(c, "Listing records failed", err)
	}
	return c.JSON(models.RecordsResponse{BaseName: baseName, Count: count, Records: records})
}

// HandleImport normalizes spreadsheet rows into canonical records.
// @Summary Import Rows
// @Description Map raw rows onto the schema, normalize dates and validate required fields. Nothing is stored.
// @Tags records
// @Accept json
// @Produce json
// @Param baseName path string true "Schema base name"
// @Param request body models.ImportRequest true "Rows to import"
// @Success 200 {object} models.ImportResponse "Canonical records"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown schema"
// @Failure 422 {object} models.ValidationErrorResponse "Validation failed"
// @Router /records/{baseName}/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	baseName := c.Params("baseName")

	var req models.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	records, err := h.service.ImportRequest(baseName, req)
	if err != nil {
		return h.fail(c, "Import failed", err)
	}
	return c.JSON(importResponse(baseName, records))
}

// HandleUpload imports an uploaded JSON, CSV or XLSX file.
// @Summary Upload File
// @Description Decode an uploaded file by its extension and import its rows. Nothing is stored.
// @Tags records
// @Accept mpfd
// @Produce json
// @Param baseName path string true "Schema base name"
// @Param file formData file true "Spreadsheet (.json, .csv, .xlsx)"
// @Param lenient query boolean false "Keep rows that match no column"
// @Success 200 {object} models.ImportResponse "Canonical records"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown schema"
// @Failure 422 {object} models.ValidationErrorResponse "Validation failed"
// @Router /records/{baseName}/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	baseName := c.Params("baseName")

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, err)
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return badRequest(c, err)
	}

	records, err := h.service.ImportFile(baseName, fh.Filename, data, c.QueryBool("lenient"))
	if err != nil {
		return h.fail(c, "Upload import failed", err)
	}
	return c.JSON(importResponse(baseName, records))
}

// HandleImportObject imports a file already stored in object storage.
// @Summary Import Stored Object
// @Tags records
// @Accept json
// @Produce json
// @Param baseName path string true "Schema base name"
// @Param request body models.ObjectImportRequest true "Object key"
// @Success 200 {object} models.ImportResponse "Canonical records"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown schema"
// @Failure 422 {object} models.ValidationErrorResponse "Validation failed"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records/{baseName}/import-object [post]
func (h *Handler) HandleImportObject(c *fiber.Ctx) error {
	baseName := c.Params("baseName")

	var req models.ObjectImportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	records, err := h.service.ImportObject(c.Context(), baseName, req.Key, req.Lenient)
	if err != nil {
		return h.fail(c, "Object import failed", err)
	}
	return c.JSON(importResponse(baseName, records))
}

// HandleDiff imports rows and classifies them against the stored records.
// @Summary Diff Import
// @Description Classify each imported record as new, duplicate or modified. Nothing is written.
// @Tags records
// @Accept json
// @Produce json
// @Param baseName path string true "Schema base name"
// @Param request body models.ImportRequest true "Rows to diff"
// @Success 200 {object} reconcile.Report "Diff report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown schema"
// @Failure 422 {object} models.ValidationErrorResponse "Validation failed"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records/{baseName}/diff [post]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	baseName := c.Params("baseName")

	var req models.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	records, err := h.service.ImportRequest(baseName, req)
	if err != nil {
		return h.fail(c, "Import failed", err)
	}

	report, err := h.service.Diff(c.Context(), baseName, records, req.Removals)
	if err != nil {
		return h.fail(c, "Diff failed", err)
	}
	return c.JSON(report)
}

// HandleApply imports rows and writes new and modified records to the store.
// @Summary Apply Import
// @Description Plan store writes for an import. Writes happen only when confirmed is true and dryRun is false.
// @Tags records
// @Accept json
// @Produce json
// @Param baseName path string true "Schema base name"
// @Param request body models.ApplyRequest true "Rows to apply"
// @Success 200 {object} models.ApplyResponse "Plan and executed count"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown schema"
// @Failure 422 {object} models.ValidationErrorResponse "Validation failed"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records/{baseName}/apply [post]
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	baseName := c.Params("baseName")
	l := logger.WithRayID(h.service.logger, c)

	var req models.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	records, err := h.service.ImportRequest(baseName, req.ImportRequest)
	if err != nil {
		return h.fail(c, "Import failed", err)
	}

	opts := reconcile.ApplyOptions{DryRun: req.DryRun, DoPurge: req.Purge, Confirmed: req.Confirmed}
	plan, executed, err := h.service.Apply(c.Context(), baseName, records, req.Removals, opts)
	if err != nil {
		return h.fail(c, "Apply failed", err)
	}

	if !req.DryRun && !req.Confirmed && len(plan.Actions) > 0 {
		l.Info("Apply not confirmed, nothing written", zap.Int("actions", len(plan.Actions)))
	}
	return c.JSON(models.ApplyResponse{Plan: plan, Executed: executed, DryRun: req.DryRun})
}

// HandleExport downloads the stored records as a file.
// @Summary Export Records
// @Tags records
// @Produce json
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param baseName path string true "Schema base name"
// @Param format query string false "csv, json or xlsx (default csv)"
// @Success 200 {file} file "Exported file"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown schema"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records/{baseName}/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	baseName := c.Params("baseName")

	ft, err := importer.ParseFileType(c.Query("format", string(importer.FileTypeCSV)))
	if err != nil {
		return badRequest(c, err)
	}

	data, err := h.service.Export(c.Context(), baseName, ft)
	if err != nil {
		return h.fail(c, "Export failed", err)
	}

	c.Set(fiber.HeaderContentType, fileio.ContentType(ft))
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+strconv.Quote(fileio.FileName(baseName, ft)))
	return c.Send(data)
}

// HandleUploadExport writes an export of the stored records to object storage.
// @Summary Upload Export
// @Tags records
// @Produce json
// @Param baseName path string true "Schema base name"
// @Param format query string false "csv, json or xlsx (default csv)"
// @Success 201 {object} models.ExportResponse "Stored export"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown schema"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records/{baseName}/export [post]
func (h *Handler) HandleUploadExport(c *fiber.Ctx) error {
	baseName := c.Params("baseName")

	ft, err := importer.ParseFileType(c.Query("format", string(importer.FileTypeCSV)))
	if err != nil {
		return badRequest(c, err)
	}

	resp, err := h.service.UploadExport(c.Context(), baseName, ft)
	if err != nil {
		return h.fail(c, "Export upload failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleListExports lists the exports stored for a schema.
// @Summary List Exports
// @Tags records
// @Produce json
// @Param baseName path string true "Schema base name"
// @Success 200 {array} storage.ExportObject "Exports, newest first"
// @Failure 404 {object} map[string]string "Unknown schema"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records/{baseName}/exports [get]
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	exports, err := h.service.ListExports(c.Context(), c.Params("baseName"))
	if err != nil {
		return h.fail(c, "Listing exports failed", err)
	}
	if exports == nil {
		return c.JSON([]any{})
	}
	return c.JSON(exports)
}

// fail maps service errors onto status codes.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithBaseName(logger.WithRayID(h.service.logger, c), c.Params("baseName"))

	var verr *validate.ValidationError
	switch {
	case errors.As(err, &verr):
		l.Info(msg, zap.Int("violations", len(verr.Violations)))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ValidationErrorResponse{
			Error:      err.Error(),
			Violations: verr.Violations,
		})
	case errors.Is(err, reconcile.ErrUnknownSchema):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrInvalidRequest):
		return badRequest(c, err)
	default:
		l.Error(msg, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func importResponse(baseName string, records []schema.Record) models.ImportResponse {
	if records == nil {
		records = []schema.Record{}
	}
	return models.ImportResponse{BaseName: baseName, Count: len(records), Records: records}
}
