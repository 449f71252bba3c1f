// Package api serves statement conversion over HTTP.
package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fjacquet/stmt-ledger/internal/common"
	"fjacquet/stmt-ledger/internal/fileutils"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/models"
	"fjacquet/stmt-ledger/internal/parser"
	"fjacquet/stmt-ledger/internal/parsererror"
	"fjacquet/stmt-ledger/internal/validation"
)

// UploadField is the multipart field carrying the statement.
const UploadField = "pdf"

// ConvertResponse is the JSON body of /api/convert.
type ConvertResponse struct {
	ConversionID string                 `json:"conversion_id"`
	Mode         string                 `json:"mode"`
	Header       models.StatementHeader `json:"header"`
	Rows         []models.LedgerRow     `json:"rows"`
	Summary      models.Summary         `json:"summary"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler holds the HTTP handlers.
type Handler struct {
	parser parser.Parser
	csv    common.CSVOptions
	logger logging.Logger
	clock  fileutils.Clock
}

// NewHandler creates a handler converting uploads with p.
func NewHandler(p parser.Parser, csv common.CSVOptions, logger logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Handler{parser: p, csv: csv, logger: logger, clock: time.Now}
}

// SetClock replaces the clock used for attachment names.
func (h *Handler) SetClock(clock fileutils.Clock) {
	h.clock = clock
}

// Register mounts the routes on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.HandleHealth)
	app.Post("/upload", h.HandleUpload)
	app.Post("/api/convert", h.HandleConvert)
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleUpload converts the uploaded statement and returns it as a CSV
// attachment.
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	up, err := h.convert(c)
	if err != nil {
		return err
	}

	data, err := common.LedgerCSV(up.ledger, h.csv)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	c.Attachment(fileutils.OutputFileName(up.filename, up.ledger.Header, h.clock()))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(data)
}

// HandleConvert converts the uploaded statement and returns it as JSON.
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	up, err := h.convert(c)
	if err != nil {
		return err
	}

	return c.JSON(ConvertResponse{
		ConversionID: up.id,
		Mode:         up.mode,
		Header:       up.ledger.Header,
		Rows:         up.ledger.Rows(),
		Summary:      up.ledger.Summarize(),
	})
}

type upload struct {
	id       string
	mode     string
	filename string
	ledger   models.Ledger
}

func (h *Handler) convert(c *fiber.Ctx) (upload, error) {
	up := upload{id: uuid.NewString(), mode: validation.NormalizeMode(c.FormValue("mode"))}
	logger := h.logger.WithField(logging.FieldConversionID, up.id)

	if err := validation.ValidateMode(up.mode); err != nil {
		return up, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	fh, err := c.FormFile(UploadField)
	if err != nil {
		return up, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("No file uploaded. Use form field '%s'.", UploadField))
	}
	up.filename = fh.Filename

	logger.Info("Converting upload",
		logging.F(logging.FieldInputFile, fh.Filename),
		logging.F(logging.FieldMode, up.mode))

	l, err := h.parse(fh)
	if err != nil {
		logger.WithError(err).Warn("Upload conversion failed")
		return up, fiber.NewError(statusFor(err), err.Error())
	}
	up.ledger = l
	return up, nil
}

func (h *Handler) parse(fh *multipart.FileHeader) (models.Ledger, error) {
	f, err := fh.Open()
	if err != nil {
		return models.Ledger{}, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			h.logger.WithError(err).Warn("Failed to close upload")
		}
	}()
	return h.parser.Parse(f)
}

func statusFor(err error) int {
	var (
		extraction *parsererror.DataExtractionError
		format     *parsererror.InvalidFormatError
		invalid    *parsererror.ValidationError
	)
	switch {
	case errors.As(err, &extraction), errors.As(err, &format):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &invalid):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders errors as ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}
