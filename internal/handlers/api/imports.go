package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v3"

	"rolematch/internal/importer"
	"rolematch/internal/models"
	"rolematch/internal/validation"
)

// TableImporter standardizes an uploaded CSV table.
type TableImporter interface {
	Import(ctx context.Context, r io.Reader, opts importer.Options) (*importer.Report, error)
}

// ImportHandler handles CSV imports via JSON API.
type ImportHandler struct {
	importer TableImporter
}

// NewImportHandler creates a new API import handler.
func NewImportHandler(im TableImporter) *ImportHandler {
	return &ImportHandler{importer: im}
}

// Create imports a CSV sent either as the raw body or as a multipart "file" field.
// Context tags for auto-confirmed mappings come from the query string.
func (h *ImportHandler) Create(c fiber.Ctx) error {
	tags := models.ContextTags{
		Industry:    strings.TrimSpace(c.Query("industry")),
		Region:      strings.TrimSpace(c.Query("region")),
		CompanySize: strings.TrimSpace(c.Query("company_size")),
	}
	if valid, msg := validation.ValidateTags(tags); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	opts := importer.Options{Tags: tags}
	switch c.Query("delimiter") {
	case "":
	case ",":
		opts.Comma = ','
	case ";":
		opts.Comma = ';'
	case "tab", "\t":
		opts.Comma = '\t'
	default:
		return jsonError(c, fiber.StatusBadRequest, "delimiter must be one of: , ; tab")
	}

	body, closeBody, err := uploadReader(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "missing upload: "+err.Error())
	}
	defer closeBody()

	report, err := h.importer.Import(c.Context(), body, opts)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrEmptyFile), errors.Is(err, importer.ErrNoTitleColumn):
			return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, importer.ErrTooManyRows):
			return jsonError(c, fiber.StatusRequestEntityTooLarge, err.Error())
		default:
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	return jsonSuccess(c, report)
}

func uploadReader(c fiber.Ctx) (io.Reader, func(), error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return bytes.NewReader(c.Body()), func() {}, nil
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return nil, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
