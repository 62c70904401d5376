package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"rolematch/internal/headers"
	"rolematch/internal/models"
	"rolematch/internal/validation"
)

// HeaderHandler maps spreadsheet headers to canonical fields via JSON API.
type HeaderHandler struct {
	mapper   *headers.Mapper
	synonyms headers.FieldSynonyms
}

// NewHeaderHandler creates a new API header handler. Request-supplied synonyms
// are merged over synonyms.
func NewHeaderHandler(mapper *headers.Mapper, synonyms headers.FieldSynonyms) *HeaderHandler {
	return &HeaderHandler{mapper: mapper, synonyms: synonyms}
}

// Map assigns each header to at most one field.
func (h *HeaderHandler) Map(c fiber.Ctx) error {
	var body struct {
		Headers       []string            `json:"headers"`
		FieldSynonyms map[string][]string `json:"field_synonyms"`
		Replace       bool                `json:"replace_synonyms"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateHeaders(body.Headers); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if valid, msg := validation.ValidateFieldSynonyms(body.FieldSynonyms); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	synonyms := h.synonyms
	switch {
	case body.Replace:
		if len(body.FieldSynonyms) == 0 {
			return jsonError(c, fiber.StatusBadRequest, "field_synonyms is required when replace_synonyms is set")
		}
		synonyms = body.FieldSynonyms
	case len(body.FieldSynonyms) > 0:
		synonyms = synonyms.Merge(body.FieldSynonyms)
	}

	result := h.mapper.MapHeaders(body.Headers, synonyms)
	if result.Unmapped == nil {
		result.Unmapped = []string{}
	}
	return jsonSuccess(c, models.HeaderMappingResponse{
		Mapping:  result.Mapping(),
		Unmapped: result.Unmapped,
	})
}
