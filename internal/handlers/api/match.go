package api

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"rolematch/internal/models"
	"rolematch/internal/validation"
)

// RoleMatcher resolves raw titles to canonical roles.
type RoleMatcher interface {
	MatchRoleTitle(ctx context.Context, title string) models.MatchResult
	MatchBatch(ctx context.Context, titles []string) map[string]models.MatchResult
}

// MatchHandler handles role title matching via JSON API.
type MatchHandler struct {
	matcher RoleMatcher
}

// NewMatchHandler creates a new API match handler.
func NewMatchHandler(matcher RoleMatcher) *MatchHandler {
	return &MatchHandler{matcher: matcher}
}

// Match resolves a single title.
func (h *MatchHandler) Match(c fiber.Ctx) error {
	var body struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateTitle(body.Title); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	return jsonSuccess(c, h.matcher.MatchRoleTitle(c.Context(), body.Title))
}

// Batch resolves many titles. The response is keyed by input title.
func (h *MatchHandler) Batch(c fiber.Ctx) error {
	var body struct {
		Titles []string `json:"titles"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateTitles(body.Titles); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	return jsonSuccess(c, h.matcher.MatchBatch(c.Context(), body.Titles))
}
