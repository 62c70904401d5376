package api

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"

	"rolematch/internal/models"
	"rolematch/internal/validation"
)

// FeedbackRecorder accepts confirmations, verifications and reports.
// Calls return immediately; persistence happens in the background.
type FeedbackRecorder interface {
	ConfirmMapping(originalTitle, standardizedTitle string, seniority *models.SeniorityLevel, roleFamily *string, tags models.ContextTags)
	MarkVerified(originalTitle string)
	MarkReported(originalTitle string)
}

// MappingHandler handles feedback on role mappings via JSON API.
type MappingHandler struct {
	feedback FeedbackRecorder
}

// NewMappingHandler creates a new API mapping handler.
func NewMappingHandler(feedback FeedbackRecorder) *MappingHandler {
	return &MappingHandler{feedback: feedback}
}

// Confirm records that a user accepted a mapping.
func (h *MappingHandler) Confirm(c fiber.Ctx) error {
	var body struct {
		OriginalTitle     string `json:"original_title"`
		StandardizedTitle string `json:"standardized_title"`
		SeniorityLevel    string `json:"seniority_level"`
		RoleFamily        string `json:"role_family"`
		Industry          string `json:"industry"`
		Region            string `json:"region"`
		CompanySize       string `json:"company_size"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateRequiredTitle(body.OriginalTitle); !valid {
		return jsonError(c, fiber.StatusBadRequest, "original_title: "+msg)
	}
	if valid, msg := validation.ValidateRequiredTitle(body.StandardizedTitle); !valid {
		return jsonError(c, fiber.StatusBadRequest, "standardized_title: "+msg)
	}
	if valid, msg := validation.ValidateSeniority(body.SeniorityLevel); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	tags := models.ContextTags{
		Industry:    strings.TrimSpace(body.Industry),
		Region:      strings.TrimSpace(body.Region),
		CompanySize: strings.TrimSpace(body.CompanySize),
	}
	if valid, msg := validation.ValidateTags(tags); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	seniority, _ := models.SeniorityPtr(body.SeniorityLevel)
	var roleFamily *string
	if rf := strings.TrimSpace(body.RoleFamily); rf != "" {
		roleFamily = &rf
	}

	h.feedback.ConfirmMapping(body.OriginalTitle, strings.TrimSpace(body.StandardizedTitle), seniority, roleFamily, tags)

	return jsonAccepted(c, models.FeedbackAcceptedResponse{
		OriginalTitle: body.OriginalTitle,
		Action:        models.FeedbackConfirm,
	})
}

// Verify records that a user re-affirmed an existing mapping.
func (h *MappingHandler) Verify(c fiber.Ctx) error {
	return h.mark(c, models.FeedbackVerify, h.feedback.MarkVerified)
}

// Report records that a user flagged an existing mapping as wrong.
func (h *MappingHandler) Report(c fiber.Ctx) error {
	return h.mark(c, models.FeedbackReport, h.feedback.MarkReported)
}

func (h *MappingHandler) mark(c fiber.Ctx, action string, record func(string)) error {
	var body struct {
		OriginalTitle string `json:"original_title"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateRequiredTitle(body.OriginalTitle); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	record(body.OriginalTitle)

	return jsonAccepted(c, models.FeedbackAcceptedResponse{
		OriginalTitle: body.OriginalTitle,
		Action:        action,
	})
}
