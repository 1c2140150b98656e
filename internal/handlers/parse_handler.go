package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/mathaes-33/Hanover-Helpers/internal/ai"
)

// maxPromptLength bounds what we forward to the model provider.
const maxPromptLength = 500

// ParseHandler handles HTTP requests for AI-assisted job parsing.
type ParseHandler struct {
	parser ai.JobParser
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(parser ai.JobParser) *ParseHandler {
	return &ParseHandler{
		parser: parser,
	}
}

// RegisterRoutes registers the parse route with the Fiber app.
func (h *ParseHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/parse-job", h.HandleParseJob)
}

// ParseRequest represents the request body for parsing a job prompt.
type ParseRequest struct {
	Prompt string `json:"prompt"`
}

// HandleParseJob turns a free-text job request into a structured job. The
// prompt is validated before anything is sent upstream.
func (h *ParseHandler) HandleParseJob(c *fiber.Ctx) error {
	var req ParseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Prompt is required.",
		})
	}

	if req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Prompt is required.",
		})
	}
	if len(req.Prompt) > maxPromptLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Prompt is too long. Please keep it under 500 characters.",
		})
	}

	job, err := h.parser.ParseJob(c.Context(), req.Prompt)
	if err != nil {
		log.Printf("Error parsing job prompt: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not understand the job request. Please try rephrasing or post the job manually.",
		})
	}

	return c.JSON(fiber.Map{
		"job": job,
	})
}
