package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mathaes-33/Hanover-Helpers/internal/middleware"
	"github.com/mathaes-33/Hanover-Helpers/internal/services"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	service  *services.BoardService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.BoardService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the review routes with the Fiber app. Reviews can
// only be left by authenticated users.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/reviews", h.HandleCreateReview)
}

// NewReviewRequest represents the request body for leaving a review.
type NewReviewRequest struct {
	JobID   string `json:"jobId" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// HandleCreateReview records a review for the helper assigned to a job.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var req NewReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			switch e.Field() {
			case "JobID":
				errorMessages["jobId"] = "Job is required."
			case "Rating":
				errorMessages["rating"] = "Rating must be between 1 and 5."
			case "Comment":
				errorMessages["comment"] = "Comment is required."
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	review, err := h.service.AddReview(middleware.UserID(c), services.NewReviewInput{
		JobID:   req.JobID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		log.Printf("Error creating review for job %s: %v", req.JobID, err)
		return boardError(c, err, "Could not create review")
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}
