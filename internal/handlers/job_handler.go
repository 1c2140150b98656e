package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mathaes-33/Hanover-Helpers/internal/middleware"
	"github.com/mathaes-33/Hanover-Helpers/internal/models"
	"github.com/mathaes-33/Hanover-Helpers/internal/services"
)

// JobHandler handles HTTP requests for jobs.
type JobHandler struct {
	service  *services.BoardService
	validate *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service *services.BoardService) *JobHandler {
	return &JobHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the job routes. Reads are public; mutations go on
// the authenticated router.
func (h *JobHandler) RegisterRoutes(public fiber.Router, protected fiber.Router) {
	public.Get("/jobs", h.HandleGetJobs)
	public.Get("/jobs/:id", h.HandleGetJobByID)

	protected.Post("/jobs", h.HandleCreateJob)
	protected.Post("/jobs/:id/interest", h.HandleExpressInterest)
	protected.Post("/jobs/:id/award", h.HandleAwardJob)
}

// HandleGetJobs retrieves all jobs, newest first.
func (h *JobHandler) HandleGetJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListJobs()
	if err != nil {
		log.Printf("Error getting all jobs: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve jobs",
			"error":   err.Error(),
		})
	}
	return c.JSON(jobs)
}

// HandleGetJobByID retrieves a single job by its ID.
func (h *JobHandler) HandleGetJobByID(c *fiber.Ctx) error {
	jobID := c.Params("id")
	job, err := h.service.GetJob(jobID)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Job not found",
			})
		}
		log.Printf("Error getting job by ID %s: %v", jobID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve job",
			"error":   err.Error(),
		})
	}
	return c.JSON(job)
}

// NewJobRequest represents the request body for posting a job.
type NewJobRequest struct {
	Title       string             `json:"title" validate:"required,max=50"`
	Description string             `json:"description" validate:"required"`
	Category    models.JobCategory `json:"category" validate:"required,oneof='Lawn Care' 'Handyman' 'Moving Help' 'Errands' 'Babysitting' 'Cleaning' 'Pet Care' 'Snow Removal'"`
	Location    string             `json:"location" validate:"omitempty,max=100"`
	Budget      models.Budget      `json:"budget"`
	Date        string             `json:"date" validate:"required"`
	IsUrgent    bool               `json:"isUrgent"`
}

// jobFieldMessage maps a failed validation to the message shown next to the
// field, matching the post-job form.
func jobFieldMessage(e validator.FieldError) (field, message string) {
	switch e.Field() {
	case "Title":
		if e.Tag() == "max" {
			return "title", "Title must be 50 characters or less."
		}
		return "title", "Job title is required."
	case "Description":
		return "description", "Job description is required."
	case "Category":
		return "category", "Please select a job category."
	case "Type":
		return "budgetType", "Please select a budget type."
	case "Amount":
		return "amount", "Please enter a valid, positive amount."
	case "Date":
		return "date", "Date is required."
	default:
		return e.Field(), "Invalid value."
	}
}

// HandleCreateJob creates a new job posted by the authenticated user.
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req NewJobRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing job request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	// The post-job form defaults these, so the API does too.
	if req.Budget.Type == "" {
		req.Budget.Type = models.BudgetFixed
	}
	if req.Location == "" {
		req.Location = "Hanover"
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			field, message := jobFieldMessage(e)
			errorMessages[field] = message
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	job, err := h.service.AddJob(middleware.UserID(c), services.NewJobInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Budget:      req.Budget,
		Date:        req.Date,
		IsUrgent:    req.IsUrgent,
	})
	if err != nil {
		log.Printf("Error creating job: %v", err)
		return boardError(c, err, "Could not create job")
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleExpressInterest adds the authenticated user to the job's applicant
// list. Applying again after the first time has no additional effect.
func (h *JobHandler) HandleExpressInterest(c *fiber.Ctx) error {
	jobID := c.Params("id")
	if err := h.service.ExpressInterest(middleware.UserID(c), jobID); err != nil {
		log.Printf("Error expressing interest in job %s: %v", jobID, err)
		return boardError(c, err, "Could not express interest")
	}
	return c.JSON(fiber.Map{
		"message": "Interest recorded",
	})
}

// AwardRequest represents the request body for awarding a job.
type AwardRequest struct {
	HelperID string `json:"helperId" validate:"required"`
}

// HandleAwardJob assigns the job to the chosen helper.
func (h *JobHandler) HandleAwardJob(c *fiber.Ctx) error {
	jobID := c.Params("id")

	var req AwardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "helperId is required.",
		})
	}

	if err := h.service.AwardJob(middleware.UserID(c), jobID, req.HelperID); err != nil {
		log.Printf("Error awarding job %s to %s: %v", jobID, req.HelperID, err)
		return boardError(c, err, "Could not award job")
	}
	return c.JSON(fiber.Map{
		"message": "Job awarded",
	})
}

// boardError translates BoardService errors into HTTP responses.
func boardError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNotLoggedIn):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "You must be logged in to do that.",
		})
	case errors.Is(err, services.ErrJobNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Job not found",
		})
	case errors.Is(err, services.ErrNoAssignedHelper):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cannot find the helper for this job.",
		})
	case errors.Is(err, services.ErrNotJobPoster):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Only the job poster can do that.",
		})
	case errors.Is(err, services.ErrJobNotOpen):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "This job is no longer open.",
		})
	case errors.Is(err, services.ErrOwnJob):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "You cannot apply to your own job.",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fallback,
			"error":   err.Error(),
		})
	}
}
