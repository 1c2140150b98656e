package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mathaes-33/Hanover-Helpers/internal/services"
)

// HelperHandler handles HTTP requests for helper profiles.
type HelperHandler struct {
	service *services.BoardService
}

// NewHelperHandler creates a new HelperHandler.
func NewHelperHandler(service *services.BoardService) *HelperHandler {
	return &HelperHandler{
		service: service,
	}
}

// RegisterRoutes registers the helper routes with the Fiber app.
func (h *HelperHandler) RegisterRoutes(router fiber.Router) {
	helperRoutes := router.Group("/helpers")
	helperRoutes.Get("/", h.HandleGetHelpers)
	helperRoutes.Get("/:id", h.HandleGetHelperByID)
}

// HandleGetHelpers retrieves every user with their derived statistics.
func (h *HelperHandler) HandleGetHelpers(c *fiber.Ctx) error {
	helpers, err := h.service.Helpers()
	if err != nil {
		log.Printf("Error getting helpers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve helpers",
			"error":   err.Error(),
		})
	}
	return c.JSON(helpers)
}

// HandleGetHelperByID retrieves one user with their derived statistics.
func (h *HelperHandler) HandleGetHelperByID(c *fiber.Ctx) error {
	helperID := c.Params("id")
	helper, err := h.service.GetHelper(helperID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Helper not found",
			})
		}
		log.Printf("Error getting helper by ID %s: %v", helperID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve helper",
			"error":   err.Error(),
		})
	}
	return c.JSON(helper)
}
