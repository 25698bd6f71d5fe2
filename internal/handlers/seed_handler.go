package handlers

import (
	"log"

	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SeedHandler exposes the catalog reseed endpoint.
type SeedHandler struct {
	service *services.SeedService
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(service *services.SeedService) *SeedHandler {
	return &SeedHandler{
		service: service,
	}
}

// RegisterRoutes registers the seed route with the Fiber app.
func (h *SeedHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/seed", h.HandleSeed)
}

// HandleSeed wipes the catalog and repopulates it from the fixture set.
func (h *SeedHandler) HandleSeed(c *fiber.Ctx) error {
	if err := h.service.Run(); err != nil {
		log.Printf("Seed failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Seed failed",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Seed executed successfully",
	})
}
