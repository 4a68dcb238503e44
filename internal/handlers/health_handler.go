package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/readyreserve/chatbot-be/internal/core/llm"
)

const serviceName = "ReadyReserve AI Ready Assistant"

type HealthHandler struct {
	provider llm.Provider
}

func NewHealthHandler(provider llm.Provider) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// Root godoc
// @Summary Service banner
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": serviceName + " Service",
		"version": "1.0.0",
		"status":  "active",
	})
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "healthy",
		"service":  serviceName,
		"provider": h.provider.GetProviderName(),
	})
}
