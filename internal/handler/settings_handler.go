package handler

import (
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(s service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: s}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(h.service.GetSettings())
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req service.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	settings, err := h.service.UpdateSettings(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Settings updated", "data": settings})
}
