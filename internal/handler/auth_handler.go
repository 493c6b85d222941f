package handler

import (
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Login successful", "data": resp})
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID := getUserUUID(c)
	profile, err := h.service.GetProfile(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}

func (h *AuthHandler) GetUsers(c *fiber.Ctx) error {
	return c.JSON(h.service.GetUsers())
}
