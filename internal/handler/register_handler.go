package handler

import (
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RegisterHandler struct {
	service service.RegisterService
}

func NewRegisterHandler(s service.RegisterService) *RegisterHandler {
	return &RegisterHandler{service: s}
}

func (h *RegisterHandler) OpenRegister(c *fiber.Ctx) error {
	var req service.OpenRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	register, err := h.service.OpenRegister(getUserUUID(c), &req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Register opened", "data": register})
}

func (h *RegisterHandler) CloseRegister(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid register ID"})
	}
	var req service.CloseRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	register, err := h.service.CloseRegister(id, &req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Register closed", "data": register})
}

func (h *RegisterHandler) GetRegisters(c *fiber.Ctx) error {
	return c.JSON(h.service.GetRegisters())
}

func (h *RegisterHandler) GetRegister(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid register ID"})
	}
	register, err := h.service.GetRegister(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(register)
}

func (h *RegisterHandler) GetRegisterSummary(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid register ID"})
	}
	summary, err := h.service.GetRegisterSummary(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}
