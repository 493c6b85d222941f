package handler

import (
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TableHandler struct {
	service service.TableService
}

func NewTableHandler(s service.TableService) *TableHandler {
	return &TableHandler{service: s}
}

func (h *TableHandler) CreateTable(c *fiber.Ctx) error {
	var req service.CreateTableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	table, err := h.service.CreateTable(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Table created", "data": table})
}

func (h *TableHandler) UpdateTable(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid table ID"})
	}
	var req service.UpdateTableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	table, err := h.service.UpdateTable(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Table updated", "data": table})
}

func (h *TableHandler) UpdateTableStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid table ID"})
	}
	var req service.TableStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	table, err := h.service.UpdateTableStatus(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Table status updated", "data": table})
}

func (h *TableHandler) DeleteTable(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid table ID"})
	}
	if err := h.service.DeleteTable(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Table deleted"})
}

func (h *TableHandler) GetTables(c *fiber.Ctx) error {
	return c.JSON(h.service.GetTables())
}

func (h *TableHandler) GetTable(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid table ID"})
	}
	table, err := h.service.GetTable(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(table)
}
