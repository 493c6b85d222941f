package handler

import (
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var req service.CreateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	item, err := h.service.CreateItem(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Inventory item created", "data": item})
}

func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}
	var req service.UpdateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	item, err := h.service.UpdateItem(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Inventory item updated", "data": item})
}

func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}
	if err := h.service.DeleteItem(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Inventory item deleted"})
}

func (h *InventoryHandler) GetItems(c *fiber.Ctx) error {
	return c.JSON(h.service.GetItems())
}

func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}
	item, err := h.service.GetItem(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

func (h *InventoryHandler) CreateTransaction(c *fiber.Ctx) error {
	var req service.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	tx, err := h.service.RecordTransaction(&req, getUserID(c), getUserName(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": tx})
}

func (h *InventoryHandler) GetTransactions(c *fiber.Ctx) error {
	return c.JSON(h.service.GetTransactions())
}

// CheckStockLevels re-evaluates every item and returns the alerts raised
// by this pass.
func (h *InventoryHandler) CheckStockLevels(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckStockLevels())
}

func (h *InventoryHandler) GetAlerts(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAlerts())
}

func (h *InventoryHandler) MarkAlertRead(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid alert ID"})
	}
	alert, err := h.service.MarkAlertRead(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Alert marked as read", "data": alert})
}
