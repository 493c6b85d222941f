package handler

import (
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.CreateOrder(&req, getUserID(c), getUserName(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": order})
}

func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	var req service.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.UpdateOrder(id, &req, getUserID(c), getUserName(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Order updated", "data": order})
}

func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	if err := h.service.DeleteOrder(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	return c.JSON(h.service.GetOrders())
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	order, err := h.service.GetOrder(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) AddOrderItem(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	var req service.OrderItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.AddOrderItem(orderID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Item added", "data": order})
}

func (h *OrderHandler) UpdateOrderItem(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	itemID, err := parseUUID(c.Params("itemId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}
	var req service.UpdateOrderItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.UpdateOrderItem(orderID, itemID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item updated", "data": order})
}

func (h *OrderHandler) RemoveOrderItem(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	itemID, err := parseUUID(c.Params("itemId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	order, err := h.service.RemoveOrderItem(orderID, itemID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item removed", "data": order})
}

func (h *OrderHandler) GetKitchenTickets(c *fiber.Ctx) error {
	return c.JSON(h.service.GetKitchenTickets())
}

func (h *OrderHandler) UpdateKitchenTicket(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ticket ID"})
	}
	var req service.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	ticket, err := h.service.UpdateKitchenTicket(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Ticket updated", "data": ticket})
}
