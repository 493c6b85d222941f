package handler

import (
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BillingHandler struct {
	service service.BillingService
}

func NewBillingHandler(s service.BillingService) *BillingHandler {
	return &BillingHandler{service: s}
}

func (h *BillingHandler) CreateInvoice(c *fiber.Ctx) error {
	var req service.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	invoice, err := h.service.CreateInvoice(&req, getUserUUID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Invoice created", "data": invoice})
}

func (h *BillingHandler) UpdateInvoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}
	var req service.UpdateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	invoice, err := h.service.UpdateInvoice(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Invoice updated", "data": invoice})
}

func (h *BillingHandler) GetInvoices(c *fiber.Ctx) error {
	return c.JSON(h.service.GetInvoices())
}

func (h *BillingHandler) GetInvoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}
	invoice, err := h.service.GetInvoice(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(invoice)
}

func (h *BillingHandler) ProcessPayment(c *fiber.Ctx) error {
	var req service.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	invoice, payment, err := h.service.ProcessPayment(&req, getUserUUID(c), getUserName(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Payment processed",
		"data": fiber.Map{
			"invoice": invoice,
			"payment": payment,
		},
	})
}

func (h *BillingHandler) GetPayments(c *fiber.Ctx) error {
	return c.JSON(h.service.GetPayments())
}
