package handler

import (
	"errors"

	"go-restaurant-pos/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helper untuk ambil User Info dari JWT Context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

// getUserUUID returns the authenticated user id as a UUID, uuid.Nil when
// the route is unprotected.
func getUserUUID(c *fiber.Ctx) uuid.UUID {
	id, err := uuid.Parse(getUserID(c))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Helper untuk parse UUID dari string
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

var notFoundErrs = []error{
	store.ErrCategoryNotFound,
	store.ErrProductNotFound,
	store.ErrGroupNotFound,
	store.ErrSubgroupNotFound,
	store.ErrDiscountNotFound,
	store.ErrTableNotFound,
	store.ErrOrderNotFound,
	store.ErrOrderItemNotFound,
	store.ErrTicketNotFound,
	store.ErrInventoryItemNotFound,
	store.ErrAlertNotFound,
	store.ErrRecipeNotFound,
	store.ErrInvoiceNotFound,
	store.ErrRegisterNotFound,
	store.ErrUserNotFound,
}

var conflictErrs = []error{
	store.ErrInvoiceExists,
	store.ErrRegisterAlreadyOpen,
	store.ErrRegisterNotOpen,
	store.ErrTableInUse,
}

// fail maps store sentinel errors onto HTTP statuses: 404 for missing
// entities, 409 for state conflicts, 400 for everything else.
func fail(c *fiber.Ctx, err error) error {
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
	}
	for _, target := range conflictErrs {
		if errors.Is(err, target) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.Status(400).JSON(fiber.Map{"error": err.Error()})
}
