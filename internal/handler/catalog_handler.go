package handler

import (
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// Categories

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	category, err := h.service.CreateCategory(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}
	var req service.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	category, err := h.service.UpdateCategory(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category updated", "data": category})
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}
	if err := h.service.DeleteCategory(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.GetCategories())
}

// Products

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	product, err := h.service.CreateProduct(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	product, err := h.service.UpdateProduct(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": product})
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	if err := h.service.DeleteProduct(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.GetProducts())
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	product, err := h.service.GetProduct(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// Groups and subgroups

func (h *CatalogHandler) CreateGroup(c *fiber.Ctx) error {
	var req service.GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	group, err := h.service.CreateGroup(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Group created", "data": group})
}

func (h *CatalogHandler) UpdateGroup(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid group ID"})
	}
	var req service.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	group, err := h.service.UpdateGroup(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Group updated", "data": group})
}

func (h *CatalogHandler) DeleteGroup(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid group ID"})
	}
	if err := h.service.DeleteGroup(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Group deleted"})
}

func (h *CatalogHandler) GetGroups(c *fiber.Ctx) error {
	return c.JSON(h.service.GetGroups())
}

func (h *CatalogHandler) CreateSubgroup(c *fiber.Ctx) error {
	var req service.SubgroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	subgroup, err := h.service.CreateSubgroup(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Subgroup created", "data": subgroup})
}

func (h *CatalogHandler) UpdateSubgroup(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subgroup ID"})
	}
	var req service.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	subgroup, err := h.service.UpdateSubgroup(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Subgroup updated", "data": subgroup})
}

func (h *CatalogHandler) DeleteSubgroup(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subgroup ID"})
	}
	if err := h.service.DeleteSubgroup(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Subgroup deleted"})
}

func (h *CatalogHandler) GetSubgroups(c *fiber.Ctx) error {
	return c.JSON(h.service.GetSubgroups())
}

// Discounts

func (h *CatalogHandler) CreateDiscount(c *fiber.Ctx) error {
	var req service.DiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	discount, err := h.service.CreateDiscount(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Discount created", "data": discount})
}

func (h *CatalogHandler) UpdateDiscount(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid discount ID"})
	}
	var req service.UpdateDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	discount, err := h.service.UpdateDiscount(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Discount updated", "data": discount})
}

func (h *CatalogHandler) DeleteDiscount(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid discount ID"})
	}
	if err := h.service.DeleteDiscount(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Discount deleted"})
}

func (h *CatalogHandler) GetDiscounts(c *fiber.Ctx) error {
	return c.JSON(h.service.GetDiscounts())
}
