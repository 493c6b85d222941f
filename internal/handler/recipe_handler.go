package handler

import (
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RecipeHandler struct {
	service service.RecipeService
}

func NewRecipeHandler(s service.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: s}
}

func (h *RecipeHandler) CreateRecipe(c *fiber.Ctx) error {
	var req service.CreateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	recipe, err := h.service.CreateRecipe(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Recipe created", "data": recipe})
}

func (h *RecipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid recipe ID"})
	}
	var req service.UpdateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	recipe, err := h.service.UpdateRecipe(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Recipe updated", "data": recipe})
}

func (h *RecipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid recipe ID"})
	}
	if err := h.service.DeleteRecipe(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Recipe deleted"})
}

func (h *RecipeHandler) GetRecipes(c *fiber.Ctx) error {
	return c.JSON(h.service.GetRecipes())
}

func (h *RecipeHandler) GetRecipe(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid recipe ID"})
	}
	recipe, err := h.service.GetRecipe(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(recipe)
}
