package service

import (
	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/store"
	"go-restaurant-pos/pkg/validator"

	"github.com/google/uuid"
)

type RecipeIngredientRequest struct {
	InventoryItemID uuid.UUID `json:"inventory_item_id" validate:"uuid_required"`
	Quantity        float64   `json:"quantity" validate:"required,gt=0"`
	Unit            string    `json:"unit" validate:"required"`
	Notes           string    `json:"notes"`
}

type CreateRecipeRequest struct {
	ProductID    uuid.UUID                 `json:"product_id" validate:"uuid_required"`
	Name         string                    `json:"name" validate:"required"`
	Description  string                    `json:"description"`
	Servings     int                       `json:"servings" validate:"required,gt=0"`
	PrepTime     int                       `json:"prep_time" validate:"gte=0"`
	CookTime     int                       `json:"cook_time" validate:"gte=0"`
	Difficulty   string                    `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Instructions []string                  `json:"instructions"`
	Ingredients  []RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
}

type UpdateRecipeRequest struct {
	Name         *string                    `json:"name" validate:"omitempty,min=1"`
	Description  *string                    `json:"description"`
	Servings     *int                       `json:"servings" validate:"omitempty,gt=0"`
	PrepTime     *int                       `json:"prep_time" validate:"omitempty,gte=0"`
	CookTime     *int                       `json:"cook_time" validate:"omitempty,gte=0"`
	Difficulty   *string                    `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Instructions *[]string                  `json:"instructions"`
	Ingredients  *[]RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
}

type RecipeService interface {
	CreateRecipe(req *CreateRecipeRequest) (model.Recipe, error)
	UpdateRecipe(id uuid.UUID, req *UpdateRecipeRequest) (model.Recipe, error)
	DeleteRecipe(id uuid.UUID) error
	GetRecipes() []model.Recipe
	GetRecipe(id uuid.UUID) (model.Recipe, error)
}

type recipeService struct {
	store *store.Store
}

func NewRecipeService(st *store.Store) RecipeService {
	return &recipeService{store: st}
}

func toRecipeIngredients(reqs []RecipeIngredientRequest) []model.RecipeIngredient {
	out := make([]model.RecipeIngredient, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, model.RecipeIngredient{
			InventoryItemID: r.InventoryItemID,
			Quantity:        r.Quantity,
			Unit:            r.Unit,
			Notes:           r.Notes,
		})
	}
	return out
}

func (s *recipeService) CreateRecipe(req *CreateRecipeRequest) (model.Recipe, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Recipe{}, validationError(errs)
	}
	if _, err := s.store.Product(req.ProductID); err != nil {
		return model.Recipe{}, err
	}
	return s.store.AddRecipe(model.Recipe{
		ProductID:    req.ProductID,
		Name:         req.Name,
		Description:  req.Description,
		Servings:     req.Servings,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Difficulty:   req.Difficulty,
		Instructions: req.Instructions,
		Ingredients:  toRecipeIngredients(req.Ingredients),
	}), nil
}

func (s *recipeService) UpdateRecipe(id uuid.UUID, req *UpdateRecipeRequest) (model.Recipe, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Recipe{}, validationError(errs)
	}
	patch := store.RecipePatch{
		Name:         req.Name,
		Description:  req.Description,
		Servings:     req.Servings,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Difficulty:   req.Difficulty,
		Instructions: req.Instructions,
	}
	if req.Ingredients != nil {
		ingredients := toRecipeIngredients(*req.Ingredients)
		patch.Ingredients = &ingredients
	}
	return s.store.UpdateRecipe(id, patch)
}

func (s *recipeService) DeleteRecipe(id uuid.UUID) error {
	return s.store.DeleteRecipe(id)
}

func (s *recipeService) GetRecipes() []model.Recipe {
	return s.store.Recipes()
}

func (s *recipeService) GetRecipe(id uuid.UUID) (model.Recipe, error) {
	return s.store.Recipe(id)
}
