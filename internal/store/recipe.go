package store

import (
	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

func (s *Store) AddRecipe(recipe model.Recipe) model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range recipe.Ingredients {
		if recipe.Ingredients[i].ID == uuid.Nil {
			recipe.Ingredients[i].ID = uuid.New()
		}
	}
	recipe.Stamp(s.now())
	s.recostRecipeLocked(&recipe)
	s.recipes = append(s.recipes, recipe)
	return recipe
}

type RecipePatch struct {
	Name         *string
	Description  *string
	Servings     *int
	PrepTime     *int
	CookTime     *int
	Difficulty   *string
	Instructions *[]string
	Ingredients  *[]model.RecipeIngredient
}

// UpdateRecipe merges the patch and re-derives the costing whenever the
// ingredient list or the serving count changed.
func (s *Store) UpdateRecipe(id uuid.UUID, patch RecipePatch) (model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recipes {
		if s.recipes[i].ID != id {
			continue
		}
		recipe := &s.recipes[i]
		if patch.Name != nil {
			recipe.Name = *patch.Name
		}
		if patch.Description != nil {
			recipe.Description = *patch.Description
		}
		if patch.Servings != nil {
			recipe.Servings = *patch.Servings
		}
		if patch.PrepTime != nil {
			recipe.PrepTime = *patch.PrepTime
		}
		if patch.CookTime != nil {
			recipe.CookTime = *patch.CookTime
		}
		if patch.Difficulty != nil {
			recipe.Difficulty = *patch.Difficulty
		}
		if patch.Instructions != nil {
			recipe.Instructions = *patch.Instructions
		}
		if patch.Ingredients != nil {
			ingredients := *patch.Ingredients
			for j := range ingredients {
				if ingredients[j].ID == uuid.Nil {
					ingredients[j].ID = uuid.New()
				}
			}
			recipe.Ingredients = ingredients
		}
		if patch.Ingredients != nil || patch.Servings != nil {
			s.recostRecipeLocked(recipe)
		}
		recipe.Touch(s.now())
		return *recipe, nil
	}
	return model.Recipe{}, ErrRecipeNotFound
}

func (s *Store) DeleteRecipe(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			return nil
		}
	}
	return ErrRecipeNotFound
}

// recostRecipeLocked derives total and per-serving cost from the current
// inventory unit costs. Ingredients referencing a deleted inventory item
// contribute nothing.
func (s *Store) recostRecipeLocked(recipe *model.Recipe) {
	total := 0.0
	for _, ing := range recipe.Ingredients {
		if item := s.findInventoryItemLocked(ing.InventoryItemID); item != nil {
			total += ing.Quantity * item.UnitCost
		}
	}
	recipe.TotalCost = total
	recipe.CostPerServing = 0
	if recipe.Servings > 0 {
		recipe.CostPerServing = total / float64(recipe.Servings)
	}
}

func (s *Store) Recipes() []model.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Recipe, len(s.recipes))
	for i := range s.recipes {
		out[i] = s.recipes[i]
		out[i].Ingredients = make([]model.RecipeIngredient, len(s.recipes[i].Ingredients))
		copy(out[i].Ingredients, s.recipes[i].Ingredients)
	}
	return out
}

func (s *Store) Recipe(id uuid.UUID) (model.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			out := s.recipes[i]
			out.Ingredients = make([]model.RecipeIngredient, len(s.recipes[i].Ingredients))
			copy(out.Ingredients, s.recipes[i].Ingredients)
			return out, nil
		}
	}
	return model.Recipe{}, ErrRecipeNotFound
}
