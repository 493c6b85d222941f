package store

import (
	"testing"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

func addCostedItem(t *testing.T, s *Store, name string, unitCost float64) model.InventoryItem {
	t.Helper()
	return s.AddInventoryItem(model.InventoryItem{
		Name:         name,
		Unit:         "kg",
		CurrentStock: 10,
		MinStock:     1,
		MaxStock:     30,
		UnitCost:     unitCost,
		Category:     model.CategoryIngredients,
	})
}

func TestAddRecipeDerivesCost(t *testing.T) {
	s := newTestStore()
	flour := addCostedItem(t, s, "Flour", 2.50)
	mozzarella := addCostedItem(t, s, "Mozzarella", 12.00)
	tomatoes := addCostedItem(t, s, "Tomatoes", 3.50)
	pizza := addTestProduct(t, s, "Margherita", 18.50, 15)

	recipe := s.AddRecipe(model.Recipe{
		ProductID: pizza.ID,
		Name:      "Margherita",
		Servings:  2,
		Ingredients: []model.RecipeIngredient{
			{InventoryItemID: flour.ID, Quantity: 0.3, Unit: "kg"},
			{InventoryItemID: mozzarella.ID, Quantity: 0.15, Unit: "kg"},
			{InventoryItemID: tomatoes.ID, Quantity: 0.1, Unit: "kg"},
		},
	})

	// 0.3*2.50 + 0.15*12.00 + 0.1*3.50 = 2.90
	if !almostEqual(recipe.TotalCost, 2.90) {
		t.Errorf("TotalCost = %g, want 2.90", recipe.TotalCost)
	}
	if !almostEqual(recipe.CostPerServing, 1.45) {
		t.Errorf("CostPerServing = %g, want 1.45", recipe.CostPerServing)
	}
	for _, ing := range recipe.Ingredients {
		if ing.ID == uuid.Nil {
			t.Errorf("ingredient left without an ID")
		}
	}
}

func TestUpdateRecipeRecosts(t *testing.T) {
	s := newTestStore()
	flour := addCostedItem(t, s, "Flour", 2.00)
	pizza := addTestProduct(t, s, "Margherita", 18.50, 15)
	recipe := s.AddRecipe(model.Recipe{
		ProductID: pizza.ID,
		Name:      "Margherita",
		Servings:  1,
		Ingredients: []model.RecipeIngredient{
			{InventoryItemID: flour.ID, Quantity: 1, Unit: "kg"},
		},
	})
	if !almostEqual(recipe.TotalCost, 2.00) {
		t.Fatalf("TotalCost = %g, want 2.00", recipe.TotalCost)
	}

	servings := 4
	updated, err := s.UpdateRecipe(recipe.ID, RecipePatch{Servings: &servings})
	if err != nil {
		t.Fatalf("UpdateRecipe: %v", err)
	}
	if !almostEqual(updated.CostPerServing, 0.50) {
		t.Errorf("CostPerServing = %g, want 0.50", updated.CostPerServing)
	}

	ingredients := []model.RecipeIngredient{
		{InventoryItemID: flour.ID, Quantity: 3, Unit: "kg"},
	}
	updated, err = s.UpdateRecipe(recipe.ID, RecipePatch{Ingredients: &ingredients})
	if err != nil {
		t.Fatalf("UpdateRecipe: %v", err)
	}
	if !almostEqual(updated.TotalCost, 6.00) || !almostEqual(updated.CostPerServing, 1.50) {
		t.Errorf("cost = %g/%g, want 6.00/1.50", updated.TotalCost, updated.CostPerServing)
	}
}

func TestRecipeIgnoresMissingInventoryItem(t *testing.T) {
	s := newTestStore()
	flour := addCostedItem(t, s, "Flour", 2.00)
	pizza := addTestProduct(t, s, "Margherita", 18.50, 15)

	recipe := s.AddRecipe(model.Recipe{
		ProductID: pizza.ID,
		Name:      "Margherita",
		Servings:  1,
		Ingredients: []model.RecipeIngredient{
			{InventoryItemID: flour.ID, Quantity: 1, Unit: "kg"},
			{InventoryItemID: uuid.New(), Quantity: 5, Unit: "kg"},
		},
	})
	if !almostEqual(recipe.TotalCost, 2.00) {
		t.Errorf("unknown ingredient contributed to cost: %g", recipe.TotalCost)
	}
}

func TestDeleteInventoryItemStripsRecipes(t *testing.T) {
	s := newTestStore()
	flour := addCostedItem(t, s, "Flour", 2.00)
	cheese := addCostedItem(t, s, "Cheese", 8.00)
	pizza := addTestProduct(t, s, "Margherita", 18.50, 15)
	recipe := s.AddRecipe(model.Recipe{
		ProductID: pizza.ID,
		Name:      "Margherita",
		Servings:  1,
		Ingredients: []model.RecipeIngredient{
			{InventoryItemID: flour.ID, Quantity: 1, Unit: "kg"},
			{InventoryItemID: cheese.ID, Quantity: 0.5, Unit: "kg"},
		},
	})

	if err := s.DeleteInventoryItem(cheese.ID); err != nil {
		t.Fatalf("DeleteInventoryItem: %v", err)
	}

	got, err := s.Recipe(recipe.ID)
	if err != nil {
		t.Fatalf("Recipe: %v", err)
	}
	if len(got.Ingredients) != 1 || got.Ingredients[0].InventoryItemID != flour.ID {
		t.Errorf("deleted item still referenced: %+v", got.Ingredients)
	}
	if !almostEqual(got.TotalCost, 2.00) {
		t.Errorf("TotalCost = %g after strip, want 2.00", got.TotalCost)
	}
}

func TestDeleteRecipe(t *testing.T) {
	s := newTestStore()
	pizza := addTestProduct(t, s, "Margherita", 18.50, 15)
	recipe := s.AddRecipe(model.Recipe{ProductID: pizza.ID, Name: "Margherita", Servings: 1})

	if err := s.DeleteRecipe(recipe.ID); err != nil {
		t.Fatalf("DeleteRecipe: %v", err)
	}
	if _, err := s.Recipe(recipe.ID); err != ErrRecipeNotFound {
		t.Errorf("err = %v, want ErrRecipeNotFound", err)
	}
	if err := s.DeleteRecipe(recipe.ID); err != ErrRecipeNotFound {
		t.Errorf("double delete err = %v, want ErrRecipeNotFound", err)
	}
}
