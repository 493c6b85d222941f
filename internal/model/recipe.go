package model

import "github.com/google/uuid"

type RecipeIngredient struct {
	ID              uuid.UUID `json:"id"`
	InventoryItemID uuid.UUID `json:"inventory_item_id"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	Notes           string    `json:"notes,omitempty"`
}

// Recipe links a product to its ingredient list. TotalCost and
// CostPerServing are derived from current inventory unit costs and
// recomputed whenever ingredients or servings change.
type Recipe struct {
	BaseModel
	ProductID      uuid.UUID          `json:"product_id"`
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	Servings       int                `json:"servings"`
	PrepTime       int                `json:"prep_time"` // minutes
	CookTime       int                `json:"cook_time"` // minutes
	Difficulty     string             `json:"difficulty"`
	Instructions   []string           `json:"instructions"`
	Ingredients    []RecipeIngredient `json:"ingredients"`
	TotalCost      float64            `json:"total_cost"`
	CostPerServing float64            `json:"cost_per_serving"`
}
