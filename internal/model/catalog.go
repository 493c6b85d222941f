package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	BaseModel
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	IsActive    bool   `json:"is_active"`
}

type Product struct {
	BaseModel
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	CategoryID  uuid.UUID  `json:"category_id"`
	GroupID     *uuid.UUID `json:"group_id,omitempty"`
	SubgroupID  *uuid.UUID `json:"subgroup_id,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	IsActive    bool       `json:"is_active"`

	// PreparationTime in minutes. Items on products above one minute go to
	// the kitchen ticket queue.
	PreparationTime int      `json:"preparation_time"`
	Ingredients     []string `json:"ingredients"`
	Allergens       []string `json:"allergens"`
}

// NeedsPreparation reports whether an ordered item on this product belongs
// on a kitchen ticket.
func (p *Product) NeedsPreparation() bool {
	return p.PreparationTime > 1
}

type ProductGroup struct {
	BaseModel
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
	IsActive    bool   `json:"is_active"`
}

type ProductSubgroup struct {
	BaseModel
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	GroupID     uuid.UUID `json:"group_id"`
	IsActive    bool      `json:"is_active"`
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Discount struct {
	BaseModel
	Name               string       `json:"name"`
	Type               DiscountType `json:"type"`
	Value              float64      `json:"value"`
	IsActive           bool         `json:"is_active"`
	ValidFrom          time.Time    `json:"valid_from"`
	ValidTo            time.Time    `json:"valid_to"`
	ApplicableProducts []uuid.UUID  `json:"applicable_products,omitempty"` // empty means all products
	MinimumAmount      float64      `json:"minimum_amount,omitempty"`
}
