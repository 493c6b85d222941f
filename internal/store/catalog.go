package store

import (
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

// Menu and floor-plan master data. Cascades mirror the dashboard rules:
// deleting a category removes its products, deleting a group removes its
// subgroups.

func (s *Store) AddCategory(c model.Category) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Stamp(s.now())
	s.categories = append(s.categories, c)
	return c
}

type CategoryPatch struct {
	Name        *string
	Description *string
	Color       *string
	IsActive    *bool
}

func (s *Store) UpdateCategory(id uuid.UUID, patch CategoryPatch) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		c := &s.categories[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.Color != nil {
			c.Color = *patch.Color
		}
		if patch.IsActive != nil {
			c.IsActive = *patch.IsActive
		}
		c.Touch(s.now())
		return *c, nil
	}
	return model.Category{}, ErrCategoryNotFound
}

// DeleteCategory removes the category and every product that belongs to it.
func (s *Store) DeleteCategory(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.categories {
		if s.categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCategoryNotFound
	}
	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	kept := s.products[:0]
	for _, p := range s.products {
		if p.CategoryID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	return nil
}

func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) AddProduct(p model.Product) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Stamp(s.now())
	s.products = append(s.products, p)
	return p
}

type ProductPatch struct {
	Name            *string
	Description     *string
	Price           *float64
	CategoryID      *uuid.UUID
	GroupID         *uuid.UUID
	SubgroupID      *uuid.UUID
	ImageURL        *string
	IsActive        *bool
	PreparationTime *int
	Ingredients     *[]string
	Allergens       *[]string
}

func (s *Store) UpdateProduct(id uuid.UUID, patch ProductPatch) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProductLocked(id)
	if p == nil {
		return model.Product{}, ErrProductNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.GroupID != nil {
		p.GroupID = patch.GroupID
	}
	if patch.SubgroupID != nil {
		p.SubgroupID = patch.SubgroupID
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if patch.PreparationTime != nil {
		p.PreparationTime = *patch.PreparationTime
	}
	if patch.Ingredients != nil {
		p.Ingredients = *patch.Ingredients
	}
	if patch.Allergens != nil {
		p.Allergens = *patch.Allergens
	}
	p.Touch(s.now())
	return *p, nil
}

func (s *Store) DeleteProduct(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Product(id uuid.UUID) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p := s.findProductLocked(id); p != nil {
		return *p, nil
	}
	return model.Product{}, ErrProductNotFound
}

func (s *Store) AddProductGroup(g model.ProductGroup) model.ProductGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.Stamp(s.now())
	s.productGroups = append(s.productGroups, g)
	return g
}

type GroupPatch struct {
	Name        *string
	Description *string
	Color       *string
	IsActive    *bool
}

func (s *Store) UpdateProductGroup(id uuid.UUID, patch GroupPatch) (model.ProductGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.productGroups {
		if s.productGroups[i].ID != id {
			continue
		}
		g := &s.productGroups[i]
		if patch.Name != nil {
			g.Name = *patch.Name
		}
		if patch.Description != nil {
			g.Description = *patch.Description
		}
		if patch.Color != nil {
			g.Color = *patch.Color
		}
		if patch.IsActive != nil {
			g.IsActive = *patch.IsActive
		}
		g.Touch(s.now())
		return *g, nil
	}
	return model.ProductGroup{}, ErrGroupNotFound
}

// DeleteProductGroup removes the group and its subgroups.
func (s *Store) DeleteProductGroup(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.productGroups {
		if s.productGroups[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrGroupNotFound
	}
	s.productGroups = append(s.productGroups[:idx], s.productGroups[idx+1:]...)
	kept := s.productSubgroups[:0]
	for _, sg := range s.productSubgroups {
		if sg.GroupID != id {
			kept = append(kept, sg)
		}
	}
	s.productSubgroups = kept
	return nil
}

func (s *Store) ProductGroups() []model.ProductGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ProductGroup, len(s.productGroups))
	copy(out, s.productGroups)
	return out
}

func (s *Store) AddProductSubgroup(sg model.ProductSubgroup) model.ProductSubgroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	sg.Stamp(s.now())
	s.productSubgroups = append(s.productSubgroups, sg)
	return sg
}

func (s *Store) UpdateProductSubgroup(id uuid.UUID, patch GroupPatch) (model.ProductSubgroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.productSubgroups {
		if s.productSubgroups[i].ID != id {
			continue
		}
		sg := &s.productSubgroups[i]
		if patch.Name != nil {
			sg.Name = *patch.Name
		}
		if patch.Description != nil {
			sg.Description = *patch.Description
		}
		if patch.IsActive != nil {
			sg.IsActive = *patch.IsActive
		}
		sg.Touch(s.now())
		return *sg, nil
	}
	return model.ProductSubgroup{}, ErrSubgroupNotFound
}

func (s *Store) DeleteProductSubgroup(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.productSubgroups {
		if s.productSubgroups[i].ID == id {
			s.productSubgroups = append(s.productSubgroups[:i], s.productSubgroups[i+1:]...)
			return nil
		}
	}
	return ErrSubgroupNotFound
}

func (s *Store) ProductSubgroups() []model.ProductSubgroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ProductSubgroup, len(s.productSubgroups))
	copy(out, s.productSubgroups)
	return out
}

func (s *Store) AddDiscount(d model.Discount) model.Discount {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.Stamp(s.now())
	s.discounts = append(s.discounts, d)
	return d
}

type DiscountPatch struct {
	Name          *string
	Type          *model.DiscountType
	Value         *float64
	IsActive      *bool
	ValidFrom     *time.Time
	ValidTo       *time.Time
	MinimumAmount *float64
}

func (s *Store) UpdateDiscount(id uuid.UUID, patch DiscountPatch) (model.Discount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.discounts {
		if s.discounts[i].ID != id {
			continue
		}
		d := &s.discounts[i]
		if patch.Name != nil {
			d.Name = *patch.Name
		}
		if patch.Type != nil {
			d.Type = *patch.Type
		}
		if patch.Value != nil {
			d.Value = *patch.Value
		}
		if patch.IsActive != nil {
			d.IsActive = *patch.IsActive
		}
		if patch.ValidFrom != nil {
			d.ValidFrom = *patch.ValidFrom
		}
		if patch.ValidTo != nil {
			d.ValidTo = *patch.ValidTo
		}
		if patch.MinimumAmount != nil {
			d.MinimumAmount = *patch.MinimumAmount
		}
		d.Touch(s.now())
		return *d, nil
	}
	return model.Discount{}, ErrDiscountNotFound
}

func (s *Store) DeleteDiscount(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.discounts {
		if s.discounts[i].ID == id {
			s.discounts = append(s.discounts[:i], s.discounts[i+1:]...)
			return nil
		}
	}
	return ErrDiscountNotFound
}

func (s *Store) Discounts() []model.Discount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Discount, len(s.discounts))
	copy(out, s.discounts)
	return out
}
