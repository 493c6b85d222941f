package service

import (
	"fmt"
	"time"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/store"
	"go-restaurant-pos/pkg/validator"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"is_active"`
}

type CreateProductRequest struct {
	Name            string     `json:"name" validate:"required"`
	Description     string     `json:"description"`
	Price           float64    `json:"price" validate:"required,gt=0"`
	CategoryID      uuid.UUID  `json:"category_id" validate:"uuid_required"`
	GroupID         *uuid.UUID `json:"group_id"`
	SubgroupID      *uuid.UUID `json:"subgroup_id"`
	ImageURL        string     `json:"image_url"`
	IsActive        *bool      `json:"is_active"`
	PreparationTime int        `json:"preparation_time" validate:"gte=0"`
	Ingredients     []string   `json:"ingredients"`
	Allergens       []string   `json:"allergens"`
}

type UpdateProductRequest struct {
	Name            *string    `json:"name" validate:"omitempty,min=1"`
	Description     *string    `json:"description"`
	Price           *float64   `json:"price" validate:"omitempty,gt=0"`
	CategoryID      *uuid.UUID `json:"category_id"`
	GroupID         *uuid.UUID `json:"group_id"`
	SubgroupID      *uuid.UUID `json:"subgroup_id"`
	ImageURL        *string    `json:"image_url"`
	IsActive        *bool      `json:"is_active"`
	PreparationTime *int       `json:"preparation_time" validate:"omitempty,gte=0"`
	Ingredients     *[]string  `json:"ingredients"`
	Allergens       *[]string  `json:"allergens"`
}

type GroupRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	IsActive    *bool  `json:"is_active"`
}

type SubgroupRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	GroupID     uuid.UUID `json:"group_id" validate:"uuid_required"`
	IsActive    *bool     `json:"is_active"`
}

type UpdateGroupRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"is_active"`
}

type DiscountRequest struct {
	Name          string             `json:"name" validate:"required"`
	Type          model.DiscountType `json:"type" validate:"required,oneof=percentage fixed"`
	Value         float64            `json:"value" validate:"required,gt=0"`
	IsActive      *bool              `json:"is_active"`
	ValidFrom     time.Time          `json:"valid_from" validate:"required"`
	ValidTo       time.Time          `json:"valid_to" validate:"required"`
	MinimumAmount float64            `json:"minimum_amount" validate:"gte=0"`
}

type UpdateDiscountRequest struct {
	Name          *string             `json:"name" validate:"omitempty,min=1"`
	Type          *model.DiscountType `json:"type" validate:"omitempty,oneof=percentage fixed"`
	Value         *float64            `json:"value" validate:"omitempty,gt=0"`
	IsActive      *bool               `json:"is_active"`
	ValidFrom     *time.Time          `json:"valid_from"`
	ValidTo       *time.Time          `json:"valid_to"`
	MinimumAmount *float64            `json:"minimum_amount" validate:"omitempty,gte=0"`
}

type CatalogService interface {
	CreateCategory(req *CreateCategoryRequest) (model.Category, error)
	UpdateCategory(id uuid.UUID, req *UpdateCategoryRequest) (model.Category, error)
	DeleteCategory(id uuid.UUID) error
	GetCategories() []model.Category

	CreateProduct(req *CreateProductRequest) (model.Product, error)
	UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetProducts() []model.Product
	GetProduct(id uuid.UUID) (model.Product, error)

	CreateGroup(req *GroupRequest) (model.ProductGroup, error)
	UpdateGroup(id uuid.UUID, req *UpdateGroupRequest) (model.ProductGroup, error)
	DeleteGroup(id uuid.UUID) error
	GetGroups() []model.ProductGroup

	CreateSubgroup(req *SubgroupRequest) (model.ProductSubgroup, error)
	UpdateSubgroup(id uuid.UUID, req *UpdateGroupRequest) (model.ProductSubgroup, error)
	DeleteSubgroup(id uuid.UUID) error
	GetSubgroups() []model.ProductSubgroup

	CreateDiscount(req *DiscountRequest) (model.Discount, error)
	UpdateDiscount(id uuid.UUID, req *UpdateDiscountRequest) (model.Discount, error)
	DeleteDiscount(id uuid.UUID) error
	GetDiscounts() []model.Discount
}

type catalogService struct {
	store *store.Store
}

func NewCatalogService(st *store.Store) CatalogService {
	return &catalogService{store: st}
}

func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}

func (s *catalogService) CreateCategory(req *CreateCategoryRequest) (model.Category, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Category{}, validationError(errs)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return s.store.AddCategory(model.Category{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    active,
	}), nil
}

func (s *catalogService) UpdateCategory(id uuid.UUID, req *UpdateCategoryRequest) (model.Category, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Category{}, validationError(errs)
	}
	return s.store.UpdateCategory(id, store.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    req.IsActive,
	})
}

func (s *catalogService) DeleteCategory(id uuid.UUID) error {
	return s.store.DeleteCategory(id)
}

func (s *catalogService) GetCategories() []model.Category {
	return s.store.Categories()
}

func (s *catalogService) CreateProduct(req *CreateProductRequest) (model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Product{}, validationError(errs)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return s.store.AddProduct(model.Product{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		GroupID:         req.GroupID,
		SubgroupID:      req.SubgroupID,
		ImageURL:        req.ImageURL,
		IsActive:        active,
		PreparationTime: req.PreparationTime,
		Ingredients:     req.Ingredients,
		Allergens:       req.Allergens,
	}), nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Product{}, validationError(errs)
	}
	return s.store.UpdateProduct(id, store.ProductPatch{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		GroupID:         req.GroupID,
		SubgroupID:      req.SubgroupID,
		ImageURL:        req.ImageURL,
		IsActive:        req.IsActive,
		PreparationTime: req.PreparationTime,
		Ingredients:     req.Ingredients,
		Allergens:       req.Allergens,
	})
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	return s.store.DeleteProduct(id)
}

func (s *catalogService) GetProducts() []model.Product {
	return s.store.Products()
}

func (s *catalogService) GetProduct(id uuid.UUID) (model.Product, error) {
	return s.store.Product(id)
}

func (s *catalogService) CreateGroup(req *GroupRequest) (model.ProductGroup, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.ProductGroup{}, validationError(errs)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return s.store.AddProductGroup(model.ProductGroup{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    active,
	}), nil
}

func (s *catalogService) UpdateGroup(id uuid.UUID, req *UpdateGroupRequest) (model.ProductGroup, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.ProductGroup{}, validationError(errs)
	}
	return s.store.UpdateProductGroup(id, store.GroupPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    req.IsActive,
	})
}

func (s *catalogService) DeleteGroup(id uuid.UUID) error {
	return s.store.DeleteProductGroup(id)
}

func (s *catalogService) GetGroups() []model.ProductGroup {
	return s.store.ProductGroups()
}

func (s *catalogService) CreateSubgroup(req *SubgroupRequest) (model.ProductSubgroup, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.ProductSubgroup{}, validationError(errs)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return s.store.AddProductSubgroup(model.ProductSubgroup{
		Name:        req.Name,
		Description: req.Description,
		GroupID:     req.GroupID,
		IsActive:    active,
	}), nil
}

func (s *catalogService) UpdateSubgroup(id uuid.UUID, req *UpdateGroupRequest) (model.ProductSubgroup, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.ProductSubgroup{}, validationError(errs)
	}
	return s.store.UpdateProductSubgroup(id, store.GroupPatch{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
}

func (s *catalogService) DeleteSubgroup(id uuid.UUID) error {
	return s.store.DeleteProductSubgroup(id)
}

func (s *catalogService) GetSubgroups() []model.ProductSubgroup {
	return s.store.ProductSubgroups()
}

func (s *catalogService) CreateDiscount(req *DiscountRequest) (model.Discount, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Discount{}, validationError(errs)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return s.store.AddDiscount(model.Discount{
		Name:          req.Name,
		Type:          req.Type,
		Value:         req.Value,
		IsActive:      active,
		ValidFrom:     req.ValidFrom,
		ValidTo:       req.ValidTo,
		MinimumAmount: req.MinimumAmount,
	}), nil
}

func (s *catalogService) UpdateDiscount(id uuid.UUID, req *UpdateDiscountRequest) (model.Discount, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Discount{}, validationError(errs)
	}
	return s.store.UpdateDiscount(id, store.DiscountPatch{
		Name:          req.Name,
		Type:          req.Type,
		Value:         req.Value,
		IsActive:      req.IsActive,
		ValidFrom:     req.ValidFrom,
		ValidTo:       req.ValidTo,
		MinimumAmount: req.MinimumAmount,
	})
}

func (s *catalogService) DeleteDiscount(id uuid.UUID) error {
	return s.store.DeleteDiscount(id)
}

func (s *catalogService) GetDiscounts() []model.Discount {
	return s.store.Discounts()
}
