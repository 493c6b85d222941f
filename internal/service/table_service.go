package service

import (
	"time"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/store"
	"go-restaurant-pos/pkg/validator"

	"github.com/google/uuid"
)

type CreateTableRequest struct {
	Number   int              `json:"number" validate:"required,gt=0"`
	Capacity int              `json:"capacity" validate:"required,gt=0"`
	Position model.Position   `json:"position"`
	Shape    model.TableShape `json:"shape" validate:"omitempty,oneof=round square rectangle"`
}

type UpdateTableRequest struct {
	Number          *int              `json:"number" validate:"omitempty,gt=0"`
	Capacity        *int              `json:"capacity" validate:"omitempty,gt=0"`
	Position        *model.Position   `json:"position"`
	Shape           *model.TableShape `json:"shape" validate:"omitempty,oneof=round square rectangle"`
	ReservationTime *time.Time        `json:"reservation_time"`
}

type TableStatusRequest struct {
	Status        model.TableStatus `json:"status" validate:"required,oneof=available occupied reserved cleaning"`
	CustomerName  string            `json:"customer_name"`
	CustomerCount int               `json:"customer_count" validate:"gte=0"`
}

type TableService interface {
	CreateTable(req *CreateTableRequest) (model.Table, error)
	UpdateTable(id uuid.UUID, req *UpdateTableRequest) (model.Table, error)
	UpdateTableStatus(id uuid.UUID, req *TableStatusRequest) (model.Table, error)
	DeleteTable(id uuid.UUID) error
	GetTables() []model.Table
	GetTable(id uuid.UUID) (model.Table, error)
}

type tableService struct {
	store *store.Store
}

func NewTableService(st *store.Store) TableService {
	return &tableService{store: st}
}

func (s *tableService) CreateTable(req *CreateTableRequest) (model.Table, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Table{}, validationError(errs)
	}
	shape := req.Shape
	if shape == "" {
		shape = model.ShapeSquare
	}
	return s.store.AddTable(model.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
		Status:   model.TableAvailable,
		Position: req.Position,
		Shape:    shape,
	}), nil
}

func (s *tableService) UpdateTable(id uuid.UUID, req *UpdateTableRequest) (model.Table, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Table{}, validationError(errs)
	}
	return s.store.UpdateTable(id, store.TablePatch{
		Number:          req.Number,
		Capacity:        req.Capacity,
		Position:        req.Position,
		Shape:           req.Shape,
		ReservationTime: req.ReservationTime,
	})
}

func (s *tableService) UpdateTableStatus(id uuid.UUID, req *TableStatusRequest) (model.Table, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Table{}, validationError(errs)
	}
	var customer *store.CustomerInfo
	if req.CustomerName != "" || req.CustomerCount > 0 {
		customer = &store.CustomerInfo{Name: req.CustomerName, Count: req.CustomerCount}
	}
	return s.store.UpdateTableStatus(id, req.Status, customer)
}

func (s *tableService) DeleteTable(id uuid.UUID) error {
	return s.store.DeleteTable(id)
}

func (s *tableService) GetTables() []model.Table {
	return s.store.Tables()
}

func (s *tableService) GetTable(id uuid.UUID) (model.Table, error) {
	return s.store.Table(id)
}
