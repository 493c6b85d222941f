package service

import (
	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/store"
	"go-restaurant-pos/pkg/validator"

	"github.com/google/uuid"
)

type OpenRegisterRequest struct {
	OpeningAmount float64 `json:"opening_amount" validate:"gte=0"`
}

type CloseRegisterRequest struct {
	ClosingAmount float64 `json:"closing_amount" validate:"gte=0"`
}

type RegisterService interface {
	OpenRegister(cashierID uuid.UUID, req *OpenRegisterRequest) (model.CashRegister, error)
	CloseRegister(id uuid.UUID, req *CloseRegisterRequest) (model.CashRegister, error)
	GetRegisters() []model.CashRegister
	GetRegister(id uuid.UUID) (model.CashRegister, error)
	GetRegisterSummary(id uuid.UUID) (model.RegisterSummary, error)
}

type registerService struct {
	store *store.Store
}

func NewRegisterService(st *store.Store) RegisterService {
	return &registerService{store: st}
}

func (s *registerService) OpenRegister(cashierID uuid.UUID, req *OpenRegisterRequest) (model.CashRegister, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.CashRegister{}, validationError(errs)
	}
	return s.store.OpenRegister(cashierID, req.OpeningAmount)
}

func (s *registerService) CloseRegister(id uuid.UUID, req *CloseRegisterRequest) (model.CashRegister, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.CashRegister{}, validationError(errs)
	}
	return s.store.CloseRegister(id, req.ClosingAmount)
}

func (s *registerService) GetRegisters() []model.CashRegister {
	return s.store.CashRegisters()
}

func (s *registerService) GetRegister(id uuid.UUID) (model.CashRegister, error) {
	return s.store.CashRegister(id)
}

func (s *registerService) GetRegisterSummary(id uuid.UUID) (model.RegisterSummary, error) {
	return s.store.RegisterSummary(id)
}
