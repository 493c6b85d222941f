package service

import (
	"encoding/json"
	"fmt"
	"time"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/store"
	"go-restaurant-pos/internal/ws"
	"go-restaurant-pos/pkg/validator"

	"github.com/google/uuid"
)

type CreateInventoryItemRequest struct {
	Name           string                  `json:"name" validate:"required"`
	Description    string                  `json:"description"`
	Unit           string                  `json:"unit" validate:"required"`
	CurrentStock   float64                 `json:"current_stock" validate:"gte=0"`
	MinStock       float64                 `json:"min_stock" validate:"gte=0"`
	MaxStock       float64                 `json:"max_stock" validate:"gte=0"`
	UnitCost       float64                 `json:"unit_cost" validate:"gte=0"`
	Supplier       string                  `json:"supplier"`
	Category       model.InventoryCategory `json:"category" validate:"required,oneof=ingredients beverages supplies cleaning"`
	ExpirationDate *time.Time              `json:"expiration_date"`
}

type UpdateInventoryItemRequest struct {
	Name           *string                  `json:"name" validate:"omitempty,min=1"`
	Description    *string                  `json:"description"`
	Unit           *string                  `json:"unit" validate:"omitempty,min=1"`
	CurrentStock   *float64                 `json:"current_stock" validate:"omitempty,gte=0"`
	MinStock       *float64                 `json:"min_stock" validate:"omitempty,gte=0"`
	MaxStock       *float64                 `json:"max_stock" validate:"omitempty,gte=0"`
	UnitCost       *float64                 `json:"unit_cost" validate:"omitempty,gte=0"`
	Supplier       *string                  `json:"supplier"`
	Category       *model.InventoryCategory `json:"category" validate:"omitempty,oneof=ingredients beverages supplies cleaning"`
	ExpirationDate *time.Time               `json:"expiration_date"`
}

type TransactionRequest struct {
	InventoryItemID uuid.UUID             `json:"inventory_item_id" validate:"uuid_required"`
	Type            model.TransactionType `json:"type" validate:"required,oneof=purchase usage waste adjustment"`
	Quantity        float64               `json:"quantity" validate:"required,gt=0"`
	UnitCost        *float64              `json:"unit_cost" validate:"omitempty,gte=0"`
	Reason          string                `json:"reason"`
	OrderID         *uuid.UUID            `json:"order_id"`
}

type InventoryService interface {
	CreateItem(req *CreateInventoryItemRequest) (model.InventoryItem, error)
	UpdateItem(id uuid.UUID, req *UpdateInventoryItemRequest) (model.InventoryItem, error)
	DeleteItem(id uuid.UUID) error
	GetItems() []model.InventoryItem
	GetItem(id uuid.UUID) (model.InventoryItem, error)

	RecordTransaction(req *TransactionRequest, userID, userName string) (model.InventoryTransaction, error)
	GetTransactions() []model.InventoryTransaction

	CheckStockLevels() []model.StockAlert
	GetAlerts() []model.StockAlert
	MarkAlertRead(id uuid.UUID) (model.StockAlert, error)
}

type inventoryService struct {
	store *store.Store
	wsHub *ws.Hub
}

func NewInventoryService(st *store.Store, hub *ws.Hub) InventoryService {
	return &inventoryService{store: st, wsHub: hub}
}

func (s *inventoryService) CreateItem(req *CreateInventoryItemRequest) (model.InventoryItem, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.InventoryItem{}, validationError(errs)
	}
	return s.store.AddInventoryItem(model.InventoryItem{
		Name:           req.Name,
		Description:    req.Description,
		Unit:           req.Unit,
		CurrentStock:   req.CurrentStock,
		MinStock:       req.MinStock,
		MaxStock:       req.MaxStock,
		UnitCost:       req.UnitCost,
		Supplier:       req.Supplier,
		Category:       req.Category,
		ExpirationDate: req.ExpirationDate,
	}), nil
}

func (s *inventoryService) UpdateItem(id uuid.UUID, req *UpdateInventoryItemRequest) (model.InventoryItem, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.InventoryItem{}, validationError(errs)
	}
	return s.store.UpdateInventoryItem(id, store.InventoryItemPatch{
		Name:           req.Name,
		Description:    req.Description,
		Unit:           req.Unit,
		CurrentStock:   req.CurrentStock,
		MinStock:       req.MinStock,
		MaxStock:       req.MaxStock,
		UnitCost:       req.UnitCost,
		Supplier:       req.Supplier,
		Category:       req.Category,
		ExpirationDate: req.ExpirationDate,
	})
}

func (s *inventoryService) DeleteItem(id uuid.UUID) error {
	return s.store.DeleteInventoryItem(id)
}

func (s *inventoryService) GetItems() []model.InventoryItem {
	return s.store.InventoryItems()
}

func (s *inventoryService) GetItem(id uuid.UUID) (model.InventoryItem, error) {
	return s.store.InventoryItem(id)
}

// RecordTransaction applies a stock movement and publishes any alerts it
// raised when low-stock notifications are enabled.
func (s *inventoryService) RecordTransaction(req *TransactionRequest, userID, userName string) (model.InventoryTransaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.InventoryTransaction{}, validationError(errs)
	}

	tx, alerts, err := s.store.ApplyInventoryTransaction(store.NewTransaction{
		InventoryItemID: req.InventoryItemID,
		Type:            req.Type,
		Quantity:        req.Quantity,
		UnitCost:        req.UnitCost,
		Reason:          req.Reason,
		OrderID:         req.OrderID,
		UserID:          userID,
	})
	if err != nil {
		return model.InventoryTransaction{}, err
	}

	if len(alerts) > 0 && s.store.Settings().Notifications.LowStock {
		go func() {
			for _, alert := range alerts {
				payload := map[string]interface{}{
					"type":   "stock_alert",
					"action": "alert_raised",
					"alert": map[string]interface{}{
						"id":                alert.ID,
						"inventory_item_id": alert.InventoryItemID,
						"alert_type":        alert.Type,
						"message":           alert.Message,
					},
					"user": map[string]interface{}{
						"id":   userID,
						"name": userName,
					},
					"message": alert.Message,
				}
				msg, _ := json.Marshal(payload)
				s.wsHub.Broadcast <- msg
			}
		}()
	}

	if s.store.Settings().Notifications.LowStock {
		go func() {
			payload := map[string]interface{}{
				"type":   "stock_update",
				"action": "transaction_created",
				"transaction": map[string]interface{}{
					"id":                tx.ID,
					"inventory_item_id": tx.InventoryItemID,
					"transaction_type":  tx.Type,
					"quantity":          tx.Quantity,
				},
				"user": map[string]interface{}{
					"id":   userID,
					"name": userName,
				},
				"message": fmt.Sprintf("%s recorded a %s of %g units", userName, tx.Type, tx.Quantity),
			}
			msg, _ := json.Marshal(payload)
			s.wsHub.Broadcast <- msg
		}()
	}

	return tx, nil
}

func (s *inventoryService) GetTransactions() []model.InventoryTransaction {
	return s.store.InventoryTransactions()
}

func (s *inventoryService) CheckStockLevels() []model.StockAlert {
	return s.store.CheckStockLevels()
}

func (s *inventoryService) GetAlerts() []model.StockAlert {
	return s.store.StockAlerts()
}

func (s *inventoryService) MarkAlertRead(id uuid.UUID) (model.StockAlert, error) {
	return s.store.MarkAlertRead(id)
}
