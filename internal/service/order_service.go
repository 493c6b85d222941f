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

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	Notes     string    `json:"notes"`
}

type CreateOrderRequest struct {
	TableID       *uuid.UUID         `json:"table_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerCount int                `json:"customer_count" validate:"gte=0"`
	OrderType     model.OrderType    `json:"order_type" validate:"required,oneof=dine-in takeaway delivery"`
	Status        model.OrderStatus  `json:"status" validate:"omitempty,oneof=draft confirmed preparing ready served paid cancelled"`
	Notes         string             `json:"notes"`
	Discount      float64            `json:"discount" validate:"gte=0"`
	EstimatedTime int                `json:"estimated_time" validate:"gte=0"`
	Items         []OrderItemRequest `json:"items" validate:"omitempty,dive"`
}

type UpdateOrderRequest struct {
	Status        *model.OrderStatus `json:"status" validate:"omitempty,oneof=draft confirmed preparing ready served paid cancelled"`
	CustomerName  *string            `json:"customer_name"`
	CustomerCount *int               `json:"customer_count" validate:"omitempty,gte=0"`
	Notes         *string            `json:"notes"`
	EstimatedTime *int               `json:"estimated_time" validate:"omitempty,gte=0"`
	Discount      *float64           `json:"discount" validate:"omitempty,gte=0"`
}

type UpdateOrderItemRequest struct {
	Quantity *int                   `json:"quantity" validate:"omitempty,gt=0"`
	Notes    *string                `json:"notes"`
	Status   *model.OrderItemStatus `json:"status" validate:"omitempty,oneof=pending preparing ready served"`
}

type UpdateTicketRequest struct {
	Status   *model.TicketStatus   `json:"status" validate:"omitempty,oneof=pending preparing ready delivered"`
	Priority *model.TicketPriority `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
}

type OrderService interface {
	CreateOrder(req *CreateOrderRequest, userID, userName string) (model.Order, error)
	UpdateOrder(id uuid.UUID, req *UpdateOrderRequest, userID, userName string) (model.Order, error)
	DeleteOrder(id uuid.UUID) error
	GetOrders() []model.Order
	GetOrder(id uuid.UUID) (model.Order, error)

	AddOrderItem(orderID uuid.UUID, req *OrderItemRequest) (model.Order, error)
	UpdateOrderItem(orderID, itemID uuid.UUID, req *UpdateOrderItemRequest) (model.Order, error)
	RemoveOrderItem(orderID, itemID uuid.UUID) (model.Order, error)

	GetKitchenTickets() []model.KitchenTicket
	UpdateKitchenTicket(id uuid.UUID, req *UpdateTicketRequest) (model.KitchenTicket, error)
}

type orderService struct {
	store *store.Store
	wsHub *ws.Hub
}

func NewOrderService(st *store.Store, hub *ws.Hub) OrderService {
	return &orderService{store: st, wsHub: hub}
}

func (s *orderService) CreateOrder(req *CreateOrderRequest, userID, userName string) (model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Order{}, validationError(errs)
	}

	items := make([]store.NewOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, store.NewOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		})
	}

	order, err := s.store.CreateOrder(store.NewOrder{
		TableID:       req.TableID,
		CustomerName:  req.CustomerName,
		CustomerCount: req.CustomerCount,
		OrderType:     req.OrderType,
		Status:        req.Status,
		Notes:         req.Notes,
		WaiterID:      userID,
		Discount:      req.Discount,
		EstimatedTime: req.EstimatedTime,
		Items:         items,
	})
	if err != nil {
		return model.Order{}, err
	}

	if s.store.Settings().Notifications.NewOrders {
		go func() {
			payload := map[string]interface{}{
				"type":   "order_update",
				"action": "order_created",
				"order": map[string]interface{}{
					"id":         order.ID,
					"order_type": order.OrderType,
					"status":     order.Status,
					"total":      order.Total,
					"items":      len(order.Items),
				},
				"user": map[string]interface{}{
					"id":   userID,
					"name": userName,
				},
				"message": fmt.Sprintf("%s created a new %s order", userName, order.OrderType),
			}
			msg, _ := json.Marshal(payload)
			s.wsHub.Broadcast <- msg
		}()
	}

	return order, nil
}

func (s *orderService) UpdateOrder(id uuid.UUID, req *UpdateOrderRequest, userID, userName string) (model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Order{}, validationError(errs)
	}

	patch := store.OrderPatch{
		Status:        req.Status,
		CustomerName:  req.CustomerName,
		CustomerCount: req.CustomerCount,
		Notes:         req.Notes,
		EstimatedTime: req.EstimatedTime,
		Discount:      req.Discount,
	}
	if req.Status != nil && *req.Status == model.OrderServed {
		now := time.Now()
		patch.ServedAt = &now
	}

	order, err := s.store.UpdateOrder(id, patch)
	if err != nil {
		return model.Order{}, err
	}

	if req.Status != nil && s.store.Settings().Notifications.NewOrders {
		go func() {
			payload := map[string]interface{}{
				"type":   "order_update",
				"action": "status_changed",
				"order": map[string]interface{}{
					"id":     order.ID,
					"status": order.Status,
				},
				"user": map[string]interface{}{
					"id":   userID,
					"name": userName,
				},
				"message": fmt.Sprintf("%s moved an order to %s", userName, order.Status),
			}
			msg, _ := json.Marshal(payload)
			s.wsHub.Broadcast <- msg
		}()
	}

	return order, nil
}

func (s *orderService) DeleteOrder(id uuid.UUID) error {
	return s.store.DeleteOrder(id)
}

func (s *orderService) GetOrders() []model.Order {
	return s.store.Orders()
}

func (s *orderService) GetOrder(id uuid.UUID) (model.Order, error) {
	return s.store.Order(id)
}

func (s *orderService) AddOrderItem(orderID uuid.UUID, req *OrderItemRequest) (model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Order{}, validationError(errs)
	}
	return s.store.AddOrderItem(orderID, store.NewOrderItem{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
}

func (s *orderService) UpdateOrderItem(orderID, itemID uuid.UUID, req *UpdateOrderItemRequest) (model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Order{}, validationError(errs)
	}
	return s.store.UpdateOrderItem(orderID, itemID, store.OrderItemPatch{
		Quantity: req.Quantity,
		Notes:    req.Notes,
		Status:   req.Status,
	})
}

func (s *orderService) RemoveOrderItem(orderID, itemID uuid.UUID) (model.Order, error) {
	return s.store.RemoveOrderItem(orderID, itemID)
}

func (s *orderService) GetKitchenTickets() []model.KitchenTicket {
	return s.store.KitchenTickets()
}

func (s *orderService) UpdateKitchenTicket(id uuid.UUID, req *UpdateTicketRequest) (model.KitchenTicket, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.KitchenTicket{}, validationError(errs)
	}
	return s.store.UpdateKitchenTicket(id, store.TicketPatch{
		Status:   req.Status,
		Priority: req.Priority,
	})
}
