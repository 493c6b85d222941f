package model

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderDraft     OrderStatus = "draft"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderDineIn   OrderType = "dine-in"
	OrderTakeaway OrderType = "takeaway"
	OrderDelivery OrderType = "delivery"
)

type OrderItemStatus string

const (
	ItemPending   OrderItemStatus = "pending"
	ItemPreparing OrderItemStatus = "preparing"
	ItemReady     OrderItemStatus = "ready"
	ItemServed    OrderItemStatus = "served"
)

// OrderItem carries the unit price snapshotted when the item was added, so
// later product price edits never change an existing order.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     float64         `json:"price"`
	Notes     string          `json:"notes,omitempty"`
	Status    OrderItemStatus `json:"status"`
}

// Order owns its item sequence in insertion order. Subtotal, Tax and Total
// are derived and recomputed by the store on every item mutation.
type Order struct {
	BaseModel
	TableID       *uuid.UUID  `json:"table_id,omitempty"`
	CustomerName  string      `json:"customer_name,omitempty"`
	CustomerCount int         `json:"customer_count,omitempty"`
	Items         []OrderItem `json:"items"`
	Status        OrderStatus `json:"status"`
	OrderType     OrderType   `json:"order_type"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Discount      float64     `json:"discount"`
	Total         float64     `json:"total"`
	Notes         string      `json:"notes,omitempty"`
	ServedAt      *time.Time  `json:"served_at,omitempty"`
	WaiterID      string      `json:"waiter_id,omitempty"`
	EstimatedTime int         `json:"estimated_time,omitempty"` // minutes
}

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityNormal TicketPriority = "normal"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

type TicketStatus string

const (
	TicketPending   TicketStatus = "pending"
	TicketPreparing TicketStatus = "preparing"
	TicketReady     TicketStatus = "ready"
	TicketDelivered TicketStatus = "delivered"
)

// KitchenTicket is the prep-station work unit spawned at order creation for
// the items that need kitchen time. The item list is a snapshot taken when
// the order was created and is not resynced on later item edits.
type KitchenTicket struct {
	BaseModel
	OrderID       uuid.UUID      `json:"order_id"`
	TableNumber   *int           `json:"table_number,omitempty"`
	Items         []OrderItem    `json:"items"`
	Priority      TicketPriority `json:"priority"`
	EstimatedTime int            `json:"estimated_time"` // minutes, max prep time of included items
	Status        TicketStatus   `json:"status"`
}
