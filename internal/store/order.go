package store

import (
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

// NewOrderItem is the input shape for adding an item. The unit price is
// snapshotted from the product at insertion time, never taken from the
// caller.
type NewOrderItem struct {
	ProductID uuid.UUID
	Quantity  int
	Notes     string
}

// NewOrder is the input shape for CreateOrder.
type NewOrder struct {
	TableID       *uuid.UUID
	CustomerName  string
	CustomerCount int
	OrderType     model.OrderType
	Status        model.OrderStatus
	Notes         string
	WaiterID      string
	Discount      float64
	EstimatedTime int
	Items         []NewOrderItem
}

// CreateOrder registers a new order, seats its dine-in table and spawns a
// kitchen ticket for the items whose product needs preparation. The whole
// cascade is applied atomically.
func (s *Store) CreateOrder(req NewOrder) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()

	order := model.Order{
		TableID:       req.TableID,
		CustomerName:  req.CustomerName,
		CustomerCount: req.CustomerCount,
		Status:        req.Status,
		OrderType:     req.OrderType,
		Discount:      req.Discount,
		Notes:         req.Notes,
		WaiterID:      req.WaiterID,
		EstimatedTime: req.EstimatedTime,
	}
	if order.Status == "" {
		order.Status = model.OrderDraft
	}

	for _, in := range req.Items {
		product := s.findProductLocked(in.ProductID)
		if product == nil {
			return model.Order{}, ErrProductNotFound
		}
		order.Items = append(order.Items, model.OrderItem{
			ID:        uuid.New(),
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Price:     product.Price,
			Notes:     in.Notes,
			Status:    model.ItemPending,
		})
	}

	order.Stamp(now)
	s.recomputeTotalsLocked(&order)
	s.orders = append(s.orders, order)
	stored := &s.orders[len(s.orders)-1]

	// Seat the table for dine-in orders. A dangling table reference is
	// skipped rather than rejected, matching the floor-plan behavior.
	var table *model.Table
	if order.OrderType == model.OrderDineIn && order.TableID != nil {
		if table = s.findTableLocked(*order.TableID); table != nil {
			s.setTableStatusLocked(table, model.TableOccupied, &CustomerInfo{
				Name:  order.CustomerName,
				Count: order.CustomerCount,
			})
			id := stored.ID
			table.CurrentOrder = &id
		}
	}

	s.spawnKitchenTicketLocked(stored, table, now)
	return s.cloneOrderLocked(stored), nil
}

// spawnKitchenTicketLocked creates at most one ticket holding the subset
// of items whose product takes more than a minute to prepare.
func (s *Store) spawnKitchenTicketLocked(order *model.Order, table *model.Table, now time.Time) {
	var kitchenItems []model.OrderItem
	estimated := 0
	for _, item := range order.Items {
		product := s.findProductLocked(item.ProductID)
		if product == nil || !product.NeedsPreparation() {
			continue
		}
		kitchenItems = append(kitchenItems, item)
		if product.PreparationTime > estimated {
			estimated = product.PreparationTime
		}
	}
	if len(kitchenItems) == 0 {
		return
	}

	ticket := model.KitchenTicket{
		OrderID:       order.ID,
		Items:         kitchenItems,
		Priority:      model.PriorityNormal,
		EstimatedTime: estimated,
		Status:        model.TicketPending,
	}
	if table != nil {
		number := table.Number
		ticket.TableNumber = &number
	}
	ticket.Stamp(now)
	s.kitchenTickets = append(s.kitchenTickets, ticket)
}

// OrderPatch shallow-merges onto an order. Status changes are not checked
// against a transition graph; any target status is accepted.
type OrderPatch struct {
	Status        *model.OrderStatus
	CustomerName  *string
	CustomerCount *int
	Notes         *string
	WaiterID      *string
	EstimatedTime *int
	Discount      *float64
	ServedAt      *time.Time
}

func (s *Store) UpdateOrder(id uuid.UUID, patch OrderPatch) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := s.findOrderLocked(id)
	if order == nil {
		return model.Order{}, ErrOrderNotFound
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.CustomerName != nil {
		order.CustomerName = *patch.CustomerName
	}
	if patch.CustomerCount != nil {
		order.CustomerCount = *patch.CustomerCount
	}
	if patch.Notes != nil {
		order.Notes = *patch.Notes
	}
	if patch.WaiterID != nil {
		order.WaiterID = *patch.WaiterID
	}
	if patch.EstimatedTime != nil {
		order.EstimatedTime = *patch.EstimatedTime
	}
	if patch.Discount != nil {
		order.Discount = *patch.Discount
	}
	if patch.ServedAt != nil {
		order.ServedAt = patch.ServedAt
	}
	order.Touch(s.now())
	return s.cloneOrderLocked(order), nil
}

// DeleteOrder removes the order, releases its table unconditionally and
// cascades removal of its kitchen tickets.
func (s *Store) DeleteOrder(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrOrderNotFound
	}
	order := s.orders[idx]
	if order.TableID != nil {
		if table := s.findTableLocked(*order.TableID); table != nil {
			s.setTableStatusLocked(table, model.TableAvailable, nil)
		}
	}
	s.orders = append(s.orders[:idx], s.orders[idx+1:]...)

	kept := s.kitchenTickets[:0]
	for _, t := range s.kitchenTickets {
		if t.OrderID != id {
			kept = append(kept, t)
		}
	}
	s.kitchenTickets = kept
	return nil
}

func (s *Store) AddOrderItem(orderID uuid.UUID, in NewOrderItem) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := s.findOrderLocked(orderID)
	if order == nil {
		return model.Order{}, ErrOrderNotFound
	}
	product := s.findProductLocked(in.ProductID)
	if product == nil {
		return model.Order{}, ErrProductNotFound
	}
	order.Items = append(order.Items, model.OrderItem{
		ID:        uuid.New(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Price:     product.Price,
		Notes:     in.Notes,
		Status:    model.ItemPending,
	})
	s.recomputeTotalsLocked(order)
	order.Touch(s.now())
	return s.cloneOrderLocked(order), nil
}

type OrderItemPatch struct {
	Quantity *int
	Notes    *string
	Status   *model.OrderItemStatus
}

func (s *Store) UpdateOrderItem(orderID, itemID uuid.UUID, patch OrderItemPatch) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := s.findOrderLocked(orderID)
	if order == nil {
		return model.Order{}, ErrOrderNotFound
	}
	found := false
	for i := range order.Items {
		if order.Items[i].ID != itemID {
			continue
		}
		item := &order.Items[i]
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.Notes != nil {
			item.Notes = *patch.Notes
		}
		if patch.Status != nil {
			item.Status = *patch.Status
		}
		found = true
		break
	}
	if !found {
		return model.Order{}, ErrOrderItemNotFound
	}
	s.recomputeTotalsLocked(order)
	order.Touch(s.now())
	return s.cloneOrderLocked(order), nil
}

func (s *Store) RemoveOrderItem(orderID, itemID uuid.UUID) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := s.findOrderLocked(orderID)
	if order == nil {
		return model.Order{}, ErrOrderNotFound
	}
	idx := -1
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Order{}, ErrOrderItemNotFound
	}
	order.Items = append(order.Items[:idx], order.Items[idx+1:]...)
	s.recomputeTotalsLocked(order)
	order.Touch(s.now())
	return s.cloneOrderLocked(order), nil
}

// recomputeTotalsLocked derives subtotal, tax and total. Tax always uses
// the current global tax rate, not a rate snapshotted at order creation.
func (s *Store) recomputeTotalsLocked(order *model.Order) {
	subtotal := 0.0
	for _, item := range order.Items {
		subtotal += item.Price * float64(item.Quantity)
	}
	order.Subtotal = subtotal
	order.Tax = subtotal * s.settings.TaxRate / 100
	order.Total = order.Subtotal + order.Tax - order.Discount
}

func (s *Store) cloneOrderLocked(order *model.Order) model.Order {
	out := *order
	out.Items = make([]model.OrderItem, len(order.Items))
	copy(out.Items, order.Items)
	return out
}

func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, len(s.orders))
	for i := range s.orders {
		out[i] = s.cloneOrderLocked(&s.orders[i])
	}
	return out
}

func (s *Store) Order(id uuid.UUID) (model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if order := s.findOrderLocked(id); order != nil {
		return s.cloneOrderLocked(order), nil
	}
	return model.Order{}, ErrOrderNotFound
}

type TicketPatch struct {
	Status   *model.TicketStatus
	Priority *model.TicketPriority
}

func (s *Store) UpdateKitchenTicket(id uuid.UUID, patch TicketPatch) (model.KitchenTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.kitchenTickets {
		if s.kitchenTickets[i].ID != id {
			continue
		}
		ticket := &s.kitchenTickets[i]
		if patch.Status != nil {
			ticket.Status = *patch.Status
		}
		if patch.Priority != nil {
			ticket.Priority = *patch.Priority
		}
		ticket.Touch(s.now())
		return *ticket, nil
	}
	return model.KitchenTicket{}, ErrTicketNotFound
}

func (s *Store) KitchenTickets() []model.KitchenTicket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.KitchenTicket, len(s.kitchenTickets))
	copy(out, s.kitchenTickets)
	return out
}
