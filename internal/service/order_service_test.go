package service

import (
	"encoding/json"
	"testing"
	"time"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/store"
	"go-restaurant-pos/internal/ws"

	"github.com/google/uuid"
)

func newOrderFixture(t *testing.T) (*store.Store, *ws.Hub, OrderService, model.Product) {
	t.Helper()
	st := store.New(model.RestaurantSettings{
		TaxRate: 10,
		Notifications: model.NotificationSettings{
			NewOrders: true,
		},
	})
	hub := ws.NewHub()
	go hub.Run()

	category := st.AddCategory(model.Category{Name: "Pizzas", IsActive: true})
	pizza := st.AddProduct(model.Product{
		Name:            "Margherita",
		Price:           18.50,
		CategoryID:      category.ID,
		IsActive:        true,
		PreparationTime: 15,
	})
	return st, hub, NewOrderService(st, hub), pizza
}

func TestCreateOrderHappyPath(t *testing.T) {
	_, _, svc, pizza := newOrderFixture(t)

	order, err := svc.CreateOrder(&CreateOrderRequest{
		OrderType: model.OrderTakeaway,
		Items: []OrderItemRequest{
			{ProductID: pizza.ID, Quantity: 2},
		},
	}, "waiter-1", "Pepe")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if !almostEqualF(order.Total, 40.70) {
		t.Errorf("Total = %g, want 40.70", order.Total)
	}
	if order.WaiterID != "waiter-1" {
		t.Errorf("WaiterID = %q", order.WaiterID)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	_, _, svc, pizza := newOrderFixture(t)

	tests := []struct {
		name string
		req  *CreateOrderRequest
	}{
		{"missing order type", &CreateOrderRequest{
			Items: []OrderItemRequest{{ProductID: pizza.ID, Quantity: 1}},
		}},
		{"bad order type", &CreateOrderRequest{
			OrderType: "drive-thru",
			Items:     []OrderItemRequest{{ProductID: pizza.ID, Quantity: 1}},
		}},
		{"zero quantity", &CreateOrderRequest{
			OrderType: model.OrderTakeaway,
			Items:     []OrderItemRequest{{ProductID: pizza.ID, Quantity: 0}},
		}},
		{"nil product id", &CreateOrderRequest{
			OrderType: model.OrderTakeaway,
			Items:     []OrderItemRequest{{ProductID: uuid.Nil, Quantity: 1}},
		}},
		{"negative discount", &CreateOrderRequest{
			OrderType: model.OrderTakeaway,
			Discount:  -5,
			Items:     []OrderItemRequest{{ProductID: pizza.ID, Quantity: 1}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateOrder(tt.req, "u", "U"); err == nil {
				t.Errorf("request passed validation")
			}
		})
	}
}

func TestCreateOrderBroadcastsToHub(t *testing.T) {
	st := store.New(model.RestaurantSettings{
		TaxRate:       10,
		Notifications: model.NotificationSettings{NewOrders: true},
	})
	hub := ws.NewHub()
	received := make(chan []byte, 1)
	go func() {
		for {
			select {
			case msg := <-hub.Broadcast:
				received <- msg
			case <-hub.Register:
			case <-hub.Unregister:
			}
		}
	}()

	category := st.AddCategory(model.Category{Name: "Pizzas", IsActive: true})
	pizza := st.AddProduct(model.Product{Name: "Margherita", Price: 18.50, CategoryID: category.ID, IsActive: true})
	svc := NewOrderService(st, hub)

	if _, err := svc.CreateOrder(&CreateOrderRequest{
		OrderType: model.OrderTakeaway,
		Items:     []OrderItemRequest{{ProductID: pizza.ID, Quantity: 1}},
	}, "waiter-1", "Pepe"); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	select {
	case msg := <-received:
		var payload map[string]interface{}
		if err := json.Unmarshal(msg, &payload); err != nil {
			t.Fatalf("broadcast is not JSON: %v", err)
		}
		if payload["type"] != "order_update" || payload["action"] != "order_created" {
			t.Errorf("payload = %v", payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no broadcast received")
	}
}

func TestCreateOrderSkipsBroadcastWhenMuted(t *testing.T) {
	st := store.New(model.RestaurantSettings{TaxRate: 10})
	hub := ws.NewHub()

	category := st.AddCategory(model.Category{Name: "Pizzas", IsActive: true})
	pizza := st.AddProduct(model.Product{Name: "Margherita", Price: 18.50, CategoryID: category.ID, IsActive: true})
	svc := NewOrderService(st, hub)

	if _, err := svc.CreateOrder(&CreateOrderRequest{
		OrderType: model.OrderTakeaway,
		Items:     []OrderItemRequest{{ProductID: pizza.ID, Quantity: 1}},
	}, "waiter-1", "Pepe"); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	select {
	case <-hub.Broadcast:
		t.Fatal("broadcast sent despite muted notifications")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUpdateOrderStampsServedAt(t *testing.T) {
	_, _, svc, pizza := newOrderFixture(t)

	order, err := svc.CreateOrder(&CreateOrderRequest{
		OrderType: model.OrderTakeaway,
		Items:     []OrderItemRequest{{ProductID: pizza.ID, Quantity: 1}},
	}, "u", "U")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	served := model.OrderServed
	updated, err := svc.UpdateOrder(order.ID, &UpdateOrderRequest{Status: &served}, "u", "U")
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if updated.ServedAt == nil {
		t.Errorf("ServedAt not stamped on served transition")
	}
}

func TestUpdateKitchenTicketValidation(t *testing.T) {
	_, _, svc, pizza := newOrderFixture(t)

	if _, err := svc.CreateOrder(&CreateOrderRequest{
		OrderType: model.OrderTakeaway,
		Items:     []OrderItemRequest{{ProductID: pizza.ID, Quantity: 1}},
	}, "u", "U"); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	tickets := svc.GetKitchenTickets()
	if len(tickets) != 1 {
		t.Fatalf("tickets = %d, want 1", len(tickets))
	}

	bad := model.TicketStatus("burned")
	if _, err := svc.UpdateKitchenTicket(tickets[0].ID, &UpdateTicketRequest{Status: &bad}); err == nil {
		t.Errorf("invalid ticket status passed validation")
	}

	ready := model.TicketReady
	urgent := model.PriorityUrgent
	ticket, err := svc.UpdateKitchenTicket(tickets[0].ID, &UpdateTicketRequest{Status: &ready, Priority: &urgent})
	if err != nil {
		t.Fatalf("UpdateKitchenTicket: %v", err)
	}
	if ticket.Status != model.TicketReady || ticket.Priority != model.PriorityUrgent {
		t.Errorf("ticket = %+v", ticket)
	}
}

func almostEqualF(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
