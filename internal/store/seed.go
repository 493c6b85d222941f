package store

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"go-restaurant-pos/internal/model"
)

// DefaultSettings builds the injected configuration from the environment.
// TAX_RATE is a percentage (default 10), CURRENCY_CODE selects the display
// currency (USD or COP).
func DefaultSettings() model.RestaurantSettings {
	taxRate := 10.0
	if v := os.Getenv("TAX_RATE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			taxRate = parsed
		}
	}
	currency := model.CurrencyConfig{Code: "USD", Symbol: "$", Name: "US Dollar", ExchangeRate: 1}
	if os.Getenv("CURRENCY_CODE") == "COP" {
		currency = model.CurrencyConfig{Code: "COP", Symbol: "$", Name: "Colombian Peso", ExchangeRate: 4200}
	}
	return model.RestaurantSettings{
		Currency:      currency,
		TaxRate:       taxRate,
		ServiceCharge: 10,
		RestaurantInfo: model.RestaurantInfo{
			Name:    envOr("RESTAURANT_NAME", "Mi Restaurante"),
			Address: "Calle 123 #45-67, Bogota",
			Phone:   "+57 1 234 5678",
			Email:   "info@mirestaurante.com",
		},
		Notifications: model.NotificationSettings{
			LowStock:        true,
			NewOrders:       true,
			PaymentReceived: true,
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Seed rebuilds the demo dataset. The application carries no persistence,
// so this runs on every start; tests work against empty stores instead.
// Credentials come from SEED_ADMIN_PASSWORD / SEED_CASHIER_PASSWORD, with
// dev defaults and a warning when unset.
func (s *Store) Seed() error {
	adminPwd := envOr("SEED_ADMIN_PASSWORD", "admin123")
	cashierPwd := envOr("SEED_CASHIER_PASSWORD", "cashier123")
	if os.Getenv("SEED_ADMIN_PASSWORD") == "" || os.Getenv("SEED_CASHIER_PASSWORD") == "" {
		log.Println("WARNING: using default dev credentials, set SEED_ADMIN_PASSWORD and SEED_CASHIER_PASSWORD to override")
	}

	var admin, cashier model.User
	for _, u := range []struct {
		username, fullName, role, password string
		target                             *model.User
	}{
		{"admin", "Administrator", model.RoleAdmin, adminPwd, &admin},
		{"cashier", "Ana Torres", model.RoleCashier, cashierPwd, &cashier},
	} {
		user := model.User{Username: u.username, FullName: u.fullName, Role: u.role, IsActive: true}
		if err := user.SetPassword(u.password); err != nil {
			return fmt.Errorf("hash seed password for %s: %w", u.username, err)
		}
		*u.target = s.AddUser(user)
	}

	pizzas := s.AddCategory(model.Category{Name: "Pizzas", Description: "Artisan pizzas", Color: "#ef4444", IsActive: true})
	drinks := s.AddCategory(model.Category{Name: "Drinks", Description: "Sodas, juices and hot drinks", Color: "#3b82f6", IsActive: true})
	salads := s.AddCategory(model.Category{Name: "Salads", Description: "Fresh salads", Color: "#10b981", IsActive: true})

	margherita := s.AddProduct(model.Product{
		Name: "Pizza Margherita", Description: "Tomato, mozzarella and basil",
		Price: 18.50, CategoryID: pizzas.ID, IsActive: true, PreparationTime: 15,
		Ingredients: []string{"Pizza dough", "Tomato sauce", "Mozzarella", "Basil"},
		Allergens:   []string{"Gluten", "Dairy"},
	})
	pepperoni := s.AddProduct(model.Product{
		Name: "Pizza Pepperoni", Description: "Pepperoni and mozzarella",
		Price: 22.00, CategoryID: pizzas.ID, IsActive: true, PreparationTime: 15,
		Ingredients: []string{"Pizza dough", "Tomato sauce", "Mozzarella", "Pepperoni"},
		Allergens:   []string{"Gluten", "Dairy"},
	})
	cola := s.AddProduct(model.Product{
		Name: "Coca Cola", Description: "350ml soda",
		Price: 3.50, CategoryID: drinks.ID, IsActive: true, PreparationTime: 1,
		Ingredients: []string{"Carbonated water", "Sugar", "Caffeine"},
	})
	caesar := s.AddProduct(model.Product{
		Name: "Caesar Salad", Description: "Romaine, croutons, parmesan and caesar dressing",
		Price: 12.00, CategoryID: salads.ID, IsActive: true, PreparationTime: 8,
		Ingredients: []string{"Romaine lettuce", "Croutons", "Parmesan", "Caesar dressing"},
		Allergens:   []string{"Dairy", "Egg"},
	})

	tables := make([]model.Table, 6)
	for i, t := range []struct {
		capacity int
		x, y     float64
		shape    model.TableShape
	}{
		{2, 100, 100, model.ShapeRound},
		{4, 250, 100, model.ShapeSquare},
		{6, 400, 100, model.ShapeRectangle},
		{2, 100, 250, model.ShapeRound},
		{4, 250, 250, model.ShapeSquare},
		{8, 400, 250, model.ShapeRectangle},
	} {
		tables[i] = s.AddTable(model.Table{
			Number:   i + 1,
			Capacity: t.capacity,
			Status:   model.TableAvailable,
			Position: model.Position{X: t.x, Y: t.y},
			Shape:    t.shape,
		})
	}

	now := time.Now()
	in7days := now.AddDate(0, 0, 7)
	in3days := now.AddDate(0, 0, 3)
	flour := s.AddInventoryItem(model.InventoryItem{
		Name: "Wheat Flour", Description: "Flour for pizza and bread", Unit: "kg",
		CurrentStock: 25, MinStock: 10, MaxStock: 50, UnitCost: 2.50,
		Supplier: "Molinos del Sur", Category: model.CategoryIngredients,
	})
	mozzarella := s.AddInventoryItem(model.InventoryItem{
		Name: "Mozzarella Cheese", Description: "Mozzarella for pizzas", Unit: "kg",
		CurrentStock: 8, MinStock: 15, MaxStock: 30, UnitCost: 12.00,
		Supplier: "Lacteos Premium", Category: model.CategoryIngredients,
		ExpirationDate: &in7days,
	})
	tomatoes := s.AddInventoryItem(model.InventoryItem{
		Name: "Tomatoes", Description: "Fresh tomatoes for sauce", Unit: "kg",
		CurrentStock: 12, MinStock: 8, MaxStock: 25, UnitCost: 3.50,
		Supplier: "Verduras Frescas", Category: model.CategoryIngredients,
		ExpirationDate: &in3days,
	})
	s.AddInventoryItem(model.InventoryItem{
		Name: "Coca Cola 2L", Description: "Soda bottles", Unit: "pieces",
		CurrentStock: 24, MinStock: 12, MaxStock: 48, UnitCost: 2.80,
		Supplier: "Distribuidora Bebidas", Category: model.CategoryBeverages,
	})

	s.AddRecipe(model.Recipe{
		ProductID: margherita.ID, Name: "Pizza Margherita",
		Description: "Classic margherita recipe", Servings: 1,
		PrepTime: 10, CookTime: 15, Difficulty: "easy",
		Instructions: []string{
			"Stretch the pizza dough",
			"Spread the tomato sauce evenly",
			"Add the mozzarella",
			"Bake at 220C for 12-15 minutes",
			"Finish with fresh basil",
		},
		Ingredients: []model.RecipeIngredient{
			{InventoryItemID: flour.ID, Quantity: 0.3, Unit: "kg", Notes: "For the dough"},
			{InventoryItemID: mozzarella.ID, Quantity: 0.15, Unit: "kg"},
			{InventoryItemID: tomatoes.ID, Quantity: 0.1, Unit: "kg", Notes: "For the sauce"},
		},
	})

	// An active dine-in order on table 2: this is what the kitchen and
	// floor views show right after boot.
	tableID := tables[1].ID
	if _, err := s.CreateOrder(NewOrder{
		TableID:       &tableID,
		CustomerName:  "Juan Perez",
		CustomerCount: 3,
		OrderType:     model.OrderDineIn,
		Status:        model.OrderPreparing,
		WaiterID:      cashier.ID.String(),
		Items: []NewOrderItem{
			{ProductID: margherita.ID, Quantity: 2},
			{ProductID: cola.ID, Quantity: 3},
		},
	}); err != nil {
		return err
	}

	// A completed visit: served order, invoice, cash payment inside a
	// register session that was closed afterwards.
	register, err := s.OpenRegister(cashier.ID, 100)
	if err != nil {
		return err
	}
	table6 := tables[5].ID
	served, err := s.CreateOrder(NewOrder{
		TableID:       &table6,
		CustomerName:  "Familia Rodriguez",
		CustomerCount: 7,
		OrderType:     model.OrderDineIn,
		Status:        model.OrderServed,
		WaiterID:      cashier.ID.String(),
		Items: []NewOrderItem{
			{ProductID: pepperoni.ID, Quantity: 3},
			{ProductID: caesar.ID, Quantity: 2},
		},
	})
	if err != nil {
		return err
	}
	invoice, err := s.CreateInvoice(served.ID, InvoiceCustomer{}, cashier.ID)
	if err != nil {
		return err
	}
	if _, _, err := s.ProcessPayment(invoice.ID, NewPayment{
		Amount:    invoice.Total,
		Method:    model.PayCash,
		CashierID: cashier.ID,
	}); err != nil {
		return err
	}
	if _, err := s.CloseRegister(register.ID, 100+invoice.Total); err != nil {
		return err
	}

	validTo := time.Date(now.Year(), 12, 31, 23, 59, 59, 0, time.Local)
	s.AddDiscount(model.Discount{
		Name: "Student Discount", Type: model.DiscountPercentage, Value: 10,
		IsActive: true, ValidFrom: now.AddDate(0, -6, 0), ValidTo: validTo,
		MinimumAmount: 20,
	})

	beverages := s.AddProductGroup(model.ProductGroup{Name: "Drinks", Description: "Every drink on the menu", Color: "#3B82F6", IsActive: true})
	food := s.AddProductGroup(model.ProductGroup{Name: "Food", Description: "Mains and sides", Color: "#EF4444", IsActive: true})
	for _, sg := range []struct {
		name  string
		group model.ProductGroup
	}{
		{"Cold", beverages}, {"Hot", beverages}, {"Sodas", beverages},
		{"Starters", food}, {"Mains", food}, {"Desserts", food},
	} {
		s.AddProductSubgroup(model.ProductSubgroup{Name: sg.name, GroupID: sg.group.ID, IsActive: true})
	}

	// Surface the low-stock mozzarella and the tomato expiry right away.
	s.CheckStockLevels()
	return nil
}
