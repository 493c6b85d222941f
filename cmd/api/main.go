package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-restaurant-pos/internal/handler"
	"go-restaurant-pos/internal/middleware"
	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/service"
	"go-restaurant-pos/internal/store"
	"go-restaurant-pos/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup State
	st := store.New(store.DefaultSettings())
	if err := st.Seed(); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	authService := service.NewAuthService(st)
	catalogService := service.NewCatalogService(st)
	tableService := service.NewTableService(st)
	orderService := service.NewOrderService(st, wsHub)
	inventoryService := service.NewInventoryService(st, wsHub)
	recipeService := service.NewRecipeService(st)
	billingService := service.NewBillingService(st, wsHub)
	registerService := service.NewRegisterService(st)
	settingsService := service.NewSettingsService(st)
	dashboardService := service.NewDashboardService(st)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	tableHandler := handler.NewTableHandler(tableService)
	orderHandler := handler.NewOrderHandler(orderService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	billingHandler := handler.NewBillingHandler(billingService)
	registerHandler := handler.NewRegisterHandler(registerService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Restaurant POS v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(st))

	protected.Get("/auth/profile", authHandler.GetProfile)
	protected.Get("/users", middleware.RequireRole(model.RoleAdmin), authHandler.GetUsers)

	// Dashboard
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)
	protected.Get("/dashboard/sales-report", dashboardHandler.GetSalesReport)

	// Catalog: categories, products, groups, discounts
	protected.Get("/categories", catalogHandler.GetCategories)
	protected.Post("/categories", middleware.RequireRole(model.RoleAdmin), catalogHandler.CreateCategory)
	protected.Put("/categories/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.UpdateCategory)
	protected.Delete("/categories/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.DeleteCategory)

	protected.Get("/products", catalogHandler.GetProducts)
	protected.Get("/products/:id", catalogHandler.GetProduct)
	protected.Post("/products", middleware.RequireRole(model.RoleAdmin), catalogHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.DeleteProduct)

	protected.Get("/product-groups", catalogHandler.GetGroups)
	protected.Post("/product-groups", middleware.RequireRole(model.RoleAdmin), catalogHandler.CreateGroup)
	protected.Put("/product-groups/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.UpdateGroup)
	protected.Delete("/product-groups/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.DeleteGroup)

	protected.Get("/product-subgroups", catalogHandler.GetSubgroups)
	protected.Post("/product-subgroups", middleware.RequireRole(model.RoleAdmin), catalogHandler.CreateSubgroup)
	protected.Put("/product-subgroups/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.UpdateSubgroup)
	protected.Delete("/product-subgroups/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.DeleteSubgroup)

	protected.Get("/discounts", catalogHandler.GetDiscounts)
	protected.Post("/discounts", middleware.RequireRole(model.RoleAdmin), catalogHandler.CreateDiscount)
	protected.Put("/discounts/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.UpdateDiscount)
	protected.Delete("/discounts/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.DeleteDiscount)

	// Floor plan
	protected.Get("/tables", tableHandler.GetTables)
	protected.Get("/tables/:id", tableHandler.GetTable)
	protected.Post("/tables", middleware.RequireRole(model.RoleAdmin), tableHandler.CreateTable)
	protected.Put("/tables/:id", tableHandler.UpdateTable)
	protected.Put("/tables/:id/status", tableHandler.UpdateTableStatus)
	protected.Delete("/tables/:id", middleware.RequireRole(model.RoleAdmin), tableHandler.DeleteTable)

	// Orders and kitchen
	protected.Get("/orders", orderHandler.GetOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Put("/orders/:id", orderHandler.UpdateOrder)
	protected.Delete("/orders/:id", orderHandler.DeleteOrder)
	protected.Post("/orders/:id/items", orderHandler.AddOrderItem)
	protected.Put("/orders/:id/items/:itemId", orderHandler.UpdateOrderItem)
	protected.Delete("/orders/:id/items/:itemId", orderHandler.RemoveOrderItem)

	protected.Get("/kitchen/tickets", orderHandler.GetKitchenTickets)
	protected.Put("/kitchen/tickets/:id", orderHandler.UpdateKitchenTicket)

	// Inventory
	protected.Get("/inventory", inventoryHandler.GetItems)
	protected.Get("/inventory/transactions", inventoryHandler.GetTransactions)
	protected.Post("/inventory/transactions", inventoryHandler.CreateTransaction)
	protected.Get("/inventory/alerts", inventoryHandler.GetAlerts)
	protected.Post("/inventory/alerts/check", inventoryHandler.CheckStockLevels)
	protected.Put("/inventory/alerts/:id/read", inventoryHandler.MarkAlertRead)
	protected.Get("/inventory/:id", inventoryHandler.GetItem)
	protected.Post("/inventory", middleware.RequireRole(model.RoleAdmin), inventoryHandler.CreateItem)
	protected.Put("/inventory/:id", middleware.RequireRole(model.RoleAdmin), inventoryHandler.UpdateItem)
	protected.Delete("/inventory/:id", middleware.RequireRole(model.RoleAdmin), inventoryHandler.DeleteItem)

	// Recipes
	protected.Get("/recipes", recipeHandler.GetRecipes)
	protected.Get("/recipes/:id", recipeHandler.GetRecipe)
	protected.Post("/recipes", middleware.RequireRole(model.RoleAdmin), recipeHandler.CreateRecipe)
	protected.Put("/recipes/:id", middleware.RequireRole(model.RoleAdmin), recipeHandler.UpdateRecipe)
	protected.Delete("/recipes/:id", middleware.RequireRole(model.RoleAdmin), recipeHandler.DeleteRecipe)

	// Billing
	protected.Get("/invoices", billingHandler.GetInvoices)
	protected.Get("/invoices/:id", billingHandler.GetInvoice)
	protected.Post("/invoices", billingHandler.CreateInvoice)
	protected.Put("/invoices/:id", billingHandler.UpdateInvoice)
	protected.Get("/payments", billingHandler.GetPayments)
	protected.Post("/payments", billingHandler.ProcessPayment)

	// Cash registers
	protected.Get("/registers", registerHandler.GetRegisters)
	protected.Get("/registers/:id", registerHandler.GetRegister)
	protected.Get("/registers/:id/summary", registerHandler.GetRegisterSummary)
	protected.Post("/registers/open", registerHandler.OpenRegister)
	protected.Put("/registers/:id/close", registerHandler.CloseRegister)

	// Settings
	protected.Get("/settings", settingsHandler.GetSettings)
	protected.Put("/settings", middleware.RequireRole(model.RoleAdmin), settingsHandler.UpdateSettings)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
