package service

import (
	"sort"
	"time"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/store"

	"github.com/google/uuid"
)

// DashboardStats is the at-a-glance snapshot for the back office.
type DashboardStats struct {
	ActiveOrders    int     `json:"active_orders"`
	PendingTickets  int     `json:"pending_tickets"`
	OccupiedTables  int     `json:"occupied_tables"`
	AvailableTables int     `json:"available_tables"`
	UnreadAlerts    int     `json:"unread_alerts"`
	LowStockItems   int     `json:"low_stock_items"`
	TodaySales      float64 `json:"today_sales"`
	TodayPayments   int     `json:"today_payments"`
}

type ProductSales struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Revenue   float64   `json:"revenue"`
}

// SalesReport aggregates payments and invoiced items over a date range.
type SalesReport struct {
	From          time.Time      `json:"from"`
	To            time.Time      `json:"to"`
	TotalSales    float64        `json:"total_sales"`
	TotalCash     float64        `json:"total_cash"`
	TotalCard     float64        `json:"total_card"`
	TotalTransfer float64        `json:"total_transfer"`
	PaymentCount  int            `json:"payment_count"`
	InvoiceCount  int            `json:"invoice_count"`
	TopProducts   []ProductSales `json:"top_products"`
}

type DashboardService interface {
	GetStats() DashboardStats
	GetSalesReport(from, to time.Time) SalesReport
}

type dashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) DashboardService {
	return &dashboardService{store: st}
}

func (s *dashboardService) GetStats() DashboardStats {
	stats := DashboardStats{}

	for _, o := range s.store.Orders() {
		if o.Status != model.OrderPaid && o.Status != model.OrderCancelled {
			stats.ActiveOrders++
		}
	}
	for _, t := range s.store.KitchenTickets() {
		if t.Status == model.TicketPending || t.Status == model.TicketPreparing {
			stats.PendingTickets++
		}
	}
	for _, t := range s.store.Tables() {
		switch t.Status {
		case model.TableOccupied:
			stats.OccupiedTables++
		case model.TableAvailable:
			stats.AvailableTables++
		}
	}
	for _, a := range s.store.StockAlerts() {
		if !a.IsRead {
			stats.UnreadAlerts++
		}
	}
	for _, item := range s.store.InventoryItems() {
		if item.CurrentStock <= item.MinStock {
			stats.LowStockItems++
		}
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, p := range s.store.Payments() {
		if p.CreatedAt.Before(dayStart) {
			continue
		}
		stats.TodaySales += p.Amount
		stats.TodayPayments++
	}

	return stats
}

func (s *dashboardService) GetSalesReport(from, to time.Time) SalesReport {
	report := SalesReport{From: from, To: to}

	for _, p := range s.store.Payments() {
		if p.CreatedAt.Before(from) || p.CreatedAt.After(to) {
			continue
		}
		report.TotalSales += p.Amount
		report.PaymentCount++
		switch p.Method {
		case model.PayCash:
			report.TotalCash += p.Amount
		case model.PayCard:
			report.TotalCard += p.Amount
		case model.PayTransfer:
			report.TotalTransfer += p.Amount
		}
	}

	byProduct := make(map[uuid.UUID]*ProductSales)
	for _, inv := range s.store.Invoices() {
		if inv.CreatedAt.Before(from) || inv.CreatedAt.After(to) {
			continue
		}
		report.InvoiceCount++
		for _, item := range inv.Items {
			entry, ok := byProduct[item.ProductID]
			if !ok {
				entry = &ProductSales{ProductID: item.ProductID, Name: item.Name}
				byProduct[item.ProductID] = entry
			}
			entry.Quantity += item.Quantity
			entry.Revenue += item.Total
		}
	}

	for _, entry := range byProduct {
		report.TopProducts = append(report.TopProducts, *entry)
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		return report.TopProducts[i].Revenue > report.TopProducts[j].Revenue
	})
	if len(report.TopProducts) > 10 {
		report.TopProducts = report.TopProducts[:10]
	}

	return report
}
