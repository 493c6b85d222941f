package handler

import (
	"time"

	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.service.GetStats())
}

func (h *DashboardHandler) GetSalesReport(c *fiber.Ctx) error {
	rangeParam := c.Query("range", "7d") // Default 7 days
	now := time.Now()
	var startDate time.Time
	endDate := now

	switch rangeParam {
	case "1d":
		startDate = now.AddDate(0, 0, -1)
	case "7d":
		startDate = now.AddDate(0, 0, -7)
	case "1m":
		startDate = now.AddDate(0, -1, 0)
	case "3m":
		startDate = now.AddDate(0, -3, 0)
	case "12m":
		startDate = now.AddDate(0, -12, 0)
	default:
		startDate = now.AddDate(0, 0, -7)
	}

	return c.JSON(h.service.GetSalesReport(startDate, endDate))
}
