package model

// CurrencyConfig describes the display currency. Formatting itself lives in
// the presentation layer; the core only carries the configuration.
type CurrencyConfig struct {
	Code         string  `json:"code"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	ExchangeRate float64 `json:"exchange_rate"` // rate to USD
}

type RestaurantInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website,omitempty"`
}

type NotificationSettings struct {
	LowStock        bool `json:"low_stock"`
	NewOrders       bool `json:"new_orders"`
	PaymentReceived bool `json:"payment_received"`
}

// RestaurantSettings is the injected configuration read by the order and
// invoice math. TaxRate is a percentage (10 means 10%).
type RestaurantSettings struct {
	Currency       CurrencyConfig       `json:"currency"`
	TaxRate        float64              `json:"tax_rate"`
	ServiceCharge  float64              `json:"service_charge"`
	RestaurantInfo RestaurantInfo       `json:"restaurant_info"`
	Notifications  NotificationSettings `json:"notifications"`
}
