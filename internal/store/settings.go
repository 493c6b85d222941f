package store

import "go-restaurant-pos/internal/model"

// SettingsPatch applies partial updates; nil fields leave the current
// value untouched.
type SettingsPatch struct {
	Currency       *model.CurrencyConfig
	TaxRate        *float64
	ServiceCharge  *float64
	RestaurantInfo *model.RestaurantInfo
	Notifications  *model.NotificationSettings
}

func (s *Store) Settings() model.RestaurantSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) UpdateSettings(patch SettingsPatch) model.RestaurantSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Currency != nil {
		s.settings.Currency = *patch.Currency
	}
	if patch.TaxRate != nil {
		s.settings.TaxRate = *patch.TaxRate
	}
	if patch.ServiceCharge != nil {
		s.settings.ServiceCharge = *patch.ServiceCharge
	}
	if patch.RestaurantInfo != nil {
		s.settings.RestaurantInfo = *patch.RestaurantInfo
	}
	if patch.Notifications != nil {
		s.settings.Notifications = *patch.Notifications
	}
	return s.settings
}
