package service

import (
	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/store"
	"go-restaurant-pos/pkg/validator"
)

type UpdateSettingsRequest struct {
	Currency       *model.CurrencyConfig       `json:"currency"`
	TaxRate        *float64                    `json:"tax_rate" validate:"omitempty,gte=0,lte=100"`
	ServiceCharge  *float64                    `json:"service_charge" validate:"omitempty,gte=0,lte=100"`
	RestaurantInfo *model.RestaurantInfo       `json:"restaurant_info"`
	Notifications  *model.NotificationSettings `json:"notifications"`
}

type SettingsService interface {
	GetSettings() model.RestaurantSettings
	UpdateSettings(req *UpdateSettingsRequest) (model.RestaurantSettings, error)
}

type settingsService struct {
	store *store.Store
}

func NewSettingsService(st *store.Store) SettingsService {
	return &settingsService{store: st}
}

func (s *settingsService) GetSettings() model.RestaurantSettings {
	return s.store.Settings()
}

func (s *settingsService) UpdateSettings(req *UpdateSettingsRequest) (model.RestaurantSettings, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.RestaurantSettings{}, validationError(errs)
	}
	return s.store.UpdateSettings(store.SettingsPatch{
		Currency:       req.Currency,
		TaxRate:        req.TaxRate,
		ServiceCharge:  req.ServiceCharge,
		RestaurantInfo: req.RestaurantInfo,
		Notifications:  req.Notifications,
	}), nil
}
