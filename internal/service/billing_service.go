package service

import (
	"encoding/json"
	"fmt"
	"time"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/store"
	"go-restaurant-pos/internal/ws"
	"go-restaurant-pos/pkg/validator"

	"github.com/google/uuid"
)

type CreateInvoiceRequest struct {
	OrderID         uuid.UUID  `json:"order_id" validate:"uuid_required"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerAddress string     `json:"customer_address"`
	Notes           string     `json:"notes"`
	DueDate         *time.Time `json:"due_date"`
}

type UpdateInvoiceRequest struct {
	CustomerName    *string    `json:"customer_name"`
	CustomerEmail   *string    `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   *string    `json:"customer_phone"`
	CustomerAddress *string    `json:"customer_address"`
	Notes           *string    `json:"notes"`
	DueDate         *time.Time `json:"due_date"`
}

type PaymentRequest struct {
	InvoiceID uuid.UUID           `json:"invoice_id" validate:"uuid_required"`
	Amount    float64             `json:"amount" validate:"required,gt=0"`
	Method    model.PaymentMethod `json:"method" validate:"required,oneof=cash card transfer"`
	Reference string              `json:"reference"`
}

type BillingService interface {
	CreateInvoice(req *CreateInvoiceRequest, cashierID uuid.UUID) (model.Invoice, error)
	UpdateInvoice(id uuid.UUID, req *UpdateInvoiceRequest) (model.Invoice, error)
	GetInvoices() []model.Invoice
	GetInvoice(id uuid.UUID) (model.Invoice, error)

	ProcessPayment(req *PaymentRequest, cashierID uuid.UUID, cashierName string) (model.Invoice, model.Payment, error)
	GetPayments() []model.Payment
}

type billingService struct {
	store *store.Store
	wsHub *ws.Hub
}

func NewBillingService(st *store.Store, hub *ws.Hub) BillingService {
	return &billingService{store: st, wsHub: hub}
}

func (s *billingService) CreateInvoice(req *CreateInvoiceRequest, cashierID uuid.UUID) (model.Invoice, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Invoice{}, validationError(errs)
	}
	return s.store.CreateInvoice(req.OrderID, store.InvoiceCustomer{
		Name:    req.CustomerName,
		Email:   req.CustomerEmail,
		Phone:   req.CustomerPhone,
		Address: req.CustomerAddress,
		Notes:   req.Notes,
		DueDate: req.DueDate,
	}, cashierID)
}

func (s *billingService) UpdateInvoice(id uuid.UUID, req *UpdateInvoiceRequest) (model.Invoice, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Invoice{}, validationError(errs)
	}
	return s.store.UpdateInvoice(id, store.InvoicePatch{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Notes:           req.Notes,
		DueDate:         req.DueDate,
	})
}

func (s *billingService) GetInvoices() []model.Invoice {
	return s.store.Invoices()
}

func (s *billingService) GetInvoice(id uuid.UUID) (model.Invoice, error) {
	return s.store.Invoice(id)
}

func (s *billingService) ProcessPayment(req *PaymentRequest, cashierID uuid.UUID, cashierName string) (model.Invoice, model.Payment, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Invoice{}, model.Payment{}, validationError(errs)
	}

	invoice, payment, err := s.store.ProcessPayment(req.InvoiceID, store.NewPayment{
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		CashierID: cashierID,
	})
	if err != nil {
		return model.Invoice{}, model.Payment{}, err
	}

	if s.store.Settings().Notifications.PaymentReceived {
		go func() {
			payload := map[string]interface{}{
				"type":   "payment_update",
				"action": "payment_received",
				"payment": map[string]interface{}{
					"id":         payment.ID,
					"invoice_id": invoice.ID,
					"amount":     payment.Amount,
					"method":     payment.Method,
				},
				"invoice": map[string]interface{}{
					"id":             invoice.ID,
					"number":         invoice.InvoiceNumber,
					"payment_status": invoice.PaymentStatus,
					"paid_amount":    invoice.PaidAmount,
					"total":          invoice.Total,
				},
				"user": map[string]interface{}{
					"id":   cashierID,
					"name": cashierName,
				},
				"message": fmt.Sprintf("%s received a %s payment of %.2f on invoice %s", cashierName, payment.Method, payment.Amount, invoice.InvoiceNumber),
			}
			msg, _ := json.Marshal(payload)
			s.wsHub.Broadcast <- msg
		}()
	}

	return invoice, payment, nil
}

func (s *billingService) GetPayments() []model.Payment {
	return s.store.Payments()
}
