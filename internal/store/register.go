package store

import (
	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

// OpenRegister starts a cashier session. A cashier can only hold one open
// register at a time.
func (s *Store) OpenRegister(cashierID uuid.UUID, openingAmount float64) (model.CashRegister, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.registers {
		if r.CashierID == cashierID && r.Status == model.RegisterOpen {
			return model.CashRegister{}, ErrRegisterAlreadyOpen
		}
	}
	register := model.CashRegister{
		ID:            uuid.New(),
		CashierID:     cashierID,
		OpeningAmount: openingAmount,
		OpenedAt:      s.now(),
		Status:        model.RegisterOpen,
	}
	s.registers = append(s.registers, register)
	return register, nil
}

// CloseRegister stamps the session closed and records the counted closing
// amount as entered. Reconciliation against expected cash stays a
// read-time computation (see RegisterSummary).
func (s *Store) CloseRegister(id uuid.UUID, closingAmount float64) (model.CashRegister, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	register := s.findRegisterLocked(id)
	if register == nil {
		return model.CashRegister{}, ErrRegisterNotFound
	}
	if register.Status != model.RegisterOpen {
		return model.CashRegister{}, ErrRegisterNotOpen
	}
	now := s.now()
	register.ClosingAmount = &closingAmount
	register.ClosedAt = &now
	register.Status = model.RegisterClosed
	return *register, nil
}

// RegisterSummary aggregates the payments attributable to a session: same
// cashier, created inside [openedAt, closedAt] (or up to now while the
// session is still open). The difference against expected cash is only
// computed once a closing amount exists.
func (s *Store) RegisterSummary(id uuid.UUID) (model.RegisterSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	register := s.findRegisterLocked(id)
	if register == nil {
		return model.RegisterSummary{}, ErrRegisterNotFound
	}
	from, to := register.Window(s.now())

	summary := model.RegisterSummary{RegisterID: id}
	for _, p := range s.payments {
		if p.CashierID != register.CashierID {
			continue
		}
		if p.CreatedAt.Before(from) || p.CreatedAt.After(to) {
			continue
		}
		summary.TotalSales += p.Amount
		summary.PaymentCount++
		switch p.Method {
		case model.PayCash:
			summary.TotalCash += p.Amount
		case model.PayCard:
			summary.TotalCard += p.Amount
		case model.PayTransfer:
			summary.TotalTransfer += p.Amount
		}
	}
	summary.ExpectedCash = register.OpeningAmount + summary.TotalCash
	if register.ClosingAmount != nil {
		summary.Difference = *register.ClosingAmount - summary.ExpectedCash
	}
	return summary, nil
}

func (s *Store) CashRegisters() []model.CashRegister {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CashRegister, len(s.registers))
	copy(out, s.registers)
	return out
}

func (s *Store) CashRegister(id uuid.UUID) (model.CashRegister, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if register := s.findRegisterLocked(id); register != nil {
		return *register, nil
	}
	return model.CashRegister{}, ErrRegisterNotFound
}
