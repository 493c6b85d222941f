package store

import (
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

// CustomerInfo accompanies a transition to occupied or reserved.
type CustomerInfo struct {
	Name  string
	Count int
}

// AddTable registers a table on the floor plan. Table numbers are not
// checked for uniqueness; the floor editor owns numbering and duplicates
// are tolerated here.
func (s *Store) AddTable(t model.Table) model.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.Stamp(s.now())
	if t.Status == "" {
		t.Status = model.TableAvailable
	}
	s.tables = append(s.tables, t)
	return t
}

type TablePatch struct {
	Number          *int
	Capacity        *int
	Position        *model.Position
	Shape           *model.TableShape
	ReservationTime *time.Time
}

func (s *Store) UpdateTable(id uuid.UUID, patch TablePatch) (model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTableLocked(id)
	if t == nil {
		return model.Table{}, ErrTableNotFound
	}
	if patch.Number != nil {
		t.Number = *patch.Number
	}
	if patch.Capacity != nil {
		t.Capacity = *patch.Capacity
	}
	if patch.Position != nil {
		t.Position = *patch.Position
	}
	if patch.Shape != nil {
		t.Shape = *patch.Shape
	}
	if patch.ReservationTime != nil {
		t.ReservationTime = patch.ReservationTime
	}
	t.Touch(s.now())
	return *t, nil
}

// DeleteTable refuses to remove a table while an open order still points at
// it.
func (s *Store) DeleteTable(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.tables {
		if s.tables[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrTableNotFound
	}
	for _, o := range s.orders {
		if o.TableID != nil && *o.TableID == id &&
			o.Status != model.OrderPaid && o.Status != model.OrderCancelled {
			return ErrTableInUse
		}
	}
	s.tables = append(s.tables[:idx], s.tables[idx+1:]...)
	return nil
}

// UpdateTableStatus moves a table between floor states. Any state is
// reachable from any other. Becoming available always clears the customer
// fields, the reservation and the current-order link; every other
// transition leaves untouched what it was not given.
func (s *Store) UpdateTableStatus(id uuid.UUID, status model.TableStatus, customer *CustomerInfo) (model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTableLocked(id)
	if t == nil {
		return model.Table{}, ErrTableNotFound
	}
	s.setTableStatusLocked(t, status, customer)
	return *t, nil
}

func (s *Store) setTableStatusLocked(t *model.Table, status model.TableStatus, customer *CustomerInfo) {
	t.Status = status
	switch status {
	case model.TableAvailable:
		t.CustomerName = ""
		t.CustomerCount = 0
		t.CurrentOrder = nil
		t.ReservationTime = nil
	case model.TableOccupied, model.TableReserved:
		if customer != nil {
			t.CustomerName = customer.Name
			t.CustomerCount = customer.Count
		}
	}
	t.Touch(s.now())
}

func (s *Store) Tables() []model.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Table, len(s.tables))
	copy(out, s.tables)
	return out
}

func (s *Store) Table(id uuid.UUID) (model.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t := s.findTableLocked(id); t != nil {
		return *t, nil
	}
	return model.Table{}, ErrTableNotFound
}
