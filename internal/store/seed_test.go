package store

import (
	"testing"

	"go-restaurant-pos/internal/model"
)

func TestSeedProducesCoherentState(t *testing.T) {
	t.Setenv("SEED_ADMIN_PASSWORD", "admin123")
	s := New(DefaultSettings())
	if err := s.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	admin, err := s.UserByUsername("admin")
	if err != nil {
		t.Fatalf("admin user missing: %v", err)
	}
	if admin.Role != model.RoleAdmin || !admin.CheckPassword("admin123") {
		t.Errorf("admin account not usable out of the box")
	}

	if len(s.Products()) == 0 || len(s.Tables()) == 0 || len(s.InventoryItems()) == 0 {
		t.Fatalf("seed left collections empty")
	}

	// The active visit occupies its table; the completed visit released its
	// table and left a fully paid invoice behind.
	occupied := 0
	for _, table := range s.Tables() {
		if table.Status == model.TableOccupied {
			occupied++
		}
	}
	if occupied != 1 {
		t.Errorf("occupied tables = %d, want 1", occupied)
	}

	paid := 0
	for _, inv := range s.Invoices() {
		if inv.PaymentStatus == model.PaymentPaid {
			paid++
			if inv.PaidAt == nil {
				t.Errorf("paid invoice missing PaidAt")
			}
		}
	}
	if paid != 1 {
		t.Errorf("paid invoices = %d, want 1", paid)
	}

	// The closed register reconciles exactly against its cash intake.
	registers := s.CashRegisters()
	if len(registers) != 1 {
		t.Fatalf("registers = %d, want 1", len(registers))
	}
	summary, err := s.RegisterSummary(registers[0].ID)
	if err != nil {
		t.Fatalf("RegisterSummary: %v", err)
	}
	if summary.PaymentCount != 1 || !almostEqual(summary.Difference, 0) {
		t.Errorf("seeded register does not reconcile: %+v", summary)
	}

	if len(s.Recipes()) == 0 {
		t.Errorf("no seeded recipe")
	}
	for _, r := range s.Recipes() {
		if r.TotalCost <= 0 {
			t.Errorf("seeded recipe %q has no cost", r.Name)
		}
	}
}
