package model

import (
	"time"

	"github.com/google/uuid"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableCleaning  TableStatus = "cleaning"
)

type TableShape string

const (
	ShapeRound     TableShape = "round"
	ShapeSquare    TableShape = "square"
	ShapeRectangle TableShape = "rectangle"
)

// Position is the table's placement on the floor plan canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Table is one seat group on the floor plan. Customer fields and the
// current-order link are only meaningful while the table is occupied or
// reserved; the store clears them on every transition to available.
type Table struct {
	BaseModel
	Number          int         `json:"number"`
	Capacity        int         `json:"capacity"`
	Status          TableStatus `json:"status"`
	CurrentOrder    *uuid.UUID  `json:"current_order,omitempty"`
	CustomerName    string      `json:"customer_name,omitempty"`
	CustomerCount   int         `json:"customer_count,omitempty"`
	ReservationTime *time.Time  `json:"reservation_time,omitempty"`
	Position        Position    `json:"position"`
	Shape           TableShape  `json:"shape"`
}
