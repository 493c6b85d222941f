package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel handles the UUID primary identifier and standard timestamps
// shared by every mutable entity.
type BaseModel struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stamp assigns a fresh UUID and sets both timestamps. Called by the store
// when an entity is first added to a collection.
func (base *BaseModel) Stamp(now time.Time) {
	base.ID = uuid.New()
	base.CreatedAt = now
	base.UpdatedAt = now
}

// Touch refreshes UpdatedAt after a mutation.
func (base *BaseModel) Touch(now time.Time) {
	base.UpdatedAt = now
}
