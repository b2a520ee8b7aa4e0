package types

import (
	"context"
	"time"

	"github.com/rosterkit/roster/internal/clock"
)

// BaseModel is a base model for all roster records. CreatedAt and UpdatedAt
// default to the clock carried in the context so tests can freeze time.
type BaseModel struct {
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
}

func GetDefaultBaseModel(ctx context.Context) BaseModel {
	now := clock.FromContext(ctx).Now().UTC()
	return BaseModel{
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: GetUserID(ctx),
		UpdatedBy: GetUserID(ctx),
	}
}

// Touch refreshes UpdatedAt and UpdatedBy after a mutation.
func (m *BaseModel) Touch(ctx context.Context) {
	m.UpdatedAt = clock.FromContext(ctx).Now().UTC()
	m.UpdatedBy = GetUserID(ctx)
}
