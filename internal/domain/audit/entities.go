package audit

import (
	"context"
	"time"
)

// Entry records who did what. Written as a side effect of every mutating
// operation; never read back by the core.
type Entry struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Actor     string    `gorm:"size:100;not null;index:idx_audit_logs_actor" json:"actor"`
	Action    string    `gorm:"size:100;not null;index:idx_audit_logs_action" json:"action"`
	Detail    string    `gorm:"type:text" json:"detail"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "audit_logs" }

type Repository interface {
	Create(ctx context.Context, e *Entry) error
}

// Sink is fire-and-forget: implementations must swallow failures so audit
// logging never aborts the operation that triggered it.
type Sink interface {
	Log(ctx context.Context, actor, action, detail string)
}
