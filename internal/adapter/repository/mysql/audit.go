package mysql

import (
	"context"

	"gorm.io/gorm"

	"mikopo-backoffice/internal/domain/audit"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Create(ctx context.Context, e *audit.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}
