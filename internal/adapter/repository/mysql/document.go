package mysql

import (
	"context"

	"gorm.io/gorm"

	"mikopo-backoffice/internal/domain/document"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, d *document.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) ListByApplication(ctx context.Context, applicationID uint64) ([]document.Document, error) {
	var out []document.Document
	res := r.db.WithContext(ctx).
		Where("loan_application_id = ?", applicationID).
		Find(&out)
	return out, res.Error
}

func (r *DocumentRepository) DeleteByApplication(ctx context.Context, applicationID uint64) error {
	return r.db.WithContext(ctx).
		Where("loan_application_id = ?", applicationID).
		Delete(&document.Document{}).Error
}
