package auditstore

import (
	"context"

	"gorm.io/gorm"
	dbmodels "placement-gateway/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.ExtApiAudit) (id string, err error)
	ListByRequestID(ctx context.Context, requestID string) ([]dbmodels.ExtApiAudit, error)
}

// Instance is set when auditing is enabled.
var Instance Provider

func NewHandler(DB *gorm.DB) {
	Instance = NewInstance(DB)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.ExtApiAudit) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	err = i.db.
		WithContext(ctx).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByRequestID(ctx context.Context, requestID string) ([]dbmodels.ExtApiAudit, error) {
	list := []dbmodels.ExtApiAudit{}
	err := i.db.
		WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
