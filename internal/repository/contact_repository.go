package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	// List returns every submission in insertion order.
	List(ctx context.Context) ([]*model.Contact, error)
	// ListRecent returns the newest submissions first, at most limit rows.
	ListRecent(ctx context.Context, limit int) ([]*model.Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository { return &contactRepository{db: db} }

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	var res []*model.Contact
	err := r.db.WithContext(ctx).Order("sno").Find(&res).Error
	return res, err
}

func (r *contactRepository) ListRecent(ctx context.Context, limit int) ([]*model.Contact, error) {
	var res []*model.Contact
	err := r.db.WithContext(ctx).Order("sno DESC").Limit(limit).Find(&res).Error
	return res, err
}
