package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-service-market/internal/domain"
)

type OfferRepo struct{ db *gorm.DB }

func NewOfferRepo(db *gorm.DB) *OfferRepo { return &OfferRepo{db: db} }

func (r *OfferRepo) List(ctx context.Context) ([]domain.Offer, error) {
	offers := make([]domain.Offer, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *OfferRepo) Get(ctx context.Context, id uint) (*domain.Offer, error) {
	var o domain.Offer
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepo) Create(ctx context.Context, o *domain.Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepo) Update(ctx context.Context, o *domain.Offer) error {
	res := r.db.WithContext(ctx).Model(&domain.Offer{}).
		Where("id = ?", o.ID).
		Select("order_id", "executor_id").
		Updates(o)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OfferRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Offer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
