package domain

import "context"

// Offer 执行者对某个 Order 的报名。order_id/executor_id 不做外键校验。
type Offer struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    uint `json:"order_id"`
	ExecutorID uint `json:"executor_id"`
}

func (Offer) TableName() string { return "offers" }

type OfferRepository interface {
	List(ctx context.Context) ([]Offer, error)
	Get(ctx context.Context, id uint) (*Offer, error)
	Create(ctx context.Context, o *Offer) error
	Update(ctx context.Context, o *Offer) error
	Delete(ctx context.Context, id uint) error
}
