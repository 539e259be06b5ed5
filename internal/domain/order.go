package domain

import "context"

// Order 客户发布的任务单。StartDate/EndDate 存 "YYYY-MM-DD" 文本，
// POST 不做转换，原样入库（见 DESIGN.md）。
type Order struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:100" json:"name"`
	Description string `json:"description"`
	StartDate   string `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate     string `gorm:"column:end_date;type:date" json:"end_date"`
	Address     string `gorm:"size:100" json:"address"`
	Price       int    `json:"price"`
	CustomerID  uint   `json:"customer_id"`
	ExecutorID  uint   `json:"executor_id"`
}

func (Order) TableName() string { return "orders" }

type OrderRepository interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id uint) (*Order, error)
	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uint) error
}
