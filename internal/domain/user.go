package domain

import "context"

type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Age       int    `json:"age"`
	Email     string `gorm:"size:100" json:"email"`
	Role      string `gorm:"size:10" json:"role"` // "customer"/"executor"
	Phone     string `gorm:"size:100" json:"phone"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id uint) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
}
