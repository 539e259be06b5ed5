// Package seed populates the store once at startup from the built-in dataset.
package seed

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"go-service-market/internal/domain"
)

const (
	datasetLayout = "01/02/2006" // MM/DD/YYYY，数据集里的写法
	storeLayout   = "2006-01-02" // 入库统一 ISO
)

// Load 依赖顺序插入：users → orders → offers。
// 不校验引用的 id 是否存在，和 CRUD 接口保持一致。
func Load(db *gorm.DB) error {
	for _, rec := range users {
		u := domain.User{
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Age:       rec.Age,
			Email:     rec.Email,
			Role:      rec.Role,
			Phone:     rec.Phone,
		}
		if err := db.Create(&u).Error; err != nil {
			return fmt.Errorf("seed user %s %s: %w", rec.FirstName, rec.LastName, err)
		}
	}

	for _, rec := range orders {
		start, err := convertDate(rec.StartDate)
		if err != nil {
			return fmt.Errorf("seed order %q start_date: %w", rec.Name, err)
		}
		end, err := convertDate(rec.EndDate)
		if err != nil {
			return fmt.Errorf("seed order %q end_date: %w", rec.Name, err)
		}
		o := domain.Order{
			Name:        rec.Name,
			Description: rec.Description,
			StartDate:   start,
			EndDate:     end,
			Address:     rec.Address,
			Price:       rec.Price,
			CustomerID:  rec.CustomerID,
			ExecutorID:  rec.ExecutorID,
		}
		if err := db.Create(&o).Error; err != nil {
			return fmt.Errorf("seed order %q: %w", rec.Name, err)
		}
	}

	for _, rec := range offers {
		o := domain.Offer{OrderID: rec.OrderID, ExecutorID: rec.ExecutorID}
		if err := db.Create(&o).Error; err != nil {
			return fmt.Errorf("seed offer order=%d executor=%d: %w", rec.OrderID, rec.ExecutorID, err)
		}
	}
	return nil
}

// Counts 数据集规模，启动日志和测试用
func Counts() (usersN, ordersN, offersN int) {
	return len(users), len(orders), len(offers)
}

func convertDate(s string) (string, error) {
	t, err := time.Parse(datasetLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(storeLayout), nil
}
