package seed

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-service-market/internal/core/database"
	"go-service-market/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:   "sqlite",
		DSN:      "file::memory:",
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Order{}, &domain.Offer{}))
	return db
}

func TestLoad(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Load(db))

	wantUsers, wantOrders, wantOffers := Counts()

	var usersN, ordersN, offersN int64
	require.NoError(t, db.Model(&domain.User{}).Count(&usersN).Error)
	require.NoError(t, db.Model(&domain.Order{}).Count(&ordersN).Error)
	require.NoError(t, db.Model(&domain.Offer{}).Count(&offersN).Error)
	require.EqualValues(t, wantUsers, usersN)
	require.EqualValues(t, wantOrders, ordersN)
	require.EqualValues(t, wantOffers, offersN)
}

func TestLoadConvertsOrderDates(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Load(db))

	var o domain.Order
	require.NoError(t, db.First(&o, "id = ?", 1).Error)
	// 数据集里是 03/12/2024
	require.Equal(t, "2024-03-12", o.StartDate)
	require.Equal(t, "2024-03-14", o.EndDate)
}

func TestConvertDate(t *testing.T) {
	got, err := convertDate("12/31/2023")
	require.NoError(t, err)
	require.Equal(t, "2023-12-31", got)

	_, err = convertDate("2023-12-31")
	require.Error(t, err)

	_, err = convertDate("13/01/2023")
	require.Error(t, err)
}
