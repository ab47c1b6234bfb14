package utils

import (
	"testing"
	"time"

	"shop_manager/database"
	"shop_manager/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.Migrate(db)
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, createdAt time.Time, total float64) {
	t.Helper()
	order := model.Order{
		UserId:      1,
		AddressId:   1,
		TotalAmount: total,
	}
	order.CreatedAt = createdAt
	require.NoError(t, db.Create(&order).Error)
}

func TestStartOfWeek(t *testing.T) {
	loc := time.UTC

	// Thứ Tư 2024-05-15 → Thứ Hai 2024-05-13
	wednesday := time.Date(2024, 5, 15, 14, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, loc), StartOfWeek(wednesday))

	// Chủ Nhật vẫn thuộc tuần bắt đầu từ thứ Hai trước đó
	sunday := time.Date(2024, 5, 19, 23, 59, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, loc), StartOfWeek(sunday))

	monday := time.Date(2024, 5, 13, 0, 0, 0, 0, loc)
	assert.Equal(t, monday, StartOfWeek(monday))
}

func TestSalesByWeekFixedBuckets(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC) // Thứ Tư

	seedOrder(t, db, time.Date(2024, 5, 14, 9, 0, 0, 0, time.UTC), 100) // Thứ Ba
	seedOrder(t, db, time.Date(2024, 5, 16, 9, 0, 0, 0, time.UTC), 50)  // Thứ Năm
	seedOrder(t, db, time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC), 999)  // tuần trước, phải bị loại

	series, err := SalesByWeek(db, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, series.Labels)
	assert.Equal(t, []float64{0, 100, 0, 50, 0, 0, 0}, series.Values)
}

func TestSalesByDaySevenBuckets(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	seedOrder(t, db, now.AddDate(0, 0, -2), 30)
	seedOrder(t, db, now, 70)
	seedOrder(t, db, now.AddDate(0, 0, -10), 500) // ngoài cửa sổ 7 ngày

	series, err := SalesByDay(db, now)
	require.NoError(t, err)

	require.Len(t, series.Labels, 7)
	require.Len(t, series.Values, 7)
	assert.Equal(t, "09 May", series.Labels[0])
	assert.Equal(t, "15 May", series.Labels[6])
	assert.Equal(t, 30.0, series.Values[4])
	assert.Equal(t, 70.0, series.Values[6])

	sum := 0.0
	for _, v := range series.Values {
		sum += v
	}
	assert.Equal(t, 100.0, sum)
}

func TestSalesByMonthSixBuckets(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	seedOrder(t, db, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 200)
	seedOrder(t, db, time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC), 888) // quá 6 tháng

	series, err := SalesByMonth(db, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"Dec 2023", "Jan 2024", "Feb 2024", "Mar 2024", "Apr 2024", "May 2024"}, series.Labels)
	assert.Equal(t, []float64{0, 0, 0, 200, 0, 0}, series.Values)
}

func TestTopSellingProducts(t *testing.T) {
	db := newTestDB(t)

	phone := model.Product{Name: "Phone", Sku: "SKU-PHONE", Price: 100}
	laptop := model.Product{Name: "Laptop", Sku: "SKU-LAPTOP", Price: 900}
	require.NoError(t, db.Create(&phone).Error)
	require.NoError(t, db.Create(&laptop).Error)

	require.NoError(t, db.Create(&model.OrderItem{OrderId: 1, ProductId: phone.ID, Quantity: 5, Price: 100}).Error)
	require.NoError(t, db.Create(&model.OrderItem{OrderId: 1, ProductId: laptop.ID, Quantity: 2, Price: 900}).Error)
	require.NoError(t, db.Create(&model.OrderItem{OrderId: 2, ProductId: phone.ID, Quantity: 3, Price: 100}).Error)

	top, err := TopSellingProducts(db, 5, true)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Phone", top[0].Name)
	assert.Equal(t, 8.0, top[0].Total)

	least, err := TopSellingProducts(db, 5, false)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", least[0].Name)
	assert.Equal(t, 2.0, least[0].Total)
}

func TestProductRevenueUsesSnapshotPrice(t *testing.T) {
	db := newTestDB(t)

	phone := model.Product{Name: "Phone", Sku: "SKU-PHONE", Price: 100}
	require.NoError(t, db.Create(&phone).Error)
	require.NoError(t, db.Create(&model.OrderItem{OrderId: 1, ProductId: phone.ID, Quantity: 2, Price: 100}).Error)

	// Đổi giá sản phẩm sau khi đã bán, doanh thu lịch sử không được đổi theo
	require.NoError(t, db.Model(&phone).Update("price", 999).Error)

	rows, err := ProductRevenue(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 200.0, rows[0].Total)
}
