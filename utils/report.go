package utils

import (
	"time"

	"gorm.io/gorm"
)

// SalesSeries là một dãy bucket cố định cho biểu đồ doanh số.
// Bucket không có đơn hàng luôn trả về 0, không bao giờ bị bỏ trống.
type SalesSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// StartOfDay cắt giờ phút giây, giữ nguyên timezone.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek trả về 00:00 thứ Hai của tuần chứa t (tuần ISO, Mon..Sun).
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Chủ nhật
	}
	return StartOfDay(t).AddDate(0, 0, -(weekday - 1))
}

// StartOfMonth trả về 00:00 ngày mùng 1 của tháng chứa t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func sumOrderAmount(db *gorm.DB, from, to time.Time) (float64, error) {
	var total float64
	err := db.Table("orders").
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

// SalesByDay tính doanh số 7 ngày gần nhất (cũ → mới), mỗi bucket một ngày.
func SalesByDay(db *gorm.DB, now time.Time) (SalesSeries, error) {
	series := SalesSeries{
		Labels: make([]string, 0, 7),
		Values: make([]float64, 0, 7),
	}

	for i := 6; i >= 0; i-- {
		day := StartOfDay(now).AddDate(0, 0, -i)
		total, err := sumOrderAmount(db, day, day.AddDate(0, 0, 1))
		if err != nil {
			return series, err
		}
		series.Labels = append(series.Labels, day.Format("02 Jan"))
		series.Values = append(series.Values, total)
	}

	return series, nil
}

// SalesByWeek tính doanh số tuần hiện tại, luôn đủ 7 bucket Mon..Sun.
func SalesByWeek(db *gorm.DB, now time.Time) (SalesSeries, error) {
	series := SalesSeries{
		Labels: make([]string, 0, 7),
		Values: make([]float64, 0, 7),
	}

	start := StartOfWeek(now)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		total, err := sumOrderAmount(db, day, day.AddDate(0, 0, 1))
		if err != nil {
			return series, err
		}
		series.Labels = append(series.Labels, day.Format("Mon"))
		series.Values = append(series.Values, total)
	}

	return series, nil
}

// SalesByMonth tính doanh số 6 tháng gần nhất (cũ → mới).
func SalesByMonth(db *gorm.DB, now time.Time) (SalesSeries, error) {
	series := SalesSeries{
		Labels: make([]string, 0, 6),
		Values: make([]float64, 0, 6),
	}

	for i := 5; i >= 0; i-- {
		month := StartOfMonth(now).AddDate(0, -i, 0)
		total, err := sumOrderAmount(db, month, month.AddDate(0, 1, 0))
		if err != nil {
			return series, err
		}
		series.Labels = append(series.Labels, month.Format("Jan 2006"))
		series.Values = append(series.Values, total)
	}

	return series, nil
}

// ProductTotal là một dòng kết quả group-by theo sản phẩm.
type ProductTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// TopSellingProducts nhóm order_items theo sản phẩm, cộng số lượng bán.
// desc=true lấy bán chạy nhất, desc=false lấy bán chậm nhất.
func TopSellingProducts(db *gorm.DB, limit int, desc bool) ([]ProductTotal, error) {
	order := "total ASC"
	if desc {
		order = "total DESC"
	}

	var rows []ProductTotal
	err := db.Table("order_items").
		Joins("JOIN products ON order_items.product_id = products.id").
		Select("products.name AS name, SUM(order_items.quantity) AS total").
		Group("products.name").
		Order(order).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ProductRevenue cộng quantity × price đã chụp trong order_items.
// Không đụng tới giá hiện tại của products — doanh thu lịch sử phải ổn định.
func ProductRevenue(db *gorm.DB) ([]ProductTotal, error) {
	var rows []ProductTotal
	err := db.Table("order_items").
		Joins("JOIN products ON order_items.product_id = products.id").
		Select("products.name AS name, SUM(order_items.quantity * order_items.price) AS total").
		Group("products.name").
		Order("total DESC").
		Scan(&rows).Error
	return rows, err
}
