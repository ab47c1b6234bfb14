package helper

import (
	"log"
	"time"

	"shop_manager/database"
	"shop_manager/model"

	"github.com/go-co-op/gocron/v2"
)

var lowStockScheduler gocron.Scheduler

// ScanLowStockProducts quét sản phẩm đang active có tồn kho dưới ngưỡng cảnh báo.
func ScanLowStockProducts() {
	log.Println("[CRON] ScanLowStockProducts triggered")

	db := database.DB
	var products []model.Product
	if err := db.Where("status = ? AND stock_quantity <= low_stock_alert", "active").
		Order("stock_quantity ASC").
		Find(&products).Error; err != nil {
		log.Printf("Lỗi khi quét tồn kho: %v", err)
		return
	}

	if len(products) == 0 {
		return
	}

	log.Printf("Có %d sản phẩm dưới ngưỡng tồn kho", len(products))
	SendLowStockEmail(products)
}

func StartLowStockScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	lowStockScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(7, 0, 0),
			),
		),
		gocron.NewTask(ScanLowStockProducts),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Low stock scheduler started")
}

func StopLowStockScheduler() {
	if lowStockScheduler != nil {
		_ = lowStockScheduler.Shutdown()
	}
}
