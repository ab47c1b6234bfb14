package helper

import (
	"fmt"
	"log"
	"os"
	"strings"

	"shop_manager/model"

	"gopkg.in/gomail.v2"
)

func sendMail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), 587, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}

// SendPasswordResetEmail gửi link đặt lại mật khẩu, hết hạn sau 1 giờ.
func SendPasswordResetEmail(to, token string) {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("APP_URL"), token)
	body := fmt.Sprintf("Nhấp vào liên kết để đặt lại mật khẩu: %s\nLiên kết hết hạn sau 1 giờ.", resetLink)

	if err := sendMail(to, "Khôi phục mật khẩu", body); err != nil {
		log.Printf("Lỗi gửi email khôi phục mật khẩu cho %s: %v", to, err)
	}
}

// SendLowStockEmail gửi danh sách sản phẩm sắp hết hàng cho admin.
func SendLowStockEmail(products []model.Product) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" || len(products) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("Các sản phẩm dưới ngưỡng tồn kho:\n\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (SKU %s): còn %d, ngưỡng cảnh báo %d\n", p.Name, p.Sku, p.StockQuantity, p.LowStockAlert)
	}

	if err := sendMail(adminEmail, "Cảnh báo tồn kho thấp", b.String()); err != nil {
		log.Printf("Lỗi gửi email cảnh báo tồn kho: %v", err)
	}
}
