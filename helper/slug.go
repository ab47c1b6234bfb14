package helper

import (
	"fmt"
	"strings"

	"shop_manager/model"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func GenerateUniqueCategorySlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Category{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

// GenerateSKU sinh mã SKU dạng SKU-XXXXXXXXXXXX khi client không cung cấp.
func GenerateSKU() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "SKU-" + id[:12]
}

// GenerateOrderCode sinh mã đơn hàng công khai ORD-XXXXXXXX.
func GenerateOrderCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + id[:8]
}
