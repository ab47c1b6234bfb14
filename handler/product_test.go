package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"shop_manager/database"
	"shop_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductGeneratesSku(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createUser(t, "admin")

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/products", adminToken, map[string]any{
		"name":           "Phone",
		"price":          100.0,
		"status":         "active",
		"stock_quantity": 50,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var data struct {
		Sku string `json:"sku"`
	}
	decodeData(t, env, &data)
	assert.True(t, strings.HasPrefix(data.Sku, "SKU-"))
}

func TestCreateProductAdminOnly(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "customer")

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/products", token, map[string]any{
		"name":           "Phone",
		"price":          100.0,
		"status":         "active",
		"stock_quantity": 50,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestDeleteProductIsSoft(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createUser(t, "admin")
	product := createProduct(t, "Phone", "SKU-PHONE", 100, 50)

	resp, _ := doRequest(t, app, http.MethodDelete, "/api/v1/products/"+itoa(product.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Biến mất khỏi truy vấn thường
	resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/products/"+itoa(product.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Nhưng bản ghi vẫn còn trong bảng
	var count int64
	database.DB.Unscoped().Model(&model.Product{}).Where("id = ?", product.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteProductKeepsRelatedRows(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "customer")
	_, adminToken := createUser(t, "admin")
	product := createProduct(t, "Phone", "SKU-PHONE", 100, 50)

	doRequest(t, app, http.MethodPost, "/api/v1/cart-items", token, map[string]any{
		"product_id": product.ID, "quantity": 1,
	})
	doRequest(t, app, http.MethodPost, "/api/v1/reviews", token, map[string]any{
		"product_id": product.ID, "rating": 4,
	})
	doRequest(t, app, http.MethodPost, "/api/v1/wishlists", token, map[string]any{
		"product_id": product.ID,
	})

	resp, _ := doRequest(t, app, http.MethodDelete, "/api/v1/products/"+itoa(product.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Soft delete sản phẩm không được kéo theo dữ liệu của user
	var cartCount, reviewCount, wishCount int64
	database.DB.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	database.DB.Model(&model.Review{}).Where("user_id = ?", user.ID).Count(&reviewCount)
	database.DB.Model(&model.Wishlist{}).Where("user_id = ?", user.ID).Count(&wishCount)
	assert.Equal(t, int64(1), cartCount)
	assert.Equal(t, int64(1), reviewCount)
	assert.Equal(t, int64(1), wishCount)
}

func TestGetAvailableProductsFiltersStock(t *testing.T) {
	app := setupApp(t)
	createProduct(t, "In stock", "SKU-IN", 100, 5)
	createProduct(t, "Sold out", "SKU-OUT", 100, 0)
	inactive := createProduct(t, "Hidden", "SKU-HIDDEN", 100, 5)
	require.NoError(t, database.DB.Model(&inactive).Update("status", "inactive").Error)

	resp, env := doRequest(t, app, http.MethodGet, "/api/v1/products/available", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Rows []struct {
			Name string `json:"name"`
		} `json:"rows"`
	}
	decodeData(t, env, &data)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "In stock", data.Rows[0].Name)
}

func TestGetProductsPagination(t *testing.T) {
	app := setupApp(t)
	for i := 0; i < 5; i++ {
		createProduct(t, "Product "+itoa(uint(i)), "SKU-"+itoa(uint(i)), 100, 10)
	}

	resp, env := doRequest(t, app, http.MethodGet, "/api/v1/products?per_page=2&page=1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Rows       []struct{} `json:"rows"`
		TotalCount int64      `json:"totalCount"`
	}
	decodeData(t, env, &data)
	assert.Len(t, data.Rows, 2)
	assert.Equal(t, int64(5), data.TotalCount)
}

func TestCategorySlugAutoGenerated(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createUser(t, "admin")

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/categories", adminToken, map[string]any{
		"name": "Điện thoại",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var category model.Category
	decodeData(t, env, &category)
	assert.Equal(t, "dien-thoai", category.Slug)

	// Trùng tên thì từ chối
	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/categories", adminToken, map[string]any{
		"name": "Điện thoại",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
