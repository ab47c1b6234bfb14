package handler_test

import (
	"net/http"
	"testing"

	"shop_manager/database"
	"shop_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProduct(t *testing.T, name, sku string, price float64, stock int) model.Product {
	t.Helper()
	product := model.Product{
		Name:          name,
		Sku:           sku,
		Price:         price,
		Status:        "active",
		StockQuantity: stock,
	}
	require.NoError(t, database.DB.Create(&product).Error)
	return product
}

func TestAddCartItemMergesQuantity(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "customer")
	product := createProduct(t, "Phone", "SKU-PHONE", 100, 50)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/cart-items", token, map[string]any{
		"product_id": product.ID,
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Thêm lại cùng sản phẩm phải cộng dồn, không tạo dòng mới
	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/cart-items", token, map[string]any{
		"product_id": product.ID,
		"quantity":   3,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var merged struct {
		Quantity int `json:"quantity"`
	}
	decodeData(t, env, &merged)
	assert.Equal(t, 5, merged.Quantity)

	var count int64
	database.DB.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetMyCartItemsSortByName(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "customer")
	zebra := createProduct(t, "Zebra Case", "SKU-ZEBRA", 10, 50)
	alpha := createProduct(t, "Alpha Cable", "SKU-ALPHA", 20, 50)

	// Zebra vào giỏ trước để mặc định (created_at DESC) trả Alpha trước
	for _, p := range []model.Product{zebra, alpha} {
		resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/cart-items", token, map[string]any{
			"product_id": p.ID,
			"quantity":   1,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	names := func(path string) []string {
		resp, env := doRequest(t, app, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var rows []struct {
			Product struct {
				Name string `json:"name"`
			} `json:"product"`
		}
		decodeData(t, env, &rows)
		got := make([]string, 0, len(rows))
		for _, row := range rows {
			got = append(got, row.Product.Name)
		}
		return got
	}

	assert.Equal(t, []string{"Zebra Case", "Alpha Cable"}, names("/api/v1/cart-items?sort=name_desc"))
	assert.Equal(t, []string{"Alpha Cable", "Zebra Case"}, names("/api/v1/cart-items?sort=name_asc"))
}

func TestAddCartItemRepeatedAddsAccumulate(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "customer")
	product := createProduct(t, "Phone", "SKU-PHONE", 100, 50)

	for i := 0; i < 5; i++ {
		resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/cart-items", token, map[string]any{
			"product_id": product.ID,
			"quantity":   1,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var item model.CartItem
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&item).Error)
	assert.Equal(t, 5, item.Quantity)

	var count int64
	database.DB.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetAllCartItemsAdminSort(t *testing.T) {
	app := setupApp(t)
	_, customerToken := createUser(t, "customer")
	_, adminToken := createUser(t, "admin")
	cheap := createProduct(t, "Cable", "SKU-CABLE", 5, 50)
	pricey := createProduct(t, "Laptop", "SKU-LAPTOP", 1500, 50)

	for _, p := range []model.Product{cheap, pricey} {
		resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/cart-items", customerToken, map[string]any{
			"product_id": p.ID,
			"quantity":   1,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := doRequest(t, app, http.MethodGet, "/api/v1/admin/cart-items?sort=price_desc", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []struct {
		ProductId uint `json:"product_id"`
	}
	decodeData(t, env, &rows)
	require.Len(t, rows, 2)
	assert.Equal(t, pricey.ID, rows[0].ProductId)
	assert.Equal(t, cheap.ID, rows[1].ProductId)
}

func TestEditCartItemOverwritesQuantity(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "customer")
	product := createProduct(t, "Phone", "SKU-PHONE", 100, 50)

	_, _ = doRequest(t, app, http.MethodPost, "/api/v1/cart-items", token, map[string]any{
		"product_id": product.ID,
		"quantity":   2,
	})

	var item model.CartItem
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&item).Error)

	resp, env := doRequest(t, app, http.MethodPut, "/api/v1/cart-items/"+itoa(item.ID), token, map[string]any{
		"quantity": 7,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Quantity int `json:"quantity"`
	}
	decodeData(t, env, &updated)
	assert.Equal(t, 7, updated.Quantity)
}

func TestCartItemForeignOwner(t *testing.T) {
	app := setupApp(t)
	alice, aliceToken := createUser(t, "customer")
	_, bobToken := createUser(t, "customer")
	product := createProduct(t, "Phone", "SKU-PHONE", 100, 50)

	_, _ = doRequest(t, app, http.MethodPost, "/api/v1/cart-items", aliceToken, map[string]any{
		"product_id": product.ID,
		"quantity":   1,
	})

	var item model.CartItem
	require.NoError(t, database.DB.Where("user_id = ?", alice.ID).First(&item).Error)

	resp, _ := doRequest(t, app, http.MethodPut, "/api/v1/cart-items/"+itoa(item.ID), bobToken, map[string]any{
		"quantity": 9,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodDelete, "/api/v1/cart-items/"+itoa(item.ID), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Dòng của alice không bị đụng tới
	var reloaded model.CartItem
	require.NoError(t, database.DB.First(&reloaded, item.ID).Error)
	assert.Equal(t, 1, reloaded.Quantity)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "customer")

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/cart-items", token, map[string]any{
		"product_id": 9999,
		"quantity":   1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}
