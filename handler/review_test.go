package handler_test

import (
	"net/http"
	"testing"

	"shop_manager/database"
	"shop_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewOncePerProduct(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "customer")
	product := createProduct(t, "Phone", "SKU-PHONE", 100, 50)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/reviews", token, map[string]any{
		"product_id": product.ID,
		"rating":     5,
		"comment":    "Great",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Review lần hai cùng sản phẩm phải bị chặn, bảng không đổi
	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/reviews", token, map[string]any{
		"product_id": product.ID,
		"rating":     1,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, env.Success)

	var count int64
	database.DB.Model(&model.Review{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestReviewRatingBounds(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "customer")
	product := createProduct(t, "Phone", "SKU-PHONE", 100, 50)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/reviews", token, map[string]any{
		"product_id": product.ID,
		"rating":     6,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/reviews", token, map[string]any{
		"product_id": product.ID,
		"rating":     0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetReviewsFilterByProduct(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "customer")
	_, otherToken := createUser(t, "customer")
	phone := createProduct(t, "Phone", "SKU-PHONE", 100, 50)
	laptop := createProduct(t, "Laptop", "SKU-LAPTOP", 900, 10)

	doRequest(t, app, http.MethodPost, "/api/v1/reviews", token, map[string]any{
		"product_id": phone.ID, "rating": 5,
	})
	doRequest(t, app, http.MethodPost, "/api/v1/reviews", otherToken, map[string]any{
		"product_id": laptop.ID, "rating": 3,
	})

	resp, env := doRequest(t, app, http.MethodGet, "/api/v1/reviews?product_id="+itoa(phone.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []struct {
		ProductId uint `json:"product_id"`
	}
	decodeData(t, env, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, phone.ID, rows[0].ProductId)
}

func TestWishlistDuplicateRejected(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "customer")
	product := createProduct(t, "Phone", "SKU-PHONE", 100, 50)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/wishlists", token, map[string]any{
		"product_id": product.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/wishlists", token, map[string]any{
		"product_id": product.ID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, env.Success)

	var count int64
	database.DB.Model(&model.Wishlist{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestWishlistScopedToOwner(t *testing.T) {
	app := setupApp(t)
	_, aliceToken := createUser(t, "customer")
	_, bobToken := createUser(t, "customer")
	product := createProduct(t, "Phone", "SKU-PHONE", 100, 50)

	doRequest(t, app, http.MethodPost, "/api/v1/wishlists", aliceToken, map[string]any{
		"product_id": product.ID,
	})

	resp, env := doRequest(t, app, http.MethodGet, "/api/v1/wishlists", bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []struct {
		Id uint `json:"id"`
	}
	decodeData(t, env, &rows)
	assert.Empty(t, rows)
}
