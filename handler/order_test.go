package handler_test

import (
	"net/http"
	"testing"

	"shop_manager/database"
	"shop_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAddress(t *testing.T, userId uint) model.Address {
	t.Helper()
	address := model.Address{
		UserId:   userId,
		FullName: "Nguyen Van A",
		Phone:    "0900000000",
		Province: "Ha Noi",
		District: "Cau Giay",
		Street:   "1 Duy Tan",
	}
	require.NoError(t, database.DB.Create(&address).Error)
	return address
}

type orderData struct {
	Id         uint   `json:"id"`
	PublicCode string `json:"public_code"`
	Amounts    struct {
		Subtotal    float64 `json:"subtotal"`
		ShippingFee float64 `json:"shipping_fee"`
		Discount    float64 `json:"discount"`
		TotalAmount float64 `json:"total_amount"`
	} `json:"amounts"`
	Status struct {
		Order   string `json:"order"`
		Payment string `json:"payment"`
	} `json:"status"`
}

func TestCreateOrderComputesTotalOnce(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "customer")
	address := createAddress(t, user.ID)

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/orders", token, map[string]any{
		"address_id":   address.ID,
		"subtotal":     100.0,
		"shipping_fee": 10.0,
		"discount":     5.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.Success)

	var order orderData
	decodeData(t, env, &order)
	assert.Equal(t, 100.0, order.Amounts.Subtotal)
	assert.Equal(t, 10.0, order.Amounts.ShippingFee)
	assert.Equal(t, 5.0, order.Amounts.Discount)
	assert.Equal(t, 105.0, order.Amounts.TotalAmount)
	assert.Equal(t, "pending", order.Status.Order)
	assert.Equal(t, "unpaid", order.Status.Payment)
	assert.NotEmpty(t, order.PublicCode)
}

func TestCreateOrderEnvelopeShape(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "customer")
	address := createAddress(t, user.ID)

	// Không gửi shipping_fee thì mặc định 0
	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/orders", token, map[string]any{
		"address_id": address.ID,
		"subtotal":   200.0,
		"discount":   20.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order orderData
	decodeData(t, env, &order)
	assert.Equal(t, 0.0, order.Amounts.ShippingFee)
	assert.Equal(t, 180.0, order.Amounts.TotalAmount)
}

func TestCreateOrderForeignAddress(t *testing.T) {
	app := setupApp(t)
	_, aliceToken := createUser(t, "customer")
	bob, _ := createUser(t, "customer")
	bobAddress := createAddress(t, bob.ID)

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/orders", aliceToken, map[string]any{
		"address_id": bobAddress.ID,
		"subtotal":   100.0,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "{}", string(env.Data))
}

func TestOrderItemsSnapshotPrice(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "customer")
	address := createAddress(t, user.ID)
	product := createProduct(t, "Phone", "SKU-PHONE", 50, 100)

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/orders", token, map[string]any{
		"address_id": address.ID,
		"subtotal":   100.0,
		"items": []map[string]any{
			{"product_id": product.ID, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order orderData
	decodeData(t, env, &order)

	// Đổi giá sản phẩm sau khi đã đặt
	require.NoError(t, database.DB.Model(&product).Update("price", 999).Error)

	resp, env = doRequest(t, app, http.MethodGet, "/api/v1/orders/"+itoa(order.Id)+"/items", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []struct {
		Price    float64 `json:"price"`
		Subtotal float64 `json:"subtotal"`
	}
	decodeData(t, env, &items)
	require.Len(t, items, 1)
	assert.Equal(t, 50.0, items[0].Price)
	assert.Equal(t, 100.0, items[0].Subtotal)
}

func TestEditOrderAdminOnly(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "customer")
	_, adminToken := createUser(t, "admin")
	address := createAddress(t, user.ID)

	_, env := doRequest(t, app, http.MethodPost, "/api/v1/orders", token, map[string]any{
		"address_id": address.ID,
		"subtotal":   100.0,
	})
	var order orderData
	decodeData(t, env, &order)

	resp, _ := doRequest(t, app, http.MethodPut, "/api/v1/orders/"+itoa(order.Id), token, map[string]any{
		"status": "paid",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, env = doRequest(t, app, http.MethodPut, "/api/v1/orders/"+itoa(order.Id), adminToken, map[string]any{
		"status":         "paid",
		"payment_status": "paid",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated orderData
	decodeData(t, env, &updated)
	assert.Equal(t, "paid", updated.Status.Order)
	assert.Equal(t, "paid", updated.Status.Payment)
	// Tổng tiền bất biến khi đổi trạng thái
	assert.Equal(t, 100.0, updated.Amounts.TotalAmount)
}

func TestDeleteOrderSoftCancels(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "customer")
	address := createAddress(t, user.ID)

	_, env := doRequest(t, app, http.MethodPost, "/api/v1/orders", token, map[string]any{
		"address_id": address.ID,
		"subtotal":   100.0,
	})
	var order orderData
	decodeData(t, env, &order)

	resp, _ := doRequest(t, app, http.MethodDelete, "/api/v1/orders/"+itoa(order.Id), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reloaded model.Order
	require.NoError(t, database.DB.First(&reloaded, order.Id).Error)
	assert.Equal(t, "cancelled", reloaded.Status)
	assert.Equal(t, "unpaid", reloaded.PaymentStatus)
}
