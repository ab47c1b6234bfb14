package handler_test

import (
	"net/http"
	"testing"

	"shop_manager/database"
	"shop_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	app := setupApp(t)

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"name":                  "Nguyen Van A",
		"email":                 "a@example.com",
		"password":              "password123",
		"password_confirmation": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.Success)

	var data struct {
		User struct {
			Email     string `json:"email"`
			Role      string `json:"role"`
			CreatedBy uint   `json:"created_by"`
			Id        uint   `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decodeData(t, env, &data)
	assert.Equal(t, "a@example.com", data.User.Email)
	assert.Equal(t, "customer", data.User.Role)
	// Tự đăng ký thì creator là chính mình
	assert.Equal(t, data.User.Id, data.User.CreatedBy)
	assert.NotEmpty(t, data.Token)

	resp, env = doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "a@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokens model.TokenData
	decodeData(t, env, &tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	body := map[string]any{
		"name":                  "Nguyen Van A",
		"email":                 "a@example.com",
		"password":              "password123",
		"password_confirmation": "password123",
	}
	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Success)

	var count int64
	database.DB.Model(&model.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"name":                  "Nguyen Van A",
		"email":                 "a@example.com",
		"password":              "password123",
		"password_confirmation": "different123",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)
	user, _ := createUser(t, "customer")

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    user.Email,
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "{}", string(env.Data))
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app := setupApp(t)

	resp, env := doRequest(t, app, http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
}
