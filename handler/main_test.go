package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/router"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

var userSeq int

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.Migrate(db)
	database.DB = db
	database.Redis = nil

	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func createUser(t *testing.T, role string) (model.User, string) {
	t.Helper()
	userSeq++

	hash, err := helper.HashPassword("password123")
	require.NoError(t, err)

	user := model.User{
		Name:     fmt.Sprintf("User %d", userSeq),
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Password: hash,
		Role:     role,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		UserId: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	require.NoError(t, err)
	return user, token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func itoa(id uint) string {
	return fmt.Sprintf("%d", id)
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}
