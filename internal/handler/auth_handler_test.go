package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerSeller(t *testing.T, e *echo.Echo, username, password string) {
	t.Helper()

	rec := performRequest(e, http.MethodPost, "/seller", echo.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestLoginSuccess(t *testing.T) {
	e, _ := setupTestServer(t)
	registerSeller(t, e, "carol", "secret123")

	rec := performRequest(e, http.MethodPost, "/api/v1/login", echo.Map{
		"username": "carol",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "access_token", resp["access_token"])
	assert.Equal(t, "bearer", resp["token_type"])
}

func TestLoginUnknownUser(t *testing.T) {
	e, _ := setupTestServer(t)

	rec := performRequest(e, http.MethodPost, "/api/v1/login", echo.Map{
		"username": "nobody",
		"password": "whatever",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User not found", resp["error"])
}

func TestLoginWrongPassword(t *testing.T) {
	e, _ := setupTestServer(t)
	registerSeller(t, e, "erin", "rightpassword")

	rec := performRequest(e, http.MethodPost, "/api/v1/login", echo.Map{
		"username": "erin",
		"password": "wrongpassword",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid credentials", resp["error"])
}

func TestLoginValidation(t *testing.T) {
	e, _ := setupTestServer(t)

	rec := performRequest(e, http.MethodPost, "/api/v1/login", echo.Map{
		"username": "carol",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = performRequest(e, http.MethodPost, "/api/v1/login", echo.Map{
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
