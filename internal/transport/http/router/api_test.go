package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-service-market/internal/core/database"
	"go-service-market/internal/domain"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := database.NewGorm(database.Opts{
		Driver:   "sqlite",
		DSN:      "file::memory:",
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Order{}, &domain.Offer{}))
	return NewEngine(zap.NewNop(), db), db
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

var testUser = map[string]any{
	"first_name": "Nina",
	"last_name":  "Petrov",
	"age":        31,
	"email":      "nina@example.com",
	"role":       "customer",
	"phone":      "+1 555 0101",
}

func TestHealth(t *testing.T) {
	r, _ := setup(t)
	w := do(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUserCreateThenGetRoundtrip(t *testing.T) {
	r, _ := setup(t)

	w := do(t, r, http.MethodPost, "/users", testUser)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Empty(t, w.Body.String())

	w = do(t, r, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var list []map[string]any
	decode(t, w, &list)
	require.Len(t, list, 1)
	id := list[0]["id"].(float64)
	require.NotZero(t, id)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/users/%d", int(id)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	decode(t, w, &got)
	require.Equal(t, "Nina", got["first_name"])
	require.Equal(t, "Petrov", got["last_name"])
	require.EqualValues(t, 31, got["age"])
	require.Equal(t, "nina@example.com", got["email"])
	require.Equal(t, "customer", got["role"])
	require.Equal(t, "+1 555 0101", got["phone"])
	require.Equal(t, id, got["id"])
}

func TestUserListCountsInsertedMinusDeleted(t *testing.T) {
	r, _ := setup(t)

	for i := 0; i < 3; i++ {
		w := do(t, r, http.MethodPost, "/users", testUser)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := do(t, r, http.MethodDelete, "/users/2", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	w = do(t, r, http.MethodGet, "/users", nil)
	var list []map[string]any
	decode(t, w, &list)
	require.Len(t, list, 2)
}

func TestListEmptyIsArray(t *testing.T) {
	r, _ := setup(t)
	for _, path := range []string{"/users", "/orders", "/offers"} {
		w := do(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "[]", w.Body.String(), path)
	}
}

func TestDeleteThenGetNotFound(t *testing.T) {
	r, _ := setup(t)

	bodies := map[string]any{
		"/users":  testUser,
		"/orders": map[string]any{"name": "Job", "description": "d", "start_date": "2024-01-01", "end_date": "2024-01-02", "address": "a", "price": 10, "customer_id": 1, "executor_id": 2},
		"/offers": map[string]any{"order_id": 1, "executor_id": 2},
	}
	for path, body := range bodies {
		w := do(t, r, http.MethodPost, path, body)
		require.Equal(t, http.StatusCreated, w.Code, path)

		w = do(t, r, http.MethodDelete, path+"/1", nil)
		require.Equal(t, http.StatusNoContent, w.Code, path)

		w = do(t, r, http.MethodGet, path+"/1", nil)
		require.Equal(t, http.StatusNotFound, w.Code, path)

		w = do(t, r, http.MethodDelete, path+"/1", nil)
		require.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestGetMissingUserIs404NotCrash(t *testing.T) {
	r, _ := setup(t)
	w := do(t, r, http.MethodGet, "/users/9999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	decode(t, w, &body)
	require.Equal(t, "user not found", body["error"])
}

func TestInvalidIDIs400(t *testing.T) {
	r, _ := setup(t)
	w := do(t, r, http.MethodGet, "/users/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMalformedBodyIs400(t *testing.T) {
	r, _ := setup(t)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserPutFullReplacement(t *testing.T) {
	r, _ := setup(t)
	do(t, r, http.MethodPost, "/users", testUser)

	upd := map[string]any{
		"first_name": "Nina",
		"last_name":  "Petrova",
		"age":        0, // 零值允许，required 只挡缺字段
		"email":      "nina@example.com",
		"role":       "executor",
		"phone":      "+1 555 0102",
	}
	w := do(t, r, http.MethodPut, "/users/1", upd)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	w = do(t, r, http.MethodGet, "/users/1", nil)
	var got map[string]any
	decode(t, w, &got)
	require.Equal(t, "Petrova", got["last_name"])
	require.EqualValues(t, 0, got["age"])
	require.Equal(t, "executor", got["role"])
}

func TestUserPutMissingFieldIs400(t *testing.T) {
	r, _ := setup(t)
	do(t, r, http.MethodPost, "/users", testUser)

	upd := map[string]any{
		"first_name": "Changed",
		"last_name":  "Changed",
		"age":        99,
		"email":      "changed@example.com",
		"role":       "executor",
		// phone 缺失
	}
	w := do(t, r, http.MethodPut, "/users/1", upd)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// 行未被改动
	w = do(t, r, http.MethodGet, "/users/1", nil)
	var got map[string]any
	decode(t, w, &got)
	require.Equal(t, "Nina", got["first_name"])
}

func TestUserPutMissingIDIs404(t *testing.T) {
	r, _ := setup(t)
	w := do(t, r, http.MethodPut, "/users/77", map[string]any{
		"first_name": "x", "last_name": "x", "age": 1, "email": "x", "role": "x", "phone": "x",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

// POST /orders 不解析日期，原样存取；PUT 才要求 ISO 格式
func TestOrderDateAsymmetry(t *testing.T) {
	r, _ := setup(t)

	post := map[string]any{
		"name":        "Paint fence",
		"description": "Front yard",
		"start_date":  "03/12/2024", // 原样透传
		"end_date":    "03/14/2024",
		"address":     "1 Elm St",
		"price":       100,
		"customer_id": 1,
		"executor_id": 2,
	}
	w := do(t, r, http.MethodPost, "/orders", post)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/orders/1", nil)
	var got map[string]any
	decode(t, w, &got)
	require.Equal(t, "03/12/2024", got["start_date"])
	require.Equal(t, "03/14/2024", got["end_date"])

	put := map[string]any{
		"name":        "Paint fence",
		"description": "Front yard",
		"start_date":  "2024-01-15",
		"end_date":    "2024-02-01",
		"address":     "1 Elm St",
		"price":       100,
		"customer_id": 1,
		"executor_id": 2,
	}
	w = do(t, r, http.MethodPut, "/orders/1", put)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/orders/1", nil)
	decode(t, w, &got)
	require.Equal(t, "2024-01-15", got["start_date"])
	require.Equal(t, "2024-02-01", got["end_date"])
}

func TestOrderPutBadDateIs400(t *testing.T) {
	r, _ := setup(t)
	do(t, r, http.MethodPost, "/orders", map[string]any{
		"name": "Job", "description": "d", "start_date": "2024-01-01", "end_date": "2024-01-02",
		"address": "a", "price": 10, "customer_id": 1, "executor_id": 2,
	})

	put := map[string]any{
		"name": "Job", "description": "d", "start_date": "15/01/2024", "end_date": "2024-02-01",
		"address": "a", "price": 10, "customer_id": 1, "executor_id": 2,
	}
	w := do(t, r, http.MethodPut, "/orders/1", put)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	decode(t, w, &body)
	require.Contains(t, body["error"], "YYYY-MM-DD")
}

func TestOfferCreateRoundtrip(t *testing.T) {
	r, _ := setup(t)

	w := do(t, r, http.MethodPost, "/offers", map[string]any{"order_id": 1, "executor_id": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/offers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	decode(t, w, &got)
	require.Len(t, got, 3) // id + order_id + executor_id，没有别的
	require.EqualValues(t, 1, got["order_id"])
	require.EqualValues(t, 2, got["executor_id"])
	require.EqualValues(t, 1, got["id"])
}

func TestPostIgnoresClientSuppliedID(t *testing.T) {
	r, _ := setup(t)

	body := map[string]any{}
	for k, v := range testUser {
		body[k] = v
	}
	body["id"] = 500
	w := do(t, r, http.MethodPost, "/users", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
