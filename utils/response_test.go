package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, "Donations retrieved successfully", []string{"a", "b"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StandardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Donations retrieved successfully", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequest(c, "Invalid request", "amount is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp StandardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Invalid request", resp.Message)
}

func TestSuccessWithPaginationTotals(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessWithPagination(c, "ok", []int{1, 2, 3}, 23, 1, 10)

	var resp struct {
		Pagination struct {
			Total      int64 `json:"total"`
			TotalPages int64 `json:"total_pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(23), resp.Pagination.Total)
	assert.Equal(t, int64(3), resp.Pagination.TotalPages)
}
