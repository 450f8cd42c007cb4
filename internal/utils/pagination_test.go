// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/products?"+query, nil)
	return c
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := GetPaginationParams(paginationContext(""))

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "created_at", params.Sort)
	assert.Equal(t, "desc", params.Order)
}

func TestGetPaginationParamsClampsInvalidValues(t *testing.T) {
	params := GetPaginationParams(paginationContext("page=-3&limit=9999&order=sideways"))

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "desc", params.Order)
}

func TestGetPaginationParamsPassesFilters(t *testing.T) {
	params := GetPaginationParams(paginationContext("page=2&limit=5&search=keripik&category=Kuliner&order=asc"))

	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 5, params.Limit)
	assert.Equal(t, "keripik", params.Search)
	assert.Equal(t, "Kuliner", params.Category)
	assert.Equal(t, "asc", params.Order)
}

func TestCreatePaginationResultComputesTotalPages(t *testing.T) {
	params := PaginationParams{Page: 1, Limit: 20}
	result := CreatePaginationResult(nil, 41, params)

	assert.Equal(t, int64(41), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}
