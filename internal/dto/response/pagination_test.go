package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse([]string{"a", "b"}, 1, 10, 25)
	assert.Equal(t, []string{"a", "b"}, resp.Data)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, int64(25), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages, "partial last page rounds up")

	resp = NewPaginatedResponse([]string{}, 1, 10, 20)
	assert.Equal(t, 2, resp.Pagination.TotalPages)

	resp = NewPaginatedResponse([]string{}, 1, 0, 20)
	assert.Equal(t, 0, resp.Pagination.TotalPages, "guards against a zero page size")
}
