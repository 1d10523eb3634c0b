package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequestOffset(t *testing.T) {
	assert.Equal(t, 0, PaginatedRequest{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 20, PaginatedRequest{Page: 3, PerPage: 10}.Offset())
	assert.Equal(t, 0, PaginatedRequest{Page: 0, PerPage: 10}.Offset())
}

func TestPaginatedRequestLimit(t *testing.T) {
	assert.Equal(t, 10, PaginatedRequest{Page: 1, PerPage: 10}.Limit())
	assert.Equal(t, 10, PaginatedRequest{Page: 1, PerPage: 0}.Limit(), "zero falls back to the default")
	assert.Equal(t, 100, PaginatedRequest{Page: 1, PerPage: 500}.Limit(), "clamped to the maximum")
}
