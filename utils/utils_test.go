package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIDLengthAndCharset(t *testing.T) {
	id := GenerateID(14)

	assert.Len(t, id, 14)
	for _, r := range id {
		assert.Contains(t, string(letterRunes), string(r))
	}
}

func TestParseQueryOptionsDefaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/shops", nil)

	opts := ParseQueryOptions(req)

	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, 20, opts.Limit)
	assert.Empty(t, opts.Category)
}

func TestParseQueryOptionsClampsBadValues(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/shops?page=-3&limit=abc&category=Dairy", nil)

	opts := ParseQueryOptions(req)

	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, 20, opts.Limit)
	assert.Equal(t, "Dairy", opts.Category)
}
