package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc123", extractBearerToken("Bearer abc123"))
	assert.Equal(t, "abc123", extractBearerToken("Bearer   abc123  "))
	assert.Equal(t, "", extractBearerToken(""))
	assert.Equal(t, "", extractBearerToken("abc123"))
	assert.Equal(t, "", extractBearerToken("Basic abc123"))
	assert.Equal(t, "", extractBearerToken("Bearer "))
}

func TestRequireAuthWithoutToken(t *testing.T) {
	// No Authorization header
	r := httptest.NewRequest("GET", "/api/habits", nil)
	userID, ok := requireAuth(r)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, userID)

	// Wrong scheme
	r = httptest.NewRequest("GET", "/api/habits", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	_, ok = requireAuth(r)
	assert.False(t, ok)
}
