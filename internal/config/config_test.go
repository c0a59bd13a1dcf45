package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripScheme(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://api.habitgrid.app", "api.habitgrid.app"},
		{"http://api.habitgrid.app:8080", "api.habitgrid.app"},
		{"https://api.habitgrid.app/v1/", "api.habitgrid.app"},
		{"localhost:8080", "localhost"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripScheme(tt.in), "input %q", tt.in)
	}
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t,
		[]string{"https://habitgrid.app", "http://localhost:3000"},
		parseOrigins(" https://habitgrid.app , http://localhost:3000 ,"))
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Environment: "production"}).IsProduction())
	assert.True(t, (&Config{Environment: " Production "}).IsProduction())
	assert.False(t, (&Config{Environment: "development"}).IsProduction())
}
