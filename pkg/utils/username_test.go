package utils

import "testing"

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid simple", username: "alice", wantErr: false},
		{name: "valid with digits and underscore", username: "alice_42", wantErr: false},
		{name: "valid starts with digit", username: "1alice", wantErr: false},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: "abcdefghijklmnopqrstu", wantErr: true},
		{name: "starts with underscore", username: "_alice", wantErr: true},
		{name: "contains space", username: "ali ce", wantErr: true},
		{name: "contains dash", username: "ali-ce", wantErr: true},
		{name: "empty", username: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeUsername(t *testing.T) {
	if got := NormalizeUsername("  Alice_42 "); got != "alice_42" {
		t.Errorf("NormalizeUsername() = %q, want %q", got, "alice_42")
	}
}
