// Package uuid tests for record id generation and validation.
package uuid

import "testing"

// TestNew_format verifies generated ids pass strict v4 validation.
func TestNew_format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := New()
		if !IsValid(id) {
			t.Fatalf("New() = %q, not a valid UUID v4", id)
		}
	}
}

// TestNew_unique verifies consecutive ids are distinct.
func TestNew_unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("New() produced duplicate id %q", id)
		}
		seen[id] = true
	}
}

// TestIsValid verifies format checking.
func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid v4", "123e4567-e89b-42d3-a456-426614174000", true},
		{"uppercase hex", "123E4567-E89B-42D3-A456-426614174000", true},
		{"wrong version", "123e4567-e89b-12d3-a456-426614174000", false},
		{"wrong variant", "123e4567-e89b-42d3-c456-426614174000", false},
		{"missing dashes", "123e4567e89b42d3a456426614174000", false},
		{"too short", "123e4567-e89b-42d3-a456", false},
		{"empty", "", false},
		{"not hex", "zzze4567-e89b-42d3-a456-426614174000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestValidate_error verifies Validate returns an error for bad input and
// nil for good input.
func TestValidate_error(t *testing.T) {
	if err := Validate(New()); err != nil {
		t.Errorf("Validate(New()) error = %v", err)
	}
	if err := Validate("not-an-id"); err == nil {
		t.Error("Validate('not-an-id') = nil, want error")
	}
}
