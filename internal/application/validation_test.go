package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid value", value: "notes/a.md", wantErr: false},
		{name: "empty string", value: "", wantErr: true},
		{name: "whitespace only", value: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired("path", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired(%q) error = %v, wantErr %t", tt.value, err, tt.wantErr)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("expected *ValidationError, got %T", err)
				} else if verr.Field != "path" {
					t.Errorf("field = %q, want path", verr.Field)
				}
			}
		})
	}
}

func TestValidateDateKey(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "padded date", value: "2026-08-30", wantErr: false},
		{name: "legacy unpadded date", value: "2026-8-3", wantErr: false},
		{name: "not a date", value: "today", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateKey("date", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDateKey(%q) error = %v, wantErr %t", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ValidateDateKey(%q) = %v, want ErrInvalidDate", tt.value, err)
			}
		})
	}
}

func TestValidateMonth(t *testing.T) {
	for _, month := range []int{1, 6, 12} {
		if err := ValidateMonth("month", month); err != nil {
			t.Errorf("ValidateMonth(%d) = %v, want nil", month, err)
		}
	}
	for _, month := range []int{0, 13, -1} {
		if err := ValidateMonth("month", month); err == nil {
			t.Errorf("ValidateMonth(%d) = nil, want error", month)
		}
	}
}
