package validator

import (
	"strings"
	"testing"
)

type clockedStruct struct {
	Start string `validate:"required,clock"`
}

type credentialStruct struct {
	Username string `validate:"required,min=3,max=32,username"`
	Password string `validate:"required,min=8,max=32,password"`
}

func TestValidateClock(t *testing.T) {
	cv := NewValidator()

	valid := []string{"00:00", "09:30", "23:59"}
	for _, v := range valid {
		if err := cv.Validate(&clockedStruct{Start: v}); err != nil {
			t.Errorf("expected %q to be a valid clock, got %v", v, err)
		}
	}

	invalid := []string{"24:00", "9:75", "noon", "09:30:00"}
	for _, v := range invalid {
		if err := cv.Validate(&clockedStruct{Start: v}); err == nil {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}

func TestValidateCredentials(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(&credentialStruct{Username: "john_doe-1", Password: "Secret123!"}); err != nil {
		t.Fatalf("expected valid credentials to pass, got %v", err)
	}

	tests := []struct {
		name string
		req  credentialStruct
	}{
		{"username with spaces", credentialStruct{Username: "john doe", Password: "Secret123!"}},
		{"username too short", credentialStruct{Username: "jd", Password: "Secret123!"}},
		{"password without special", credentialStruct{Username: "johndoe", Password: "Secret123"}},
		{"password without upper", credentialStruct{Username: "johndoe", Password: "secret123!"}},
		{"password without digit", credentialStruct{Username: "johndoe", Password: "Secretpass!"}},
		{"password too short", credentialStruct{Username: "johndoe", Password: "Se1!"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := cv.Validate(&tc.req); err == nil {
				t.Error("expected validation to fail")
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&credentialStruct{Username: "", Password: "short"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	message := cv.FormatValidationErrors(err)
	if !strings.Contains(message, "Username is required") {
		t.Errorf("expected required message for Username, got %q", message)
	}
	if !strings.Contains(message, "Password must be at least 8 characters") {
		t.Errorf("expected min message for Password, got %q", message)
	}
}
