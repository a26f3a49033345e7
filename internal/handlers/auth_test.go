package handlers

import (
	"testing"

	"github.com/example/recarga/internal/utils"
)

func TestRegisterRequestPhoneValidation(t *testing.T) {
	v := utils.NewValidator()
	base := registerRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"}

	if err := v.Struct(base); err != nil {
		t.Fatalf("phone is optional, got %v", err)
	}

	withPhone := base
	withPhone.Phone = "5234 5678"
	if err := v.Struct(withPhone); err != nil {
		t.Fatalf("formatted 8-digit phone should pass, got %v", err)
	}

	bad := base
	bad.Phone = "12345"
	if err := v.Struct(bad); err == nil {
		t.Fatal("short phone should fail validation")
	}
}
