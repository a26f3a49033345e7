package utils

import "testing"

type rechargeInput struct {
	Phone string `validate:"required,cuba_phone"`
}

func TestValidatorCubaPhone(t *testing.T) {
	v := NewValidator()

	if err := v.Struct(rechargeInput{Phone: "5234 5678"}); err != nil {
		t.Fatalf("spaced 8-digit number should validate, got %v", err)
	}
	if err := v.Struct(rechargeInput{Phone: "523456"}); err == nil {
		t.Fatal("short number should fail validation")
	}
	if err := v.Struct(rechargeInput{Phone: ""}); err == nil {
		t.Fatal("empty number should fail validation")
	}
}
