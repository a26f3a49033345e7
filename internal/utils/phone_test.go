package utils

import "testing"

func TestCleanPhone(t *testing.T) {
	cases := map[string]string{
		"5234 5678":   "52345678",
		" 52345678 ":  "52345678",
		"5234\t5678":  "52345678",
		"52 34 56 78": "52345678",
		"52345678":    "52345678",
	}

	for input, want := range cases {
		if got := CleanPhone(input); got != want {
			t.Errorf("CleanPhone(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"52345678", "00000000", "99999999"}
	for _, number := range valid {
		if !ValidPhone(number) {
			t.Errorf("ValidPhone(%q) = false, want true", number)
		}
	}

	invalid := []string{"", "523456", "523456789", "5234567a", "5234 5678", "٥٢٣٤٥٦٧٨"}
	for _, number := range invalid {
		if ValidPhone(number) {
			t.Errorf("ValidPhone(%q) = true, want false", number)
		}
	}
}

func TestCleanThenValidate(t *testing.T) {
	if !ValidPhone(CleanPhone("5234 5678")) {
		t.Fatal("expected spaced 8-digit number to validate after cleaning")
	}
	if ValidPhone(CleanPhone("523456")) {
		t.Fatal("expected short number to stay invalid after cleaning")
	}
}
