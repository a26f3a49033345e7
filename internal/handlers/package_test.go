package handlers

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseOptionalPrice(t *testing.T) {
	if _, present, err := parseOptionalPrice(nil); err != nil || present {
		t.Fatalf("absent field: present=%v err=%v, want absent", present, err)
	}

	value, present, err := parseOptionalPrice(json.RawMessage("null"))
	if err != nil || !present || value != nil {
		t.Fatalf("explicit null: value=%v present=%v err=%v, want present nil", value, present, err)
	}

	value, present, err = parseOptionalPrice(json.RawMessage("120"))
	if err != nil || !present || value == nil || *value != 120 {
		t.Fatalf("number: value=%v present=%v err=%v, want 120", value, present, err)
	}

	if _, _, err := parseOptionalPrice(json.RawMessage(`"abc"`)); err == nil {
		t.Fatal("expected error for non-numeric original_price")
	}
}

func TestBuildUpdatesClearsDiscountOnNull(t *testing.T) {
	var req packageRequest
	if err := json.Unmarshal([]byte(`{"price":80,"original_price":null}`), &req); err != nil {
		t.Fatal(err)
	}

	updates, err := req.buildUpdates(time.Now())
	if err != nil {
		t.Fatal(err)
	}
	value, ok := updates["original_price"]
	if !ok {
		t.Fatal("original_price missing from updates, null should clear it")
	}
	if value != nil {
		t.Fatalf("original_price = %v, want nil", value)
	}
	if updates["price"] != 80.0 {
		t.Fatalf("price = %v, want 80", updates["price"])
	}
}

func TestBuildUpdatesLeavesAbsentFieldsAlone(t *testing.T) {
	var req packageRequest
	if err := json.Unmarshal([]byte(`{"price":95}`), &req); err != nil {
		t.Fatal(err)
	}

	updates, err := req.buildUpdates(time.Now())
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"original_price", "is_featured", "description", "name", "amount"} {
		if _, ok := updates[key]; ok {
			t.Errorf("updates contains %q for a body that never mentioned it", key)
		}
	}
}

func TestBuildUpdatesHonorsExplicitFields(t *testing.T) {
	var req packageRequest
	if err := json.Unmarshal([]byte(`{"is_featured":false,"description":"","original_price":150}`), &req); err != nil {
		t.Fatal(err)
	}

	updates, err := req.buildUpdates(time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if updates["is_featured"] != false {
		t.Fatalf("is_featured = %v, want false", updates["is_featured"])
	}
	if updates["description"] != "" {
		t.Fatalf("description = %v, want empty string", updates["description"])
	}
	if updates["original_price"] != 150.0 {
		t.Fatalf("original_price = %v, want 150", updates["original_price"])
	}
}
