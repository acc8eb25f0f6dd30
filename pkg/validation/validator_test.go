package validation

import (
	"encoding/json"
	"testing"
)

func TestIsEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"user@nextmail.com", true},
		{"evil@rabbit.com", true},
		{"", false},
		{"not-an-email", false},
		{"user@", false},
		{" user@nextmail.com", false},
	}
	for _, tc := range cases {
		if got := IsEmail(tc.in); got != tc.want {
			t.Fatalf("IsEmail(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{}
	if !fe.Empty() {
		t.Fatal("expected empty")
	}
	fe.Add("amount", "first")
	fe.Add("amount", "second")
	if fe.Empty() {
		t.Fatal("expected non-empty")
	}
	if len(fe["amount"]) != 2 || fe["amount"][1] != "second" {
		t.Fatalf("unexpected messages: %v", fe["amount"])
	}
}

type limitQuery struct {
	Limit int    `json:"limit" binding:"min=1,max=50"`
	Email string `json:"email" binding:"required,email"`
}

func TestToDetails_UsesJSONFieldNames(t *testing.T) {
	err := Validator().Struct(limitQuery{Limit: 0, Email: "nope"})
	details := ToDetails(err)
	if details["limit"] != "must be at least 1" {
		t.Fatalf("unexpected limit message: %q", details["limit"])
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message: %q", details["email"])
	}
}

func TestToDetails_InvalidJSON(t *testing.T) {
	var v map[string]any
	err := json.Unmarshal([]byte("{x}"), &v)
	if got := ToDetails(err); got["payload"] != "invalid json" {
		t.Fatalf("unexpected details %v", got)
	}
	if ToDetails(nil) != nil {
		t.Fatal("expected nil details for nil error")
	}
}
