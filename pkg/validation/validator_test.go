package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
)

type unitRef struct {
	ID int64 `json:"id"`
}

type amountForm struct {
	Description string          `json:"description" binding:"required,max=10"`
	Amount      decimal.Decimal `json:"amount" binding:"gt=0,lt=1000000"`
	Servings    int             `form:"servings" binding:"min=1,max=100"`
	Difficulty  string          `json:"difficulty" binding:"omitempty,oneof=EASY HARD"`
	Unit        *unitRef        `json:"uom" binding:"required"`
}

func TestDecimalAmountValidation(t *testing.T) {
	Init()

	ok := amountForm{Description: "salt", Amount: decimal.RequireFromString("0.25"), Servings: 2, Unit: &unitRef{ID: 1}}
	if err := binding.Validator.ValidateStruct(&ok); err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}

	bad := amountForm{Description: "", Amount: decimal.Zero, Servings: 0, Difficulty: "EXTREME"}
	err := binding.Validator.ValidateStruct(&bad)
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	details := ToDetails(err)
	want := map[string]string{
		"description": "is required",
		"amount":      "must be greater than 0",
		"servings":    "must be at least 1",
		"difficulty":  "must be one of: EASY, HARD",
		"uom":         "is required",
	}
	for field, msg := range want {
		if details[field] != msg {
			t.Fatalf("%s: got=%q want=%q (all=%v)", field, details[field], msg, details)
		}
	}
}

func TestDecimalAmountUpperBound(t *testing.T) {
	Init()

	big := amountForm{Description: "salt", Amount: decimal.RequireFromString("1000000"), Servings: 2, Unit: &unitRef{ID: 1}}
	err := binding.Validator.ValidateStruct(&big)
	if err == nil {
		t.Fatalf("expected amount upper bound to be enforced")
	}
	if got := ToDetails(err)["amount"]; got != "must be less than 1000000" {
		t.Fatalf("amount: got=%q", got)
	}
}

func TestToDetailsPayloadErrors(t *testing.T) {
	if ToDetails(nil) != nil {
		t.Fatalf("nil error should give nil details")
	}
	var v map[string]any
	err := json.Unmarshal([]byte("{bad"), &v)
	if got := ToDetails(err)["payload"]; got != "invalid json" {
		t.Fatalf("syntax error: got=%q", got)
	}
	if got := ToDetails(errString("x"))["payload"]; got != "invalid payload" {
		t.Fatalf("fallback: got=%q", got)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
