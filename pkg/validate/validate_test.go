package validate_test

import (
	"strings"
	"testing"

	"github.com/shashiranjanraj/vastra/pkg/validate"
)

type productInput struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,numeric"`
	Category    string  `json:"category"    validate:"required,in=Casual Wear,Printed Shirt,Ladies Shirt"`
	Picture     string  `json:"picture"     validate:"required"`
	Ratings     float64 `json:"ratings"     validate:"nullable,gte=0,lte=5"`
}

func validProduct() productInput {
	return productInput{
		Name:        "Linen shirt",
		Description: "Full sleeve",
		Price:       799,
		Category:    "Casual Wear",
		Picture:     "/uploads/1712170230123.png",
		Ratings:     4.5,
	}
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(validProduct())
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"name", "description", "price", "category", "picture"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
	if _, ok := errs["ratings"]; ok {
		t.Error("ratings is nullable and must not error when empty")
	}
}

func TestInRuleKeepsSpacedValues(t *testing.T) {
	in := validProduct()
	in.Category = "Printed Shirt"
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Errorf("expected multi-word category to pass, got: %v", errs)
	}

	in.Category = "Sports Wear"
	errs := validate.Struct(in)
	if _, ok := errs["category"]; !ok {
		t.Error("expected category outside the enum to fail")
	}
}

func TestRatingsBounds(t *testing.T) {
	in := validProduct()
	in.Ratings = 5.5
	if errs := validate.Struct(in); !validate.HasErrors(errs) {
		t.Error("expected ratings > 5 to fail")
	}

	in.Ratings = -1
	if errs := validate.Struct(in); !validate.HasErrors(errs) {
		t.Error("expected ratings < 0 to fail")
	}

	in.Ratings = 0
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Errorf("expected empty ratings to be allowed, got: %v", errs)
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "customer@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestMinMaxOnStrings(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,min=2,max=5"`
	}
	if errs := validate.Struct(in{Name: "a"}); !validate.HasErrors(errs) {
		t.Error("expected too-short name to fail")
	}
	if errs := validate.Struct(in{Name: "abcdef"}); !validate.HasErrors(errs) {
		t.Error("expected too-long name to fail")
	}
	if errs := validate.Struct(in{Name: "abc"}); validate.HasErrors(errs) {
		t.Errorf("expected in-range name to pass, got: %v", errs)
	}
}

func TestErrorMessageIsDeterministic(t *testing.T) {
	errs := map[string]string{
		"name":     "The name field is required.",
		"category": "`X` is not a valid value for category.",
	}
	msg := validate.ErrorMessage(errs)
	if msg != validate.ErrorMessage(errs) {
		t.Error("expected stable output for the same error map")
	}
	if !strings.HasPrefix(msg, "`X`") {
		t.Errorf("expected fields joined in sorted order, got: %q", msg)
	}
}
