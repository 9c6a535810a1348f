package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/bizdesk/pkg/validate"
)

type productInput struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	SKU         string  `json:"sku"         validate:"nullable,alpha_dash"`
	Quantity    int     `json:"quantity"    validate:"gte=0"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Discount    float64 `json:"discount"    validate:"between=0,100"`
	SupplierURL string  `json:"supplierUrl" validate:"nullable,url"`
}

func TestValidProduct(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:     "Laptop",
		SKU:      "lap-15_v2",
		Quantity: 10,
		Price:    999.99,
		Discount: 15,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	type in struct {
		Name  string `json:"name"  validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{})
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "owner@bizdesk.dev"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Quantity int `json:"quantity" validate:"gte=0,lte=10000"`
	}
	if errs := validate.Struct(in{Quantity: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative quantity to fail")
	}
	if errs := validate.Struct(in{Quantity: 25}); validate.HasErrors(errs) {
		t.Errorf("expected quantity 25 to pass, got: %v", errs)
	}
}

func TestInRuleKeepsTrailingRules(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=pending,processing,shipped,delivered,max=50"`
	}
	if errs := validate.Struct(in{Status: "cancelled"}); !validate.HasErrors(errs) {
		t.Error("expected unknown status to fail")
	}
	if errs := validate.Struct(in{Status: "shipped"}); validate.HasErrors(errs) {
		t.Errorf("expected shipped to pass: %v", errs)
	}
}

func TestConfirmedRule(t *testing.T) {
	type in struct {
		Password             string `json:"password"              validate:"required,min=8"`
		PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
	}
	if errs := validate.Struct(in{Password: "secret123", PasswordConfirmation: "wrong"}); !validate.HasErrors(errs) {
		t.Error("expected confirmation mismatch to fail")
	}
	if errs := validate.Struct(in{Password: "secret123", PasswordConfirmation: "secret123"}); validate.HasErrors(errs) {
		t.Errorf("expected matching confirmation to pass: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Website string `json:"website" validate:"nullable,url"`
	}
	if errs := validate.Struct(in{Website: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	if errs := validate.Struct(in{Website: "not-a-url"}); !validate.HasErrors(errs) {
		t.Error("expected invalid URL to fail")
	}
}

func TestBetweenRule(t *testing.T) {
	type in struct {
		Discount float64 `json:"discount" validate:"between=0,100"`
	}
	if errs := validate.Struct(in{Discount: 150}); !validate.HasErrors(errs) {
		t.Error("expected discount > 100 to fail")
	}
	if errs := validate.Struct(in{Discount: 75}); validate.HasErrors(errs) {
		t.Errorf("expected discount 75 to pass: %v", errs)
	}
}

func TestDateRule(t *testing.T) {
	type in struct {
		Date string `json:"date" validate:"required,date"`
	}
	if errs := validate.Struct(in{Date: "2026-03-15"}); validate.HasErrors(errs) {
		t.Errorf("expected plain date to pass: %v", errs)
	}
	if errs := validate.Struct(in{Date: "2026-03-15T10:30:00Z"}); validate.HasErrors(errs) {
		t.Errorf("expected RFC3339 date to pass: %v", errs)
	}
	if errs := validate.Struct(in{Date: "next tuesday"}); !validate.HasErrors(errs) {
		t.Error("expected unparseable date to fail")
	}
}

func TestIPRule(t *testing.T) {
	type in struct {
		IP string `json:"ip" validate:"required,ip"`
	}
	if errs := validate.Struct(in{IP: "192.168.0.1"}); validate.HasErrors(errs) {
		t.Errorf("expected valid IP to pass: %v", errs)
	}
	if errs := validate.Struct(in{IP: "999.999.0.1"}); !validate.HasErrors(errs) {
		t.Error("expected invalid IP to fail")
	}
}

func TestAlphaDashRule(t *testing.T) {
	type in struct {
		Slug string `json:"slug" validate:"required,alpha_dash"`
	}
	if errs := validate.Struct(in{Slug: "warehouse-a_2"}); validate.HasErrors(errs) {
		t.Errorf("expected alpha_dash to pass: %v", errs)
	}
	if errs := validate.Struct(in{Slug: "warehouse a!"}); !validate.HasErrors(errs) {
		t.Error("expected alpha_dash to fail for spaces/punctuation")
	}
}
