package validator_test

import (
	"strings"
	"testing"

	"risecheckout/shared/validator"
)

type ValidTestStruct struct {
	VendorID string `validate:"required,uuid" json:"vendor_id"`
	Email    string `validate:"omitempty,email" json:"email"`
	Limit    int    `validate:"gte=1,lte=100" json:"limit"`
	Timezone string `validate:"omitempty,supported_timezone" json:"timezone"`
	Locale   string `validate:"omitempty,supported_locale" json:"locale"`
	Preset   string `validate:"required,preset" json:"preset"`
	Status   string `validate:"omitempty,orderstatus" json:"status"`
	From     string `validate:"omitempty,instant" json:"from"`
}

func validStruct() ValidTestStruct {
	return ValidTestStruct{
		VendorID: "3f1c9a8e-8d2b-4f4e-9c1a-2b7d6e5f4a3b",
		Email:    "buyer@example.com",
		Limit:    10,
		Timezone: "America/Sao_Paulo",
		Locale:   "pt-BR",
		Preset:   "7days",
		Status:   "paid",
		From:     "2026-01-15T10:00:00Z",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ValidTestStruct)
		expectError bool
	}{
		{name: "valid struct", mutate: func(*ValidTestStruct) {}, expectError: false},
		{name: "missing vendor", mutate: func(s *ValidTestStruct) { s.VendorID = "" }, expectError: true},
		{name: "vendor not uuid", mutate: func(s *ValidTestStruct) { s.VendorID = "abc" }, expectError: true},
		{name: "invalid email", mutate: func(s *ValidTestStruct) { s.Email = "nope" }, expectError: true},
		{name: "limit out of range", mutate: func(s *ValidTestStruct) { s.Limit = 0 }, expectError: true},
		{name: "unsupported timezone", mutate: func(s *ValidTestStruct) { s.Timezone = "Asia/Tokyo" }, expectError: true},
		{name: "unknown timezone", mutate: func(s *ValidTestStruct) { s.Timezone = "Mars/Olympus" }, expectError: true},
		{name: "empty timezone", mutate: func(s *ValidTestStruct) { s.Timezone = "" }, expectError: false},
		{name: "unsupported locale", mutate: func(s *ValidTestStruct) { s.Locale = "fr-FR" }, expectError: true},
		{name: "invalid preset", mutate: func(s *ValidTestStruct) { s.Preset = "fortnight" }, expectError: true},
		{name: "gateway status alias", mutate: func(s *ValidTestStruct) { s.Status = "approved" }, expectError: true},
		{name: "bare date", mutate: func(s *ValidTestStruct) { s.From = "2026-01-15" }, expectError: false},
		{name: "invalid date", mutate: func(s *ValidTestStruct) { s.From = "15/01/2026" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validStruct()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required", expectError: false},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "supported timezone", field: "America/New_York", tag: "supported_timezone", expectError: false},
		{name: "utc", field: "UTC", tag: "supported_timezone", expectError: false},
		{name: "unsupported timezone", field: "Europe/Berlin", tag: "supported_timezone", expectError: true},
		{name: "supported locale", field: "en-US", tag: "supported_locale", expectError: false},
		{name: "valid preset", field: "max", tag: "preset", expectError: false},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", expectError: true},
		{name: "empty tag", field: "", tag: "empty", expectError: false},
		{name: "non empty with empty tag", field: "x", tag: "empty", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"vendor_id":"3f1c9a8e-8d2b-4f4e-9c1a-2b7d6e5f4a3b","limit":5,"preset":"today"}`,
			expectError: false,
		},
		{
			name:        "invalid preset",
			jsonBody:    `{"vendor_id":"3f1c9a8e-8d2b-4f4e-9c1a-2b7d6e5f4a3b","limit":5,"preset":"week"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"vendor_id":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data ValidTestStruct
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ValidTestStruct)
		want   string
	}{
		{
			name:   "custom tag",
			mutate: func(s *ValidTestStruct) { s.Timezone = "Asia/Tokyo" },
			want:   "timezone must be a supported IANA timezone",
		},
		{
			name:   "required uses the json name",
			mutate: func(s *ValidTestStruct) { s.VendorID = "" },
			want:   "vendor_id is required",
		},
		{
			name:   "param is substituted",
			mutate: func(s *ValidTestStruct) { s.Limit = 500 },
			want:   "limit must be less than or equal to 100",
		},
		{
			name: "every field is reported",
			mutate: func(s *ValidTestStruct) {
				s.VendorID = "abc"
				s.Status = "approved"
			},
			want: "vendor_id must be a valid UUID; status must be one of paid pending refused refunded chargeback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validStruct()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)
			if err == nil {
				t.Fatal("expected validation error")
			}

			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}
