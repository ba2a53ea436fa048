package adapters

import (
	"errors"
	"testing"

	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

func TestPINService(t *testing.T) {
	service := NewPINService()

	t.Run("hash and verify round trip", func(t *testing.T) {
		hash, err := service.HashPIN("123456")
		if err != nil {
			t.Fatalf("hash failed: %v", err)
		}
		if hash == "123456" {
			t.Fatal("PIN stored in plain text")
		}
		if err := service.VerifyPIN(hash, "123456"); err != nil {
			t.Errorf("verify failed: %v", err)
		}
	})

	t.Run("wrong PIN is rejected", func(t *testing.T) {
		hash, err := service.HashPIN("123456")
		if err != nil {
			t.Fatalf("hash failed: %v", err)
		}
		err = service.VerifyPIN(hash, "654321")
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("format validation", func(t *testing.T) {
		cases := []struct {
			pin   string
			valid bool
		}{
			{"123456", true},
			{"000000", true},
			{"12345", false},
			{"1234567", false},
			{"12345a", false},
			{"", false},
			{"12 456", false},
		}
		for _, tc := range cases {
			err := service.ValidatePINFormat(tc.pin)
			if tc.valid && err != nil {
				t.Errorf("ValidatePINFormat(%q) = %v, want nil", tc.pin, err)
			}
			if !tc.valid && err == nil {
				t.Errorf("ValidatePINFormat(%q) = nil, want error", tc.pin)
			}
		}
	})
}
