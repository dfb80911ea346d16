package parsec

import (
	"errors"
	"strconv"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     int
		wantRest string
		wantErr  error
	}{
		{"digits", "42x", 42, "x", nil},
		{"all", "1234", 1234, "", nil},
		{"leading zeros", "007", 7, "", nil},
		{"no digit", "x", 0, "x", ErrUnexpectedChar},
		{"sign rejected", "-1", 0, "-1", ErrUnexpectedChar},
		{"empty", "", 0, "", ErrEndOfString},
		{"overflow", "99999999999999999999", 0, "99999999999999999999", ErrNumericConversion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Number[int]().Parse(tt.input)
			if !errors.Is(r.Err(), tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, r.Err())
			}

			if r.Value() != tt.want {
				t.Errorf("expected %d, got %d", tt.want, r.Value())
			}

			if r.Rest() != tt.wantRest {
				t.Errorf("expected rest %q, got %q", tt.wantRest, r.Rest())
			}
		})
	}
}

func TestNumber_Width(t *testing.T) {
	if v, err := Number[uint8]().Parse("255").Unwrap(); err != nil || v != 255 {
		t.Errorf("expected 255, got %d (%v)", v, err)
	}

	err := Number[uint8]().Parse("256").Err()
	if !errors.Is(err, ErrNumericConversion) {
		t.Fatalf("expected numeric conversion, got %v", err)
	}

	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("expected range error cause, got %v", err)
	}

	if v, err := Number[int8]().Parse("127").Unwrap(); err != nil || v != 127 {
		t.Errorf("expected 127, got %d (%v)", v, err)
	}

	if err := Number[int8]().Parse("128").Err(); !errors.Is(err, ErrNumericConversion) {
		t.Errorf("expected numeric conversion, got %v", err)
	}

	v, err := Number[uint64]().Parse("18446744073709551615").Unwrap()
	if err != nil || v != 18446744073709551615 {
		t.Errorf("expected max uint64, got %d (%v)", v, err)
	}
}

type crateID uint16

func TestNumber_DefinedTypes(t *testing.T) {
	if v, err := Number[crateID]().Parse("65535").Unwrap(); err != nil || v != 65535 {
		t.Errorf("expected 65535, got %d (%v)", v, err)
	}

	if err := Number[crateID]().Parse("65536").Err(); !errors.Is(err, ErrNumericConversion) {
		t.Errorf("expected numeric conversion, got %v", err)
	}

	if err := SignedNumber[int16]().Parse("-32769").Err(); !errors.Is(err, ErrNumericConversion) {
		t.Errorf("expected numeric conversion, got %v", err)
	}

	if v, err := SignedNumber[int32]().Parse("-2147483648").Unwrap(); err != nil || v != -2147483648 {
		t.Errorf("expected min int32, got %d (%v)", v, err)
	}
}

func TestSignedNumber(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       int8
		wantRest   string
		wantErr    error
		wantOffset int
	}{
		{"positive", "12,", 12, ",", nil, 0},
		{"negative", "-12,", -12, ",", nil, 0},
		{"minimum", "-128", -128, "", nil, 0},
		{"overflow", "-129", 0, "-129", ErrNumericConversion, 0},
		{"lone sign", "-", 0, "-", ErrEndOfString, 1},
		{"sign without digits", "-x", 0, "-x", ErrUnexpectedChar, 1},
		{"double sign", "--1", 0, "--1", ErrUnexpectedChar, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SignedNumber[int8]().Parse(tt.input)
			if !errors.Is(r.Err(), tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, r.Err())
			}

			if r.Value() != tt.want {
				t.Errorf("expected %d, got %d", tt.want, r.Value())
			}

			if r.Rest() != tt.wantRest {
				t.Errorf("expected rest %q, got %q", tt.wantRest, r.Rest())
			}

			var e *Error
			if errors.As(r.Err(), &e) && e.Offset() != tt.wantOffset {
				t.Errorf("expected error at offset %d, got %d",
					tt.wantOffset, e.Offset())
			}
		})
	}
}
