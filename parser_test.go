package parsec

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_Scenarios(t *testing.T) {
	t.Run("tag leaves remainder", func(t *testing.T) {
		r := Tag("ab").Parse("abc")
		if r.Err() != nil {
			t.Fatalf("unexpected error: %v", r.Err())
		}

		if r.Value() != (Unit{}) {
			t.Errorf("expected unit value, got %v", r.Value())
		}

		if r.Rest() != "c" {
			t.Errorf("expected rest %q, got %q", "c", r.Rest())
		}
	})

	t.Run("number stops at non-digit", func(t *testing.T) {
		v, err := Number[int]().Parse("42x").Unwrap()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if v != 42 {
			t.Errorf("expected 42, got %d", v)
		}

		if rest := Number[int]().Parse("42x").Rest(); rest != "x" {
			t.Errorf("expected rest %q, got %q", "x", rest)
		}
	})

	t.Run("many over choice", func(t *testing.T) {
		r := Many(Char('a').Or(Char('b'))).Parse("aabbc")
		if r.Err() != nil {
			t.Fatalf("unexpected error: %v", r.Err())
		}

		want := []rune{'a', 'a', 'b', 'b'}
		if diff := cmp.Diff(want, slices.Collect(r.Value())); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}

		if r.Rest() != "c" {
			t.Errorf("expected rest %q, got %q", "c", r.Rest())
		}
	})

	t.Run("list finishes", func(t *testing.T) {
		seq, err := List(Number[int](), ",").Parse("1,2,3").Finish()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if diff := cmp.Diff([]int{1, 2, 3}, slices.Collect(seq)); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("list with bad element fails to finish", func(t *testing.T) {
		_, err := List(Number[int](), ",").Parse("1,2,x").Finish()
		if err == nil {
			t.Fatal("expected error, got nil")
		}

		if !errors.Is(err, ErrResidualInput) {
			t.Errorf("expected residual input, got %v", err)
		}

		if !errors.Is(err, ErrUnexpectedChar) {
			t.Errorf("expected unexpected char cause, got %v", err)
		}

		var e *Error
		if !errors.As(err, &e) {
			t.Fatalf("expected *Error, got %T", err)
		}

		if e.Offset() != 3 {
			t.Errorf("expected residue at offset 3, got %d", e.Offset())
		}

		cause, ok := asError(e.Unwrap())
		if !ok {
			t.Fatalf("expected *Error cause, got %T", e.Unwrap())
		}

		if cause.Offset() != 4 {
			t.Errorf("expected cause at offset 4, got %d", cause.Offset())
		}
	})

	t.Run("tag on empty input", func(t *testing.T) {
		err := Tag("x").Parse("").Err()
		if !errors.Is(err, ErrEndOfString) {
			t.Errorf("expected end of string, got %v", err)
		}
	})
}

func TestResult_Finish(t *testing.T) {
	p := Number[int]()

	tests := []struct {
		name    string
		input   string
		opts    []FinishOption
		want    int
		wantErr error
	}{
		{
			name:  "exact",
			input: "12",
			want:  12,
		},
		{
			name:  "single trailing newline",
			input: "12\n",
			want:  12,
		},
		{
			name:    "two trailing newlines",
			input:   "12\n\n",
			wantErr: ErrResidualInput,
		},
		{
			name:    "strict rejects newline",
			input:   "12\n",
			opts:    []FinishOption{Strict()},
			wantErr: ErrResidualInput,
		},
		{
			name:  "custom terminator",
			input: "12;",
			opts:  []FinishOption{WithTerminator(";")},
			want:  12,
		},
		{
			name:    "custom terminator replaces newline",
			input:   "12\n",
			opts:    []FinishOption{WithTerminator(";")},
			wantErr: ErrResidualInput,
		},
		{
			name:    "parse failure passes through",
			input:   "x",
			wantErr: ErrUnexpectedChar,
		},
		{
			name:    "residue",
			input:   "12 13",
			wantErr: ErrResidualInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.input).Finish(tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestResult_Finish_ResidualPosition(t *testing.T) {
	_, err := ParseAll(Tag("ab"), "ab\ncd")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %v", err)
	}

	want := Position{Offset: 2, Line: 1, Column: 3}
	if e.Position() != want {
		t.Errorf("expected position %+v, got %+v", want, e.Position())
	}

	if e.Found() != `"\ncd"` {
		t.Errorf("expected found %q, got %q", `"\ncd"`, e.Found())
	}

	if e.Unwrap() != nil {
		t.Errorf("expected no cause, got %v", e.Unwrap())
	}
}

func TestParser_RoundTripConsumption(t *testing.T) {
	tests := []struct {
		name  string
		p     Parser[string]
		input string
	}{
		{"tag", Recognize(Tag("ab")), "abc"},
		{"number", Recognize(Number[int]()), "123abc"},
		{"many", Recognize(Many(Char('a'))), "aaab"},
		{"list", Recognize(List(Number[int](), ",")), "1,2,"},
		{"lines", Recognize(ManyLines(Number[int](), "\n")), "1\n2\nx"},
		{"maybe", Recognize(Maybe(Tag("z"))), "abc"},
		{"unicode", Recognize(Many(AnyChar())), "héllo, 世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.p.Parse(tt.input)
			if r.Err() != nil {
				t.Fatalf("unexpected error: %v", r.Err())
			}

			if r.Value()+r.Rest() != tt.input {
				t.Errorf("consumed %q + rest %q != input %q",
					r.Value(), r.Rest(), tt.input)
			}

			if r.State().Offset() != len(r.Value()) {
				t.Errorf("offset %d != consumed length %d",
					r.State().Offset(), len(r.Value()))
			}
		})
	}
}

func TestOption(t *testing.T) {
	some := Option[int]{Value: 3, Valid: true}
	none := Option[int]{}

	if v, ok := some.Get(); !ok || v != 3 {
		t.Errorf("expected (3, true), got (%d, %v)", v, ok)
	}

	if _, ok := none.Get(); ok {
		t.Error("expected empty option")
	}

	if some.Or(7) != 3 || none.Or(7) != 7 {
		t.Errorf("unexpected Or results %d %d", some.Or(7), none.Or(7))
	}
}
