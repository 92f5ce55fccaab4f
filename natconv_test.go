package mpint

import (
	"errors"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseTextRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("Parse(Text(x, b), b) == x", prop.ForAll(
		func(x Int, b int) bool {
			base := MinBase + b%(MaxBase-MinBase+1)
			s := x.Text(base)
			back, err := Parse(s, base)
			return err == nil && back.Equal(x)
		},
		genInt(24), gen.IntRange(0, MaxBase),
	))
	properties.Property("Text agrees with math/big", prop.ForAll(
		func(x Int, b int) bool {
			base := MinBase + b%(MaxBase-MinBase+1)
			return x.Text(base) == bigFromInt(x).Text(base)
		},
		genInt(24), gen.IntRange(0, MaxBase),
	))
	properties.Property("Parse agrees with math/big on decimal strings", prop.ForAll(
		func(x Int) bool {
			s := bigFromInt(x).String()
			got, err := Parse(s, 10)
			return err == nil && got.Equal(x)
		},
		genInt(24),
	))

	properties.TestingRun(t)
}

func TestParseBasics(t *testing.T) {
	cases := []struct {
		in   string
		base int
		want string // decimal
	}{
		{"0", 10, "0"},
		{"-0", 10, "0"},
		{"+42", 10, "42"},
		{"ff", 16, "255"},
		{"FF", 16, "255"},
		{"-ff", 16, "-255"},
		{"101", 2, "5"},
		{"zz", 36, "1295"},
		{"123456789012345678901234567890", 10, "123456789012345678901234567890"},
	}
	for _, c := range cases {
		x, err := Parse(c.in, c.base)
		if err != nil {
			t.Errorf("Parse(%q, %d): %v", c.in, c.base, err)
			continue
		}
		if got := x.String(); got != c.want {
			t.Errorf("Parse(%q, %d) = %s, want %s", c.in, c.base, got, c.want)
		}
	}
}

func TestParseRejectsInvalidDigit(t *testing.T) {
	cases := []struct {
		in   string
		base int
		pos  int
		char rune
	}{
		{"12a", 10, 2, 'a'},
		{"g", 16, 0, 'g'},
		{"-1_0", 10, 2, '_'},
		{"102", 2, 2, '2'},
	}
	for _, c := range cases {
		_, err := Parse(c.in, c.base)
		var digitErr *InvalidDigitError
		if !errors.As(err, &digitErr) {
			t.Errorf("Parse(%q, %d): got %v, want *InvalidDigitError", c.in, c.base, err)
			continue
		}
		if digitErr.Pos != c.pos || digitErr.Char != c.char {
			t.Errorf("Parse(%q, %d): got char %q at %d, want %q at %d",
				c.in, c.base, digitErr.Char, digitErr.Pos, c.char, c.pos)
		}
	}
}

func TestParseRejectsEmptyInput(t *testing.T) {
	for _, in := range []string{"", "-", "+"} {
		if _, err := Parse(in, 10); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Parse(%q, 10): got %v, want ErrEmptyInput", in, err)
		}
	}
}

func TestParseRejectsBadBase(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 37, 100} {
		_, err := Parse("10", base)
		var digitErr *InvalidDigitError
		if !errors.As(err, &digitErr) || digitErr.Base != base {
			t.Errorf("Parse with base %d: got %v", base, err)
		}
	}
}

func TestTextBasics(t *testing.T) {
	if got := (Int{}).Text(2); got != "0" {
		t.Errorf("zero in base 2 = %q, want \"0\"", got)
	}
	x := FromInt64(-255)
	if got := x.Text(16); got != "-ff" {
		t.Errorf("-255 in base 16 = %q, want \"-ff\"", got)
	}
	// A value that is an exact power of the per-word chunk.
	p := FromInt64(10).Pow(19 * 3)
	if got, want := p.Text(10), bigFromInt(p).Text(10); got != want {
		t.Errorf("10^57 = %q, want %q", got, want)
	}
}

func TestTextPanicsOnBadBase(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Text with base 1 did not panic")
		}
	}()
	FromInt64(1).Text(1)
}

func TestStringIsDecimal(t *testing.T) {
	b, ok := new(big.Int).SetString("-9876543210987654321098765432109876543210", 10)
	if !ok {
		t.Fatal("bad literal")
	}
	x := intFromBig(b)
	if got := x.String(); got != b.String() {
		t.Errorf("String() = %s, want %s", got, b.String())
	}
}
