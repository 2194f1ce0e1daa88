package calc

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

func FuzzCalculate(f *testing.F) {
	f.Add("2 + 3 * 4")
	f.Add("((1 + 2) * (3 + 4))")
	f.Add("2 ** 3 ^ 2")
	f.Add("5 / 0")
	f.Add("(()")
	f.Fuzz(func(t *testing.T, s string) {
		Calculate(s)
		Calculate(s, Strict(true))
		CalculateBig(s, Prec(32))
	})
}

func FuzzTokenizeWhitespace(f *testing.F) {
	f.Add("2+3")
	f.Add("1.5*(2-0.25)")
	f.Add("1.2.3^4")
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip()
		}
		base := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
		if strings.Contains(base, "*") {
			// Spacing out ** changes it into two multiplications.
			t.Skip()
		}
		spaced := strings.Join(strings.Split(base, ""), " ")
		want, err := Tokenize(base)
		if err != nil {
			t.Fatalf("%q: %v", base, err)
		}
		got, err := Tokenize(spaced)
		if err != nil {
			t.Fatalf("%q: %v", spaced, err)
		}
		want, got = kinds(want), kinds(got)
		if len(want) != len(got) {
			t.Fatalf("%q has %d tokens but %q has %d", base, len(want), spaced, len(got))
		}
		for i := range want {
			if want[i] != got[i] {
				t.Errorf("token %d: %q gives %v, %q gives %v", i, base, want[i], spaced, got[i])
			}
		}
	})
}
