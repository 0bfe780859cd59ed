package span

import (
	"math/rand"
	"testing"

	"github.com/cptaffe/ansi-styles/style"
)

var allCodes = []style.Code{
	style.Bold, style.Underline,
	style.FgGray, style.FgRed, style.FgGreen, style.FgGold, style.FgBlue, style.FgPink, style.FgTeal, style.FgWhite,
	style.BgBlack, style.BgRust, style.BgGray40, style.BgGray45, style.BgGray55, style.BgBlurple, style.BgGray60, style.BgCream,
}

func randomSelection(r *rand.Rand, n int) Selection {
	s := r.Intn(n)
	return Selection{s, s + 1 + r.Intn(n-s)}
}

// TestRandomEdits checks, for random edit sequences, that every operation
// changes exactly the channel it targets inside the selection and nothing
// else, and that applying a style twice is the same as applying it once.
func TestRandomEdits(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		d := Plain("Welcome to\nthe colour generator!")
		n := d.Len()
		for step := 0; step < 12; step++ {
			sel := randomSelection(r, n)
			before := Effective(d)

			var (
				next   Document
				err    error
				expect func(i int, old style.Triple) style.Triple
			)
			switch op := r.Intn(10); {
			case op < 7:
				code := allCodes[r.Intn(len(allCodes))]
				ch, _ := code.Channel()
				next, err = Apply(d, sel, ch, code)
				expect = func(i int, old style.Triple) style.Triple { return old.With(ch, code) }

				again, err2 := Apply(next, sel, ch, code)
				if err2 != nil || !Equal(next, again) {
					t.Fatalf("not idempotent on %s %v %d:\n once  %s\n twice %s", Dump(d), sel, code, Dump(next), Dump(again))
				}
			case op < 9:
				ch := style.Channel(r.Intn(3))
				next, err = ResetChannel(d, sel, ch)
				expect = func(i int, old style.Triple) style.Triple { return old.With(ch, style.None) }
			default:
				next, err = ResetAll(d, sel)
				expect = func(i int, old style.Triple) style.Triple { return style.Triple{} }
			}
			if err != nil {
				t.Fatal(err)
			}

			after := Effective(next)
			if len(after) != n || next.String() != d.String() {
				t.Fatalf("text changed: %q became %q", d.String(), next.String())
			}
			for i := range after {
				want := before[i]
				if i >= sel.Start && i < sel.End {
					want = expect(i, before[i])
				}
				if after[i] != want {
					t.Fatalf("position %d of %s after %v: got %v want %v\n result %s", i, Dump(d), sel, after[i], want, Dump(next))
				}
			}
			if !Equal(next, Normalize(next)) {
				t.Fatalf("result not normalised: %s", Dump(next))
			}
			d = next
		}
	}
}
