package span

import (
	"errors"
	"testing"

	"github.com/go-test/deep"

	"github.com/cptaffe/ansi-styles/style"
)

func assertDoc(t *testing.T, got, want Document) {
	t.Helper()
	if !Equal(got, want) {
		t.Errorf("document mismatch:\n got  %s\n want %s\n%v", Dump(got), Dump(want), deep.Equal(got, want))
	}
}

func mustApply(t *testing.T, d Document, sel Selection, ch style.Channel, code style.Code) Document {
	t.Helper()
	out, err := Apply(d, sel, ch, code)
	if err != nil {
		t.Fatalf("Apply(%v, %v, %d): %v", sel, ch, code, err)
	}
	return out
}

func TestApplyWholeText(t *testing.T) {
	got := mustApply(t, Plain("Hi"), Selection{0, 2}, style.Foreground, style.FgRed)
	assertDoc(t, got, Document{Scope(style.FgRed, Text("Hi"))})
}

func TestApplyNoCrossTalk(t *testing.T) {
	d := mustApply(t, Plain("Hi"), Selection{0, 1}, style.Foreground, style.FgRed)
	d = mustApply(t, d, Selection{1, 2}, style.Emphasis, style.Bold)
	assertDoc(t, d, Document{Scope(style.FgRed, Text("H")), Scope(style.Bold, Text("i"))})
}

func TestApplyNested(t *testing.T) {
	d := mustApply(t, Plain("Discord"), All(Plain("Discord")), style.Background, style.BgBlurple)
	d = mustApply(t, d, All(d), style.Foreground, style.FgWhite)
	assertDoc(t, d, Document{Scope(style.BgBlurple, Scope(style.FgWhite, Text("Discord")))})
}

func TestApplyInsideScope(t *testing.T) {
	d := Document{Scope(style.FgRed, Text("abc"))}
	d = mustApply(t, d, Selection{1, 2}, style.Foreground, style.FgGreen)
	assertDoc(t, d, Document{Scope(style.FgRed, Text("a"), Scope(style.FgGreen, Text("b")), Text("c"))})

	// Going back to the inherited colour removes the inner scope again.
	d = mustApply(t, d, Selection{1, 2}, style.Foreground, style.FgRed)
	assertDoc(t, d, Document{Scope(style.FgRed, Text("abc"))})
}

func TestApplySupersedesSameChannel(t *testing.T) {
	d := Document{Scope(style.Bold, Scope(style.FgGreen, Text("Hi")))}
	d = mustApply(t, d, Selection{0, 2}, style.Foreground, style.FgRed)
	assertDoc(t, d, Document{Scope(style.Bold, Scope(style.FgRed, Text("Hi")))})

	d = Document{Scope(style.FgGreen, Text("x"), Scope(style.FgBlue, Text("y")), Text("z"))}
	d = mustApply(t, d, Selection{0, 3}, style.Foreground, style.FgRed)
	assertDoc(t, d, Document{Scope(style.FgRed, Text("xyz"))})
}

func TestApplyPartialOverlap(t *testing.T) {
	d := Document{Text("a"), Scope(style.FgGreen, Text("bc"))}
	d = mustApply(t, d, Selection{0, 2}, style.Foreground, style.FgRed)
	assertDoc(t, d, Document{Scope(style.FgRed, Text("ab")), Scope(style.FgGreen, Text("c"))})
}

func TestApplyAcrossScopes(t *testing.T) {
	d := Document{Text("ab"), Scope(style.Bold, Text("cd"))}
	d = mustApply(t, d, Selection{1, 3}, style.Foreground, style.FgRed)
	assertDoc(t, d, Document{
		Text("a"),
		Scope(style.FgRed, Text("b"), Scope(style.Bold, Text("c"))),
		Scope(style.Bold, Text("d")),
	})
}

func TestApplyKeepsOtherChannels(t *testing.T) {
	d := Document{Scope(style.Underline, Text("abc")), Scope(style.BgRust, Text("def"))}
	before := Effective(d)
	d = mustApply(t, d, Selection{1, 5}, style.Foreground, style.FgGold)
	after := Effective(d)
	for i := range before {
		if before[i].Emphasis != after[i].Emphasis || before[i].Background != after[i].Background {
			t.Errorf("position %d: %v became %v", i, before[i], after[i])
		}
		want := style.None
		if i >= 1 && i < 5 {
			want = style.FgGold
		}
		if after[i].Foreground != want {
			t.Errorf("position %d: foreground %d want %d", i, after[i].Foreground, want)
		}
	}
}

func TestApplyIdempotent(t *testing.T) {
	docs := []Document{
		Plain("Hello, world"),
		{Text("He"), Scope(style.FgRed, Text("llo")), Text(", "), Scope(style.BgBlurple, Scope(style.Bold, Text("world")))},
		{Scope(style.FgRed, Text("a"), Break(), Scope(style.FgBlue, Text("bc")))},
	}
	for _, d := range docs {
		n := d.Len()
		for s := 0; s < n; s++ {
			for e := s + 1; e <= n; e++ {
				for _, code := range []style.Code{style.Bold, style.FgRed, style.FgBlue, style.BgBlurple} {
					ch, _ := code.Channel()
					once := mustApply(t, d, Selection{s, e}, ch, code)
					twice := mustApply(t, once, Selection{s, e}, ch, code)
					if !Equal(once, twice) {
						t.Errorf("%s: [%d,%d) %d not idempotent:\n once  %s\n twice %s", Dump(d), s, e, code, Dump(once), Dump(twice))
					}
				}
			}
		}
	}
}

func TestApplyErrors(t *testing.T) {
	d := Plain("Hi")
	for _, sel := range []Selection{{-1, 1}, {0, 3}, {2, 1}} {
		got, err := Apply(d, sel, style.Foreground, style.FgRed)
		if !errors.Is(err, ErrMalformedSelection) {
			t.Errorf("%v: got %v want ErrMalformedSelection", sel, err)
		}
		assertDoc(t, got, d)
	}
	if _, err := Apply(d, Selection{0, 2}, style.Foreground, 99); !errors.Is(err, style.ErrUnknownCode) {
		t.Errorf("unknown code: got %v", err)
	}
	if _, err := Apply(d, Selection{0, 2}, style.Background, style.FgRed); !errors.Is(err, style.ErrUnknownCode) {
		t.Errorf("wrong channel: got %v", err)
	}
}

func TestApplyEmptySelection(t *testing.T) {
	d := Document{Text("a"), Text("b")}
	got, err := Apply(d, Selection{1, 1}, style.Foreground, style.FgRed)
	if err != nil {
		t.Fatal(err)
	}
	assertDoc(t, got, Document{Text("ab")})
}

func TestResetChannel(t *testing.T) {
	d := Document{Scope(style.BgBlurple, Scope(style.FgWhite, Text("Discord")))}
	got, err := ResetChannel(d, Selection{0, 3}, style.Background)
	if err != nil {
		t.Fatal(err)
	}
	assertDoc(t, got, Document{
		Scope(style.FgWhite, Text("Dis")),
		Scope(style.BgBlurple, Scope(style.FgWhite, Text("cord"))),
	})

	d = Document{Scope(style.Bold, Scope(style.FgRed, Text("abc")))}
	got, err = Apply(d, Selection{1, 2}, style.Foreground, style.None)
	if err != nil {
		t.Fatal(err)
	}
	assertDoc(t, got, Document{Scope(style.Bold, Scope(style.FgRed, Text("a")), Text("b"), Scope(style.FgRed, Text("c")))})
}

func TestResetChannelNoop(t *testing.T) {
	d := Document{Scope(style.Bold, Text("abc"))}
	got, err := ResetChannel(d, Selection{0, 2}, style.Foreground)
	if err != nil {
		t.Fatal(err)
	}
	assertDoc(t, got, d)
}

func TestResetAll(t *testing.T) {
	d := Document{
		Text("Welcome "),
		Scope(style.BgBlurple, Scope(style.FgWhite, Text("to")), Break(), Scope(style.Underline, Text("Discord"))),
		Scope(style.FgRed, Text("!")),
	}
	got, err := ResetAll(d, All(d))
	if err != nil {
		t.Fatal(err)
	}
	assertDoc(t, got, Plain("Welcome to\nDiscord!"))

	got, err = ResetAll(d, Selection{9, 13})
	if err != nil {
		t.Fatal(err)
	}
	assertDoc(t, got, Document{
		Text("Welcome "),
		Scope(style.BgBlurple, Scope(style.FgWhite, Text("t"))),
		Text("o"), Break(), Text("Di"),
		Scope(style.BgBlurple, Scope(style.Underline, Text("scord"))),
		Scope(style.FgRed, Text("!")),
	})
}
