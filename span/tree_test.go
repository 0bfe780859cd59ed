package span

import (
	"reflect"
	"testing"

	"github.com/cptaffe/ansi-styles/style"
)

func TestPlain(t *testing.T) {
	assertDoc(t, Plain("a\n\nb"), Document{Text("a"), Break(), Break(), Text("b")})
	if got := Plain("a\n\nb").String(); got != "a\n\nb" {
		t.Errorf("got %q", got)
	}
	if n := Plain("héllo\n").Len(); n != 6 {
		t.Errorf("got length %d want 6", n)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want Document
	}{
		{Document{Text("a"), Text(""), Text("b")}, Document{Text("ab")}},
		{Document{Scope(style.FgRed), Text("a")}, Document{Text("a")}},
		{Document{Scope(style.FgRed, Scope(style.FgRed, Text("a")))}, Document{Scope(style.FgRed, Text("a"))}},
		{
			Document{Scope(style.Bold, Text("a")), Scope(style.Bold, Text("b"))},
			Document{Scope(style.Bold, Text("ab"))},
		},
		{
			Document{Scope(style.Bold, Scope(style.FgRed, Text("a"))), Scope(style.Bold, Scope(style.FgRed, Text("b")))},
			Document{Scope(style.Bold, Scope(style.FgRed, Text("ab")))},
		},
		{
			Document{Scope(style.FgRed, Text("a"), Scope(style.Bold, Scope(style.FgRed, Text("b"))))},
			Document{Scope(style.FgRed, Text("a"), Scope(style.Bold, Text("b")))},
		},
	}
	for _, c := range cases {
		assertDoc(t, Normalize(c.in), c.want)
	}
}

func TestNormalizeKeepsUnknownCodes(t *testing.T) {
	d := Document{Scope(99, Text("a"))}
	assertDoc(t, Normalize(d), d)
}

func TestEffective(t *testing.T) {
	d := Document{
		Text("a"),
		Scope(style.BgBlurple, Scope(style.FgWhite, Text("b")), Break(), Scope(style.Bold, Text("c"))),
	}
	want := []style.Triple{
		{},
		{Foreground: style.FgWhite, Background: style.BgBlurple},
		{Background: style.BgBlurple},
		{Emphasis: style.Bold, Background: style.BgBlurple},
	}
	if got := Effective(d); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestScopes(t *testing.T) {
	d := Document{Scope(style.BgBlurple, Scope(style.FgWhite, Text("Discord"))), Text("!"), Scope(style.Bold, Text("x"))}
	want := []ScopeRange{
		{Code: style.BgBlurple, Start: 0, End: 7, Depth: 0},
		{Code: style.FgWhite, Start: 0, End: 7, Depth: 1},
		{Code: style.Bold, Start: 8, End: 9, Depth: 0},
	}
	if got := Scopes(d); !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v want %+v", got, want)
	}
}

func TestSelect(t *testing.T) {
	if got := Select(5, 2); got != (Selection{2, 5}) {
		t.Errorf("got %v", got)
	}
	if !(Selection{3, 3}).Empty() || (Selection{1, 4}).Len() != 3 {
		t.Error("Empty/Len mismatch")
	}
}

func TestDump(t *testing.T) {
	d := Document{Scope(style.BgBlurple, Scope(style.FgWhite, Text("Discord"))), Break(), Text("!")}
	if got, want := Dump(d), `45{37{"Discord"}} \n "!"`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}
