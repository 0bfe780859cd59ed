package config

import (
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/cptaffe/ansi-styles/span"
	"github.com/cptaffe/ansi-styles/style"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`
text: "Hi there"
ops:
  - style: 31
    end: 2
  - style: bold
    start: 3
  - reset: fg
  - reset: all
    start: 0
    end: 1
  - insert: "!"
  - paste: '<span class="ansi-4">u</span>'
    at: 0
  - delete: true
    start: 0
    end: 1
`))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Ops) != 7 {
		t.Fatalf("got %d ops, want 7", len(s.Ops))
	}
	d, err := s.Document()
	if err != nil {
		t.Fatal(err)
	}
	if got := d.String(); got != "Hi there" {
		t.Errorf("document = %q", got)
	}

	if c, err := s.Ops[0].Code(); err != nil || c != style.FgRed {
		t.Errorf("op 0 code = %d, %v", c, err)
	}
	if got := s.Ops[0].Selection(d); got != (span.Selection{Start: 0, End: 2}) {
		t.Errorf("op 0 selection = %v", got)
	}
	if c, err := s.Ops[1].Code(); err != nil || c != style.Bold {
		t.Errorf("op 1 code = %d, %v", c, err)
	}
	if got := s.Ops[1].Selection(d); got != (span.Selection{Start: 3, End: 8}) {
		t.Errorf("op 1 selection = %v", got)
	}
	if !s.Ops[3].ResetsAll() || s.Ops[2].ResetsAll() {
		t.Error("ResetsAll mismatch")
	}
	if got := s.Ops[4].Position(d); got != 8 {
		t.Errorf("op 4 position = %d, want 8", got)
	}
	if got := s.Ops[5].Position(d); got != 0 {
		t.Errorf("op 5 position = %d, want 0", got)
	}
}

func TestParseScriptInvalid(t *testing.T) {
	_, err := ParseScript([]byte(`
ops:
  - style: 99
  - reset: sideways
  - {}
  - style: 31
    delete: true
  - insert: ok
`))
	if n := len(multierr.Errors(err)); n != 4 {
		t.Fatalf("got %d errors, want 4: %v", n, err)
	}
	if !strings.Contains(err.Error(), "op 2") {
		t.Errorf("error %q does not name op 2", err)
	}
}

func TestParseScriptUnknownField(t *testing.T) {
	if _, err := ParseScript([]byte("colour: red\n")); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestScriptDocument(t *testing.T) {
	d, err := Script{Markup: `<b>x</b><span class="ansi-31">y</span>`}.Document()
	if err != nil {
		t.Fatal(err)
	}
	want := span.Document{span.Text("x"), span.Scope(style.FgRed, span.Text("y"))}
	if !span.Equal(d, want) {
		t.Errorf("Document() = %s, want %s", span.Dump(d), span.Dump(want))
	}
	if d, _ := (Script{}).Document(); !strings.HasPrefix(d.String(), "Welcome") {
		t.Errorf("empty script starts with %q", d.String())
	}
}
