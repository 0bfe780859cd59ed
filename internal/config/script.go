package config

import (
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"github.com/cptaffe/ansi-styles/markup"
	"github.com/cptaffe/ansi-styles/span"
	"github.com/cptaffe/ansi-styles/style"
)

// Script is a sequence of edits applied to a starting document:
//
//	text: "Hi"
//	ops:
//	  - style: 31
//	    end: 1
//	  - style: bold
//	    start: 1
//	  - reset: all
//
// Without text or markup the welcome document is used.
type Script struct {
	Text   string `yaml:"text"`
	Markup string `yaml:"markup"`
	Ops    []Op   `yaml:"ops"`
}

// Op is one edit.  Exactly one of Style, Reset, Insert, Paste or Delete is
// set.  Start and End default to the whole document, At to its end.
type Op struct {
	Style  string `yaml:"style"`
	Reset  string `yaml:"reset"`
	Insert string `yaml:"insert"`
	Paste  string `yaml:"paste"`
	Delete bool   `yaml:"delete"`

	Start *int `yaml:"start"`
	End   *int `yaml:"end"`
	At    *int `yaml:"at"`
}

var styleNames = map[string]style.Code{
	"bold":      style.Bold,
	"underline": style.Underline,
}

// Code returns the code a style op applies.
func (op Op) Code() (style.Code, error) {
	if c, ok := styleNames[op.Style]; ok {
		return c, nil
	}
	return style.ParseCode(op.Style)
}

// ResetsAll reports whether op clears every channel.
func (op Op) ResetsAll() bool { return op.Reset == "all" }

// Selection resolves op's range against d.
func (op Op) Selection(d span.Document) span.Selection {
	sel := span.All(d)
	if op.Start != nil {
		sel.Start = *op.Start
	}
	if op.End != nil {
		sel.End = *op.End
	}
	return sel
}

// Position resolves op's insertion point against d.
func (op Op) Position(d span.Document) int {
	if op.At != nil {
		return *op.At
	}
	return d.Len()
}

func (op Op) validate() error {
	n := 0
	for _, set := range []bool{op.Style != "", op.Reset != "", op.Insert != "", op.Paste != "", op.Delete} {
		if set {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("want exactly one action, have %d", n)
	}
	switch {
	case op.Style != "":
		_, err := op.Code()
		return err
	case op.Reset != "" && !op.ResetsAll():
		_, err := style.ParseChannel(op.Reset)
		return err
	}
	return nil
}

// ParseScript decodes and validates a YAML edit script.  All invalid ops
// are reported together.
func ParseScript(b []byte) (Script, error) {
	var s Script
	if err := yaml.UnmarshalStrict(b, &s); err != nil {
		return Script{}, err
	}
	if s.Text != "" && s.Markup != "" {
		return Script{}, fmt.Errorf("script sets both text and markup")
	}
	var err error
	for i, op := range s.Ops {
		if oerr := op.validate(); oerr != nil {
			err = multierr.Append(err, fmt.Errorf("op %d: %w", i, oerr))
		}
	}
	if err != nil {
		return Script{}, err
	}
	return s, nil
}

// Document returns the script's starting document.
func (s Script) Document() (span.Document, error) {
	switch {
	case s.Markup != "":
		return markup.Parse(markup.Sanitize(s.Markup))
	case s.Text != "":
		return span.Plain(s.Text), nil
	}
	return markup.Welcome(), nil
}
