package style

import (
	"errors"
	"testing"
)

func TestChannelClassification(t *testing.T) {
	cases := []struct {
		code Code
		want Channel
	}{
		{Bold, Emphasis},
		{Underline, Emphasis},
		{FgGray, Foreground},
		{FgWhite, Foreground},
		{BgBlack, Background},
		{BgCream, Background},
	}
	for _, c := range cases {
		got, err := c.code.Channel()
		if err != nil {
			t.Errorf("code %d: unexpected error %v", c.code, err)
			continue
		}
		if got != c.want {
			t.Errorf("code %d: got %v want %v", c.code, got, c.want)
		}
	}
}

func TestUnknownCodes(t *testing.T) {
	for _, c := range []Code{None, 2, 3, 5, 22, 38, 39, 48, 49, 90, 255} {
		if _, err := c.Channel(); !errors.Is(err, ErrUnknownCode) {
			t.Errorf("code %d: got %v want ErrUnknownCode", c, err)
		}
		if _, err := Lookup(c); !errors.Is(err, ErrUnknownCode) {
			t.Errorf("lookup %d: got %v want ErrUnknownCode", c, err)
		}
	}
}

func TestCodes(t *testing.T) {
	if got := Codes(Emphasis); len(got) != 2 || got[0] != Bold || got[1] != Underline {
		t.Errorf("emphasis codes: got %v", got)
	}
	for _, ch := range []Channel{Foreground, Background} {
		got := Codes(ch)
		if len(got) != 8 {
			t.Fatalf("%v: got %d codes want 8", ch, len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i] != got[i-1]+1 {
				t.Errorf("%v: codes not contiguous: %v", ch, got)
			}
		}
	}
}

func TestParseCode(t *testing.T) {
	good := map[string]Code{"1": Bold, "4": Underline, "31": FgRed, " 45 ": BgBlurple, "ansi-37": FgWhite}
	for in, want := range good {
		got, err := ParseCode(in)
		if err != nil || got != want {
			t.Errorf("ParseCode(%q): got %v, %v want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"", "0", "x", "38", "300", "ansi-"} {
		if _, err := ParseCode(in); !errors.Is(err, ErrUnknownCode) {
			t.Errorf("ParseCode(%q): got %v want ErrUnknownCode", in, err)
		}
	}
}

func TestParseChannel(t *testing.T) {
	good := map[string]Channel{"fg": Foreground, "Background": Background, "style": Emphasis, "emphasis": Emphasis}
	for in, want := range good {
		got, err := ParseChannel(in)
		if err != nil || got != want {
			t.Errorf("ParseChannel(%q): got %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParseChannel("italic"); err == nil {
		t.Error("ParseChannel should reject unknown names")
	}
}

func TestTriple(t *testing.T) {
	var tr Triple
	if !tr.IsZero() || tr.String() != "-;-;-" {
		t.Errorf("zero triple: %v", tr)
	}
	tr = tr.With(Foreground, FgRed).With(Emphasis, Bold)
	if tr.Get(Foreground) != FgRed || tr.Get(Emphasis) != Bold || tr.Get(Background) != None {
		t.Errorf("unexpected triple %v", tr)
	}
	if tr.String() != "1;31;-" {
		t.Errorf("got %q want %q", tr.String(), "1;31;-")
	}
}
