package style

import "strconv"

// Triple is the effective value of all three channels at one position.
// A None field is unset (renderer default).
type Triple struct {
	Emphasis   Code
	Foreground Code
	Background Code
}

// Get returns the value of one channel.
func (t Triple) Get(ch Channel) Code {
	switch ch {
	case Emphasis:
		return t.Emphasis
	case Foreground:
		return t.Foreground
	case Background:
		return t.Background
	}
	return None
}

// With returns t with one channel overwritten.
func (t Triple) With(ch Channel, c Code) Triple {
	switch ch {
	case Emphasis:
		t.Emphasis = c
	case Foreground:
		t.Foreground = c
	case Background:
		t.Background = c
	}
	return t
}

func (t Triple) IsZero() bool {
	return t == Triple{}
}

// String renders t as "emphasis;foreground;background" with "-" for unset
// channels, e.g. "1;31;-".
func (t Triple) String() string {
	f := func(c Code) string {
		if c == None {
			return "-"
		}
		return strconv.Itoa(int(c))
	}
	return f(t.Emphasis) + ";" + f(t.Foreground) + ";" + f(t.Background)
}
