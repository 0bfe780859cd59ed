package style

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownCode is returned for codes outside the style table.  Such codes
// must never be installed into a scope.
var ErrUnknownCode = errors.New("unknown style code")

// Channel is one of the three independent style dimensions.
type Channel uint8

const (
	Emphasis Channel = iota
	Foreground
	Background
)

func (ch Channel) String() string {
	switch ch {
	case Emphasis:
		return "emphasis"
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	}
	return "channel(" + strconv.Itoa(int(ch)) + ")"
}

// ParseChannel accepts the long names plus the short forms used by the
// editor buttons ("style", "fg", "bg").
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "emphasis", "style":
		return Emphasis, nil
	case "foreground", "fg":
		return Foreground, nil
	case "background", "bg":
		return Background, nil
	}
	return 0, fmt.Errorf("unknown channel %q", s)
}

// Code is an SGR parameter value.  None means "not declared": a scope never
// carries it, and as a requested value it resets the channel.
type Code uint8

const None Code = 0

const (
	Bold      Code = 1
	Underline Code = 4
)

const (
	FgGray Code = 30 + iota
	FgRed
	FgGreen
	FgGold
	FgBlue
	FgPink
	FgTeal
	FgWhite
)

const (
	BgBlack Code = 40 + iota
	BgRust
	BgGray40
	BgGray45
	BgGray55
	BgBlurple
	BgGray60
	BgCream
)

// Info describes how a code is previewed.  Color is empty for emphasis codes.
type Info struct {
	Code    Code
	Channel Channel
	Label   string
	Color   string // "#rrggbb"
}

var table = map[Code]Info{
	Bold:      {Bold, Emphasis, "Bold", ""},
	Underline: {Underline, Emphasis, "Underline", ""},

	FgGray:  {FgGray, Foreground, "Dark Gray (33%)", "#4f545c"},
	FgRed:   {FgRed, Foreground, "Red", "#dc322f"},
	FgGreen: {FgGreen, Foreground, "Yellowish Green", "#859900"},
	FgGold:  {FgGold, Foreground, "Gold", "#b58900"},
	FgBlue:  {FgBlue, Foreground, "Light Blue", "#268bd2"},
	FgPink:  {FgPink, Foreground, "Pink", "#d33682"},
	FgTeal:  {FgTeal, Foreground, "Teal", "#2aa198"},
	FgWhite: {FgWhite, Foreground, "White", "#ffffff"},

	BgBlack:   {BgBlack, Background, "Blueish Black", "#002b36"},
	BgRust:    {BgRust, Background, "Rust Brown", "#cb4b16"},
	BgGray40:  {BgGray40, Background, "Gray (40%)", "#586e75"},
	BgGray45:  {BgGray45, Background, "Gray (45%)", "#657b83"},
	BgGray55:  {BgGray55, Background, "Light Gray (55%)", "#839496"},
	BgBlurple: {BgBlurple, Background, "Blurple", "#6c71c4"},
	BgGray60:  {BgGray60, Background, "Light Gray (60%)", "#93a1a1"},
	BgCream:   {BgCream, Background, "Cream White", "#fdf6e3"},
}

// Lookup returns the table entry for c.
func Lookup(c Code) (Info, error) {
	info, ok := table[c]
	if !ok {
		return Info{}, fmt.Errorf("%w: %d", ErrUnknownCode, c)
	}
	return info, nil
}

// Valid reports whether c is in the style table.
func (c Code) Valid() bool {
	_, ok := table[c]
	return ok
}

// Channel classifies c: emphasis below 30, foreground 30-39, background from
// 40 up.  Codes outside the table are rejected.
func (c Code) Channel() (Channel, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCode, c)
	}
	switch {
	case c < 30:
		return Emphasis, nil
	case c < 40:
		return Foreground, nil
	}
	return Background, nil
}

// Codes lists the codes of one channel in ascending order.
func Codes(ch Channel) []Code {
	var out []Code
	for c, info := range table {
		if info.Channel == ch {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseCode parses a decimal code, optionally written with the "ansi-"
// class prefix used by the editor markup.
func ParseCode(s string) (Code, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "ansi-")
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return None, fmt.Errorf("%w: %q", ErrUnknownCode, s)
	}
	c := Code(n)
	if !c.Valid() {
		return None, fmt.Errorf("%w: %d", ErrUnknownCode, c)
	}
	return c, nil
}
