package span

import (
	"errors"
	"fmt"
)

// ErrMalformedSelection is returned when a selection does not address a
// range of the document.
var ErrMalformedSelection = errors.New("malformed selection")

// Selection is the half-open range [Start, End) of positions.
type Selection struct {
	Start int
	End   int
}

// Select returns the selection between two positions in either order, the
// way an anchor/focus pair is turned into a range.
func Select(anchor, focus int) Selection {
	if focus < anchor {
		anchor, focus = focus, anchor
	}
	return Selection{Start: anchor, End: focus}
}

// All selects the whole of d.
func All(d Document) Selection {
	return Selection{Start: 0, End: d.Len()}
}

func (s Selection) Empty() bool {
	return s.Start == s.End
}

func (s Selection) Len() int {
	return s.End - s.Start
}

func (s Selection) check(d Document) error {
	if n := d.Len(); s.Start < 0 || s.End > n || s.Start > s.End {
		return fmt.Errorf("%w: [%d,%d) in document of length %d", ErrMalformedSelection, s.Start, s.End, n)
	}
	return nil
}
