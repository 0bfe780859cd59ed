// Package compose flattens the nested scopes of a document into sorted,
// non-overlapping runs of constant style.
package compose

import (
	"sort"

	"github.com/cptaffe/ansi-styles/span"
	"github.com/cptaffe/ansi-styles/style"
)

// Run is a maximal span of positions sharing one effective triple.  Runs
// whose triple is zero are not produced.
type Run struct {
	Style style.Triple
	Start int
	End   int // exclusive
}

// Runs sweeps the scope ranges of doc.  For each channel the deepest active
// scope wins, which is the nearest-ancestor rule of the tree.  Scopes with
// codes outside the table are transparent.
func Runs(doc span.Document) []Run {
	return compose(span.Scopes(doc))
}

func compose(scopes []span.ScopeRange) []Run {
	type event struct {
		pos   int
		depth int
		ch    style.Channel
		code  style.Code
		isEnd bool
	}
	var events []event
	for _, s := range scopes {
		if s.End <= s.Start {
			continue
		}
		ch, err := s.Code.Channel()
		if err != nil {
			continue
		}
		events = append(events, event{s.Start, s.Depth, ch, s.Code, false})
		events = append(events, event{s.End, s.Depth, ch, s.Code, true})
	}
	if len(events) == 0 {
		return nil
	}

	// Sort: by position; at the same position, ends before starts.
	sort.Slice(events, func(i, j int) bool {
		if events[i].pos != events[j].pos {
			return events[i].pos < events[j].pos
		}
		if events[i].isEnd != events[j].isEnd {
			return events[i].isEnd
		}
		return events[i].depth < events[j].depth
	})

	var active [3]map[int]style.Code // channel → depth → code
	for i := range active {
		active[i] = make(map[int]style.Code)
	}
	current := func() style.Triple {
		var t style.Triple
		for ch, m := range active {
			best := -1
			for depth, code := range m {
				if depth > best {
					best = depth
					t = t.With(style.Channel(ch), code)
				}
			}
		}
		return t
	}

	var result []Run
	var cur style.Triple
	curPos := 0
	for i := 0; i < len(events); {
		pos := events[i].pos
		if pos > curPos && !cur.IsZero() {
			if n := len(result); n > 0 && result[n-1].End == curPos && result[n-1].Style == cur {
				result[n-1].End = pos
			} else {
				result = append(result, Run{Style: cur, Start: curPos, End: pos})
			}
		}
		for i < len(events) && events[i].pos == pos {
			ev := events[i]
			if ev.isEnd {
				delete(active[ev.ch], ev.depth)
			} else {
				active[ev.ch][ev.depth] = ev.code
			}
			i++
		}
		curPos = pos
		cur = current()
	}
	return result
}
