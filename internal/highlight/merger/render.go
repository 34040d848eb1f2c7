package merger

import (
	"cmp"
	"slices"
	"strings"

	"clearview/internal/highlight/models"
	dErrors "clearview/pkg/domain-errors"
)

type insertion struct {
	at    int
	close bool
	seq   int
}

// Render wraps every highlighted byte range of text with the marker pair.
// Overlapping highlights (single-agent mode) simply interleave their markers;
// at one offset closing markers come before opening ones.
//
// Errors: CodeInvalidSpan when a highlight lies outside text.
func Render(text string, highlights []models.FlattenedHighlight, markers models.Markers) (string, error) {
	ins := make([]insertion, 0, 2*len(highlights))
	for i, h := range highlights {
		if h.Start < 0 || h.Start > h.End || h.End > len(text) {
			return "", dErrors.Newf(dErrors.CodeInvalidSpan,
				"highlight %d [%d, %d) lies outside text of length %d", i, h.Start, h.End, len(text))
		}
		ins = append(ins, insertion{at: h.Start, seq: i}, insertion{at: h.End, close: true, seq: i})
	}
	slices.SortStableFunc(ins, func(a, b insertion) int {
		if c := cmp.Compare(a.at, b.at); c != 0 {
			return c
		}
		if a.close != b.close {
			if a.close {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.seq, b.seq)
	})

	var b strings.Builder
	b.Grow(len(text) + len(ins)*max(len(markers.Open), len(markers.Close)))
	pos := 0
	for _, in := range ins {
		b.WriteString(text[pos:in.at])
		pos = in.at
		if in.close {
			b.WriteString(markers.Close)
		} else {
			b.WriteString(markers.Open)
		}
	}
	b.WriteString(text[pos:])
	return b.String(), nil
}
