package label

import (
	"unicode/utf8"

	"github.com/agilomatrix/racklabel/pkg/render"
)

// ellipsis marks a truncated description.
const ellipsis = "..."

// FormatPartNumber returns the spans rendering a part number.
//
// Part numbers longer than the configured suffix length split into a
// prefix (everything but the last SuffixLen characters) at the smaller
// size and a suffix (the last SuffixLen characters) at the larger size,
// both bold on one line. Lengths count characters, not bytes, so
// multibyte part numbers split on rune boundaries. Shorter part numbers
// render whole at the smaller size. The split is purely positional, so
// prefix+suffix always reconstructs the input exactly.
func FormatPartNumber(partNo string, st PartNumberStyle) []render.Span {
	runes := []rune(partNo)
	if st.SuffixLen > 0 && len(runes) > st.SuffixLen {
		split := len(runes) - st.SuffixLen
		return []render.Span{
			{Text: string(runes[:split]), Size: st.PrefixSize, Bold: true},
			{Text: string(runes[split:]), Size: st.SuffixSize, Bold: true},
		}
	}
	return []render.Span{{Text: partNo, Size: st.PrefixSize, Bold: true}}
}

// FormatDescription returns the single span rendering a description.
//
// With a fixed size configured the text passes through unchanged and the
// renderer wraps it. Otherwise the font size comes from the first length
// bucket that covers the text; text longer than every bucket renders at
// MinSize and is cut at TruncateAt characters with a trailing ellipsis.
// All lengths count characters, not bytes. This length-bucketed sizing
// is a deliberate, cheap stand-in for real text measurement, so the
// thresholds must stay exact.
func FormatDescription(desc string, st DescriptionStyle) render.Span {
	if st.FixedSize > 0 {
		return render.Span{Text: desc, Size: st.FixedSize}
	}

	length := utf8.RuneCountInString(desc)
	for _, b := range st.Buckets {
		if length <= b.MaxLen {
			return render.Span{Text: desc, Size: b.Size}
		}
	}

	if st.TruncateAt > 0 && length > st.TruncateAt {
		desc = string([]rune(desc)[:st.TruncateAt]) + ellipsis
	}
	return render.Span{Text: desc, Size: st.MinSize}
}
