package typedjson

import (
	"slices"
	"strconv"
	"strings"
)

// segment is one step of the diagnostic path: a member key for keyed access
// or an element index for sequence access.
type segment struct {
	key   string
	index int
	keyed bool
}

func keySegment(key string) segment { return segment{key: key, keyed: true} }

func indexSegment(i int) segment { return segment{index: i} }

// childSegs returns base extended by seg, without sharing base's backing
// array.
func childSegs(base []segment, seg segment) []segment {
	return append(slices.Clip(slices.Clone(base)), seg)
}

func childPath(base []segment, seg segment) string {
	return formatPath(childSegs(base, seg))
}

// formatPath renders segments as a dotted trail, "items[2].name" style. An
// empty path renders empty; callers label it as the top level.
func formatPath(segs []segment) string {
	var b strings.Builder
	for i, s := range segs {
		if s.keyed {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s.key)
		} else {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
		}
	}
	return b.String()
}
