package surreal

import (
	"strconv"
	"strings"
)

// String renders x as "< left-members | right-members >", each member shown
// by its float64 projection. Presentational only: the rendering projects
// children through Float and is not a faithful structural serialization.
func (x Number) String() string {
	if x.u == nil {
		return "<invalid Number>"
	}
	s := x.u.lookup(x.id)

	var b strings.Builder
	b.WriteString("< ")
	for _, l := range s.left {
		b.WriteString(formatProjection((Number{x.u, l}).Float()))
		b.WriteString(" ")
	}
	b.WriteString("| ")
	for _, r := range s.right {
		b.WriteString(formatProjection((Number{x.u, r}).Float()))
		b.WriteString(" ")
	}
	b.WriteString(">")
	return b.String()
}

func formatProjection(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
