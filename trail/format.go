// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: TrailFormatter, deterministic text rendering of a Trail.

package trail

import (
	"math"
	"strconv"
	"strings"
)

// Format renders t as
//
//	<start> -[<edge_id>: <weight>]-> ... <final_vertex>  (total = <sum>)
//
// e.g. "1 -[0: 2.0]-> 2 -[0: 3.0]-> 3  (total = 5.0)".
//
// An empty trail renders as "" with no total annotation.
func Format(t Trail) string {
	if len(t) == 0 {
		return ""
	}

	var b strings.Builder
	var total float64
	for _, s := range t {
		b.WriteString(strconv.Itoa(int(s.VertexStart)))
		b.WriteString(" -[")
		b.WriteString(strconv.Itoa(s.EdgeID))
		b.WriteString(": ")
		b.WriteString(FormatWeight(s.Weight))
		b.WriteString("]-> ")
		total += s.Weight
	}
	b.WriteString(strconv.Itoa(int(t[len(t)-1].VertexEnd)))
	b.WriteString("  (total = ")
	b.WriteString(FormatWeight(total))
	b.WriteString(")")

	return b.String()
}

// FormatWeight prints w as the shortest string that round-trips, always
// marking it as real: 2 → "2.0", 0.1+0.2 → "0.30000000000000004".
// Exponent notation is used when the decimal exponent is below -4 or at
// least 16 (1e-05, 1e+16).
func FormatWeight(w float64) string {
	switch {
	case math.IsNaN(w):
		return "nan"
	case math.IsInf(w, 1):
		return "inf"
	case math.IsInf(w, -1):
		return "-inf"
	}

	if w != 0 {
		// exponent of the shortest decimal form, e.g. "1.5e-05" → -5
		sci := strconv.FormatFloat(w, 'e', -1, 64)
		exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
		if exp < -4 || exp >= 16 {
			return sci
		}
	}

	s := strconv.FormatFloat(w, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
