package sevenseg

import "strings"

// Dump draws the segments last shown on d as five lines of text, one digit
// per 4 columns. Dashes are the horizontal segments, bars the vertical ones
// and dots mark a clock separator.
func Dump(d Display) string {
	mods := d.Modules()
	var gaps map[int]bool
	colon := false
	if cd, ok := d.(*ClockDisplay); ok {
		colon = cd.separator
		gaps = map[int]bool{}
		if cd.ShowHours() {
			gaps[HH2-cd.first()] = true
		}
		gaps[MM2-cd.first()] = true
	}

	lit := func(m *Module, s Segment) bool {
		return m.Mask()&(1<<s) != 0
	}
	pick := func(on bool, s string) string {
		if on {
			return s
		}
		return strings.Repeat(" ", len(s))
	}

	var rows [5]strings.Builder
	for i, m := range mods {
		rows[0].WriteString(" " + pick(lit(m, SegA), "-") + "  ")
		rows[1].WriteString(pick(lit(m, SegF), "|") + " " + pick(lit(m, SegB), "|") + " ")
		rows[2].WriteString(" " + pick(lit(m, SegG), "-") + "  ")
		rows[3].WriteString(pick(lit(m, SegE), "|") + " " + pick(lit(m, SegC), "|") + " ")
		rows[4].WriteString(" " + pick(lit(m, SegD), "-") + "  ")
		if gaps[i] && i < len(mods)-1 {
			for r := range rows {
				if (r == 1 || r == 3) && colon {
					rows[r].WriteString(". ")
				} else {
					rows[r].WriteString("  ")
				}
			}
		}
	}

	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = strings.TrimRight(rows[i].String(), " ")
	}
	return strings.Join(lines, "\n")
}
