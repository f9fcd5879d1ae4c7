// Package normalizer repairs the goalie GP / W-G column ordering inside
// the "Goalies" section of a season export.
package normalizer

import (
	"math"
)

// Canonical cell values recognized during the pass.
const (
	markerGoalies = "Goalies"
	markerSkaters = "Skaters"
	headerLead    = "Pos"
	labelGP       = "GP"
	labelWG       = "W-G"
)

// sectionState tracks where the pass currently is relative to a goalie
// section. The zero value is "outside any section".
type sectionState int

const (
	// stateOutside means the current row is not inside a Goalies section.
	stateOutside sectionState = iota
	// stateAwaitingHeader means a Goalies marker was seen but no header
	// row has established the column indices yet.
	stateAwaitingHeader
	// stateIndicesKnown means a goalie header fixed the positions of the
	// GP and W-G columns for the rest of the section.
	stateIndicesKnown
)

// cursor carries the section state across the single forward pass.
// gpIdx, wgIdx and globalSwap are meaningful only in stateIndicesKnown,
// so entering or leaving a section always resets the whole value.
type cursor struct {
	state      sectionState
	gpIdx      int
	wgIdx      int
	globalSwap bool
}

// Normalize rewrites the goalie sections of the given rows so the GP column
// precedes the W-G column, and returns the resulting rows together with a
// flag reporting whether any row changed.
//
// The input is never mutated: rows that need a swap are copied, all other
// rows are passed through as the same slice. The transform is idempotent;
// applying it to its own output reports no change.
//
// Two correction modes apply within a Goalies section:
//   - If the header lists W-G before GP, the header cells are swapped and
//     every subsequent row in the section has its two cells swapped
//     unconditionally, keeping the whole section consistent.
//   - If the header is already canonical, a data row is swapped only when
//     its values are evidently inverted: the leading integer of the W-G
//     cell exceeds the leading integer of the GP cell. Wins can never
//     exceed games played.
//
// Rows outside a section, section markers, rows too short to cover both
// indices, and rows with non-numeric tracked cells are emitted unchanged.
func Normalize(rows [][]string) ([][]string, bool) {
	out := make([][]string, 0, len(rows))
	changed := false
	var cur cursor

	for _, row := range rows {
		if len(row) == 1 && row[0] == markerGoalies {
			cur = cursor{state: stateAwaitingHeader}
			out = append(out, row)
			continue
		}

		if len(row) == 1 && row[0] == markerSkaters {
			cur = cursor{state: stateOutside}
			out = append(out, row)
			continue
		}

		if cur.state == stateOutside {
			out = append(out, row)
			continue
		}

		if isGoalieHeader(row) {
			gpIdx := indexOf(row, labelGP)
			wgIdx := indexOf(row, labelWG)

			if wgIdx < gpIdx {
				// Reversed header: put the label cells in canonical
				// order and swap every value row that follows.
				row = swapCells(row, gpIdx, wgIdx)
				changed = true
				cur = cursor{state: stateIndicesKnown, gpIdx: wgIdx, wgIdx: gpIdx, globalSwap: true}
			} else {
				cur = cursor{state: stateIndicesKnown, gpIdx: gpIdx, wgIdx: wgIdx}
			}

			out = append(out, row)
			continue
		}

		if cur.state == stateIndicesKnown && len(row) > maxIndex(cur.gpIdx, cur.wgIdx) {
			if cur.globalSwap {
				row = swapCells(row, cur.gpIdx, cur.wgIdx)
				changed = true
			} else if gp, wg, ok := parsePair(row[cur.gpIdx], row[cur.wgIdx]); ok && wg > gp {
				row = swapCells(row, cur.gpIdx, cur.wgIdx)
				changed = true
			}
		}

		out = append(out, row)
	}

	return out, changed
}

// isGoalieHeader reports whether a row is the goalie header: it leads with
// "Pos" and carries both column labels of interest.
func isGoalieHeader(row []string) bool {
	return len(row) > 0 && row[0] == headerLead &&
		indexOf(row, labelGP) >= 0 && indexOf(row, labelWG) >= 0
}

// indexOf returns the index of the first cell equal to value, or -1.
func indexOf(row []string, value string) int {
	for i, cell := range row {
		if cell == value {
			return i
		}
	}
	return -1
}

// swapCells returns a copy of row with the cells at i and j exchanged.
func swapCells(row []string, i, j int) []string {
	swapped := make([]string, len(row))
	copy(swapped, row)
	swapped[i], swapped[j] = swapped[j], swapped[i]
	return swapped
}

func maxIndex(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// parsePair parses the leading integer prefix of both tracked cells.
// It returns ok=false when either cell has no leading digits.
func parsePair(gpCell, wgCell string) (gp, wg int, ok bool) {
	gp, ok = parseIntPrefix(gpCell)
	if !ok {
		return 0, 0, false
	}
	wg, ok = parseIntPrefix(wgCell)
	if !ok {
		return 0, 0, false
	}
	return gp, wg, true
}

// parseIntPrefix extracts the leading unsigned integer of a cell value,
// ignoring leading whitespace. Composite values such as "18-5-3" yield
// their first component. A cell with no leading digits yields ok=false,
// as does a digit run that would overflow int — no stat is that large.
func parseIntPrefix(value string) (int, bool) {
	i := 0
	for i < len(value) && (value[i] == ' ' || value[i] == '\t') {
		i++
	}

	start := i
	n := 0
	for i < len(value) && value[i] >= '0' && value[i] <= '9' {
		if n > (math.MaxInt-9)/10 {
			return 0, false
		}
		n = n*10 + int(value[i]-'0')
		i++
	}

	if i == start {
		return 0, false
	}
	return n, true
}
