package mask

import "github.com/ericlevine/qrencode/bitutil"

// Rule is one of the four penalty rules used to rank masked symbols.
type Rule int

const (
	Rule1 Rule = iota + 1 // runs of same-colored modules
	Rule2                 // 2x2 blocks of the same color
	Rule3                 // finder-like patterns
	Rule4                 // dark/light imbalance
)

// Penalty weights.
const (
	n1 = 3
	n2 = 3
	n3 = 40
	n4 = 10
)

// rules is indexed by Rule-1.
var rules = [4]func(*bitutil.BitMatrix) int{
	applyMaskPenaltyRule1,
	applyMaskPenaltyRule2,
	applyMaskPenaltyRule3,
	applyMaskPenaltyRule4,
}

// Valid reports whether r is one of Rule1 to Rule4.
func (r Rule) Valid() bool {
	return r >= Rule1 && r <= Rule4
}

// Penalty scores m under the rule. A rule outside Rule1 to Rule4 scores 0.
func (r Rule) Penalty(m *bitutil.BitMatrix) int {
	if !r.Valid() {
		return 0
	}
	return rules[r-1](m)
}

// TotalPenalty is the sum of all four rules.
func TotalPenalty(m *bitutil.BitMatrix) int {
	return Rule1.Penalty(m) + Rule2.Penalty(m) + Rule3.Penalty(m) + Rule4.Penalty(m)
}

// Mask penalty rule 1: penalize runs of 5+ same-color modules
func applyMaskPenaltyRule1(m *bitutil.BitMatrix) int {
	return applyMaskPenaltyRule1Internal(m, true) + applyMaskPenaltyRule1Internal(m, false)
}

func applyMaskPenaltyRule1Internal(m *bitutil.BitMatrix, isHorizontal bool) int {
	penalty := 0
	iLimit := m.Height()
	jLimit := m.Width()
	if !isHorizontal {
		iLimit, jLimit = jLimit, iLimit
	}
	for i := 0; i < iLimit; i++ {
		numSameBitCells := 0
		prevBit := false
		for j := 0; j < jLimit; j++ {
			var bit bool
			if isHorizontal {
				bit = m.Get(j, i)
			} else {
				bit = m.Get(i, j)
			}
			if j > 0 && bit == prevBit {
				numSameBitCells++
				continue
			}
			if numSameBitCells >= 5 {
				penalty += n1 + (numSameBitCells - 5)
			}
			numSameBitCells = 1
			prevBit = bit
		}
		if numSameBitCells >= 5 {
			penalty += n1 + (numSameBitCells - 5)
		}
	}
	return penalty
}

// Mask penalty rule 2: penalize 2x2 blocks of same color. When the right
// column of a window differs, no window containing that column can match.
func applyMaskPenaltyRule2(m *bitutil.BitMatrix) int {
	penalty := 0
	for y := 0; y < m.Height()-1; y++ {
		x := 0
		for x < m.Width()-1 {
			right := m.Get(x+1, y)
			if right != m.Get(x+1, y+1) {
				x += 2
				continue
			}
			if m.Get(x, y) == right && m.Get(x, y+1) == right {
				penalty += n2
			}
			x++
		}
	}
	return penalty
}

var finderLike = [2][11]bool{
	{true, false, true, true, true, false, true, false, false, false, false},
	{false, false, false, false, true, false, true, true, true, false, true},
}

// Mask penalty rule 3: penalize 1:1:3:1:1 finder-like patterns with four
// light modules on one side, in rows and columns.
func applyMaskPenaltyRule3(m *bitutil.BitMatrix) int {
	penalty := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x+11 <= m.Width(); x++ {
			if matchesFinderLike(func(k int) bool { return m.Get(x+k, y) }) {
				penalty += n3
			}
		}
	}
	for x := 0; x < m.Width(); x++ {
		for y := 0; y+11 <= m.Height(); y++ {
			if matchesFinderLike(func(k int) bool { return m.Get(x, y+k) }) {
				penalty += n3
			}
		}
	}
	return penalty
}

func matchesFinderLike(at func(k int) bool) bool {
	for _, pattern := range finderLike {
		matched := true
		for k, want := range pattern {
			if at(k) != want {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// Mask penalty rule 4: penalize deviation from 50% dark modules
func applyMaskPenaltyRule4(m *bitutil.BitMatrix) int {
	numDarkCells := 0
	total := m.Height() * m.Width()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				numDarkCells++
			}
		}
	}
	fivePercentVariances := abs(numDarkCells*2-total) * 10 / total
	return fivePercentVariances * n4
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
