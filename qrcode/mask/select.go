package mask

import (
	"math"

	"github.com/ericlevine/qrencode/bitutil"
	"github.com/ericlevine/qrencode/qrcode/matrix"
	"github.com/ericlevine/qrencode/qrcode/version"
)

// Result is a masked symbol with its format information embedded.
type Result struct {
	Pattern Pattern
	Penalty int
	Matrix  *bitutil.BitMatrix
}

// Apply masks a copy of tm with pattern p, embeds the format information for
// ecLevel and p, and scores the result. tm is not modified.
func Apply(tm *matrix.TriStateMatrix, ecLevel version.ErrorCorrectionLevel, p Pattern) (Result, error) {
	candidate := tm.Clone()
	candidate.Mask(p.Func())
	candidate.EmbedFormatInfo(ecLevel, int(p))
	bm, err := candidate.Freeze()
	if err != nil {
		return Result{}, err
	}
	return Result{Pattern: p, Penalty: TotalPenalty(bm), Matrix: bm}, nil
}

// Select tries all eight patterns and returns the lowest-scoring one. Ties
// go to the lower pattern number.
func Select(tm *matrix.TriStateMatrix, ecLevel version.ErrorCorrectionLevel) (Result, error) {
	best := Result{Penalty: math.MaxInt}
	for p := Pattern(0); p < NumPatterns; p++ {
		r, err := Apply(tm, ecLevel, p)
		if err != nil {
			return Result{}, err
		}
		if r.Penalty < best.Penalty {
			best = r
		}
	}
	return best, nil
}
