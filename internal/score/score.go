// Package score converts finished deal results into duplicate bridge
// scores and point differentials into comparison scores.
package score

import (
	"errors"
	"fmt"

	"github.com/ipvive/bridgerules/bridge"
)

var (
	ErrScoreDiffTooLarge    = errors.New("score diff impossibly large")
	ErrUnknownScoringMethod = errors.New("unknown scoring method")
)

// impBoundaries are the upper bounds of the finite IMP bands. A
// differential scores the index of the first boundary strictly
// exceeding it; the final band above the last boundary is unbounded
// and scores 24.
var impBoundaries = []int{
	20, 50, 90, 130, 170, 220, 270, 320, 370, 430, 500, 600, 750,
	900, 1100, 1300, 1500, 1750, 2000, 2250, 2500, 3000, 3500, 5000,
}

// TableScore computes the duplicate score of one finished deal as the
// (North-South, East-West) pair. For a played contract exactly one side
// scores and the other pointer is nil; a passed-out deal scores zero
// for both sides.
func TableScore(r bridge.Result, vuln bridge.Vulnerability) (ns, ew *int) {
	if r.PassedOut {
		zero := 0
		return &zero, &zero
	}
	vulnerable := vuln.Includes(r.Declarer)

	var points int
	declarerSide := true
	if r.TrickDiff < 0 {
		declarerSide = false
		points = undertrickPenalty(-r.TrickDiff, r.Doubling, vulnerable)
	} else {
		points = contractScore(r, vulnerable)
	}

	declarerIsNS := r.Declarer.SameSide(bridge.North)
	if declarerIsNS == declarerSide {
		return &points, nil
	}
	return nil, &points
}

func undertrickPenalty(down int, doubling bridge.Doubling, vulnerable bool) int {
	if doubling == bridge.Undoubled {
		if vulnerable {
			return 100 * down
		}
		return 50 * down
	}
	steps := [3]int{100, 300, 500}
	if vulnerable {
		steps = [3]int{200, 500, 800}
	}
	var penalty int
	if down <= 3 {
		penalty = steps[down-1]
	} else {
		penalty = steps[2] + 300*(down-3)
	}
	if doubling == bridge.Redoubled {
		penalty *= 2
	}
	return penalty
}

func contractScore(r bridge.Result, vulnerable bool) int {
	var belowLine, aboveLine int
	switch {
	case r.Strain == bridge.NoTrump:
		belowLine = 40 + 30*(int(r.Level)-1)
		aboveLine = 30 * r.TrickDiff
	case r.Strain.IsMajor():
		belowLine = 30 * int(r.Level)
		aboveLine = 30 * r.TrickDiff
	default:
		belowLine = 20 * int(r.Level)
		aboveLine = 20 * r.TrickDiff
	}

	if r.Doubling != bridge.Undoubled {
		belowLine *= 2
		// 50 for the insult, then doubled overtricks.
		if vulnerable {
			aboveLine = 50 + 200*r.TrickDiff
		} else {
			aboveLine = 50 + 100*r.TrickDiff
		}
		if r.Doubling == bridge.Redoubled {
			belowLine *= 2
			aboveLine *= 2
		}
	}

	bonus := 50
	if belowLine >= 100 {
		if vulnerable {
			bonus = 500
		} else {
			bonus = 300
		}
	}
	switch r.Level {
	case 6:
		if vulnerable {
			bonus += 750
		} else {
			bonus += 500
		}
	case 7:
		if vulnerable {
			bonus += 1500
		} else {
			bonus += 1000
		}
	}
	return belowLine + aboveLine + bonus
}

// SignedTableScore folds a table score into a single North-South-positive
// number: positive when North-South scored, negative when East-West did,
// zero for a passed-out deal.
func SignedTableScore(r bridge.Result, vuln bridge.Vulnerability) int {
	ns, ew := TableScore(r, vuln)
	if ns != nil && *ns != 0 {
		return *ns
	}
	if ew != nil {
		return -*ew
	}
	return 0
}

// ComparisonScore converts the point differential between two tables'
// results into a comparison score under the given method.
func ComparisonScore(diff int, scoring bridge.Scoring) (int, error) {
	switch scoring {
	case bridge.Matchpoints:
		switch {
		case diff > 0:
			return 1, nil
		case diff < 0:
			return -1, nil
		default:
			return 0, nil
		}
	case bridge.TotalPoints:
		return diff, nil
	case bridge.IMPs:
		abs := diff
		if abs < 0 {
			abs = -abs
		}
		for i, boundary := range impBoundaries {
			if abs < boundary {
				if diff < 0 {
					return -i, nil
				}
				return i, nil
			}
		}
		if diff < 0 {
			return -len(impBoundaries), nil
		}
		return len(impBoundaries), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownScoringMethod, scoring)
	}
}

// BoardComparisons scores one board played at several tables. Each entry
// of results is that table's result, nil when the table has no result
// yet. The returned slice holds, per table, the sum of its pairwise
// comparison scores against every other table with a result; tables
// without a result score zero and are excluded from others' comparisons.
func BoardComparisons(results []*bridge.Result, vuln bridge.Vulnerability, scoring bridge.Scoring) ([]int, error) {
	signed := make([]int, len(results))
	for i, r := range results {
		if r != nil {
			signed[i] = SignedTableScore(*r, vuln)
		}
	}
	comparisons := make([]int, len(results))
	for i, r := range results {
		if r == nil {
			continue
		}
		for j, other := range results {
			if j == i || other == nil {
				continue
			}
			cmp, err := ComparisonScore(signed[i]-signed[j], scoring)
			if err != nil {
				return nil, err
			}
			comparisons[i] += cmp
		}
	}
	return comparisons, nil
}
