package recommend

import (
	"math"
	"sort"
)

// sortByFee orders results ascending by fee. Records without an extractable
// fee sort last; the sort is stable so ties keep catalog order, making
// output deterministic for identical inputs.
func sortByFee(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return feeKey(results[i]) < feeKey(results[j])
	})
}

// sortByFeeThenName additionally breaks fee ties by name (used for keyword
// listings where catalog order is less meaningful than a readable list).
func sortByFeeThenName(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		fi, fj := feeKey(results[i]), feeKey(results[j])
		if fi != fj {
			return fi < fj
		}
		return results[i].Name < results[j].Name
	})
}

func feeKey(r Result) float64 {
	if r.Fee == nil {
		return math.Inf(1)
	}
	return *r.Fee
}

// truncate caps a sorted result list. Always applied after sorting.
func truncate(results []Result, cap int) []Result {
	if len(results) > cap {
		return results[:cap]
	}
	return results
}
