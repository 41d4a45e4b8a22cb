package internal

// longestIncreasingSubsequence returns, in ascending order, the indices
// into seq that form one strictly increasing subsequence of maximum
// length — the classic O(n log n) patience-sort construction. Entries
// holding -1 are sentinels (a brand-new item with no prior position)
// and are never part of the result.
func longestIncreasingSubsequence(seq []int) []int {
	n := len(seq)
	if n == 0 {
		return nil
	}

	// tails[k] is the index into seq of the smallest tail value among all
	// increasing subsequences of length k+1 found so far.
	tails := make([]int, 0, n)
	predecessor := make([]int, n)

	for i, v := range seq {
		if v < 0 {
			predecessor[i] = -1
			continue
		}

		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if seq[tails[mid]] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}

		if lo > 0 {
			predecessor[i] = tails[lo-1]
		} else {
			predecessor[i] = -1
		}

		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}

	if len(tails) == 0 {
		return nil
	}

	result := make([]int, len(tails))
	idx := tails[len(tails)-1]
	for k := len(tails) - 1; k >= 0 && idx != -1; k-- {
		result[k] = idx
		idx = predecessor[idx]
	}
	return result
}
