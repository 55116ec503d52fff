package freq

import "sort"

// Above this size Rank switches from insertion sort to sort.SliceStable.
// Both keep equal counts in their original order so the output is the same.
const insertionSortMax = 256

// Rank sorts entries in place by ascending count. Entries with equal counts
// keep their relative order.
func Rank(entries []Entry) {
	if len(entries) > insertionSortMax {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Count < entries[j].Count
		})
		return
	}

	insertionSort(entries)
}

func insertionSort(entries []Entry) {
	for i := 1; i < len(entries); i++ {
		e := entries[i]
		j := i - 1
		// Stop at the first count <= e.Count, equal counts never move.
		for j >= 0 && entries[j].Count > e.Count {
			entries[j+1] = entries[j]
			j--
		}
		entries[j+1] = e
	}
}
