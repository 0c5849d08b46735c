package optimizer

import (
	"sort"

	"github.com/schedulewise/schedulewise-api/internal/models"
)

// enumerate produces the candidate subject combinations in evaluation order.
// Subjects with fewer slot alternatives sort first so scarce subjects are
// placed before flexible ones; the sort is stable, preserving catalog order
// among equals. Subsets are emitted smallest size first, in lexicographic
// index order within each size, which fixes the tie-breaking order the
// optimizer's "first best wins" rule depends on.
func enumerate(subjects []models.Subject, maxSize int, fullOnly bool) [][]models.Subject {
	sorted := make([]models.Subject, len(subjects))
	copy(sorted, subjects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].AvailableSlots) < len(sorted[j].AvailableSlots)
	})

	if fullOnly {
		return [][]models.Subject{sorted}
	}

	n := len(sorted)
	limit := min(n, maxSize)

	var combos [][]models.Subject
	for size := 1; size <= limit; size++ {
		combos = append(combos, chooseSize(sorted, size)...)
	}
	return combos
}

// chooseSize emits all subsets of the given size in lexicographic index order.
func chooseSize(subjects []models.Subject, size int) [][]models.Subject {
	n := len(subjects)
	indexes := make([]int, size)
	for i := range indexes {
		indexes[i] = i
	}

	var combos [][]models.Subject
	for {
		combo := make([]models.Subject, size)
		for i, idx := range indexes {
			combo[i] = subjects[idx]
		}
		combos = append(combos, combo)

		// Advance to the next lexicographic index combination.
		i := size - 1
		for i >= 0 && indexes[i] == n-size+i {
			i--
		}
		if i < 0 {
			break
		}
		indexes[i]++
		for j := i + 1; j < size; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
	return combos
}
