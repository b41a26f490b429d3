package rollup

import (
	"sort"

	"lifedash/internal/domain"
)

// TypeCount is one entry of the library type distribution. BarWidth is the
// count relative to the most frequent type.
type TypeCount struct {
	Type     string  `json:"type"`
	Count    int     `json:"count"`
	BarWidth float64 `json:"bar_width"`
}

// LibrarySummary is the library rollup
type LibrarySummary struct {
	Total            int            `json:"total"`
	StatusCounts     map[string]int `json:"status_counts"`
	CompletionRate   int            `json:"completion_rate"`
	TypeDistribution []TypeCount    `json:"type_distribution"`
}

// FilterLibrary narrows items by optional status and type equality filters.
// Empty filter values match everything; the filters combine independently.
func FilterLibrary(items []domain.LibraryItem, status, itemType string) []domain.LibraryItem {
	out := []domain.LibraryItem{}
	for _, it := range items {
		if status != "" && it.Status != status {
			continue
		}
		if itemType != "" && it.Type != itemType {
			continue
		}
		out = append(out, it)
	}
	return out
}

// SummarizeLibrary rolls library items up into status counts, a completion
// rate and the type distribution sorted by frequency
func SummarizeLibrary(items []domain.LibraryItem) LibrarySummary {
	statusCounts := map[string]int{
		domain.LibraryPending:    0,
		domain.LibraryInProgress: 0,
		domain.LibraryCompleted:  0,
		domain.LibraryArchived:   0,
	}
	byType := make(map[string]int)
	for _, it := range items {
		if _, ok := statusCounts[it.Status]; ok {
			statusCounts[it.Status]++
		}
		byType[it.Type]++
	}

	types := make([]TypeCount, 0, len(byType))
	for name, count := range byType {
		types = append(types, TypeCount{Type: name, Count: count})
	}
	sort.Slice(types, func(i, j int) bool {
		// Descending by count, type ascending as a deterministic tie-break
		if types[i].Count != types[j].Count {
			return types[i].Count > types[j].Count
		}
		return types[i].Type < types[j].Type
	})
	max := 1.0
	if len(types) > 0 {
		max = float64(types[0].Count)
	}
	for i := range types {
		types[i].BarWidth = Clamp(SafePercent(float64(types[i].Count), max), 0, 100)
	}

	return LibrarySummary{
		Total:            len(items),
		StatusCounts:     statusCounts,
		CompletionRate:   RoundPercent(SafePercent(float64(statusCounts[domain.LibraryCompleted]), float64(len(items)))),
		TypeDistribution: types,
	}
}
