package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifedash/internal/domain"
)

func libItem(status, itemType string) domain.LibraryItem {
	return domain.LibraryItem{Status: status, Type: itemType}
}

func TestSummarizeLibrary(t *testing.T) {
	items := []domain.LibraryItem{
		libItem(domain.LibraryCompleted, domain.LibraryBook),
		libItem(domain.LibraryCompleted, domain.LibraryArticle),
		libItem(domain.LibraryPending, domain.LibraryArticle),
		libItem(domain.LibraryInProgress, domain.LibraryCourse),
	}
	s := SummarizeLibrary(items)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.StatusCounts[domain.LibraryCompleted])
	assert.Equal(t, 1, s.StatusCounts[domain.LibraryPending])
	assert.Equal(t, 1, s.StatusCounts[domain.LibraryInProgress])
	assert.Equal(t, 0, s.StatusCounts[domain.LibraryArchived])
	assert.Equal(t, 50, s.CompletionRate) // 2 of 4 completed

	require.Len(t, s.TypeDistribution, 3)
	assert.Equal(t, domain.LibraryArticle, s.TypeDistribution[0].Type) // Most frequent first
	assert.Equal(t, 100.0, s.TypeDistribution[0].BarWidth)
	assert.Equal(t, 50.0, s.TypeDistribution[1].BarWidth) // 1 of 2
}

func TestSummarizeLibraryEmpty(t *testing.T) {
	s := SummarizeLibrary(nil)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.CompletionRate) // Empty set yields 0, not NaN
	assert.Empty(t, s.TypeDistribution)
	assert.Len(t, s.StatusCounts, 4) // All four statuses still reported
}

func TestFilterLibrary(t *testing.T) {
	items := []domain.LibraryItem{
		libItem(domain.LibraryCompleted, domain.LibraryBook),
		libItem(domain.LibraryCompleted, domain.LibraryArticle),
		libItem(domain.LibraryPending, domain.LibraryBook),
	}

	// Each filter narrows independently, both combine as a conjunction
	assert.Len(t, FilterLibrary(items, domain.LibraryCompleted, ""), 2)
	assert.Len(t, FilterLibrary(items, "", domain.LibraryBook), 2)
	assert.Len(t, FilterLibrary(items, domain.LibraryCompleted, domain.LibraryBook), 1)
	assert.Len(t, FilterLibrary(items, "", ""), 3) // No filters match everything
}
