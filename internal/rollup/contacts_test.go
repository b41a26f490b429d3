package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifedash/internal/domain"
)

func TestUpcomingContacts(t *testing.T) {
	today := "2026-08-31"
	contacts := []domain.ProfessionalContact{
		{ID: 1, Name: "later", NextContact: "2026-09-15"},
		{ID: 2, Name: "today", NextContact: "2026-08-31"},
		{ID: 3, Name: "yesterday", NextContact: "2026-08-30"},
		{ID: 4, Name: "unscheduled", NextContact: ""},
		{ID: 5, Name: "soon", NextContact: "2026-09-01"},
	}
	upcoming := UpcomingContacts(contacts, today)

	// Today is included (boundary inclusive), yesterday and unscheduled are not
	require.Len(t, upcoming, 3)
	assert.Equal(t, "today", upcoming[0].Name) // Sorted ascending by next contact
	assert.Equal(t, "soon", upcoming[1].Name)
	assert.Equal(t, "later", upcoming[2].Name)
}

func TestUpcomingContactsEmpty(t *testing.T) {
	assert.Empty(t, UpcomingContacts(nil, "2026-08-31"))
}
