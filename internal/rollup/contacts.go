package rollup

import (
	"sort"

	"lifedash/internal/domain"
)

// UpcomingContacts returns the contacts whose next_contact date is today or
// later (calendar date, boundary inclusive), sorted ascending by that date.
// ISO date strings compare correctly as plain strings.
func UpcomingContacts(contacts []domain.ProfessionalContact, today string) []domain.ProfessionalContact {
	out := []domain.ProfessionalContact{}
	for _, c := range contacts {
		if c.NextContact != "" && c.NextContact >= today {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NextContact < out[j].NextContact
	})
	return out
}
