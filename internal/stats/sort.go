package stats

import (
	"sort"

	"github.com/xaenox/stataddict/internal/models"
)

// SortDescending ranks the counter by count. Ties keep the order in which
// users were first counted.
func SortDescending(counter *models.Counter) []models.UserCount {
	entries := counter.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
