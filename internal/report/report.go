package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/xaenox/stataddict/internal/models"
	"github.com/xaenox/stataddict/internal/stats"
)

const DefaultCredit = "Generated by FedNazar's StatAddict for Telegram"

type Options struct {
	// ShowIDs appends the user ID after each display name.
	ShowIDs bool
	// Top limits every section to the first Top ranks; 0 prints all.
	Top    int
	Credit string
}

type Reporter struct {
	w    io.Writer
	opts Options
}

func New(w io.Writer, opts Options) *Reporter {
	if opts.Credit == "" {
		opts.Credit = DefaultCredit
	}
	return &Reporter{w: w, opts: opts}
}

// Render writes a ranked section for every counter followed by the credit line.
func (r *Reporter) Render(set *models.CounterSet) error {
	bw := bufio.NewWriter(r.w)

	for _, category := range models.Categories {
		r.renderSection(bw, category.Title(), stats.SortDescending(set.Counter(category)), set)
	}
	fmt.Fprintf(bw, "\n%s\n", r.opts.Credit)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (r *Reporter) renderSection(w io.Writer, header string, ranked []models.UserCount, set *models.CounterSet) {
	fmt.Fprintf(w, "\n%s\n\n", header)

	if r.opts.Top > 0 && len(ranked) > r.opts.Top {
		ranked = ranked[:r.opts.Top]
	}

	for i, entry := range ranked {
		fmt.Fprintf(w, "%d. %s", i+1, set.DisplayName(entry.UserID))
		if r.opts.ShowIDs {
			fmt.Fprintf(w, " (%s)", entry.UserID)
		}
		fmt.Fprintf(w, ": %d\n", entry.Count)
	}
}
