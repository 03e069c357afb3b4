package stats

import "fmt"

// ProcessingError reports a chat export whose structure cannot be aggregated.
type ProcessingError struct {
	Reason string
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("failed to generate statistics: %s", e.Reason)
}
