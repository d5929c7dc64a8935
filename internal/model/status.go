package model

// OutcomeKind describes one step of a single item's download.
type OutcomeKind string

const (
	// OutcomeStarted is emitted once before the item's transfer begins
	OutcomeStarted OutcomeKind = "Started"

	// OutcomeProgress carries a percentage string while bytes are flowing
	OutcomeProgress OutcomeKind = "Progress"

	// OutcomeCompleted means the file was written successfully
	OutcomeCompleted OutcomeKind = "Completed"

	// OutcomeFailed means the transfer failed; the batch moves on
	OutcomeFailed OutcomeKind = "Failed"

	// OutcomeCancelled means the batch was stopped while this item was in flight
	OutcomeCancelled OutcomeKind = "Cancelled"
)

// String returns the string representation of OutcomeKind
func (k OutcomeKind) String() string {
	return string(k)
}

// IsTerminal returns true if no further events follow for the same item
func (k OutcomeKind) IsTerminal() bool {
	return k == OutcomeCompleted || k == OutcomeFailed || k == OutcomeCancelled
}

// Outcome is a transient record of one download event. It is delivered to an
// observer and never persisted.
type Outcome struct {
	Kind    OutcomeKind
	Title   string
	Percent string // only set for OutcomeProgress
	Err     error  // only set for OutcomeFailed
}
