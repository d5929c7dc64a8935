package progress

import (
	"sync"

	"github.com/ytget/playlist-downloader/internal/model"
)

// Recorder collects outcomes in arrival order; used by tests and by the CLI
// to print a failure list after the batch.
type Recorder struct {
	mu       sync.Mutex
	outcomes []model.Outcome
}

func (r *Recorder) record(o model.Outcome) {
	r.mu.Lock()
	r.outcomes = append(r.outcomes, o)
	r.mu.Unlock()
}

func (r *Recorder) Started(title string) {
	r.record(model.Outcome{Kind: model.OutcomeStarted, Title: title})
}

func (r *Recorder) Progress(title, percent string) {
	r.record(model.Outcome{Kind: model.OutcomeProgress, Title: title, Percent: percent})
}

func (r *Recorder) Completed(title string) {
	r.record(model.Outcome{Kind: model.OutcomeCompleted, Title: title})
}

func (r *Recorder) Failed(title string, err error) {
	r.record(model.Outcome{Kind: model.OutcomeFailed, Title: title, Err: err})
}

func (r *Recorder) Cancelled(title string) {
	r.record(model.Outcome{Kind: model.OutcomeCancelled, Title: title})
}

// Outcomes returns a copy of everything recorded
func (r *Recorder) Outcomes() []model.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Outcome(nil), r.outcomes...)
}

// Of returns the recorded outcomes of one kind
func (r *Recorder) Of(kind model.OutcomeKind) []model.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.Outcome
	for _, o := range r.outcomes {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}
