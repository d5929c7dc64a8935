package download

// Observer receives the events of a batch. For each item the sequence is
// Started, zero or more Progress, then exactly one of Completed, Failed or
// Cancelled. Calls arrive on the batch goroutine.
type Observer interface {
	Started(title string)
	Progress(title, percent string)
	Completed(title string)
	Failed(title string, err error)
	Cancelled(title string)
}

// NopObserver ignores every event
type NopObserver struct{}

func (NopObserver) Started(string)          {}
func (NopObserver) Progress(string, string) {}
func (NopObserver) Completed(string)        {}
func (NopObserver) Failed(string, error)    {}
func (NopObserver) Cancelled(string)        {}

// MultiObserver fans every event out to each observer in order
type MultiObserver []Observer

func (m MultiObserver) Started(title string) {
	for _, o := range m {
		o.Started(title)
	}
}

func (m MultiObserver) Progress(title, percent string) {
	for _, o := range m {
		o.Progress(title, percent)
	}
}

func (m MultiObserver) Completed(title string) {
	for _, o := range m {
		o.Completed(title)
	}
}

func (m MultiObserver) Failed(title string, err error) {
	for _, o := range m {
		o.Failed(title, err)
	}
}

func (m MultiObserver) Cancelled(title string) {
	for _, o := range m {
		o.Cancelled(title)
	}
}
