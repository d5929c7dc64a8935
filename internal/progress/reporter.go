package progress

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives finished log lines
type Sink interface {
	Append(line string)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(line string)

func (f SinkFunc) Append(line string) { f(line) }

// Poster schedules fn on the thread that owns the sink. The GUI passes
// fyne.Do; headless callers use Immediate.
type Poster func(fn func())

// Immediate runs fn on the calling goroutine
func Immediate(fn func()) { fn() }

// Reporter implements download.Observer by posting one line per event
type Reporter struct {
	sink Sink
	post Poster
}

// NewReporter creates a reporter. A nil poster means Immediate.
func NewReporter(sink Sink, post Poster) *Reporter {
	if post == nil {
		post = Immediate
	}
	return &Reporter{sink: sink, post: post}
}

// Log posts an arbitrary line
func (r *Reporter) Log(line string) {
	r.post(func() { r.sink.Append(line) })
}

// Logf formats and posts a line
func (r *Reporter) Logf(format string, args ...any) {
	r.Log(fmt.Sprintf(format, args...))
}

func (r *Reporter) Started(title string) {
	r.Log(StartedLine(title))
}

func (r *Reporter) Progress(title, percent string) {
	r.Log(ProgressLine(title, percent))
}

func (r *Reporter) Completed(title string) {
	r.Log(CompletedLine(title))
}

func (r *Reporter) Failed(title string, err error) {
	r.Log(FailedLine(title, err))
}

func (r *Reporter) Cancelled(title string) {
	r.Log(CancelledLine(title))
}

// Fetched reports a successful playlist fetch
func (r *Reporter) Fetched(title string) {
	r.Log(FetchedLine(title))
}

// FetchFailed reports a failed playlist fetch
func (r *Reporter) FetchFailed(err error) {
	r.Log(FetchFailedLine(err))
}

// WriterSink writes each line followed by a newline. Safe for concurrent use.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Append(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line)
}
