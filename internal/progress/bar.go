package progress

import (
	"io"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// BarObserver draws a terminal progress bar per item. Terminal events are
// also written as lines through the reporter, so the transcript survives
// after the bar clears.
type BarObserver struct {
	w        io.Writer
	reporter *Reporter
	bar      *progressbar.ProgressBar
}

// NewBarObserver renders bars on w and writes terminal lines through reporter
func NewBarObserver(w io.Writer, reporter *Reporter) *BarObserver {
	return &BarObserver{w: w, reporter: reporter}
}

func (b *BarObserver) Started(title string) {
	b.reporter.Started(title)
	b.bar = progressbar.NewOptions(100,
		progressbar.OptionSetDescription(truncate(title, 40)),
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionShowCount(),
	)
}

func (b *BarObserver) Progress(_ string, percent string) {
	if b.bar == nil {
		return
	}
	if v, ok := parsePercent(percent); ok {
		_ = b.bar.Set(int(v))
	}
}

func (b *BarObserver) Completed(title string) {
	b.finish(true)
	b.reporter.Completed(title)
}

func (b *BarObserver) Failed(title string, err error) {
	b.finish(false)
	b.reporter.Failed(title, err)
}

func (b *BarObserver) Cancelled(title string) {
	b.finish(false)
	b.reporter.Cancelled(title)
}

func (b *BarObserver) finish(ok bool) {
	if b.bar == nil {
		return
	}
	if ok {
		_ = b.bar.Finish()
	} else {
		_ = b.bar.Exit()
	}
	b.bar = nil
}

func parsePercent(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
