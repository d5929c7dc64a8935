package download

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a batch is already running
var ErrBusy = errors.New("a download is already in progress")

// DownloadError wraps a resolver failure for one item
type DownloadError struct {
	Title string
	URL   string
	Err   error
}

// Error implements the error interface
func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %q (%s): %v", e.Title, e.URL, e.Err)
}

// Unwrap returns the resolver error
func (e *DownloadError) Unwrap() error {
	return e.Err
}

// Reason returns the resolver's message without the item prefix
func (e *DownloadError) Reason() string {
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}

// Reason extracts a human readable failure reason from err
func Reason(err error) string {
	var de *DownloadError
	if errors.As(err, &de) {
		return de.Reason()
	}
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
