package progress

import (
	"errors"
	"fmt"

	"github.com/ytget/playlist-downloader/internal/download"
	"github.com/ytget/playlist-downloader/internal/playlist"
)

// Line formats. Titles are inserted verbatim.
const (
	formatStarted     = "Starting download: %s"
	formatProgress    = "%s → %s"
	formatCompleted   = "%s → Download complete."
	formatFailed      = "Download failed for %s: %s"
	formatCancelled   = "Download cancelled: %s"
	formatFetched     = "Fetched playlist: %s"
	formatFetchFailed = "Error fetching playlist: %s"
)

func StartedLine(title string) string {
	return fmt.Sprintf(formatStarted, title)
}

func ProgressLine(title, percent string) string {
	return fmt.Sprintf(formatProgress, title, percent)
}

func CompletedLine(title string) string {
	return fmt.Sprintf(formatCompleted, title)
}

// FailedLine uses the resolver's reason, not the wrapped error text
func FailedLine(title string, err error) string {
	return fmt.Sprintf(formatFailed, title, download.Reason(err))
}

func CancelledLine(title string) string {
	return fmt.Sprintf(formatCancelled, title)
}

func FetchedLine(title string) string {
	return fmt.Sprintf(formatFetched, title)
}

// FetchFailedLine reports the cause of a resolution failure
func FetchFailedLine(err error) string {
	var re *playlist.ResolutionError
	if errors.As(err, &re) && re.Err != nil {
		err = re.Err
	}
	if err == nil {
		return fmt.Sprintf(formatFetchFailed, "unknown error")
	}
	return fmt.Sprintf(formatFetchFailed, err.Error())
}
