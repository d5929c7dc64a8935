package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ytget/playlist-downloader/internal/model"
)

// Backend names accepted by NewResolver
const (
	BackendYTDLP  = "yt-dlp"
	BackendNative = "native"
)

var (
	// ErrNotPlaylist is returned when a URL carries no playlist identifier
	ErrNotPlaylist = errors.New("URL does not reference a playlist")

	// ErrUnknownBackend is returned by NewResolver for an unsupported name
	ErrUnknownBackend = errors.New("unknown media backend")
)

// RawEntry is a playlist entry exactly as the resolver reported it. URL may
// be empty or a bare video ID; normalization happens in the playlist package.
type RawEntry struct {
	ID    string
	Title string
	URL   string
}

// RawPlaylist is the result of a flat extraction
type RawPlaylist struct {
	Title   string
	Entries []RawEntry
}

// DownloadRequest describes one single-item download
type DownloadRequest struct {
	URL    string
	Title  string
	Folder string
	Mode   model.FormatMode
}

// ProgressFunc receives the transfer percentage (0-100) of the current item
type ProgressFunc func(percent float64)

// MediaResolver is the external collaborator that knows how to list a
// playlist and fetch a single item. Implementations must not download
// anything from ExtractFlat and must treat every Download as a single item.
type MediaResolver interface {
	ExtractFlat(ctx context.Context, url string) (*RawPlaylist, error)
	Download(ctx context.Context, req DownloadRequest, onProgress ProgressFunc) error
}

// Options configures NewResolver
type Options struct {
	Backend     string
	BinaryPath  string
	AutoInstall bool
	Logger      *log.Logger
}

// NewResolver builds the MediaResolver named by opts.Backend
func NewResolver(opts Options) (MediaResolver, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	switch opts.Backend {
	case BackendYTDLP, "":
		return NewYTDLPResolver(opts.BinaryPath, opts.AutoInstall, logger), nil
	case BackendNative:
		return NewNativeResolver(logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, opts.Backend)
	}
}
