package playlist

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ytget/playlist-downloader/internal/model"
	"github.com/ytget/playlist-downloader/internal/platform"
)

// Canonical URL construction
const (
	PlatformDomain   = "youtube.com"
	WatchURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Service resolves playlist URLs into entries
type Service struct {
	resolver platform.MediaResolver
	timeout  time.Duration
	logger   *log.Logger
}

// NewService creates a new resolver adapter. No timeout is applied unless
// SetTimeout is called with a positive duration.
func NewService(resolver platform.MediaResolver, logger *log.Logger) *Service {
	return &Service{
		resolver: resolver,
		logger:   logger.With("component", "playlist"),
	}
}

// SetTimeout limits a single Resolve call; zero disables the limit
func (s *Service) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// Resolve fetches the playlist in flat mode and normalizes its entries.
// Every failure is returned as a *ResolutionError; on failure no playlist is
// returned, so callers never see a partial list.
func (s *Service) Resolve(ctx context.Context, rawURL string) (*model.Playlist, error) {
	rawURL = strings.TrimSpace(rawURL)
	if err := ValidateURL(rawURL); err != nil {
		return nil, &ResolutionError{URL: rawURL, Err: err}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.resolver.ExtractFlat(ctx, rawURL)
	if err != nil {
		s.logger.Error("playlist fetch failed", "url", rawURL, "err", err)
		return nil, &ResolutionError{URL: rawURL, Err: err}
	}

	playlist := model.NewPlaylist(rawURL)
	playlist.Title = raw.Title
	for i, e := range raw.Entries {
		link := CanonicalURL(e.URL, e.ID)
		if link == "" {
			s.logger.Warn("skipping entry without link", "index", i)
			continue
		}
		title := strings.TrimSpace(e.Title)
		if title == "" {
			title = model.PlaceholderTitle(i + 1)
		}
		playlist.AddEntry(model.PlaylistEntry{Title: title, URL: link})
	}

	s.logger.Info("fetched playlist", "title", playlist.Title, "entries", playlist.Len())
	return playlist, nil
}

// CanonicalURL returns link unchanged when it already points at the
// platform domain; otherwise link (or id, when link is empty) is treated as
// a bare video ID and expanded to a watch URL.
func CanonicalURL(link, id string) string {
	link = strings.TrimSpace(link)
	if strings.Contains(link, PlatformDomain) {
		return link
	}
	if link == "" {
		link = strings.TrimSpace(id)
	}
	if link == "" {
		return ""
	}
	return fmt.Sprintf(WatchURLTemplate, link)
}

// ValidateURL checks that input is a non-empty http(s) URL
func ValidateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: URL must start with http:// or https://", ErrInvalidURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return nil
}
