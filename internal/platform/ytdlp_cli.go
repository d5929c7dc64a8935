package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lrstanley/go-ytdlp"
)

// OutputTemplate is the yt-dlp file name template, relative to the folder
const OutputTemplate = "%(title)s.%(ext)s"

// ProgressInterval throttles yt-dlp progress callbacks
const ProgressInterval = 250 * time.Millisecond

// YTDLPResolver drives the yt-dlp binary
type YTDLPResolver struct {
	binary      string
	autoInstall bool
	logger      *log.Logger

	installOnce sync.Once
	installErr  error
}

// NewYTDLPResolver creates a resolver for the yt-dlp binary. An empty binary
// path lets go-ytdlp locate the executable itself.
func NewYTDLPResolver(binary string, autoInstall bool, logger *log.Logger) *YTDLPResolver {
	return &YTDLPResolver{
		binary:      binary,
		autoInstall: autoInstall,
		logger:      logger.With("backend", BackendYTDLP),
	}
}

// ExtractFlat lists playlist entries without resolving any media streams
func (r *YTDLPResolver) ExtractFlat(ctx context.Context, url string) (*RawPlaylist, error) {
	cmd, err := r.command(ctx)
	if err != nil {
		return nil, err
	}

	cmd.FlatPlaylist().YesPlaylist().DumpSingleJSON()

	r.logger.Debug("extracting playlist", "url", url)
	res, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp extraction failed: %w", err)
	}

	return parseFlatPlaylist([]byte(res.Stdout))
}

// Download fetches a single item into req.Folder using OutputTemplate
func (r *YTDLPResolver) Download(ctx context.Context, req DownloadRequest, onProgress ProgressFunc) error {
	cmd, err := r.command(ctx)
	if err != nil {
		return err
	}

	cmd.NoPlaylist().
		Format(req.Mode.FormatString()).
		Output(filepath.Join(req.Folder, OutputTemplate))

	if onProgress != nil {
		cmd.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
			if update.TotalBytes > 0 {
				onProgress(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
			}
		})
	}

	r.logger.Debug("downloading", "url", req.URL, "format", req.Mode.FormatString())
	if _, err := cmd.Run(ctx, req.URL); err != nil {
		return fmt.Errorf("yt-dlp download failed: %w", err)
	}
	return nil
}

// command returns a fresh yt-dlp command, installing the binary on first use
// when auto-install is enabled
func (r *YTDLPResolver) command(ctx context.Context) (*ytdlp.Command, error) {
	if r.autoInstall && r.binary == "" {
		r.installOnce.Do(func() {
			r.logger.Info("ensuring yt-dlp is installed")
			_, r.installErr = ytdlp.Install(ctx, nil)
		})
		if r.installErr != nil {
			return nil, fmt.Errorf("failed to install yt-dlp: %w", r.installErr)
		}
	}

	cmd := ytdlp.New()
	if r.binary != "" {
		cmd.SetExecutable(r.binary)
	}
	return cmd, nil
}

// parseFlatPlaylist decodes yt-dlp's single JSON document. A single video
// URL yields a one-entry playlist. Null entries (private or deleted items)
// are dropped.
func parseFlatPlaylist(data []byte) (*RawPlaylist, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("yt-dlp returned no metadata")
	}

	raw := json.RawMessage(data)
	info, err := ytdlp.ParseExtractedInfo(&raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode yt-dlp metadata: %w", err)
	}

	pl := &RawPlaylist{Title: deref(info.Title), Entries: make([]RawEntry, 0, len(info.Entries))}

	if info.Type != ytdlp.ExtractedTypePlaylist && len(info.Entries) == 0 {
		if info.ID == "" {
			return nil, fmt.Errorf("unsupported metadata type %q", info.Type)
		}
		pl.Entries = append(pl.Entries, RawEntry{ID: info.ID, Title: deref(info.Title), URL: deref(info.WebpageURL)})
		return pl, nil
	}

	for _, e := range info.Entries {
		if e == nil {
			continue
		}
		pl.Entries = append(pl.Entries, RawEntry{ID: e.ID, Title: deref(e.Title), URL: deref(e.URL)})
	}
	return pl, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
