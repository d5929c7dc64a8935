package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	ytdl "github.com/ytget/ytdlp"
	ytlist "github.com/ytget/ytdlp/v2"
)

// Quality names passed to the native downloader
const (
	nativeQualityBest  = "best"
	nativeQualityAudio = "bestaudio"
)

// NativeResolver uses the pure Go ytget extractor; no external binary needed
type NativeResolver struct {
	logger *log.Logger
}

// NewNativeResolver creates a new native resolver
func NewNativeResolver(logger *log.Logger) *NativeResolver {
	return &NativeResolver{logger: logger.With("backend", BackendNative)}
}

// ExtractFlat lists the playlist's items. The library exposes no playlist
// title, so one is derived from the entry titles.
func (r *NativeResolver) ExtractFlat(ctx context.Context, url string) (*RawPlaylist, error) {
	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotPlaylist, url)
	}

	r.logger.Debug("listing playlist", "id", playlistID)
	items, err := ytlist.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	pl := &RawPlaylist{Entries: make([]RawEntry, 0, len(items))}
	titles := make([]string, 0, len(items))
	for _, it := range items {
		pl.Entries = append(pl.Entries, RawEntry{ID: it.VideoID, Title: it.Title})
		titles = append(titles, it.Title)
	}
	pl.Title = PlaylistTitleFromEntries(titles)

	return pl, nil
}

// Download saves a single item as <folder>/<title>.<ext>
func (r *NativeResolver) Download(ctx context.Context, req DownloadRequest, onProgress ProgressFunc) error {
	quality := nativeQualityBest
	if req.Mode.AudioOnly() {
		quality = nativeQualityAudio
	}
	ext := req.Mode.Extension()
	dst := filepath.Join(req.Folder, SafeFileName(req.Title)+"."+ext)

	d := ytdl.New().
		WithFormat(quality, ext).
		WithOutputPath(dst)
	if onProgress != nil {
		d = d.WithProgress(func(p ytdl.Progress) {
			onProgress(p.Percent)
		})
	}

	r.logger.Debug("downloading", "url", req.URL, "dst", dst)
	if _, err := d.Download(ctx, req.URL); err != nil {
		return fmt.Errorf("native download failed: %w", err)
	}
	return nil
}
