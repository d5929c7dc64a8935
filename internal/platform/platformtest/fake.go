// Package platformtest provides a scripted platform.MediaResolver for tests
package platformtest

import (
	"context"
	"sync"

	"github.com/ytget/playlist-downloader/internal/platform"
)

// FakeResolver is a test double for [platform.MediaResolver]. Downloads
// succeed unless Failures has an entry for the request URL; each download
// reports the Progress steps in order.
type FakeResolver struct {
	Playlist   *platform.RawPlaylist
	ExtractErr error
	Failures   map[string]error
	Progress   []float64

	// Block, when set, makes Download wait for a receive or for ctx to end.
	Block chan struct{}

	// OnDownload runs at the start of every Download call
	OnDownload func(req platform.DownloadRequest)

	mu        sync.Mutex
	extracts  []string
	downloads []platform.DownloadRequest
}

// ExtractFlat returns the scripted playlist
func (f *FakeResolver) ExtractFlat(ctx context.Context, url string) (*platform.RawPlaylist, error) {
	f.mu.Lock()
	f.extracts = append(f.extracts, url)
	f.mu.Unlock()

	if f.ExtractErr != nil {
		return nil, f.ExtractErr
	}
	if f.Playlist == nil {
		return &platform.RawPlaylist{}, nil
	}
	return f.Playlist, nil
}

// Download records the request and plays back the scripted behaviour
func (f *FakeResolver) Download(ctx context.Context, req platform.DownloadRequest, onProgress platform.ProgressFunc) error {
	f.mu.Lock()
	f.downloads = append(f.downloads, req)
	f.mu.Unlock()

	if f.OnDownload != nil {
		f.OnDownload(req)
	}

	if f.Block != nil {
		select {
		case <-f.Block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err, ok := f.Failures[req.URL]; ok {
		return err
	}

	if onProgress != nil {
		for _, p := range f.Progress {
			onProgress(p)
		}
	}
	return nil
}

// Extracts returns the URLs passed to ExtractFlat
func (f *FakeResolver) Extracts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.extracts...)
}

// Downloads returns the recorded download requests in call order
func (f *FakeResolver) Downloads() []platform.DownloadRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]platform.DownloadRequest(nil), f.downloads...)
}
