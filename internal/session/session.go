// Package session holds the state of one application run: the fetched
// playlist, the selection, the output folder, the audio-only flag and the
// background batch. The GUI and the headless commands drive it the same way.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ytget/playlist-downloader/internal/download"
	"github.com/ytget/playlist-downloader/internal/logging"
	"github.com/ytget/playlist-downloader/internal/model"
	"github.com/ytget/playlist-downloader/internal/platform"
	"github.com/ytget/playlist-downloader/internal/playlist"
	"github.com/ytget/playlist-downloader/internal/selection"
)

var (
	// ErrBusy is returned when a fetch or batch overlaps a running one
	ErrBusy = download.ErrBusy

	// ErrNoSelection is returned by StartDownload when nothing is selected
	ErrNoSelection = errors.New("no items selected")
)

// Options configures a Session
type Options struct {
	OutputFolder string
	AudioOnly    bool
	FetchTimeout time.Duration
	Logger       *log.Logger
}

// Session is safe for concurrent use
type Session struct {
	playlists *playlist.Service
	driver    *download.Driver
	runner    *download.Runner
	selection *selection.State
	logger    *log.Logger

	fetching atomic.Bool

	mu        sync.RWMutex
	folder    string
	audioOnly bool
	current   *model.Playlist
}

// New creates a session around resolver. An empty output folder means the
// process working directory.
func New(resolver platform.MediaResolver, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	folder := strings.TrimSpace(opts.OutputFolder)
	if folder == "" {
		folder = platform.WorkingDirectory()
	}

	svc := playlist.NewService(resolver, logger)
	svc.SetTimeout(opts.FetchTimeout)

	return &Session{
		playlists: svc,
		driver:    download.NewDriver(resolver, logging.Component(logger, "download")),
		runner:    download.NewRunner(),
		selection: selection.New(),
		logger:    logging.Component(logger, "session"),
		folder:    folder,
		audioOnly: opts.AudioOnly,
	}
}

// Fetch resolves url and replaces the selection with its entries, all
// selected. The previous list is cleared first, so a failed fetch leaves the
// selection empty. Fetch is refused while a batch runs.
func (s *Session) Fetch(ctx context.Context, url string) (*model.Playlist, error) {
	if s.runner.Busy() {
		return nil, ErrBusy
	}
	if !s.fetching.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.fetching.Store(false)

	s.selection.Clear()
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	p, err := s.playlists.Resolve(ctx, url)
	if err != nil {
		return nil, err
	}

	s.selection.Replace(p.Entries)
	s.mu.Lock()
	s.current = p
	s.mu.Unlock()

	return p, nil
}

// Playlist returns the last successfully fetched playlist, or nil
func (s *Session) Playlist() *model.Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Toggle flips item index and returns its new state
func (s *Session) Toggle(index int) (bool, error) {
	return s.selection.Toggle(index)
}

// SetSelected sets item index to selected
func (s *Session) SetSelected(index int, selected bool) error {
	return s.selection.Set(index, selected)
}

// SetAll selects or deselects every item
func (s *Session) SetAll(selected bool) {
	s.selection.SetAll(selected)
}

// Items returns the current checklist
func (s *Session) Items() []model.SelectionItem {
	return s.selection.Items()
}

// SelectedCount returns the number of selected items
func (s *Session) SelectedCount() int {
	return s.selection.SelectedCount()
}

// SetOutputFolder changes the destination of the next batch. Blank values
// are ignored.
func (s *Session) SetOutputFolder(dir string) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return
	}
	s.mu.Lock()
	s.folder = dir
	s.mu.Unlock()
}

// OutputFolder returns the current destination folder
func (s *Session) OutputFolder() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.folder
}

// SetAudioOnly sets the format mode of the next batch
func (s *Session) SetAudioOnly(audioOnly bool) {
	s.mu.Lock()
	s.audioOnly = audioOnly
	s.mu.Unlock()
}

// AudioOnly reports the current audio-only flag
func (s *Session) AudioOnly() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.audioOnly
}

// StartDownload snapshots the selection, folder and format mode and runs the
// batch in the background. Changes made after the call do not affect the
// running batch. done, when set, receives the summary on the batch goroutine.
func (s *Session) StartDownload(ctx context.Context, obs download.Observer, done func(download.Summary)) error {
	if s.fetching.Load() {
		return ErrBusy
	}

	items := s.selection.Snapshot()
	if len(items) == 0 {
		return ErrNoSelection
	}

	s.mu.RLock()
	folder := s.folder
	mode := model.ModeFor(s.audioOnly)
	s.mu.RUnlock()

	if err := platform.CreateDirectoryIfNotExists(folder); err != nil {
		return fmt.Errorf("prepare output folder %s: %w", folder, err)
	}

	err := s.runner.Submit(ctx, func(ctx context.Context) {
		sum := s.driver.DownloadAll(ctx, items, folder, mode, obs)
		if done != nil {
			done(sum)
		}
	})
	if err != nil {
		return err
	}

	s.logger.Debug("batch submitted", "items", len(items), "folder", folder, "mode", mode)
	return nil
}

// CancelDownload stops the running batch, if any
func (s *Session) CancelDownload() {
	s.runner.Cancel()
}

// Wait blocks until the running batch has finished
func (s *Session) Wait() {
	s.runner.Wait()
}

// Busy reports whether a batch is running
func (s *Session) Busy() bool {
	return s.runner.Busy()
}
