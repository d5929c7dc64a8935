package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ytget/playlist-downloader/internal/download"
	"github.com/ytget/playlist-downloader/internal/model"
	"github.com/ytget/playlist-downloader/internal/platform"
	"github.com/ytget/playlist-downloader/internal/platform/platformtest"
	"github.com/ytget/playlist-downloader/internal/playlist"
	"github.com/ytget/playlist-downloader/internal/progress"
)

const playlistURL = "https://www.youtube.com/playlist?list=PL123"

func threeSongs() *platform.RawPlaylist {
	return &platform.RawPlaylist{
		Title: "Road Trip",
		Entries: []platform.RawEntry{
			{ID: "a", Title: "Song A", URL: "a"},
			{ID: "b", Title: "Song B", URL: "https://www.youtube.com/watch?v=b"},
			{ID: "c", Title: "", URL: "c"},
		},
	}
}

func newSession(t *testing.T, fake *platformtest.FakeResolver) *Session {
	t.Helper()
	return New(fake, Options{OutputFolder: t.TempDir()})
}

func TestFetchReplacesSelection(t *testing.T) {
	fake := &platformtest.FakeResolver{Playlist: threeSongs()}
	s := newSession(t, fake)

	p, err := s.Fetch(context.Background(), playlistURL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if p.Title != "Road Trip" || p.Len() != 3 {
		t.Errorf("unexpected playlist: %+v", p)
	}

	items := s.Items()
	if len(items) != 3 || s.SelectedCount() != 3 {
		t.Fatalf("expected 3 selected items, got %d/%d", s.SelectedCount(), len(items))
	}
	if items[0].URL != "https://www.youtube.com/watch?v=a" {
		t.Errorf("bare id not expanded: %s", items[0].URL)
	}
	if items[2].Title != "Video 3" {
		t.Errorf("missing title not replaced: %q", items[2].Title)
	}
	if s.Playlist() != p {
		t.Error("Playlist() should return the last fetch")
	}
}

func TestFailedFetchLeavesSelectionEmpty(t *testing.T) {
	fake := &platformtest.FakeResolver{Playlist: threeSongs()}
	s := newSession(t, fake)

	if _, err := s.Fetch(context.Background(), playlistURL); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	fake.ExtractErr = errors.New("network unreachable")
	_, err := s.Fetch(context.Background(), playlistURL)
	if !playlist.IsResolutionError(err) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if len(s.Items()) != 0 {
		t.Errorf("selection should be empty after a failed fetch, got %d", len(s.Items()))
	}
	if s.Playlist() != nil {
		t.Error("Playlist() should be nil after a failed fetch")
	}
}

func TestFetchInvalidURL(t *testing.T) {
	fake := &platformtest.FakeResolver{}
	s := newSession(t, fake)

	_, err := s.Fetch(context.Background(), "   ")
	if !errors.Is(err, playlist.ErrInvalidURL) {
		t.Errorf("expected ErrInvalidURL, got %v", err)
	}
	if len(fake.Extracts()) != 0 {
		t.Error("resolver must not be called for an invalid URL")
	}
}

func TestStartDownloadNoSelection(t *testing.T) {
	fake := &platformtest.FakeResolver{Playlist: threeSongs()}
	s := newSession(t, fake)

	if err := s.StartDownload(context.Background(), nil, nil); !errors.Is(err, ErrNoSelection) {
		t.Errorf("expected ErrNoSelection before fetch, got %v", err)
	}

	s.Fetch(context.Background(), playlistURL)
	s.SetAll(false)
	if err := s.StartDownload(context.Background(), nil, nil); !errors.Is(err, ErrNoSelection) {
		t.Errorf("expected ErrNoSelection with nothing selected, got %v", err)
	}
}

func TestStartDownloadUsesSnapshot(t *testing.T) {
	block := make(chan struct{})
	fake := &platformtest.FakeResolver{Playlist: threeSongs(), Block: block}
	s := newSession(t, fake)
	dir := filepath.Join(t.TempDir(), "music")
	s.SetOutputFolder(dir)
	s.SetAudioOnly(true)

	s.Fetch(context.Background(), playlistURL)
	if _, err := s.Toggle(1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	rec := &progress.Recorder{}
	summaries := make(chan download.Summary, 1)
	if err := s.StartDownload(context.Background(), rec, func(sum download.Summary) { summaries <- sum }); err != nil {
		t.Fatalf("StartDownload: %v", err)
	}

	// changes after start must not leak into the running batch
	s.SetAll(true)
	s.SetAudioOnly(false)
	s.SetOutputFolder(t.TempDir())

	close(block)
	s.Wait()
	sum := <-summaries

	if sum.Total != 2 || sum.Completed != 2 {
		t.Errorf("unexpected summary: %+v", sum)
	}
	reqs := fake.Downloads()
	if len(reqs) != 2 {
		t.Fatalf("expected 2 downloads, got %d", len(reqs))
	}
	for _, r := range reqs {
		if r.Title == "Song B" {
			t.Error("deselected item was downloaded")
		}
		if r.Folder != dir {
			t.Errorf("folder = %s, expected %s", r.Folder, dir)
		}
		if r.Mode != model.FormatAudio {
			t.Errorf("mode = %s, expected audio", r.Mode)
		}
	}
}

func TestBusyGuards(t *testing.T) {
	block := make(chan struct{})
	fake := &platformtest.FakeResolver{Playlist: threeSongs(), Block: block}
	s := newSession(t, fake)
	s.Fetch(context.Background(), playlistURL)

	if err := s.StartDownload(context.Background(), nil, nil); err != nil {
		t.Fatalf("StartDownload: %v", err)
	}
	if !s.Busy() {
		t.Error("session should be busy")
	}

	if err := s.StartDownload(context.Background(), nil, nil); !errors.Is(err, ErrBusy) {
		t.Errorf("second batch: expected ErrBusy, got %v", err)
	}
	if _, err := s.Fetch(context.Background(), playlistURL); !errors.Is(err, ErrBusy) {
		t.Errorf("fetch during batch: expected ErrBusy, got %v", err)
	}
	if len(s.Items()) != 3 {
		t.Error("refused fetch must not clear the selection")
	}

	close(block)
	s.Wait()
	if s.Busy() {
		t.Error("session should be idle after Wait")
	}
}

func TestCancelDownload(t *testing.T) {
	started := make(chan struct{}, 3)
	fake := &platformtest.FakeResolver{
		Playlist:   threeSongs(),
		Block:      make(chan struct{}),
		OnDownload: func(platform.DownloadRequest) { started <- struct{}{} },
	}
	s := newSession(t, fake)
	s.Fetch(context.Background(), playlistURL)

	rec := &progress.Recorder{}
	var sum download.Summary
	if err := s.StartDownload(context.Background(), rec, func(got download.Summary) { sum = got }); err != nil {
		t.Fatalf("StartDownload: %v", err)
	}

	<-started
	s.CancelDownload()
	s.Wait()

	if sum.Cancelled != 1 || sum.Completed != 0 || sum.Skipped() != 2 {
		t.Errorf("unexpected summary: %+v", sum)
	}
	if len(rec.Of(model.OutcomeCancelled)) != 1 {
		t.Error("expected one cancelled outcome")
	}
}

func TestDefaultsAndSetters(t *testing.T) {
	s := New(&platformtest.FakeResolver{}, Options{AudioOnly: true})

	if s.OutputFolder() != platform.WorkingDirectory() {
		t.Errorf("default folder = %s, expected working directory", s.OutputFolder())
	}
	if !s.AudioOnly() {
		t.Error("AudioOnly option not applied")
	}

	s.SetOutputFolder("  ")
	if s.OutputFolder() != platform.WorkingDirectory() {
		t.Error("blank folder should be ignored")
	}

	if _, err := s.Toggle(0); err == nil {
		t.Error("Toggle on empty selection should fail")
	}
	if err := s.SetSelected(5, true); err == nil {
		t.Error("SetSelected out of range should fail")
	}
}
