package playlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ytget/playlist-downloader/internal/logging"
	"github.com/ytget/playlist-downloader/internal/platform"
	"github.com/ytget/playlist-downloader/internal/platform/platformtest"
)

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		id       string
		expected string
	}{
		{
			name:     "full URL passes through",
			link:     "https://www.youtube.com/watch?v=abc",
			expected: "https://www.youtube.com/watch?v=abc",
		},
		{
			name:     "mobile domain passes through",
			link:     "https://m.youtube.com/watch?v=abc",
			expected: "https://m.youtube.com/watch?v=abc",
		},
		{
			name:     "bare ID is expanded",
			link:     "abc",
			expected: "https://www.youtube.com/watch?v=abc",
		},
		{
			name:     "empty link falls back to ID",
			link:     "",
			id:       "def",
			expected: "https://www.youtube.com/watch?v=def",
		},
		{
			name:     "nothing to build from",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalURL(tt.link, tt.id); got != tt.expected {
				t.Errorf("CanonicalURL(%q, %q) = %q, expected %q", tt.link, tt.id, got, tt.expected)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://www.youtube.com/playlist?list=PL1", false},
		{"http://youtube.com/playlist?list=PL1", false},
		{"", true},
		{"   ", true},
		{"ftp://example.com/list", true},
		{"youtube.com/playlist?list=PL1", true},
		{"https://", true},
	}

	for _, tt := range tests {
		err := ValidateURL(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidURL) {
			t.Errorf("ValidateURL(%q) should wrap ErrInvalidURL, got %v", tt.input, err)
		}
	}
}

func TestResolve(t *testing.T) {
	fake := &platformtest.FakeResolver{
		Playlist: &platform.RawPlaylist{
			Title: "Favourites",
			Entries: []platform.RawEntry{
				{ID: "abc", Title: "Song A", URL: "https://www.youtube.com/watch?v=abc"},
				{ID: "def", Title: "Song B", URL: "def"},
				{ID: "ghi", Title: "", URL: "ghi"},
				{ID: "", Title: "Ghost", URL: ""},
			},
		},
	}
	svc := NewService(fake, logging.Discard())

	pl, err := svc.Resolve(context.Background(), "  https://www.youtube.com/playlist?list=PL1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pl.Title != "Favourites" {
		t.Errorf("expected title Favourites, got %q", pl.Title)
	}
	if pl.SourceURL != "https://www.youtube.com/playlist?list=PL1" {
		t.Errorf("source URL should be trimmed, got %q", pl.SourceURL)
	}

	expected := []struct{ title, url string }{
		{"Song A", "https://www.youtube.com/watch?v=abc"},
		{"Song B", "https://www.youtube.com/watch?v=def"},
		{"Video 3", "https://www.youtube.com/watch?v=ghi"},
	}
	if pl.Len() != len(expected) {
		t.Fatalf("expected %d entries, got %d: %+v", len(expected), pl.Len(), pl.Entries)
	}
	for i, e := range expected {
		if pl.Entries[i].Title != e.title || pl.Entries[i].URL != e.url {
			t.Errorf("entry %d = %+v, expected {%s %s}", i, pl.Entries[i], e.title, e.url)
		}
	}

	if got := fake.Extracts(); len(got) != 1 || got[0] != "https://www.youtube.com/playlist?list=PL1" {
		t.Errorf("unexpected extract calls: %v", got)
	}
}

func TestResolve_InvalidURLSkipsResolver(t *testing.T) {
	fake := &platformtest.FakeResolver{}
	svc := NewService(fake, logging.Discard())

	pl, err := svc.Resolve(context.Background(), "not a url")
	if pl != nil {
		t.Error("expected no playlist on error")
	}
	if !IsResolutionError(err) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidURL) {
		t.Errorf("expected ErrInvalidURL in chain, got %v", err)
	}
	if len(fake.Extracts()) != 0 {
		t.Error("resolver must not be called for an invalid URL")
	}
}

func TestResolve_ResolverFailure(t *testing.T) {
	cause := errors.New("network unreachable")
	fake := &platformtest.FakeResolver{ExtractErr: cause}
	svc := NewService(fake, logging.Discard())

	pl, err := svc.Resolve(context.Background(), "https://www.youtube.com/playlist?list=PL1")
	if pl != nil {
		t.Error("expected no playlist on error")
	}

	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("expected *ResolutionError, got %T", err)
	}
	if re.URL != "https://www.youtube.com/playlist?list=PL1" {
		t.Errorf("unexpected URL in error: %s", re.URL)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause in chain, got %v", err)
	}
}

func TestResolve_EmptyPlaylist(t *testing.T) {
	fake := &platformtest.FakeResolver{Playlist: &platform.RawPlaylist{Title: "Nothing"}}
	svc := NewService(fake, logging.Discard())

	pl, err := svc.Resolve(context.Background(), "https://www.youtube.com/playlist?list=PL0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pl.Len() != 0 {
		t.Errorf("expected zero entries, got %d", pl.Len())
	}
}

type deadlineResolver struct {
	platformtest.FakeResolver
	deadline bool
}

func (d *deadlineResolver) ExtractFlat(ctx context.Context, url string) (*platform.RawPlaylist, error) {
	_, d.deadline = ctx.Deadline()
	return &platform.RawPlaylist{}, nil
}

func TestResolve_Timeout(t *testing.T) {
	r := &deadlineResolver{}
	svc := NewService(r, logging.Discard())

	if _, err := svc.Resolve(context.Background(), "https://www.youtube.com/playlist?list=PL1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.deadline {
		t.Error("no deadline expected without a timeout")
	}

	svc.SetTimeout(time.Minute)
	if _, err := svc.Resolve(context.Background(), "https://www.youtube.com/playlist?list=PL1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.deadline {
		t.Error("expected a deadline after SetTimeout")
	}
}
