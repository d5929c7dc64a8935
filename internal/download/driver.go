package download

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ytget/playlist-downloader/internal/logging"
	"github.com/ytget/playlist-downloader/internal/model"
	"github.com/ytget/playlist-downloader/internal/platform"
)

// Summary counts the terminal outcomes of one batch
type Summary struct {
	Total     int
	Completed int
	Failed    int
	Cancelled int
}

// Skipped returns the number of items that never started
func (s Summary) Skipped() int {
	return s.Total - s.Completed - s.Failed - s.Cancelled
}

// OK reports whether every item completed
func (s Summary) OK() bool {
	return s.Completed == s.Total
}

// Driver downloads items sequentially through a MediaResolver
type Driver struct {
	resolver platform.MediaResolver
	logger   *log.Logger
}

// NewDriver creates a driver. A nil logger discards output.
func NewDriver(resolver platform.MediaResolver, logger *log.Logger) *Driver {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Driver{resolver: resolver, logger: logger}
}

// DownloadAll downloads items in order into folder. A failed item is
// reported and the batch continues; cancelling ctx reports the item in flight
// as cancelled and stops before the next one.
func (d *Driver) DownloadAll(ctx context.Context, items []model.PlaylistEntry, folder string, mode model.FormatMode, obs Observer) Summary {
	if obs == nil {
		obs = NopObserver{}
	}

	sum := Summary{Total: len(items)}
	batch := newBatchID()
	logger := d.logger.With("batch", batch)
	logger.Info("batch started", "items", len(items), "folder", folder, "format", mode.FormatString())

	for _, item := range items {
		if ctx.Err() != nil {
			break
		}

		switch d.downloadOne(ctx, item, folder, mode, obs, logger) {
		case model.OutcomeCompleted:
			sum.Completed++
		case model.OutcomeFailed:
			sum.Failed++
		case model.OutcomeCancelled:
			sum.Cancelled++
		}
	}

	logger.Info("batch finished",
		"completed", sum.Completed,
		"failed", sum.Failed,
		"cancelled", sum.Cancelled,
		"skipped", sum.Skipped(),
	)
	return sum
}

func (d *Driver) downloadOne(ctx context.Context, item model.PlaylistEntry, folder string, mode model.FormatMode, obs Observer, logger *log.Logger) model.OutcomeKind {
	obs.Started(item.Title)

	req := platform.DownloadRequest{
		URL:    item.URL,
		Title:  item.Title,
		Folder: folder,
		Mode:   mode,
	}

	// Progress may be delivered from a resolver goroutine; nothing is
	// forwarded once the item has reached its terminal event.
	var (
		mu   sync.Mutex
		done bool
		last string
	)
	onProgress := func(percent float64) {
		text := FormatPercent(percent)
		mu.Lock()
		defer mu.Unlock()
		if done || text == last {
			return
		}
		last = text
		obs.Progress(item.Title, text)
	}

	err := d.resolver.Download(ctx, req, onProgress)

	mu.Lock()
	done = true
	mu.Unlock()

	switch {
	case err == nil:
		obs.Completed(item.Title)
		logger.Debug("item completed", "title", item.Title)
		return model.OutcomeCompleted
	case ctx.Err() != nil:
		// binary backends report a killed process rather than ctx.Err()
		obs.Cancelled(item.Title)
		logger.Info("item cancelled", "title", item.Title, "err", err)
		return model.OutcomeCancelled
	default:
		derr := &DownloadError{Title: item.Title, URL: item.URL, Err: err}
		obs.Failed(item.Title, derr)
		logger.Warn("item failed", "title", item.Title, "url", item.URL, "err", err)
		return model.OutcomeFailed
	}
}

// FormatPercent renders a transfer percentage the way log lines show it
func FormatPercent(percent float64) string {
	switch {
	case percent < 0:
		percent = 0
	case percent > 100:
		percent = 100
	}
	return fmt.Sprintf("%.1f%%", percent)
}

func newBatchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
