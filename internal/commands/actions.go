package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ytget/playlist-downloader/internal/config"
	"github.com/ytget/playlist-downloader/internal/download"
	"github.com/ytget/playlist-downloader/internal/model"
	"github.com/ytget/playlist-downloader/internal/playlist"
	"github.com/ytget/playlist-downloader/internal/progress"
)

// Exit codes
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// Fetch prints the entries of a playlist
func (r *Runner) Fetch(ctx context.Context, cmd *cli.Command) error {
	url, err := playlistArg(cmd)
	if err != nil {
		return err
	}

	sess, err := r.newSession(r.backend(cmd), false)
	if err != nil {
		return err
	}

	p, err := sess.Fetch(ctx, url)
	if playlist.IsResolutionError(err) {
		return cli.Exit(progress.FetchFailedLine(err), ExitFailure)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(p)
	}

	if err := r.writePlain("%s (%d)\n", progress.FetchedLine(p.DisplayTitle()), p.Len()); err != nil {
		return err
	}
	for i, e := range p.Entries {
		if err := r.writePlain("%3d. %s\n     %s\n", i+1, e.Title, e.URL); err != nil {
			return err
		}
	}
	return nil
}

// Download fetches a playlist and downloads every entry not skipped. The
// exit status is non-zero when any item failed or the batch was cancelled.
func (r *Runner) Download(ctx context.Context, cmd *cli.Command) error {
	url, err := playlistArg(cmd)
	if err != nil {
		return err
	}

	mode, err := model.ParseFormatMode(cmd.String("format"))
	if err != nil {
		return cli.Exit(err.Error(), ExitUsage)
	}

	sess, err := r.newSession(r.backend(cmd), cmd.Bool("audio") || mode.AudioOnly())
	if err != nil {
		return err
	}
	sess.SetOutputFolder(cmd.String("out"))

	reporter := progress.NewReporter(progress.NewWriterSink(r.output), progress.Immediate)

	p, err := sess.Fetch(ctx, url)
	if playlist.IsResolutionError(err) {
		reporter.FetchFailed(err)
		return cli.Exit("", ExitFailure)
	}
	if err != nil {
		return err
	}
	reporter.Fetched(p.DisplayTitle())

	skip, err := ParseSkip(cmd.String("skip"), p.Len())
	if err != nil {
		return cli.Exit(err.Error(), ExitUsage)
	}
	for _, i := range skip {
		if err := sess.SetSelected(i, false); err != nil {
			return err
		}
	}

	var obs download.Observer = reporter
	if cmd.Bool("bar") {
		obs = progress.NewBarObserver(r.errOutput, reporter)
	}
	rec := &progress.Recorder{}

	var sum download.Summary
	err = sess.StartDownload(ctx, download.MultiObserver{obs, rec}, func(s download.Summary) { sum = s })
	if err != nil {
		return cli.Exit(err.Error(), ExitFailure)
	}
	sess.Wait()

	r.logger.Info("download finished",
		"folder", sess.OutputFolder(),
		"completed", sum.Completed,
		"failed", sum.Failed,
		"cancelled", sum.Cancelled,
	)

	if sum.OK() {
		return nil
	}

	var failed []string
	for _, o := range rec.Of(model.OutcomeFailed) {
		failed = append(failed, o.Title)
	}
	msg := fmt.Sprintf("%d of %d downloads did not complete", sum.Total-sum.Completed, sum.Total)
	if len(failed) > 0 {
		msg += ": " + strings.Join(failed, ", ")
	}
	return cli.Exit(msg, ExitFailure)
}

// InitConfig writes the example configuration
func (r *Runner) InitConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := config.CreateConfigFile(path); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", path)
	return r.writePlain("%s\n", path)
}

func (r *Runner) backend(cmd *cli.Command) config.Backend {
	if b := strings.TrimSpace(cmd.String("backend")); b != "" {
		return config.Backend(b)
	}
	return r.config.Backend
}

func playlistArg(cmd *cli.Command) (string, error) {
	url := strings.TrimSpace(cmd.Args().First())
	if url == "" {
		return "", cli.Exit(errors.New("missing playlist URL"), ExitUsage)
	}
	return url, nil
}
