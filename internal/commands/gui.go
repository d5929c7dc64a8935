package commands

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2/app"
	"github.com/urfave/cli/v3"

	"github.com/ytget/playlist-downloader/internal/config"
	"github.com/ytget/playlist-downloader/internal/ui"
)

// GUI opens the desktop window and blocks until it is closed
func (r *Runner) GUI(ctx context.Context, cmd *cli.Command) error {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(a)
	backend := settings.GetBackend(r.config.Backend)

	sess, err := r.newSession(backend, settings.GetAudioOnly())
	if err != nil {
		return err
	}

	r.logger.Info("starting", "version", r.version, "backend", backend, "folder", sess.OutputFolder())

	w := a.NewWindow(fmt.Sprintf("%s v%s", AppName, r.version))
	root := ui.NewRootUI(ctx, w, a, sess, r.logger)
	root.SetDefaultBackend(r.config.Backend)

	release := ui.QuitOnCancel(ctx, a.Quit)
	w.ShowAndRun()
	release()

	// closing the window abandons a running batch; stop it cleanly
	sess.CancelDownload()
	sess.Wait()
	return nil
}
