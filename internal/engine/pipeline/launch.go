package pipeline

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	pkgbrowser "github.com/pkg/browser"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
)

// launchBinary spawns the collected executable as a child process from the
// output directory, inheriting the parent's streams.
func (d *Deps) launchBinary(ctx context.Context, outputDir, name string) error {
	d.Logger.Info("launching " + name)
	script := domain.NewScript("./" + name).WithWorkingDir(outputDir)
	return d.Runner.Run(ctx, script)
}

// serveAndOpen starts a minimal static file server rooted at the output
// directory and opens the default browser at its root URL. The hosting
// runtime bootstraps the compiled artifact from the generated loader
// document. The server blocks until the operator interrupts the process.
func (d *Deps) serveAndOpen(ctx context.Context, outputDir, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to bind web server"), "addr", addr)
	}

	url := "http://" + listener.Addr().String() + "/"
	d.Logger.Info("serving " + outputDir + " at " + url)

	server := &http.Server{
		Handler:           http.FileServer(http.Dir(outputDir)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "web server failed")
		}
		return nil
	})
	group.Go(func() error {
		if err := pkgbrowser.OpenURL(url); err != nil {
			d.Logger.Warn("failed to open browser: " + err.Error())
		}
		return nil
	})
	group.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return nil
	})

	return group.Wait()
}
