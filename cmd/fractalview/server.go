package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	fractal "github.com/dkoubek/fractalview"
	"github.com/dkoubek/fractalview/render"
	"golang.org/x/sync/errgroup"
)

type options struct {
	addr       string
	preset     string
	resolution int
	iterations int
	zoom       float64
	scale      string
	threshold  int
}

func run(ctx context.Context, opts options) error {
	pre, ok := presets[opts.preset]
	if !ok {
		return fmt.Errorf("unknown preset %q, have: %s", opts.preset, strings.Join(presetNames(), ", "))
	}

	mapper, err := render.New(opts.scale, opts.threshold)
	if err != nil {
		return fmt.Errorf("%w, have: %s", err, strings.Join(render.Scales(), ", "))
	}

	params := fractal.Params{
		Kind:       pre.kind,
		MaxIter:    opts.iterations,
		Resolution: opts.resolution,
		C:          pre.c,
		Zoom:       opts.zoom,
		Threshold:  opts.threshold,
	}
	sess, err := newSession(pre.bounds, params, mapper, opts.scale)
	if err != nil {
		return err
	}

	srv, err := newWebServer(opts.addr, sess)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("serving %s preset on http://localhost%s", opts.preset, opts.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
