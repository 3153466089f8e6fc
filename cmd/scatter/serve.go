package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/scatter/renderers/web"
)

func (cmd *Serve) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	logger := newLogger(cmd.LogLevel)

	ch, err := loadChart(logger, cmd.Input, cmd.Config, cmd.Headroom)
	if err != nil {
		logger.Fatal("could not build chart", "err", err)
	}
	handler, err := web.Handler(ch, &web.Options{Title: web.DefaultOptions.Title, Minify: cmd.Minify})
	if err != nil {
		logger.Fatal("could not render page", "err", err)
	}

	addr := cmd.Addr
	if addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		addr = ":" + port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatal("could not listen", "addr", addr, "err", err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	url := "http://" + browserHost(ln.Addr())
	logger.Info("serving chart", "url", url, "marks", len(ch.Marks))
	if cmd.Open {
		if err := browser.OpenURL(url); err != nil {
			logger.Warn("could not open browser", "err", err)
		}
	}

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", "err", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("could not shut down", "err", err)
		}
	}
	return nil
}

// browserHost returns the host:port to open, using localhost for unspecified addresses.
func browserHost(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	if ip := net.ParseIP(host); host == "" || ip != nil && ip.IsUnspecified() {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
