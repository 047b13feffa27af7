package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = 2222
	defaultHostKeyPath = "/app/keys/host_key"
	shutdownTimeout    = 5 * time.Second
)

func main() {
	logger := config.NewLogger(os.Stderr, "ssh")

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnvInt("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("Failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "workingDir", workingDir)

	if err := serve(logger, net.JoinHostPort(host, fmt.Sprint(port)), hostKeyPath); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// serve runs the SSH server until SIGINT/SIGTERM, then shuts it down.
func serve(logger *log.Logger, addr, hostKeyPath string) error {
	opts := []ssh.Option{
		wish.WithAddress(addr),
		wish.WithMiddleware(
			gameMiddleware(logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting SSH server", "addr", addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// gameMiddleware runs one independent game per SSH session.
func gameMiddleware(logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessLogger := logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
			sessLogger.Info("New game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

			// Listen for window size changes in a goroutine
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			opts := loop.Options{
				TermSizeFunc: sizeTracker.getSize,
				Logger:       sessLogger,
			}
			if err := loop.Run(sess.Context(), sess, sess, opts); err != nil {
				sessLogger.Error("Game error", "err", err)
			}

			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
