package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Lixing-Zhang/storefront/internal/config"
	"github.com/Lixing-Zhang/storefront/internal/handlers"
	"github.com/Lixing-Zhang/storefront/internal/models"
	"github.com/Lixing-Zhang/storefront/internal/repository"
	"github.com/Lixing-Zhang/storefront/internal/service"
	"github.com/Lixing-Zhang/storefront/web"
	"github.com/jonboulle/clockwork"
)

// Server owns the router and the underlying http.Server
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	handler http.Handler
	http    *http.Server
}

type options struct {
	clock    clockwork.Clock
	products []models.Product
	static   *handlers.StaticOptions
}

// Option customizes a Server
type Option func(*options)

// WithClock sets the clock used for health timestamps
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithProducts replaces the default product catalog
func WithProducts(products []models.Product) Option {
	return func(o *options) { o.products = products }
}

// WithStatic overrides the file systems derived from cfg.Static
func WithStatic(static handlers.StaticOptions) Option {
	return func(o *options) { o.static = &static }
}

// New wires repositories, services and handlers into a ready-to-run server
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Server, error) {
	o := options{
		clock:    clockwork.NewRealClock(),
		products: repository.DefaultProducts(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	productRepo, err := repository.NewInMemoryProductRepository(o.products)
	if err != nil {
		return nil, fmt.Errorf("failed to build product catalog: %w", err)
	}

	static := StaticOptions(cfg.Static)
	if o.static != nil {
		static = *o.static
	}

	handler := newRouter(routerDeps{
		cfg:      cfg,
		logger:   logger,
		health:   handlers.NewHealthHandler(o.clock, logger),
		products: handlers.NewProductHandler(service.NewProductService(productRepo), logger),
		static:   handlers.NewStaticHandler(static, logger),
	})

	return &Server{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
		http: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		},
	}, nil
}

// StaticOptions resolves configured paths to file systems, falling back to
// the embedded assets for anything left empty
func StaticOptions(cfg config.StaticConfig) handlers.StaticOptions {
	opts := handlers.StaticOptions{
		Assets:      web.Public(),
		Entry:       web.Entry(),
		EntryName:   web.EntryName,
		SPAFallback: cfg.SPAFallback,
	}
	if cfg.PublicDir != "" {
		opts.Assets = os.DirFS(cfg.PublicDir)
	}
	if cfg.EntryFile != "" {
		opts.Entry = os.DirFS(filepath.Dir(cfg.EntryFile))
		opts.EntryName = filepath.Base(cfg.EntryFile)
	}
	return opts
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address until ctx is canceled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully within the configured shutdown timeout
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening",
			"address", ln.Addr().String(),
			"url", "http://localhost:"+portOf(ln.Addr()),
		)
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("server stopped gracefully")
	return nil
}

func portOf(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return strconv.Itoa(tcp.Port)
	}
	_, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return port
}
