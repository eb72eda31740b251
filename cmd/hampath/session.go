package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/hampath/experiment"
	"github.com/katalvlaran/hampath/internal/metrics"
	"github.com/katalvlaran/hampath/internal/store"
)

const shutdownTimeout = 5 * time.Second

// batchStore is a sink that can enumerate what it holds.
type batchStore interface {
	experiment.BatchSink
	List(ctx context.Context) ([]uuid.UUID, error)
}

// session is one configured experiment run with its batch store and
// optional metrics endpoint. Batches go to Redis when an address is
// configured and to process memory otherwise.
type session struct {
	runner  *experiment.Runner
	metrics *metrics.Collector
	store   batchStore
	addr    string
	closers []func(context.Context) error
}

// newSession wires the runner from a.cfg. The caller must call close.
func (a *app) newSession(ctx context.Context) (*session, error) {
	cfg := a.cfg
	s := &session{metrics: metrics.NewCollector()}

	opts := []experiment.Option{
		experiment.WithSeed(cfg.Seed),
		experiment.WithTimeoutSeconds(cfg.TimeoutSeconds),
		experiment.WithLogger(a.log),
		experiment.WithObserver(s.metrics),
	}

	if cfg.Redis.Addr != "" {
		rs := store.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			store.WithPrefix(cfg.Redis.Prefix),
			store.WithTTL(cfg.RedisTTL()),
		)
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { return rs.Close() })
		s.store = rs
		a.log.Info("persisting batches to redis", zap.String("addr", cfg.Redis.Addr), zap.String("prefix", cfg.Redis.Prefix))
	} else {
		s.store = store.NewMemory()
	}
	opts = append(opts, experiment.WithSink(s.store))

	if cfg.MetricsAddr != "" {
		if err := s.serveMetrics(cfg.MetricsAddr, a.log); err != nil {
			_ = s.close()
			return nil, err
		}
	}

	s.runner = experiment.NewRunner(opts...)

	return s, nil
}

func (s *session) serveMetrics(addr string, log *zap.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}
	srv := &http.Server{
		Handler:           metrics.NewRouter(s.metrics),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.addr = ln.Addr().String()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", zap.Error(err))
		}
	}()
	log.Info("serving metrics", zap.String("addr", s.addr))

	s.closers = append(s.closers, srv.Shutdown)

	return nil
}

// close releases everything in reverse order of creation.
func (s *session) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i](ctx))
	}

	return errors.Join(errs...)
}

// report prints the summary table and the stored batch ids, then writes
// the CSV when output is set.
func (a *app) report(ctx context.Context, w io.Writer, s *session) error {
	r := s.runner
	fmt.Fprintln(w, r.SummaryTable())

	ids, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list stored batches: %w", err)
	}
	fmt.Fprintf(w, "stored batches: %d\n", len(ids))
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", id)
	}

	if a.cfg.Output == "" {
		return nil
	}
	if err := r.ExportCSV(a.cfg.Output); err != nil {
		return err
	}
	a.log.Info("results exported", zap.String("path", a.cfg.Output))
	fmt.Fprintf(w, "results written to %s\n", a.cfg.Output)

	return nil
}
