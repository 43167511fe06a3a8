// Package pgxstore serves user lookups from PostgreSQL through a native pgx pool.
package pgxstore

import (
	"context"
	"log/slog"
	"time"

	"userlookup/config"
	"userlookup/internal/domain/lifecycle"
	"userlookup/internal/errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const (
	poolMonitorInterval       = 5 * time.Second
	poolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the pgx pool. Connections are opened lazily; OnStart pings the
// database and OnStop closes the pool.
func New(params Params) (*pgxpool.Pool, error) {
	poolConfig, err := NewPoolConfig(params.Config.PGX)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pgx pool")
	}

	interval := params.Config.Storage.PoolMonitorInterval
	if interval <= 0 {
		interval = poolMonitorInterval
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := pool.Ping(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorPool(monitorCtx, params.Logger, pool.Stat, interval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()
			pool.Close()

			return nil
		},
	})

	return pool, nil
}

// NewPoolConfig parses the DSN and applies the non-zero pool limits.
func NewPoolConfig(cfg *config.PGXConfig) (*pgxpool.Config, error) {
	if cfg == nil {
		return nil, errors.New("pgx config is required")
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse pgx dsn")
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.HealthCheckPeriod > 0 {
		poolConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	}

	return poolConfig, nil
}

// poolSample is the subset of pgxpool.Stat the monitor compares between ticks.
type poolSample struct {
	emptyAcquireCount int64
	acquireCount      int64
	acquireDuration   time.Duration
	acquiredConns     int32
	totalConns        int32
	maxConns          int32
}

func sampleOf(stat *pgxpool.Stat) poolSample {
	return poolSample{
		emptyAcquireCount: stat.EmptyAcquireCount(),
		acquireCount:      stat.AcquireCount(),
		acquireDuration:   stat.AcquireDuration(),
		acquiredConns:     stat.AcquiredConns(),
		totalConns:        stat.TotalConns(),
		maxConns:          stat.MaxConns(),
	}
}

func monitorPool(ctx context.Context, logger *slog.Logger, stat func() *pgxpool.Stat, interval time.Duration) {
	if logger == nil || stat == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sampleOf(stat())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sampleOf(stat())
			logPoolWait(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

// logPoolWait reports acquisitions that had to wait for a free connection.
func logPoolWait(ctx context.Context, logger *slog.Logger, prev, cur poolSample) {
	waitDelta := cur.emptyAcquireCount - prev.emptyAcquireCount
	if waitDelta <= 0 {
		return
	}

	acquireDelta := cur.acquireCount - prev.acquireCount
	durationDelta := cur.acquireDuration - prev.acquireDuration

	var avgAcquire time.Duration
	if acquireDelta > 0 {
		avgAcquire = durationDelta / time.Duration(acquireDelta)
	}

	attrs := []slog.Attr{
		slog.Int64("emptyAcquireDelta", waitDelta),
		slog.Int64("acquireDelta", acquireDelta),
		slog.Duration("avgAcquire", avgAcquire),
		slog.Int("acquiredConns", int(cur.acquiredConns)),
		slog.Int("totalConns", int(cur.totalConns)),
		slog.Int("maxConns", int(cur.maxConns)),
	}
	if avgAcquire >= poolWarnDurationThreshold {
		logger.LogAttrs(ctx, slog.LevelWarn, "pgx pool wait detected", attrs...)
	} else {
		logger.LogAttrs(ctx, slog.LevelDebug, "pgx pool wait observed", attrs...)
	}
}
