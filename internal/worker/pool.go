package worker

import (
    "context"
    "sync"
    "time"

    "github.com/jackc/pgx/v5/pgxpool"
    "go.uber.org/zap"
)

// Pool - фоновая чистка: ключи идемпотентности живут ограниченное время,
// иначе таблица растет бесконечно
type Pool struct {
    pool   *pgxpool.Pool
    logger *zap.Logger
    count  int
    retention time.Duration
    interval time.Duration
    wg     sync.WaitGroup
    stop   chan struct{}
}

func NewPool(pool *pgxpool.Pool, logger *zap.Logger, count int, retention time.Duration) *Pool {
    return &Pool{
        pool:   pool,
        logger: logger,
        count:  count,
        retention: retention,
        interval: 1 * time.Minute,
        stop:   make(chan struct{}),
    }
}

func (p *Pool) Start(ctx context.Context) {
    p.logger.Info("Starting worker pool", zap.Int("workers", p.count))

    for i := 0; i < p.count; i++ {
        p.wg.Add(1)
        go p.worker(ctx, i)
    }
}

func (p *Pool) Stop() {
    p.logger.Info("Stopping worker pool...")
    close(p.stop)
    p.wg.Wait()
    p.logger.Info("Worker pool stopped")
}

func (p *Pool) worker(ctx context.Context, id int) {
    defer p.wg.Done()

    ticker := time.NewTicker(p.interval)
    defer ticker.Stop()

    for {
        select {
        case <-p.stop:
            return
        case <-ctx.Done():
            return
        case <-ticker.C:
            if err := p.purgeExpiredKeys(ctx, id); err != nil {
                p.logger.Error("worker error", zap.Int("worker", id), zap.Error(err))
            }
        }
    }
}

func (p *Pool) purgeExpiredKeys(ctx context.Context, workerID int) error {
    cmd, err := p.pool.Exec(ctx, `
        DELETE FROM idempotency_keys WHERE created_at < now() - make_interval(secs => $1)
    `, p.retention.Seconds())
    if err != nil {
        return err
    }

    if cmd.RowsAffected() > 0 {
        p.logger.Info("Purged idempotency keys",
            zap.Int("worker", workerID),
            zap.Int64("purged", cmd.RowsAffected()),
        )
    }
    return nil
}
