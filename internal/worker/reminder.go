package worker

import (
    "context"
    "sync"
    "time"

    "github.com/jackc/pgx/v5/pgxpool"
    "go.uber.org/zap"
)

// Reminder периодически сканирует просроченные невыполненные задачи
// и пишет о них в лог. Ничего не мутирует.
type Reminder struct {
    pool     *pgxpool.Pool
    logger   *zap.Logger
    interval time.Duration
    wg       sync.WaitGroup
    stop     chan struct{}
}

func NewReminder(pool *pgxpool.Pool, logger *zap.Logger, interval time.Duration) *Reminder {
    return &Reminder{
        pool:     pool,
        logger:   logger,
        interval: interval,
        stop:     make(chan struct{}),
    }
}

func (r *Reminder) Start(ctx context.Context) {
    r.logger.Info("Starting overdue reminder", zap.Duration("interval", r.interval))

    r.wg.Add(1)
    go r.run(ctx)
}

func (r *Reminder) Stop() {
    r.logger.Info("Stopping overdue reminder...")
    close(r.stop)
    r.wg.Wait()
    r.logger.Info("Overdue reminder stopped")
}

func (r *Reminder) run(ctx context.Context) {
    defer r.wg.Done()

    ticker := time.NewTicker(r.interval)
    defer ticker.Stop()

    for {
        select {
        case <-r.stop:
            return
        case <-ctx.Done():
            return
        case <-ticker.C:
            if err := r.scan(ctx); err != nil {
                r.logger.Error("overdue scan failed", zap.Error(err))
            }
        }
    }
}

func (r *Reminder) scan(ctx context.Context) error {
    rows, err := r.pool.Query(ctx, `
        SELECT id, title, due_date
        FROM todos
        WHERE completed = FALSE AND due_date IS NOT NULL AND due_date < now()
        ORDER BY due_date
        LIMIT 100
    `)
    if err != nil {
        return err
    }
    defer rows.Close()

    for rows.Next() {
        var (
            id      int64
            title   string
            dueDate time.Time
        )
        if err := rows.Scan(&id, &title, &dueDate); err != nil {
            return err
        }
        r.logger.Warn("Todo is overdue",
            zap.Int64("todo_id", id),
            zap.String("title", title),
            zap.Time("due_date", dueDate),
        )
    }
    return rows.Err()
}
