package jobs

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultProgressSchedule = "*/30 * * * * *"
	DefaultProgressDelay    = 2 * time.Minute
	DefaultProgressBatch    = 50
)

// OrderAdvancer moves one order to its next status.
type OrderAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (order.Status, error)
}

type ProgressConfig struct {
	// Schedule is a cron expression with a seconds field.
	Schedule string
	// Delay is how long an order stays in a status before it is advanced.
	Delay time.Duration
	Batch int
}

func (c ProgressConfig) withDefaults() ProgressConfig {
	if c.Schedule == "" {
		c.Schedule = DefaultProgressSchedule
	}
	if c.Delay <= 0 {
		c.Delay = DefaultProgressDelay
	}
	if c.Batch <= 0 {
		c.Batch = DefaultProgressBatch
	}
	return c
}

// OrderProgressJob simulates the kitchen and the courier: on every tick it advances
// confirmed and in-flight orders that have not changed status for Delay, one step each,
// until they are delivered.
type OrderProgressJob struct {
	uowFactory commands.OrderUoWFactory
	advancer   OrderAdvancer
	cfg        ProgressConfig
	cron       *cron.Cron
	logger     *zap.Logger
	now        func() time.Time
}

func NewOrderProgressJob(
	uowFactory commands.OrderUoWFactory,
	advancer OrderAdvancer,
	cfg ProgressConfig,
	logger *zap.Logger,
) *OrderProgressJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "order_progress_job"))
	cronLogger := cronLogger{logger.Sugar()}

	return &OrderProgressJob{
		uowFactory: uowFactory,
		advancer:   advancer,
		cfg:        cfg.withDefaults(),
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
		now:    time.Now,
	}
}

func (j *OrderProgressJob) Start() error {
	if _, err := j.cron.AddFunc(j.cfg.Schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("order progress job started",
		zap.String("schedule", j.cfg.Schedule), zap.Duration("delay", j.cfg.Delay))
	return nil
}

// Stop waits for a running tick to finish.
func (j *OrderProgressJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("order progress job stopped")
}

// Run performs one tick and returns the number of orders advanced.
func (j *OrderProgressJob) Run(ctx context.Context) int {
	uow := j.uowFactory.Create()
	cutoff := j.now().UTC().Add(-j.cfg.Delay)
	ids, err := uow.OrderRepository().ListStaleInProgress(ctx, cutoff, j.cfg.Batch)
	if err != nil {
		j.logger.Error("list orders to advance", zap.Error(err))
		return 0
	}

	advanced := 0
	for _, id := range ids {
		cmd, err := commands.NewAdvanceOrderStatusCommand(id, cutoff)
		if err != nil {
			j.logger.Error("build advance command", zap.String("order_id", id), zap.Error(err))
			continue
		}

		status, err := j.advancer.Handle(ctx, cmd)
		switch {
		case err == nil:
			advanced++
			j.logger.Debug("order advanced", zap.String("order_id", id), zap.Stringer("status", status))
		case errors.Is(err, errs.ErrConflict):
			// cancelled, finished or advanced elsewhere since it was listed
			j.logger.Debug("order skipped", zap.String("order_id", id), zap.Error(err))
		default:
			j.logger.Error("advance order", zap.String("order_id", id), zap.Error(err))
		}
	}
	return advanced
}
