package cronrunner

import (
	"context"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Runner schedules background catalog jobs. Specs accept an optional
// seconds field as well as descriptors such as "@every 1m".
type Runner struct {
	cron    *cron.Cron
	logger  *zap.Logger
	baseCtx context.Context
}

func New(logger *zap.Logger, baseCtx context.Context) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return &Runner{
		cron:    cron.New(cron.WithParser(parser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

// Add registers job under name. An empty spec leaves the job disabled and
// returns ok=false with no error.
func (r *Runner) Add(name, spec string, job func(context.Context)) (bool, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		if r.logger != nil {
			r.logger.Info("cron job disabled", zap.String("job", name))
		}
		return false, nil
	}
	_, err := r.cron.AddFunc(spec, func() {
		start := time.Now()
		job(r.baseCtx)
		if r.logger != nil {
			r.logger.Debug("cron job finished",
				zap.String("job", name),
				zap.Duration("took", time.Since(start)),
			)
		}
	})
	if err != nil {
		return false, err
	}
	if r.logger != nil {
		r.logger.Info("cron job scheduled", zap.String("job", name), zap.String("spec", spec))
	}
	return true, nil
}

func (r *Runner) Entries() int {
	return len(r.cron.Entries())
}

func (r *Runner) Start() {
	if r.logger != nil {
		r.logger.Info("cron started")
	}
	r.cron.Start()
}

func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	if r.logger != nil {
		r.logger.Info("cron stopped")
	}
}
