package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lshigami/examadmin/config"
	"github.com/lshigami/examadmin/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

const runTimeout = 5 * time.Minute

// ResultsJob recomputes today's results on a cron schedule.
type ResultsJob struct {
	scheduler *gocron.Scheduler
	results   service.ResultService
	spec      string
}

func NewResultsJob(cfg *config.Config, results service.ResultService) *ResultsJob {
	return &ResultsJob{
		scheduler: gocron.NewScheduler(time.Local),
		results:   results,
		spec:      cfg.Results.Cron,
	}
}

// Start schedules the job. An empty cron spec leaves it disabled.
func (j *ResultsJob) Start() error {
	if j.spec == "" {
		log.Info().Msg("RESULTS_CRON not set, scheduled results computation disabled")
		return nil
	}
	if _, err := j.scheduler.Cron(j.spec).Do(j.Run); err != nil {
		return err
	}
	j.scheduler.StartAsync()
	log.Info().Str("cron", j.spec).Msg("Scheduled results computation enabled")
	return nil
}

func (j *ResultsJob) Stop() {
	j.scheduler.Stop()
}

// Run computes today's results once. Failures are logged only.
func (j *ResultsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	resp, err := j.results.ComputeTodayResults(ctx)
	if err != nil {
		var nf *service.NotFoundError
		if errors.As(err, &nf) {
			log.Info().Msg("Scheduled results: no exam today")
			return
		}
		log.Error().Err(err).Msg("Scheduled results computation failed")
		return
	}
	log.Info().Str("examID", resp.ExamDetails.ExamID).Int("candidates", len(resp.Results)).Msg("Scheduled results computed")
}

// RegisterResultsJob ties the job to the fx lifecycle.
func RegisterResultsJob(lc fx.Lifecycle, job *ResultsJob) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error { return job.Start() },
		OnStop: func(ctx context.Context) error {
			job.Stop()
			return nil
		},
	})
}
