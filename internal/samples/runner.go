package samples

import (
	"context"
	"sync"
	"time"

	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/pkg/logger"
)

// Scorer submits one transcript for scoring. *Client satisfies it.
type Scorer interface {
	Score(ctx context.Context, transcript string, durationSeconds float64) (model.ScoreResult, error)
}

// Outcome is the result of submitting one sample.
type Outcome struct {
	Sample   Sample
	Result   model.ScoreResult
	Err      error
	Problems []string
	Latency  time.Duration
}

// InRange reports whether the sample scored within its expected range.
func (o Outcome) InRange() bool {
	return o.Err == nil && o.Sample.InRange(o.Result.OverallScore)
}

// Passed reports whether the sample was scored, valid and in range.
func (o Outcome) Passed() bool {
	return o.Err == nil && len(o.Problems) == 0 && o.InRange()
}

// Run submits samples concurrently with the given number of workers and
// returns one outcome per sample in input order.
func Run(ctx context.Context, scorer Scorer, samples []Sample, workers int) []Outcome {
	if workers < 1 {
		workers = 1
	}
	outcomes := make([]Outcome, len(samples))
	ran := make([]bool, len(samples))

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = runOne(ctx, scorer, samples[i])
				ran[i] = true
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range samples {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()
	wg.Wait()

	// Samples never dispatched because ctx ended still get an outcome.
	for i := range outcomes {
		if !ran[i] {
			outcomes[i] = Outcome{Sample: samples[i], Err: ctx.Err()}
		}
	}
	return outcomes
}

func runOne(ctx context.Context, scorer Scorer, s Sample) Outcome {
	start := time.Now()
	res, err := scorer.Score(ctx, s.Transcript, s.DurationSeconds)
	o := Outcome{Sample: s, Result: res, Err: err, Latency: time.Since(start)}
	if err != nil {
		logger.Get().Warn(ctx, "sample failed", logger.String("sample", s.Name), logger.Error(err))
		return o
	}
	o.Problems = Validate(res)
	logger.Get().Debug(ctx, "sample scored",
		logger.String("sample", s.Name),
		logger.Int("overall", res.OverallScore),
		logger.Bool("inRange", o.InRange()),
		logger.Duration("latency", o.Latency))
	return o
}
