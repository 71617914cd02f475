package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/wakestop/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// SleepFunc waits for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// Config holds retry configuration
type Config struct {
	MaxRetries    int              // Retries after the first attempt
	BaseDelay     time.Duration    // Delay before the first retry
	MaxDelay      time.Duration    // Upper bound for any delay
	Multiplier    float64          // 1 keeps the delay fixed
	Jitter        bool             // Add up to 10% random delay
	RetryableFunc func(error) bool // Decides whether an error is worth another attempt
	Sleep         SleepFunc        // Defaults to a context-aware timer
}

// DefaultConfig returns an exponential backoff configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		RetryableFunc: func(err error) bool {
			return true
		},
	}
}

// FixedConfig returns a configuration that waits the same delay between every attempt
func FixedConfig(maxRetries int, delay time.Duration) Config {
	return Config{
		MaxRetries: maxRetries,
		BaseDelay:  delay,
		MaxDelay:   delay,
		Multiplier: 1,
		RetryableFunc: func(err error) bool {
			return true
		},
	}
}

// Retrier handles retry logic
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a new retrier with the given configuration
func New(config Config, l *logger.ZapLogger) *Retrier {
	if config.RetryableFunc == nil {
		config.RetryableFunc = func(error) bool { return true }
	}
	if config.Sleep == nil {
		config.Sleep = TimerSleep
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 1
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Retrier{
		config: config,
		logger: l,
	}
}

// TimerSleep blocks for d unless ctx is cancelled first
func TimerSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Execute executes the function with retry logic
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	_, err := r.ExecuteWithMetrics(ctx, fn)
	return err
}

// ExecuteWithMetrics executes the function with retry logic and returns metrics
func (r *Retrier) ExecuteWithMetrics(ctx context.Context, fn RetryableFunc) (RetryMetrics, error) {
	metrics := RetryMetrics{StartTime: time.Now()}
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			metrics.EndTime = time.Now()
			return metrics, err
		}

		metrics.Attempts++
		err := fn(ctx)
		if err == nil {
			metrics.EndTime = time.Now()
			metrics.Success = true
			if attempt > 0 {
				r.logger.Info("Function succeeded after retries",
					logger.Int("total_attempts", attempt+1))
			}
			return metrics, nil
		}

		lastErr = err
		metrics.Errors = append(metrics.Errors, err.Error())

		if !r.config.RetryableFunc(err) {
			r.logger.Debug("Error is not retryable, stopping",
				logger.Err(err),
				logger.Int("attempt", attempt+1))
			metrics.EndTime = time.Now()
			return metrics, err
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)
		metrics.Delays = append(metrics.Delays, delay)

		r.logger.Debug("Function failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay),
			logger.Int("max_retries", r.config.MaxRetries))

		if err := r.config.Sleep(ctx, delay); err != nil {
			metrics.EndTime = time.Now()
			return metrics, err
		}
	}

	metrics.EndTime = time.Now()
	r.logger.Warn("Function failed after all retries",
		logger.Err(lastErr),
		logger.Int("total_attempts", r.config.MaxRetries+1))

	return metrics, fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))

	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}

	return time.Duration(delay)
}

// RetryMetrics holds metrics about retry execution
type RetryMetrics struct {
	StartTime time.Time
	EndTime   time.Time
	Attempts  int
	Success   bool
	Errors    []string
	Delays    []time.Duration
}

// TotalDuration returns the total duration of all retry attempts
func (m RetryMetrics) TotalDuration() time.Duration {
	return m.EndTime.Sub(m.StartTime)
}
