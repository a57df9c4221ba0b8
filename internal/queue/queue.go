package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPrefix       = "ingest"
	defaultPollInterval = time.Second
	defaultBlockTimeout = 5 * time.Second
	defaultLeaseTTL     = 30 * time.Second
	promoteBatchSize    = 100
)

const (
	keyWait      = "wait"
	keyActive    = "active"
	keyDelayed   = "delayed"
	keyFailed    = "failed"
	keyJobs      = "jobs"
	keyLeases    = "leases"
	keyRecovered = "recovered"
)

// promoteScript moves due jobs from the delayed set to the wait list.
var promoteScript = redis.NewScript(`
local ids = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, ARGV[2])
for _, id in ipairs(ids) do
	redis.call('ZREM', KEYS[1], id)
	redis.call('LPUSH', KEYS[2], id)
end
return #ids
`)

// reclaimScript requeues active jobs whose lease expired. An active job with
// no lease yet (its worker has not written one) gets a fresh lease instead.
var reclaimScript = redis.NewScript(`
local active = redis.call('LRANGE', KEYS[1], 0, -1)
for _, id in ipairs(active) do
	redis.call('ZADD', KEYS[2], 'NX', ARGV[2], id)
end
local expired = redis.call('ZRANGEBYSCORE', KEYS[2], '-inf', ARGV[1])
local moved = 0
for _, id in ipairs(expired) do
	redis.call('ZREM', KEYS[2], id)
	if redis.call('LREM', KEYS[1], 1, id) > 0 then
		redis.call('SADD', KEYS[4], id)
		redis.call('LPUSH', KEYS[3], id)
		moved = moved + 1
	end
end
return moved
`)

// Queue is a durable job queue on top of redis. Every job type has its own
// wait list, active list, delayed set, failed set and envelope hash. A
// running job holds a lease that its worker renews; jobs whose lease expires
// go back to the wait list.
type Queue struct {
	log          *slog.Logger
	client       *redis.Client
	validator    *Validator
	prefix       string
	pollInterval time.Duration
	blockTimeout time.Duration
	leaseTTL     time.Duration
	now          func() time.Time
}

type Option func(*Queue)

func WithPrefix(prefix string) Option {
	return func(q *Queue) { q.prefix = prefix }
}

func WithValidator(v *Validator) Option {
	return func(q *Queue) { q.validator = v }
}

// WithPollInterval sets how often delayed jobs are promoted and expired
// leases reclaimed.
func WithPollInterval(d time.Duration) Option {
	return func(q *Queue) { q.pollInterval = d }
}

// WithBlockTimeout bounds how long a consumer blocks waiting for a job.
func WithBlockTimeout(d time.Duration) Option {
	return func(q *Queue) { q.blockTimeout = d }
}

// WithLeaseTTL sets how long a running job may go without a heartbeat
// before it is handed to another worker.
func WithLeaseTTL(d time.Duration) Option {
	return func(q *Queue) { q.leaseTTL = d }
}

func New(log *slog.Logger, client *redis.Client, opts ...Option) *Queue {
	q := &Queue{
		log:          log,
		client:       client,
		prefix:       defaultPrefix,
		pollInterval: defaultPollInterval,
		blockTimeout: defaultBlockTimeout,
		leaseTTL:     defaultLeaseTTL,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(q)
	}

	return q
}

func (q *Queue) key(jobType, name string) string {
	return q.prefix + ":" + jobType + ":" + name
}

// Enqueue stores the job envelope and schedules it in a single MULTI.
func (q *Queue) Enqueue(ctx context.Context, jobType string, payload any, opts Options) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	job := &Job{
		ID:          uuid.NewString(),
		Type:        jobType,
		Payload:     data,
		MaxAttempts: max(opts.MaxAttempts, 1),
		Delay:       opts.Delay,
		Backoff:     opts.Backoff,
		EnqueuedAt:  q.now().UTC(),
	}

	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, q.key(jobType, keyJobs), job.ID, raw)
		q.schedule(ctx, pipe, jobType, job.ID, opts.Delay)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue %s job: %w", jobType, err)
	}

	q.log.Debug("job enqueued",
		slog.String("job_type", jobType),
		slog.String("job_id", job.ID),
		slog.Duration("delay", opts.Delay),
	)

	return nil
}

func (q *Queue) schedule(ctx context.Context, pipe redis.Pipeliner, jobType, id string, delay time.Duration) {
	if delay <= 0 {
		pipe.LPush(ctx, q.key(jobType, keyWait), id)
		return
	}

	pipe.ZAdd(ctx, q.key(jobType, keyDelayed), redis.Z{
		Score:  float64(q.now().Add(delay).UnixMilli()),
		Member: id,
	})
}

// Consume runs concurrency workers for jobType plus a loop that promotes
// delayed jobs and reclaims jobs with expired leases. It blocks until ctx is
// cancelled. A job already taken by a worker runs to completion even after
// cancellation.
func (q *Queue) Consume(ctx context.Context, jobType string, handler Handler, concurrency int) error {
	concurrency = max(concurrency, 1)

	q.log.Info("starting consumers",
		slog.String("job_type", jobType),
		slog.Int("concurrency", concurrency),
	)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		return q.maintainLoop(ctx, jobType)
	})

	for i := range concurrency {
		erg.Go(func() error {
			return q.work(ctx, jobType, i+1, handler)
		})
	}

	return erg.Wait()
}

func (q *Queue) work(ctx context.Context, jobType string, worker int, handler Handler) error {
	log := q.log.With(slog.String("job_type", jobType), slog.Int("worker", worker))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		id, err := q.client.BRPopLPush(ctx, q.key(jobType, keyWait), q.key(jobType, keyActive), q.blockTimeout).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			log.Error("failed to fetch job", slog.String("err", err.Error()))

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(q.pollInterval):
			}
			continue
		}

		q.process(context.WithoutCancel(ctx), log, jobType, id, handler)
	}
}

func (q *Queue) process(ctx context.Context, log *slog.Logger, jobType, id string, handler Handler) {
	log = log.With(slog.String("job_id", id))

	if err := q.client.ZAdd(ctx, q.key(jobType, keyLeases), q.lease(id)).Err(); err != nil {
		log.Error("failed to take job lease", slog.String("err", err.Error()))
	}

	raw, err := q.client.HGet(ctx, q.key(jobType, keyJobs), id).Result()
	if errors.Is(err, redis.Nil) {
		log.Warn("job envelope is missing, dropping")
		_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			q.release(ctx, pipe, &Job{ID: id, Type: jobType})
			return nil
		})
		if err != nil {
			log.Error("failed to drop job", slog.String("err", err.Error()))
		}
		return
	}
	if err != nil {
		log.Error("failed to load job", slog.String("err", err.Error()))
		return
	}

	job := &Job{}
	if err := json.Unmarshal([]byte(raw), job); err != nil {
		job = &Job{ID: id, Type: jobType}
		q.finish(ctx, log, job, fmt.Errorf("%w: failed to decode job: %w", ErrSkipRetry, err))
		return
	}

	job.Type = jobType
	job.Attempt++

	recovered, err := q.client.SIsMember(ctx, q.key(jobType, keyRecovered), id).Result()
	if err != nil {
		log.Error("failed to check job recovery", slog.String("err", err.Error()))
	}
	job.Recovered = recovered

	if q.validator != nil {
		if err := q.validator.Validate(jobType, job.Payload); err != nil {
			q.finish(ctx, log, job, fmt.Errorf("%w: %w", ErrSkipRetry, err))
			return
		}
	}

	stopHeartbeat := q.heartbeat(ctx, log, job)
	start := time.Now()
	err = q.run(ctx, handler, job)
	stopHeartbeat()

	log.Debug("job handled",
		slog.Int("attempt", job.Attempt),
		slog.Duration("duration", time.Since(start)),
	)

	q.finish(ctx, log, job, err)
}

func (q *Queue) lease(id string) redis.Z {
	return redis.Z{
		Score:  float64(q.now().Add(q.leaseTTL).UnixMilli()),
		Member: id,
	}
}

// heartbeat renews the job lease until the returned stop func is called.
// Only an existing lease is renewed: once reclaimed, the job belongs to
// whoever picks it up next.
func (q *Queue) heartbeat(ctx context.Context, log *slog.Logger, job *Job) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(max(q.leaseTTL/3, time.Millisecond))
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				err := q.client.ZAddXX(ctx, q.key(job.Type, keyLeases), q.lease(job.ID)).Err()
				if err != nil && ctx.Err() == nil {
					log.Warn("failed to renew job lease", slog.String("err", err.Error()))
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// release drops the bookkeeping of a running job.
func (q *Queue) release(ctx context.Context, pipe redis.Pipeliner, job *Job) {
	pipe.LRem(ctx, q.key(job.Type, keyActive), 1, job.ID)
	pipe.ZRem(ctx, q.key(job.Type, keyLeases), job.ID)
	pipe.SRem(ctx, q.key(job.Type, keyRecovered), job.ID)
}

func (q *Queue) run(ctx context.Context, handler Handler, job *Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()

	return handler(ctx, job)
}

func (q *Queue) finish(ctx context.Context, log *slog.Logger, job *Job, jobErr error) {
	var err error
	switch {
	case jobErr == nil:
		err = q.ack(ctx, job)
	case errors.Is(jobErr, ErrSkipRetry) || job.Attempt >= job.MaxAttempts:
		log.Error("job failed",
			slog.Int("attempt", job.Attempt),
			slog.String("err", jobErr.Error()),
		)
		err = q.fail(ctx, job, jobErr)
	default:
		delay := job.Backoff.Next(job.Attempt)
		log.Warn("job failed, retrying",
			slog.Int("attempt", job.Attempt),
			slog.Int("max_attempts", job.MaxAttempts),
			slog.Duration("delay", delay),
			slog.String("err", jobErr.Error()),
		)
		err = q.retry(ctx, job, jobErr, delay)
	}

	if err != nil {
		log.Error("failed to settle job", slog.String("err", err.Error()))
	}
}

func (q *Queue) ack(ctx context.Context, job *Job) error {
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		q.release(ctx, pipe, job)
		pipe.HDel(ctx, q.key(job.Type, keyJobs), job.ID)
		return nil
	})

	return err
}

func (q *Queue) retry(ctx context.Context, job *Job, jobErr error, delay time.Duration) error {
	job.LastError = jobErr.Error()

	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, q.key(job.Type, keyJobs), job.ID, raw)
		q.release(ctx, pipe, job)
		q.schedule(ctx, pipe, job.Type, job.ID, delay)
		return nil
	})

	return err
}

func (q *Queue) fail(ctx context.Context, job *Job, jobErr error) error {
	job.LastError = jobErr.Error()

	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, q.key(job.Type, keyJobs), job.ID, raw)
		q.release(ctx, pipe, job)
		pipe.ZAdd(ctx, q.key(job.Type, keyFailed), redis.Z{
			Score:  float64(q.now().UnixMilli()),
			Member: job.ID,
		})
		return nil
	})

	return err
}

func (q *Queue) maintainLoop(ctx context.Context, jobType string) error {
	ticker := time.NewTicker(q.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := q.promote(ctx, jobType); err != nil && ctx.Err() == nil {
				q.log.Error("failed to promote delayed jobs",
					slog.String("job_type", jobType),
					slog.String("err", err.Error()),
				)
			}
			if _, err := q.Recover(ctx, jobType); err != nil && ctx.Err() == nil {
				q.log.Error("failed to reclaim expired jobs",
					slog.String("job_type", jobType),
					slog.String("err", err.Error()),
				)
			}
		}
	}
}

func (q *Queue) promote(ctx context.Context, jobType string) (int, error) {
	keys := []string{q.key(jobType, keyDelayed), q.key(jobType, keyWait)}
	now := strconv.FormatInt(q.now().UnixMilli(), 10)

	return promoteScript.Run(ctx, q.client, keys, now, promoteBatchSize).Int()
}

// Recover moves active jobs whose lease expired back to the wait list and
// marks them recovered. Jobs of live workers keep running untouched, so it
// is safe to call from any number of processes.
func (q *Queue) Recover(ctx context.Context, jobType string) (int, error) {
	keys := []string{
		q.key(jobType, keyActive),
		q.key(jobType, keyLeases),
		q.key(jobType, keyWait),
		q.key(jobType, keyRecovered),
	}
	now := q.now()

	moved, err := reclaimScript.Run(ctx, q.client, keys,
		now.UnixMilli(),
		now.Add(q.leaseTTL).UnixMilli(),
	).Int()
	if err != nil {
		return 0, fmt.Errorf("failed to recover %s jobs: %w", jobType, err)
	}

	if moved > 0 {
		q.log.Warn("recovered jobs with expired leases",
			slog.String("job_type", jobType),
			slog.Int("count", moved),
		)
	}

	return moved, nil
}

// Failed lists jobs that exhausted their attempts, oldest first.
func (q *Queue) Failed(ctx context.Context, jobType string) ([]*Job, error) {
	ids, err := q.client.ZRange(ctx, q.key(jobType, keyFailed), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list failed %s jobs: %w", jobType, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	raws, err := q.client.HMGet(ctx, q.key(jobType, keyJobs), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load failed %s jobs: %w", jobType, err)
	}

	jobs := make([]*Job, 0, len(raws))
	for _, raw := range raws {
		s, ok := raw.(string)
		if !ok {
			continue
		}

		job := &Job{}
		if err := json.Unmarshal([]byte(s), job); err != nil {
			return nil, fmt.Errorf("failed to decode job: %w", err)
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
