package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrSkipRetry marks a handler error as terminal: the job goes straight to
// the failed set whatever attempts are left.
var ErrSkipRetry = errors.New("skip retry")

// Handler processes one job. Jobs are delivered at least once, so handlers
// must be idempotent.
type Handler func(ctx context.Context, job *Job) error

type Job struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Payload     json.RawMessage `json:"payload"`
	Attempt     int             `json:"attempt"`
	MaxAttempts int             `json:"maxAttempts"`
	Delay       time.Duration   `json:"delay"`
	Backoff     Backoff         `json:"backoff"`
	EnqueuedAt  time.Time       `json:"enqueuedAt"`
	LastError   string          `json:"lastError,omitempty"`

	// Recovered is set when the job was taken back from a worker whose
	// lease expired, so its previous run may have stopped half way.
	Recovered bool `json:"-"`
}

// Decode unmarshals the payload into v.
func (j *Job) Decode(v any) error {
	if err := json.Unmarshal(j.Payload, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", j.Type, err)
	}

	return nil
}

type Options struct {
	Delay       time.Duration
	MaxAttempts int
	Backoff     Backoff
}

type BackoffType string

const (
	BackoffFixed       BackoffType = "fixed"
	BackoffExponential BackoffType = "exponential"
)

type Backoff struct {
	Type  BackoffType   `json:"type"`
	Delay time.Duration `json:"delay"`
}

// Next returns how long to wait before the retry that follows the given
// (1-based) attempt.
func (b Backoff) Next(attempt int) time.Duration {
	switch b.Type {
	case BackoffExponential:
		if attempt < 1 {
			attempt = 1
		}
		shift := min(attempt-1, 30)
		return b.Delay * time.Duration(1<<shift)
	default:
		return b.Delay
	}
}
