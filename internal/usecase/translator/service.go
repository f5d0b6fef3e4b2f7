// Package translator wraps the gateway with the retry policy that makes up
// the externally visible translate operation.
package translator

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quasarbright/clanker-translate/internal/domain"
	"github.com/quasarbright/clanker-translate/internal/ports"
)

const maxAttempts = 3

// SleepFunc pauses for the backoff duration. It returns early with the
// context error when the caller cancels mid-sleep. Tests inject a stub so the
// schedule is observable without wall-clock delays.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type Service struct {
	gw    ports.Gateway
	sleep SleepFunc
	log   *logrus.Logger
}

func New(gw ports.Gateway, log *logrus.Logger) *Service {
	return &Service{gw: gw, sleep: sleep, log: log}
}

// NewWithSleep is New with an injected backoff sleep, for tests.
func NewWithSleep(gw ports.Gateway, log *logrus.Logger, s SleepFunc) *Service {
	return &Service{gw: gw, sleep: s, log: log}
}

// Translate runs up to three strictly sequential gateway attempts with
// exponential backoff (1s, 2s) between them. Auth and rate-limit failures
// propagate immediately; cancellation propagates unchanged and is never
// reclassified. A response whose translation is empty after trimming counts
// as a failed attempt and consumes a retry like any transient error.
func (s *Service) Translate(ctx context.Context, req domain.TranslationRequest) (domain.TranslationResponse, error) {
	fields := logrus.Fields{"model": req.Model, "from": req.FromLanguage, "to": req.ToLanguage}
	var lastErr *domain.ClassifiedError
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(1<<(attempt-2)) * time.Second
			if err := s.sleep(ctx, backoff); err != nil {
				return domain.TranslationResponse{}, err
			}
		}
		resp, err := s.gw.Translate(ctx, req)
		if err == nil {
			if verr := validate(resp); verr != nil {
				lastErr = verr
				s.log.WithFields(fields).WithField("attempt", attempt).Warn("invalid response schema")
				continue
			}
			return resp, nil
		}
		if ctx.Err() != nil {
			return domain.TranslationResponse{}, ctx.Err()
		}
		cerr, ok := err.(*domain.ClassifiedError)
		if !ok {
			cerr = domain.NewClassifiedError(domain.ErrUnknown, err.Error())
		}
		if !cerr.Retryable() {
			return domain.TranslationResponse{}, cerr
		}
		lastErr = cerr
		s.log.WithFields(fields).WithFields(logrus.Fields{"attempt": attempt, "kind": cerr.Kind}).Warn("translate attempt failed")
	}
	if lastErr == nil {
		lastErr = domain.NewClassifiedError(domain.ErrUnknown, "translation failed")
	}
	return domain.TranslationResponse{}, lastErr
}

// validate rejects a parsed-but-empty response before it counts as success.
func validate(resp domain.TranslationResponse) *domain.ClassifiedError {
	if strings.TrimSpace(resp.Translation) == "" {
		return domain.NewClassifiedError(domain.ErrInvalidResponse, "invalid response schema: empty translation")
	}
	return nil
}
