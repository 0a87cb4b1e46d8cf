// Package workflow drives one translate action end to end: upload the text,
// wait for language detection, start a translation job against the matching
// memory, wait for the job, download the result.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/valpere/chatlingo/internal/translator"
)

// Service is the slice of the translation client the workflow drives.
type Service interface {
	Upload(ctx context.Context, text string) (string, error)
	FileInfo(ctx context.Context, fileID string) (translator.FileStatus, error)
	StartTranslation(ctx context.Context, fileID string, memoryID int) (string, error)
	TranslationStatus(ctx context.Context, translationID string) (translator.JobStatus, error)
	Download(ctx context.Context, translationID string) (string, error)
}

type Config struct {
	// MaxAttempts bounds each polling loop, first attempt included.
	MaxAttempts int
	// RetryDelay is the delay before the second poll; it doubles after each
	// attempt, capped at MaxRetryDelay.
	RetryDelay    time.Duration
	MaxRetryDelay time.Duration
	// Logger receives per-run diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}

// Workflow runs translate actions sequentially. It holds no lock: the caller
// is expected to disable the trigger while a run is in flight, and Status is
// meaningful to that single observing caller only. Each Run works on its own
// file and translation ids; nothing carries over between runs.
type Workflow struct {
	svc    Service
	config Config
	logger zerolog.Logger
	status Status
}

func New(svc Service, config Config) *Workflow {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 3
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = 500 * time.Millisecond
	}
	if config.MaxRetryDelay <= 0 {
		config.MaxRetryDelay = 4 * time.Second
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}

	return &Workflow{
		svc:    svc,
		config: config,
		logger: logger,
		status: StatusReady,
	}
}

// Status reports how the most recent run resolved, or StatusReady before the
// first run.
func (w *Workflow) Status() Status {
	return w.status
}

// Run executes one translate action for text and blocks until it resolves.
// On success the returned string is the downloaded translation. Every abort
// path logs its reason and resolves to StatusFailed; the host application is
// expected to treat that as non-fatal.
func (w *Workflow) Run(ctx context.Context, text string) (string, error) {
	w.status = StatusTranslating

	logger := w.logger.With().Str("run_id", uuid.New().String()).Logger()

	fileID, err := w.svc.Upload(ctx, text)
	if err != nil {
		w.status = StatusFailed
		logger.Error().Err(err).Msg("upload request failed")
		return "", fmt.Errorf("upload failed: %w", err)
	}
	logger.Debug().Str("file_id", fileID).Msg("text uploaded")

	detected := w.pollDetectedLang(ctx, logger, fileID)

	memoryID, err := translator.ResolveMemory(detected)
	if err != nil {
		w.status = StatusFailed
		if errors.Is(err, translator.ErrLangUndetected) {
			logger.Error().Str("file_id", fileID).Msg("language undetected")
		} else {
			logger.Error().Str("detected_lang", detected).Msg("language unsupported")
		}
		return "", err
	}
	logger.Debug().Str("detected_lang", detected).Int("memory_id", memoryID).Msg("language resolved")

	translationID, err := w.svc.StartTranslation(ctx, fileID, memoryID)
	if err != nil {
		w.status = StatusFailed
		logger.Error().Err(err).Str("file_id", fileID).Msg("translate request failed")
		return "", fmt.Errorf("translate failed: %w", err)
	}

	if !w.pollTranslationReady(ctx, logger, translationID) {
		// The job may have finished between the last poll and now, so try the
		// download regardless; it fails cleanly when the job is unfinished.
		logger.Warn().Str("translation_id", translationID).Msg("translation not ready after retry budget, downloading anyway")
	}

	translated, err := w.svc.Download(ctx, translationID)
	if err != nil {
		w.status = StatusFailed
		logger.Error().Err(err).Str("translation_id", translationID).Msg("download request failed")
		return "", fmt.Errorf("download failed: %w", err)
	}

	w.status = StatusTranslated
	logger.Debug().Str("translation_id", translationID).Msg("translation complete")
	return translated, nil
}

// pollDetectedLang polls the file status until the service reports a detected
// language. An exhausted retry budget leaves the result empty, which the
// caller treats as "no detection".
func (w *Workflow) pollDetectedLang(ctx context.Context, logger zerolog.Logger, fileID string) string {
	var detected string
	w.poll(ctx, logger, func(ctx context.Context) (bool, error) {
		info, err := w.svc.FileInfo(ctx, fileID)
		if err != nil {
			return false, err
		}
		detected = info.DetectedLang
		return detected != "", nil
	})
	return detected
}

// pollTranslationReady polls the job status until it reaches the ready
// sentinel, reporting whether it got there within the retry budget.
func (w *Workflow) pollTranslationReady(ctx context.Context, logger zerolog.Logger, translationID string) bool {
	return w.poll(ctx, logger, func(ctx context.Context) (bool, error) {
		status, err := w.svc.TranslationStatus(ctx, translationID)
		if err != nil {
			return false, err
		}
		return status.Status == translator.StatusReady, nil
	})
}

// poll invokes check up to MaxAttempts times, sleeping between attempts with
// a doubling delay capped at MaxRetryDelay. It returns true as soon as check
// reports done. A check error consumes an attempt.
func (w *Workflow) poll(ctx context.Context, logger zerolog.Logger, check func(context.Context) (bool, error)) bool {
	delay := w.config.RetryDelay

	for attempt := 1; attempt <= w.config.MaxAttempts; attempt++ {
		done, err := check(ctx)
		if err != nil {
			logger.Warn().Err(err).Int("attempt", attempt).Msg("status check failed")
		} else if done {
			return true
		}

		if attempt == w.config.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}

		delay *= 2
		if delay > w.config.MaxRetryDelay {
			delay = w.config.MaxRetryDelay
		}
	}
	return false
}
