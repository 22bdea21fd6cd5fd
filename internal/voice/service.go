// Package voice turns a spoken transcript into a transaction draft.
//
// Classification is delegated to a Classifier, usually backed by Gemini.
// Every failure degrades to a fallback draft holding the transcript as
// its note, together with an advisory message for the user.
package voice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
)

// FailureMessage is the advisory returned with a fallback guess.
const FailureMessage = "Không thể phân tích dữ liệu. Vui lòng thử lại."

const DefaultTimeout = 20 * time.Second

var (
	ErrBusy              = errors.New("a voice request is already being processed")
	ErrEmptyTranscript   = errors.New("the transcript must not be empty")
	ErrMalformedResponse = errors.New("the classifier response is not a JSON object")
	ErrNoClassifier      = errors.New("no classifier is configured")
)

type Classifier interface {
	// Classify returns the raw model response for the transcript.
	Classify(ctx context.Context, text string) (string, error)
}

// Result of interpreting a transcript. Message is set when the guess is
// the fallback.
type Result struct {
	Guess    Guess  `json:"guess"`
	Fallback bool   `json:"fallback" example:"false"`
	Message  string `json:"message,omitempty" example:""`
}

// Service allows one classification at a time.
type Service struct {
	classifier Classifier
	timeout    time.Duration
	sem        *semaphore.Weighted
}

// NewService returns a service using c. A nil classifier makes every
// request return the fallback.
func NewService(c Classifier, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Service{
		classifier: c,
		timeout:    timeout,
		sem:        semaphore.NewWeighted(1),
	}
}

// Interpret classifies the transcript. It returns ErrBusy if another
// request is in flight.
func (s *Service) Interpret(ctx context.Context, text string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrEmptyTranscript
	}

	if !s.sem.TryAcquire(1) {
		return Result{}, ErrBusy
	}
	defer s.sem.Release(1)

	guess, err := s.classify(ctx, text)
	if err != nil {
		log.Warn().Str("component", "voice").Err(err).Msg("classification failed, using fallback")
		return Result{Guess: Fallback(text), Fallback: true, Message: FailureMessage}, nil
	}

	return Result{Guess: guess}, nil
}

func (s *Service) classify(ctx context.Context, text string) (Guess, error) {
	if s.classifier == nil {
		return Guess{}, ErrNoClassifier
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return Guess{}, err
	}

	return Parse(raw, text)
}
