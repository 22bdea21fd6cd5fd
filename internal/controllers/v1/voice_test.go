package v1_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/thucthuc0607-code/SmartFin-2/internal/controllers/v1"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/internal/voice"
	"github.com/thucthuc0607-code/SmartFin-2/test"
)

// blockingClassifier blocks until release is closed.
type blockingClassifier struct {
	started chan struct{}
	release chan struct{}
}

func (b blockingClassifier) Classify(_ context.Context, _ string) (string, error) {
	close(b.started)
	<-b.release
	return "{}", nil
}

func (suite *TestSuiteStandard) TestVoice() {
	tests := []struct {
		name       string
		classifier voice.Classifier
		body       any
		status     int
		checkFunc  func(t *testing.T, response v1.VoiceResponse)
	}{
		{
			"Classified",
			nil,
			v1.VoiceRequest{Transcript: "bún bò 35k"},
			http.StatusOK,
			func(t *testing.T, response v1.VoiceResponse) {
				require.NotNil(t, response.Data)
				assert.False(t, response.Data.Fallback)
				assert.Equal(t, "35000", response.Data.Guess.Amount.String())
				assert.Equal(t, "Ăn uống", response.Data.Guess.Category)
				assert.Equal(t, "Bún bò", response.Data.Guess.Note)
				assert.Equal(t, models.WalletCash, response.Data.Guess.WalletType)
			},
		},
		{
			"Classifier fails",
			classifier{err: errors.New("quota exceeded")},
			v1.VoiceRequest{Transcript: "  nhận lương  "},
			http.StatusOK,
			func(t *testing.T, response v1.VoiceResponse) {
				require.NotNil(t, response.Data)
				assert.True(t, response.Data.Fallback)
				assert.Equal(t, voice.FailureMessage, response.Data.Message)
				assert.Equal(t, "nhận lương", response.Data.Guess.Note)
				assert.Equal(t, models.OtherCategory, response.Data.Guess.Category)
				assert.True(t, response.Data.Guess.Amount.IsZero())
			},
		},
		{
			"Malformed classifier response",
			classifier{response: "I am not JSON"},
			v1.VoiceRequest{Transcript: "cafe"},
			http.StatusOK,
			func(t *testing.T, response v1.VoiceResponse) {
				require.NotNil(t, response.Data)
				assert.True(t, response.Data.Fallback)
			},
		},
		{
			"Speech error with message",
			nil,
			v1.VoiceRequest{ErrorCode: voice.SpeechNotAllowed},
			http.StatusOK,
			func(t *testing.T, response v1.VoiceResponse) {
				require.NotNil(t, response.Message)
				assert.Equal(t, "Vui lòng cấp quyền Microphone để sử dụng tính năng này.", *response.Message)
				assert.Nil(t, response.Data)
			},
		},
		{
			"Speech error without message",
			nil,
			v1.VoiceRequest{ErrorCode: "aborted"},
			http.StatusOK,
			func(t *testing.T, response v1.VoiceResponse) {
				assert.Nil(t, response.Message)
				assert.Nil(t, response.Data)
				assert.Nil(t, response.Error)
			},
		},
		{
			"Blank transcript",
			nil,
			v1.VoiceRequest{Transcript: "   "},
			http.StatusBadRequest,
			func(t *testing.T, response v1.VoiceResponse) {
				assert.Equal(t, "either transcript or errorCode must be set", *response.Error)
			},
		},
		{
			"Empty body",
			nil,
			"",
			http.StatusBadRequest,
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.SetupTest()
			if tt.classifier != nil {
				suite.co.Voice = voice.NewService(tt.classifier, time.Second)
			}

			r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/voice", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.VoiceResponse
			test.DecodeResponse(t, &r, &response)

			if tt.checkFunc != nil {
				tt.checkFunc(t, response)
			}

			assert.Empty(t, suite.co.Ledger.Transactions(), "Voice input must never book a transaction")
		})
	}
}

// TestVoiceWithoutService verifies that every transcript gets the fallback
// draft when no voice service is configured.
func (suite *TestSuiteStandard) TestVoiceWithoutService() {
	suite.co.Voice = nil

	r := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/voice", v1.VoiceRequest{Transcript: "trà sữa 45k"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.VoiceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.True(response.Data.Fallback)
	suite.Equal("trà sữa 45k", response.Data.Guess.Note)
}

// TestVoiceBusy verifies that a second transcript is rejected while one
// is being classified.
func (suite *TestSuiteStandard) TestVoiceBusy() {
	b := blockingClassifier{started: make(chan struct{}), release: make(chan struct{})}
	suite.co.Voice = voice.NewService(b, time.Second)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = suite.co.Voice.Interpret(context.Background(), "phở 50k")
	}()
	<-b.started

	r := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/voice", v1.VoiceRequest{Transcript: "cafe 30k"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.VoiceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Equal("a voice request is already being processed, please wait", *response.Error)

	close(b.release)
	<-done
}

func (suite *TestSuiteStandard) TestVoiceOptions() {
	r := test.Request(suite.co, suite.T(), http.MethodOptions, "http://example.com/v1/voice", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Equal("OPTIONS, POST", r.Header().Get("allow"))
}
