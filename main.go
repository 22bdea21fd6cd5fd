package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/thucthuc0607-code/SmartFin-2/internal/config"
	"github.com/thucthuc0607-code/SmartFin-2/internal/controllers/healthz"
	v1 "github.com/thucthuc0607-code/SmartFin-2/internal/controllers/v1"
	"github.com/thucthuc0607-code/SmartFin-2/internal/ledger"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/internal/persistence"
	"github.com/thucthuc0607-code/SmartFin-2/internal/router"
	"github.com/thucthuc0607-code/SmartFin-2/internal/store"
	"github.com/thucthuc0607-code/SmartFin-2/internal/voice"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env file is fine, the environment is used as is
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal().Err(err).Msg("Loading .env")
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The URL has been validated above
	apiURL, _ := url.Parse(cfg.APIURL)

	s, err := store.Open(cfg.StoreOptions())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := ledger.New(models.NewDocument())
	syncer := persistence.New(s, l, cfg.UserID, cfg.SyncDebounce)
	if err := syncer.Start(ctx); err != nil {
		log.Fatal().Msg(err.Error())
	}

	var classifier voice.Classifier
	if cfg.GeminiAPIKey != "" {
		gemini, err := voice.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		classifier = gemini
	} else {
		log.Warn().Msg("GEMINI_API_KEY is not set, voice input will only return fallback drafts")
	}

	r, teardown, err := router.Config(apiURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(v1.Controller{
		Ledger: l,
		Voice:  voice.NewService(classifier, cfg.VoiceTimeout),
	}, healthz.Controller{Status: syncer}, r.Group("/"))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(
			server.Shutdown(shutdownCtx),
			syncer.Stop(shutdownCtx),
			s.Close(),
		)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server stopped with errors")
		os.Exit(1)
	}

	log.Info().Msg("Server stopped")
}
