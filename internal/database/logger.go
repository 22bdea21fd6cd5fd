package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// Statements taking longer are logged as warnings.
const slowQuery = 200 * time.Millisecond

type logger struct {
	Logger zerolog.Logger
	Level  gorm_logger.LogLevel
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	copied := *l
	copied.Level = level
	return &copied
}

func (l *logger) Info(_ context.Context, s string, args ...any) {
	if l.Level >= gorm_logger.Info {
		l.Logger.Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(_ context.Context, s string, args ...any) {
	if l.Level >= gorm_logger.Warn {
		l.Logger.Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(_ context.Context, s string, args ...any) {
	if l.Level >= gorm_logger.Error {
		l.Logger.Error().Msgf(s, args...)
	}
}

// Trace logs failed and slow statements. Writes are logged at debug level
// with the number of affected rows. Reads are logged at trace level since
// the document store polls the revision.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.Level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, models.ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) && l.Level >= gorm_logger.Error:
		l.Logger.Error().Err(err).Str("sql", sql).Dur("duration", elapsed).Msg("[GORM] query error")
	case elapsed > slowQuery && l.Level >= gorm_logger.Warn:
		l.Logger.Warn().Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("[GORM] slow query")
	case l.Level >= gorm_logger.Info:
		level := zerolog.DebugLevel
		if strings.HasPrefix(strings.TrimSpace(sql), "SELECT") {
			level = zerolog.TraceLevel
		}
		l.Logger.WithLevel(level).Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("[GORM] query")
	}
}
