package database

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	gorm_logger "gorm.io/gorm/logger"
)

func testLogger(t *testing.T, level gorm_logger.LogLevel) (*logger, *bytes.Buffer) {
	previous := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	var buf bytes.Buffer
	return &logger{Logger: zerolog.New(&buf), Level: level}, &buf
}

func statement(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestTrace(t *testing.T) {
	tests := []struct {
		name    string
		begin   time.Time
		sql     string
		err     error
		level   string
		message string
	}{
		{"Write", time.Now(), "UPDATE `documents` SET `revision`=2", nil, `"level":"debug"`, `"rows":1`},
		{"Read", time.Now(), "SELECT `revision` FROM `documents`", nil, `"level":"trace"`, "[GORM] query"},
		{"Slow", time.Now().Add(-time.Second), "UPDATE `documents` SET `revision`=3", nil, `"level":"warn"`, "[GORM] slow query"},
		{"Error", time.Now(), "INSERT INTO `documents`", errors.New("disk I/O error"), `"level":"error"`, "disk I/O error"},
		{"Not found", time.Now(), "SELECT * FROM `documents`", models.ErrResourceNotFound, `"level":"trace"`, "[GORM] query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := testLogger(t, gorm_logger.Info)
			l.Trace(context.Background(), tt.begin, statement(tt.sql, 1), tt.err)

			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), tt.message)
		})
	}
}

func TestLogMode(t *testing.T) {
	l, buf := testLogger(t, gorm_logger.Info)

	silent := l.LogMode(gorm_logger.Silent)
	silent.Trace(context.Background(), time.Now(), statement("UPDATE `documents`", 1), errors.New("failed"))
	silent.Error(context.Background(), "failed %d", 1)
	assert.Empty(t, buf.String())

	warn := l.LogMode(gorm_logger.Warn)
	warn.Info(context.Background(), "connected")
	warn.Trace(context.Background(), time.Now(), statement("UPDATE `documents`", 1), nil)
	assert.Empty(t, buf.String(), "queries and info messages are only logged at info level")

	warn.Warn(context.Background(), "careful %s", "now")
	assert.Contains(t, buf.String(), "careful now")

	assert.Equal(t, gorm_logger.Info, l.Level, "LogMode does not change the original logger")
}
