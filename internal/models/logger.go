package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// Queries above this duration are logged as warnings even when they succeed.
const slowQueryThreshold = 200 * time.Millisecond

// logger adapts zerolog to the gorm logger interface. All events carry a
// "component" field so database logs can be filtered from request logs.
type logger struct {
	Logger zerolog.Logger
}

func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, s string, args ...interface{}) {
	l.Logger.Info().Str("component", "database").Msgf(s, args...)
}

func (l *logger) Warn(_ context.Context, s string, args ...interface{}) {
	l.Logger.Warn().Str("component", "database").Msgf(s, args...)
}

func (l *logger) Error(_ context.Context, s string, args ...interface{}) {
	l.Logger.Error().Str("component", "database").Msgf(s, args...)
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	// Not finding a record is handled by the controllers, it is not
	// something a server admin needs to see in the logs.
	event := l.Logger.Debug()
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound):
		event = l.Logger.Error().Err(err)
	case elapsed > slowQueryThreshold:
		event = l.Logger.Warn()
	}

	event.
		Str("component", "database").
		Str("sql", sql).
		Int64("rows", rows).
		Dur("elapsed", elapsed).
		Msg("query")
}
