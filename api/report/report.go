// Package report adapts structured loggers to checkenv.Reporter so start-up
// diagnostics land in the host program's log pipeline instead of stderr.
//
// Every adapter logs the same message text as the default checkenv output,
// without the glyph, and attaches the variable name as the "key" field.
// Missing and unsafe names are logged at error level, optional names at warn.
package report

import (
	"fmt"
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/tbeaudouin05/checkenv/api/checkenv"
)

// KeyField names the field carrying the variable name.
const KeyField = "key"

type zerologReporter struct{ l zerolog.Logger }

// Zerolog reports through l.
func Zerolog(l zerolog.Logger) checkenv.Reporter { return zerologReporter{l: l} }

func (r zerologReporter) Missing(name string) {
	r.l.Error().Str(KeyField, name).Msgf(checkenv.MissingFormat, name)
}

func (r zerologReporter) Optional(name string) {
	r.l.Warn().Str(KeyField, name).Msgf(checkenv.OptionalFormat, name)
}

func (r zerologReporter) Unsafe(name string) {
	r.l.Error().Str(KeyField, name).Msgf(checkenv.UnsafeFormat, name)
}

type slogReporter struct{ l *slog.Logger }

// Slog reports through l. A nil logger uses slog.Default().
func Slog(l *slog.Logger) checkenv.Reporter {
	if l == nil {
		l = slog.Default()
	}
	return slogReporter{l: l}
}

func (r slogReporter) Missing(name string) {
	r.l.Error(fmt.Sprintf(checkenv.MissingFormat, name), KeyField, name)
}

func (r slogReporter) Optional(name string) {
	r.l.Warn(fmt.Sprintf(checkenv.OptionalFormat, name), KeyField, name)
}

func (r slogReporter) Unsafe(name string) {
	r.l.Error(fmt.Sprintf(checkenv.UnsafeFormat, name), KeyField, name)
}

type logrusReporter struct{ l logrus.FieldLogger }

// Logrus reports through l. A nil logger uses the logrus standard logger.
func Logrus(l logrus.FieldLogger) checkenv.Reporter {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return logrusReporter{l: l}
}

func (r logrusReporter) Missing(name string) {
	r.l.WithFields(logrus.Fields{KeyField: name}).Errorf(checkenv.MissingFormat, name)
}

func (r logrusReporter) Optional(name string) {
	r.l.WithFields(logrus.Fields{KeyField: name}).Warnf(checkenv.OptionalFormat, name)
}

func (r logrusReporter) Unsafe(name string) {
	r.l.WithFields(logrus.Fields{KeyField: name}).Errorf(checkenv.UnsafeFormat, name)
}

type zapReporter struct{ l *zap.SugaredLogger }

// Zap reports through l. A nil logger uses the global zap.S().
func Zap(l *zap.SugaredLogger) checkenv.Reporter {
	if l == nil {
		l = zap.S()
	}
	return zapReporter{l: l}
}

func (r zapReporter) Missing(name string) {
	r.l.Errorw(fmt.Sprintf(checkenv.MissingFormat, name), KeyField, name)
}

func (r zapReporter) Optional(name string) {
	r.l.Warnw(fmt.Sprintf(checkenv.OptionalFormat, name), KeyField, name)
}

func (r zapReporter) Unsafe(name string) {
	r.l.Errorw(fmt.Sprintf(checkenv.UnsafeFormat, name), KeyField, name)
}

type multi []checkenv.Reporter

// Multi fans every call out to rs in order. Nil entries are dropped.
func Multi(rs ...checkenv.Reporter) checkenv.Reporter {
	out := make(multi, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (m multi) Missing(name string) {
	for _, r := range m {
		r.Missing(name)
	}
}

func (m multi) Optional(name string) {
	for _, r := range m {
		r.Optional(name)
	}
}

func (m multi) Unsafe(name string) {
	for _, r := range m {
		r.Unsafe(name)
	}
}
