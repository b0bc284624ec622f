package suftree

import (
	"context"
	"log/slog"
	"time"
)

// Keys for the structured attributes logBuild attaches to each
// build-outcome record: a fixed, documented attribute vocabulary a pretty
// handler can key on (see internal/slogpretty).
const (
	// LogBuilderKey is the key for the BuilderKind that ran. The associated
	// value is a string.
	LogBuilderKey = "builder"
	// LogOutcomeKey is the key for the build outcome ("ok" or "error"). The
	// associated value is a string.
	LogOutcomeKey = "outcome"
	// LogSequenceKey is the key for the sequence id that was added. The
	// associated value is whatever the caller's ID type formats to.
	LogSequenceKey = "sequence"
	// LogDurationKey is the key for how long the build took. The associated
	// value is a time.Duration.
	LogDurationKey = "duration"
)

// logBuild reports the outcome of one Add/AddSeq call. A nil logger, the
// default, makes this a no-op so construction pays no tax when logging isn't
// configured.
func logBuild[ID comparable](log *slog.Logger, kind BuilderKind, seqID ID, start time.Time, err error) {
	if log == nil {
		return
	}

	lvl := slog.LevelInfo
	outcome := "ok"
	if err != nil {
		lvl = slog.LevelError
		outcome = "error"
	}

	attrs := []slog.Attr{
		slog.String(LogBuilderKey, kind.String()),
		slog.Any(LogSequenceKey, seqID),
		slog.String(LogOutcomeKey, outcome),
		slog.Duration(LogDurationKey, time.Since(start)),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	log.LogAttrs(context.Background(), lvl, "build complete", attrs...)
}
