package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// GetLogWriter interprets a `--logPath` value: "stdout" and "stderr" name
// the standard streams, and anything else is a directory that will hold a
// rotating log file.
func GetLogWriter(logPath string) (io.Writer, error) {
	var writer io.Writer

	switch logPath {
	case "stdout":
		writer = os.Stdout

	case "stderr", "":
		writer = os.Stderr

	default:
		w, err := NewRotatingWriter(logPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open logPath %#q", logPath)
		}

		return w, nil
	}

	return zerolog.SyncWriter(writer), nil
}

// NewFromPath creates a console-formatted Logger that writes wherever
// logPath indicates (see GetLogWriter).
func NewFromPath(logPath string, level zerolog.Level) (*Logger, error) {
	writer, err := GetLogWriter(logPath)
	if err != nil {
		return nil, err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        writer,
		TimeFormat: timeFormat,
	}

	l := zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
	return NewLogger(&l, writer), nil
}
