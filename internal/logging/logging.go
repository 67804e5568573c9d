// internal/logging/logging.go
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogFile is the fixed on-disk log sink, kept alongside the console stream.
const LogFile = "hyperex.log"

// Setup builds the run logger: timestamped colored console output teed into
// hyperex.log. Quiet raises the threshold to errors only. The returned
// closer flushes and closes the log file.
func Setup(console io.Writer, quiet bool) (*logrus.Logger, func(), error) {
	fh, err := os.OpenFile(LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	log := logrus.New()
	log.SetOutput(io.MultiWriter(console, fh))
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	if quiet {
		log.SetLevel(logrus.ErrorLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log, func() { _ = fh.Close() }, nil
}
