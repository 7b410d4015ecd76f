package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger.
var Log *logrus.Logger

// FileConfig describes the optional rotating log file.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns rotation settings for path.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Init configures the global logger from the environment:
//
//	LOG_LEVEL  - logrus level name, "info" by default
//	LOG_FORMAT - "json" for machine-readable output, text otherwise
//	LOG_FILE   - if set, output is also written to this rotating file
//
// Call it once from main (and from TestMain in tests).
func Init() {
	var file FileConfig
	if path := os.Getenv("LOG_FILE"); path != "" {
		file = DefaultFileConfig(path)
	}
	InitWith(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), file)
}

// InitWith configures the global logger explicitly. It is what Init and the
// YAML config path both end up calling.
func InitWith(level, format string, file FileConfig) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   file.Path == "",
		})
	}

	var out io.Writer = os.Stdout
	if file.Path != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file.Path,
			MaxSize:    file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAge:     file.MaxAgeDays,
			Compress:   file.Compress,
			LocalTime:  true,
		})
	}
	Log.SetOutput(out)
}

// Discard points the logger at nowhere. Terminal tools use it so log lines
// do not tear the screen.
func Discard() {
	if Log == nil {
		Log = logrus.New()
	}
	Log.SetOutput(io.Discard)
}
