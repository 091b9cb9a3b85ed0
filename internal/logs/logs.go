package logs

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is shared by all packages; Init replaces its settings in place so
// early log lines still land somewhere sane.
var Logger = logrus.New()

type Options struct {
	Level  string // trace|debug|info|warn|error, bad values fall back to info
	Format string // text|json
	File   string // optional log file, stdout only if empty
}

func Init(o Options) {
	lvl, err := logrus.ParseLevel(o.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)

	if o.Format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stdout
	if o.File != "" {
		if f, ferr := os.OpenFile(o.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); ferr == nil {
			out = io.MultiWriter(os.Stdout, f)
		} else {
			Logger.Warnf("log file %s: %v", o.File, ferr)
		}
	}
	Logger.SetOutput(out)
}
