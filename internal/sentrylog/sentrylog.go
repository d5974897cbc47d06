// Package sentrylog forwards logrus entries to sentry.
package sentrylog

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// nolint:gochecknoglobals
var levelMap = map[logrus.Level]sentry.Level{
	logrus.PanicLevel: sentry.LevelFatal,
	logrus.FatalLevel: sentry.LevelFatal,
	logrus.ErrorLevel: sentry.LevelError,
	logrus.WarnLevel:  sentry.LevelWarning,
}

type hook struct {
	levels []logrus.Level
}

// NewHook initializes sentry and returns a logrus hook which reports entries
// of the given levels.
func NewHook(opts sentry.ClientOptions, levels ...logrus.Level) (logrus.Hook, error) {
	if err := sentry.Init(opts); err != nil {
		return nil, fmt.Errorf("failed to init sentry: %w", err)
	}

	return hook{levels: levels}, nil
}

func (h hook) Levels() []logrus.Level {
	return h.levels
}

func (h hook) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Message = entry.Message
	event.Level = levelMap[entry.Level]

	for k, v := range entry.Data {
		if k == logrus.ErrorKey {
			if err, ok := v.(error); ok {
				event.Message = fmt.Sprintf("%s: %s", entry.Message, err)
				continue
			}
		}
		event.Extra[k] = v
	}

	sentry.CaptureEvent(event)

	return nil
}
