// Package log creates the logger of warnings.
package log

import (
	"fmt"

	"github.com/sirupsen/logrus"
	logrusutil "github.com/suzuki-shunsuke/logrus-util/log"
)

const program = "warnings"

func New(version string) *logrus.Entry {
	return logrusutil.New(program, version)
}

// Set sets the log level and the log color.
// color is one of "auto", "always" and "never". Empty values keep the current settings.
func Set(logE *logrus.Entry, level, color string) error {
	if err := logrusutil.Set(logE, level, color); err != nil {
		return fmt.Errorf("configure the logger: %w", err)
	}
	return nil
}
