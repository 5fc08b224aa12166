package util

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// log is the global logger
var log = logrus.New()

// SetLogLevel sets the log level for the application
func SetLogLevel(level logrus.Level) {
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true, QuoteEmptyFields: true}
	log.Level = level
}

// GetLogger returns the main logger
func GetLogger(context string) *logrus.Entry {
	return log.WithField("context", context)
}

// StringInSlice checks if provided string is in provided string list
func StringInSlice(a string, list []string) (bool, int) {
	for i, b := range list {
		if b == a {
			return true, i
		}
	}
	return false, 0
}

// NormalizeName lowercases a display name and strips spaces, dashes and
// underscores, so fuzzy matches ignore the usual vendor styling differences
func NormalizeName(name string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return r.Replace(strings.ToLower(name))
}
