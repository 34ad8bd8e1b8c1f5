package calculation

import (
	"time"

	"github.com/homepath/deposit-forecast/pkg/dateutil"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// today is the default journey start: the current date at midnight UTC.
func today() time.Time { return dateutil.DateOnly(nowFunc()) }
