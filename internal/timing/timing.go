package timing

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

type Span = timespan.TimeSpan

func Between(from, to time.Time) Span {
	return timespan.BetweenTimes(from, to)
}

// Since returns the span from start until now.
func Since(start time.Time) Span {
	return Between(start, time.Now())
}

// Fields describes span as log fields: when it started, when it ended and
// how long it took.
func Fields(span Span) []zap.Field {
	return []zap.Field{
		zap.Time("started", span.Start()),
		zap.Time("finished", span.End()),
		zap.Duration("elapsed", span.Duration()),
	}
}
