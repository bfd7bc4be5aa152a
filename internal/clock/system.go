package clock

import (
	"context"
	"time"
)

type SystemClock struct{}

func (SystemClock) Now(ctx context.Context) time.Time {
	return time.Now().UTC()
}

func New() Clock { return SystemClock{} }

// Fixed pins time for tests.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now(ctx context.Context) time.Time { return f.At }
