package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const CycleIDKey ctxKey = "cycle_id"

// WithCycle tags ctx with the refresh cycle number so timing lines from one
// cycle can be correlated.
func WithCycle(ctx context.Context, cycle int64) context.Context {
	return context.WithValue(ctx, CycleIDKey, cycle)
}

func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	cycle, _ := ctx.Value(CycleIDKey).(int64)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("cycle=%d op=%s dur=%dms err=%v", cycle, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("cycle=%d op=%s dur=%dms", cycle, name, dur.Milliseconds())
	}
}
