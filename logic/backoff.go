package logic

import (
	"math/rand"
	"time"

	"post_later/shared"
)

// backoffDelay computes the wait before retry number `retry` (1-based):
// the base wait doubled for every failure so far, capped, then spread
// by +/- jitter.
func backoffDelay(cfg *shared.RetryConfig, retry int, rng *rand.Rand) time.Duration {
	if retry < 1 {
		retry = 1
	}
	shift := uint(retry - 1)
	if shift > 16 {
		shift = 16
	}
	res := time.Duration(cfg.BaseWaitSecs) * time.Second * time.Duration(1<<shift)
	maxWait := time.Duration(cfg.MaxWaitSecs) * time.Second
	if maxWait > 0 && res > maxWait {
		res = maxWait
	}
	if cfg.Jitter > 0 {
		res = time.Duration(float64(res) * (1 + (rng.Float64()*2-1)*cfg.Jitter))
	}
	return res
}
