package scheduler

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/configs"
	authRepo "schoolquiz_backend/internals/features/users/auth/repository"
)

// StartRefreshTokenCleanupScheduler purges stale refresh tokens every 24h until ctx ends.
func StartRefreshTokenCleanupScheduler(ctx context.Context, db *gorm.DB) {
	go func() {
		ttl := configs.Conf.GetDuration("REFRESH_TOKEN_TTL_GRACE")
		if ttl <= 0 {
			ttl = 7 * 24 * time.Hour
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			RunRefreshTokenCleanup(ctx, db, time.Now().Add(-ttl))

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// RunRefreshTokenCleanup deletes stale tokens in batches of 100 and returns the total removed.
func RunRefreshTokenCleanup(ctx context.Context, db *gorm.DB, cutoff time.Time) int64 {
	var total int64
	for {
		n, err := authRepo.DeleteStaleRefreshTokens(ctx, db, cutoff, 100)
		if err != nil {
			slog.ErrorContext(ctx, "refresh token cleanup failed", "err", err)
			return total
		}
		total += n
		if n < 100 {
			break
		}
	}
	if total > 0 {
		slog.InfoContext(ctx, "refresh token cleanup", "deleted", total)
	}
	return total
}
