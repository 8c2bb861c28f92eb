package jobs

import (
	"context"
	"time"

	"cashbook-backend/internal/logger"
)

// RotateExpiredJoinCodes replaces join codes older than join_code.max_age_hours.
func (jr *JobRunner) RotateExpiredJoinCodes() {
	jr.runWithRecovery("RotateExpiredJoinCodes", func(ctx context.Context) {
		maxAgeHours := jr.config.JoinCode.MaxAgeHours
		if maxAgeHours <= 0 {
			logger.Info("Join code expiry disabled, nothing to rotate")
			return
		}

		rotated, err := jr.services.Business.RotateExpiredJoinCodes(ctx, time.Duration(maxAgeHours)*time.Hour)
		if err != nil {
			logger.Error("Some join codes could not be rotated", "rotated", rotated, "error", err)
			return
		}
		logger.Info("Rotated expired join codes", "rotated", rotated, "max_age_hours", maxAgeHours)
	})
}
