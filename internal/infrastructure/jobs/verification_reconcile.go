package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"care-connect.backend/internal/usecases"
	"care-connect.backend/pkg/logger"
)

// VerificationReconcileJob periodically repairs drift between account status
// and the caregiver verified flag. It is the compensating control for the
// dual-record write: even if a decision only half-applies, the sweep restores
// the invariant within one interval.
type VerificationReconcileJob struct {
	verificationUsecase *usecases.VerificationUsecase
	interval            time.Duration
	stop                chan struct{}
}

func NewVerificationReconcileJob(verificationUsecase *usecases.VerificationUsecase, interval time.Duration) *VerificationReconcileJob {
	return &VerificationReconcileJob{
		verificationUsecase: verificationUsecase,
		interval:            interval,
		stop:                make(chan struct{}),
	}
}

func (j *VerificationReconcileJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting verification reconcile job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Verification reconcile job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Verification reconcile job stopped")
			return
		case <-ticker.C:
			j.runSweep(ctx)
		}
	}
}

func (j *VerificationReconcileJob) Stop() {
	close(j.stop)
}

func (j *VerificationReconcileJob) runSweep(ctx context.Context) {
	report, err := j.verificationUsecase.Reconcile(ctx)
	if err != nil {
		logger.Error(ctx, "Verification reconcile sweep failed", zap.Error(err))
		return
	}

	if report.CorrectedCount == 0 {
		return
	}

	logger.Warn(ctx, "Verification reconcile sweep corrected drift",
		zap.Int("checked", report.CheckedCount),
		zap.Int("corrected", report.CorrectedCount),
	)
}
