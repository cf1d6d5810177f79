package job

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/mohiniBalmiki/taxwise-web/internal/pkg/timeutil"
	"github.com/mohiniBalmiki/taxwise-web/internal/session"
)

// SessionCleanupJob removes session slots whose backend expiry has passed.
type SessionCleanupJob struct {
	sessions session.Store
}

func NewSessionCleanupJob(sessions session.Store) *SessionCleanupJob {
	return &SessionCleanupJob{sessions: sessions}
}

func (j *SessionCleanupJob) Name() string {
	return "session-cleanup"
}

func (j *SessionCleanupJob) Run(ctx context.Context) error {
	removed, err := j.sessions.DeleteExpired(ctx, timeutil.NowUnix())
	if err != nil {
		return err
	}
	if removed > 0 {
		logutil.GetLogger(ctx).Info("expired sessions removed", zap.Int64("count", removed))
	}
	return nil
}
