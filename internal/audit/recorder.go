package audit

import (
	"context"

	"sacco-backend/internal/domain/activity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Recorder appends activity entries fire-and-forget: a dead audit store must
// never fail the business operation that produced the entry.
type Recorder struct {
	repo activity.Repository
	log  *logrus.Logger
}

func NewRecorder(repo activity.Repository, log *logrus.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

func (r *Recorder) Record(ctx context.Context, actorName, action, entryType string, amount decimal.NullDecimal) {
	if r == nil || r.repo == nil {
		return
	}
	entry := activity.Activity{
		ActorName: actorName,
		Action:    action,
		Amount:    amount,
		Type:      entryType,
	}
	if err := r.repo.Create(ctx, &entry); err != nil && r.log != nil {
		r.log.WithError(err).WithFields(logrus.Fields{
			"actor":  actorName,
			"action": action,
			"type":   entryType,
		}).Warn("audit append failed")
	}
}
