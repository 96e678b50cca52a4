// Package audit provides the write-only audit sink. Failures are logged and
// swallowed; auditing never fails the operation that triggered it.
package audit

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	domain "mikopo-backoffice/internal/domain/audit"
)

const writeTimeout = 2 * time.Second

type Logger struct {
	repo domain.Repository
	log  *logrus.Logger
}

func NewLogger(repo domain.Repository, log *logrus.Logger) *Logger {
	return &Logger{repo: repo, log: log}
}

func (l *Logger) Log(ctx context.Context, actor, action, detail string) {
	// detach from the request context so a cancelled request still audits
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	err := l.repo.Create(ctx, &domain.Entry{Actor: actor, Action: action, Detail: detail})
	if err != nil {
		l.log.WithError(err).WithFields(logrus.Fields{
			"actor":  actor,
			"action": action,
		}).Warn("audit write failed")
	}
}
