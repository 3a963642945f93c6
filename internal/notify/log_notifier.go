package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

type LogNotifier struct {
	logger logrus.FieldLogger
}

func NewLogNotifier(logger logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Invalidate(_ context.Context, inv Invalidation) error {
	n.logger.WithFields(logrus.Fields{
		"reason":  inv.Reason,
		"ownerID": inv.OwnerID.String(),
		"paths":   inv.Paths,
	}).Info("Notify.Invalidate")
	return nil
}
