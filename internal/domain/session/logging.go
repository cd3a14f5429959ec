// internal/domain/session/logging.go
package session

import "github.com/sirupsen/logrus"

// LogSubscriber writes store change notifications to the application log.
// It keeps an audit trail of cart and session activity the way the
// storefront header used to observe storage events.
type LogSubscriber struct {
	logger *logrus.Logger
}

// NewLogSubscriber creates a log-backed notification subscriber
func NewLogSubscriber(logger *logrus.Logger) *LogSubscriber {
	return &LogSubscriber{logger: logger}
}

// OnCartChanged logs a cart mutation
func (l *LogSubscriber) OnCartChanged(event CartChanged) {
	l.logger.WithFields(logrus.Fields{
		"session_id":     event.SessionID,
		"item_count":     event.ItemCount,
		"total_quantity": event.TotalQuantity,
	}).Debug("cart changed")
}

// OnSessionChanged logs a session identity change
func (l *LogSubscriber) OnSessionChanged(event SessionChanged) {
	l.logger.WithFields(logrus.Fields{
		"session_id": event.SessionID,
		"logged_in":  event.LoggedIn,
	}).Debug("session changed")
}
