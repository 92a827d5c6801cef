package notify

import (
	"fmt"
	"io"

	"hyprnav/pkg/core"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

const title = "hyprnav"

// NotifyService handles desktop notifications
type NotifyService struct {
	log      core.Logger
	tools    []notificationTool
	fallback io.Writer
}

// NewNotifyService creates a notification service that prints to fallback
// when no notification tool is installed.
func NewNotifyService(log core.Logger, fallback io.Writer) *NotifyService {
	return &NotifyService{
		log:      log,
		tools:    notificationTools,
		fallback: fallback,
	}
}

// Show displays a notification of the specified type
func (n *NotifyService) Show(message string, nType NotificationType) error {
	err := n.trySystemNotification(title, message, nType)
	if err == nil {
		return nil
	}
	n.log.Debug("No desktop notification sent", "reason", err.Error())

	if n.fallback == nil {
		return fmt.Errorf("no notification tools available")
	}
	return n.printTo(n.fallback, title, message, nType)
}
