package domain

// NotificationType classifies a transient notification.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
)

// Notification is a one-shot message raised by a store mutation. The
// transport forwards it to the client, which displays and auto-dismisses
// it; nothing is persisted.
type Notification struct {
	Message string
	Type    NotificationType
}

// SuccessNotification builds a success notification.
func SuccessNotification(message string) Notification {
	return Notification{Message: message, Type: NotificationSuccess}
}

// InfoNotification builds an informational notification.
func InfoNotification(message string) Notification {
	return Notification{Message: message, Type: NotificationInfo}
}
