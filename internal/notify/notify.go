// Package notify defines the user-notification sink used by managers to
// surface success and error messages (the toast equivalent of the UI).
package notify

import "go.uber.org/zap"

// Notifier receives user-visible notifications. It is a side-effect sink:
// implementations must not call back into the managers.
type Notifier interface {
	// Success reports a completed operation.
	Success(title, message string)
	// Error reports a failed operation.
	Error(title, message string)
}

// Zap writes notifications as structured log lines.
type Zap struct {
	log *zap.Logger
}

// NewZap wraps a zap logger as a Notifier.
func NewZap(log *zap.Logger) *Zap { return &Zap{log: log} }

func (z *Zap) Success(title, message string) {
	z.log.Info("notice", zap.String("title", title), zap.String("message", message))
}

func (z *Zap) Error(title, message string) {
	z.log.Warn("notice", zap.String("title", title), zap.String("message", message))
}

// Discard drops all notifications.
type Discard struct{}

func (Discard) Success(string, string) {}
func (Discard) Error(string, string)   {}
