package reminder

import "github.com/skippyskiddy/MindfulJot-App-sub000/internal"

// LogNotifier presents notifications through the logger, standing in for a
// platform notification surface.
type LogNotifier struct {
	logger internal.Logger
}

func NewLogNotifier(logger internal.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Show(title, body string) error {
	n.logger.Infof("notification: %s: %s", title, body)
	return nil
}

func (n *LogNotifier) CanShowNotifications() bool { return true }

func (n *LogNotifier) CreateChannel() {}

var _ Notifier = (*LogNotifier)(nil)
