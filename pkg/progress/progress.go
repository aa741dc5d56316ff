package progress

import (
	"fmt"

	"github.com/pcj/mobyprogress"
)

// Message is a convenience function to write a progress message.
func Message(out mobyprogress.Output, id, message string) {
	out.WriteProgress(mobyprogress.Progress{ID: id, Message: message})
}

// Messagef is a convenience function to write a printf-formatted progress
// message.
func Messagef(out mobyprogress.Output, id, format string, a ...interface{}) {
	Message(out, id, fmt.Sprintf(format, a...))
}

// Files reports that current of total files are done.
func Files(out mobyprogress.Output, action string, current, total int) {
	out.WriteProgress(mobyprogress.Progress{
		ID:         "files",
		Action:     action,
		Current:    int64(current),
		Total:      int64(total),
		Units:      "files",
		LastUpdate: current == total,
	})
}

// Discard returns an Output that drops all updates.
func Discard() mobyprogress.Output {
	return discard{}
}

type discard struct{}

func (discard) WriteProgress(mobyprogress.Progress) error { return nil }
