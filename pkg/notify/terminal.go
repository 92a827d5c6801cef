package notify

import (
	"fmt"
	"io"
)

func (n *NotifyService) printTo(w io.Writer, title string, message string, nType NotificationType) error {
	prefix := title
	if nType == Error {
		prefix += " error"
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", prefix, message)
	return err
}
