package utils

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// NotificationError is the only failure a report send surfaces to its caller.
// The caller is expected to mark the delivery attempt for the recipient as failed.
type NotificationError struct {
	Err error
}

func NewNotificationError(err error, msg string) error {
	return &NotificationError{Err: pkgerrors.Wrap(err, msg)}
}

func (e *NotificationError) Error() string {
	return e.Err.Error()
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

func IsNotificationError(err error) bool {
	var ne *NotificationError
	return errors.As(err, &ne)
}
