package client

import (
	"errors"

	sdkerrors "github.com/miracles123-max/echo-tutor/client/internal/errors"
	"github.com/miracles123-max/echo-tutor/client/internal/keyqueue"
	"github.com/miracles123-max/echo-tutor/client/internal/types"
)

// ErrTransport matches every network error and non-2xx response. 4xx and 5xx
// are not told apart; use StatusCode when the caller needs to.
var ErrTransport = sdkerrors.ErrTransport

// TransportError is the concrete type behind ErrTransport.
type TransportError = sdkerrors.ClassifiedError

// ErrBackPressure is returned when too many calls already wait for one
// session. It is raised locally and does not match ErrTransport.
var ErrBackPressure = keyqueue.ErrQueueFull

// ErrClosed is returned for calls made after Close.
var ErrClosed = keyqueue.ErrExecutorClosed

// ErrInvalidArgument is returned for a fileId that is not a single path
// segment or an upload without readable content. No request is sent and the
// error does not match ErrTransport.
var ErrInvalidArgument = types.ErrInvalidArgument

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// StatusCode returns the HTTP status behind err, or 0 for network errors and
// anything that never reached the backend.
func StatusCode(err error) int { return sdkerrors.StatusCode(err) }

// Detail returns the backend's {"detail": ...} message carried by err, if any.
func Detail(err error) string { return sdkerrors.Detail(err) }
