package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is wrapped by every client-side validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidatePathSegment checks that v can be placed verbatim in a URL path as a
// single segment. The client never escapes it.
func ValidatePathSegment(v, field string) error {
	switch {
	case strings.TrimSpace(v) == "":
		return fmt.Errorf("%w: %s is required", ErrInvalidArgument, field)
	case v == "." || v == "..":
		return fmt.Errorf("%w: %s must not be %q", ErrInvalidArgument, field, v)
	case strings.ContainsAny(v, "/?#"):
		return fmt.Errorf("%w: %s %q is not a single path segment", ErrInvalidArgument, field, v)
	}
	return nil
}

// ValidateUpload checks that an upload names a file and has something to read.
func ValidateUpload(req UploadRequest) error {
	if req.Content == nil {
		return fmt.Errorf("%w: upload content is nil", ErrInvalidArgument)
	}
	if strings.TrimSpace(req.Filename) == "" {
		return fmt.Errorf("%w: upload filename is required", ErrInvalidArgument)
	}
	return nil
}
