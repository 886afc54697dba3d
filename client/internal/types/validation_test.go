package types

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePathSegment(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in string
		ok bool
	}{
		{"3f2c9a1e-0b7d-4b8e-9a51-2d4f0c6e7a10", true},
		{"file_1", true},
		{"track.mp3", true},
		{"", false},
		{"   ", false},
		{".", false},
		{"..", false},
		{"a/b", false},
		{"a?b=c", false},
		{"a#frag", false},
	}
	for _, c := range cases {
		err := ValidatePathSegment(c.in, "fileId")
		if c.ok && err != nil {
			t.Fatalf("expected ok for %q, got %v", c.in, err)
		}
		if !c.ok {
			if err == nil {
				t.Fatalf("expected error for %q", c.in)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("error for %q should wrap ErrInvalidArgument: %v", c.in, err)
			}
		}
	}
}

func TestValidateUpload(t *testing.T) {
	t.Parallel()
	if err := ValidateUpload(UploadRequest{Filename: "notes.txt", Content: strings.NewReader("hi")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateUpload(UploadRequest{Filename: "notes.txt"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil content: got %v", err)
	}
	if err := ValidateUpload(UploadRequest{Content: strings.NewReader("hi")}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("missing filename: got %v", err)
	}
}
