package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/miracles123-max/echo-tutor/client/internal/types"
)

const uploadPath = "/upload"

// UploadFile posts req as multipart form data under field "file". The content
// is read when the request runs; with retries enabled every attempt sends it
// in full.
func UploadFile(ctx context.Context, exec types.Executor, rc *resty.Client, req types.UploadRequest) *types.Pending {
	if err := types.ValidateUpload(req); err != nil {
		return rejected(OpUpload, err)
	}
	body := &uploadBody{src: req.Content}
	return dispatch(ctx, exec, uploadKey(req.Filename), OpUpload, func(jobCtx context.Context) (*types.Response, error) {
		content, err := body.open()
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("%w: read %s: %w", types.ErrInvalidArgument, req.Filename, err))
		}
		resp, err := rc.R().
			SetContext(jobCtx).
			SetFileReader("file", req.Filename, content).
			Post(uploadPath)
		return result(OpUpload, resp, err)
	})
}

// uploadBody replays the upload content on every attempt. A seekable source
// is rewound to where it stood on the first attempt; anything else is read
// into memory once.
type uploadBody struct {
	src io.Reader

	once  sync.Once
	start int64
	data  []byte
	err   error
}

func (b *uploadBody) open() (io.Reader, error) {
	if s, ok := b.src.(io.ReadSeeker); ok {
		b.once.Do(func() { b.start, b.err = s.Seek(0, io.SeekCurrent) })
		if b.err != nil {
			return nil, b.err
		}
		if _, err := s.Seek(b.start, io.SeekStart); err != nil {
			return nil, err
		}
		return s, nil
	}
	b.once.Do(func() { b.data, b.err = io.ReadAll(b.src) })
	if b.err != nil {
		return nil, b.err
	}
	return bytes.NewReader(b.data), nil
}

// UploadPath uploads the file at path. The file must exist when UploadPath
// is called; it is opened only once the request runs.
func UploadPath(ctx context.Context, exec types.Executor, rc *resty.Client, path string) *types.Pending {
	info, err := os.Stat(path)
	if err != nil {
		return rejected(OpUpload, fmt.Errorf("%w: %w", types.ErrInvalidArgument, err))
	}
	if info.IsDir() {
		return rejected(OpUpload, fmt.Errorf("%w: %s is a directory", types.ErrInvalidArgument, path))
	}
	name := filepath.Base(path)
	return dispatch(ctx, exec, uploadKey(name), OpUpload, func(jobCtx context.Context) (*types.Response, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("%w: %w", types.ErrInvalidArgument, err))
		}
		defer func() { _ = f.Close() }()

		resp, err := rc.R().
			SetContext(jobCtx).
			SetFileReader("file", name, f).
			Post(uploadPath)
		return result(OpUpload, resp, err)
	})
}

// Uploads have no session yet; key them by filename so unrelated uploads
// spread over shards.
func uploadKey(filename string) string { return "upload/" + filename }
