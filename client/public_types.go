package client

import (
	"context"

	"github.com/miracles123-max/echo-tutor/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	UploadRequest    = types.UploadRequest
	AnswerSubmission = types.AnswerSubmission
	QuestionID       = types.QuestionID
	Answer           = types.Answer

	// Results
	Pending      = types.Pending
	Response     = types.Response
	UploadResult = types.UploadResult
	Section      = types.Section
	Question     = types.Question
	Feedback     = types.Feedback
	Ack          = types.Ack
	FileType     = types.FileType
	NextAction   = types.NextAction
)

const (
	FileTypeDocument = types.FileTypeDocument
	FileTypeImage    = types.FileTypeImage

	NextActionContinue    = types.NextActionContinue
	NextActionNextSection = types.NextActionNextSection
	NextActionEnd         = types.NextActionEnd
)

// TextAnswer is a free-form or single-option answer.
func TextAnswer(s string) Answer { return types.TextAnswer(s) }

// NumberAnswer is a numeric answer.
func NumberAnswer(f float64) Answer { return types.NumberAnswer(f) }

// BoolAnswer is a yes/no answer.
func BoolAnswer(b bool) Answer { return types.BoolAnswer(b) }

// ChoicesAnswer selects several options.
func ChoicesAnswer(choices ...string) Answer { return types.ChoicesAnswer(choices...) }

// Decode unmarshals resp's JSON body into a new T.
func Decode[T any](resp *Response) (*T, error) {
	var v T
	if err := resp.Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// AwaitAs waits for p and decodes the body into T.
func AwaitAs[T any](ctx context.Context, p *Pending) (*T, error) {
	resp, err := p.Await(ctx)
	if err != nil {
		return nil, err
	}
	return Decode[T](resp)
}
