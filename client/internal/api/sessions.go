package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/miracles123-max/echo-tutor/client/internal/types"
)

// Session routes. fileId is substituted verbatim; callers own escaping.
const (
	jsonContentType = "application/json"

	currentPath = "/session/{fileId}/current"
	answerPath  = "/session/{fileId}/answer"
	nextPath    = "/session/{fileId}/next"
)

// GetCurrentSection fetches the section the session is on.
func GetCurrentSection(ctx context.Context, exec types.Executor, rc *resty.Client, fileID string) *types.Pending {
	if err := types.ValidatePathSegment(fileID, "fileId"); err != nil {
		return rejected(OpCurrentSection, err)
	}
	return dispatch(ctx, exec, fileID, OpCurrentSection, func(jobCtx context.Context) (*types.Response, error) {
		resp, err := rc.R().
			SetContext(jobCtx).
			SetRawPathParam("fileId", fileID).
			Get(currentPath)
		return result(OpCurrentSection, resp, err)
	})
}

// SubmitAnswer posts {"question_id", "answer"} for the session.
func SubmitAnswer(ctx context.Context, exec types.Executor, rc *resty.Client, fileID string, questionID types.QuestionID, answer types.Answer) *types.Pending {
	if err := types.ValidatePathSegment(fileID, "fileId"); err != nil {
		return rejected(OpSubmitAnswer, err)
	}
	body := types.AnswerSubmission{QuestionID: questionID, Answer: answer}
	return dispatch(ctx, exec, fileID, OpSubmitAnswer, func(jobCtx context.Context) (*types.Response, error) {
		resp, err := rc.R().
			SetContext(jobCtx).
			SetRawPathParam("fileId", fileID).
			SetHeader("Content-Type", jsonContentType).
			SetBody(body).
			Post(answerPath)
		return result(OpSubmitAnswer, resp, err)
	})
}

// NextSection advances the session. The request carries no body but still
// declares JSON, as the backend's own client does.
func NextSection(ctx context.Context, exec types.Executor, rc *resty.Client, fileID string) *types.Pending {
	if err := types.ValidatePathSegment(fileID, "fileId"); err != nil {
		return rejected(OpNextSection, err)
	}
	return dispatch(ctx, exec, fileID, OpNextSection, func(jobCtx context.Context) (*types.Response, error) {
		resp, err := rc.R().
			SetContext(jobCtx).
			SetRawPathParam("fileId", fileID).
			SetHeader("Content-Type", jsonContentType).
			Post(nextPath)
		return result(OpNextSection, resp, err)
	})
}
