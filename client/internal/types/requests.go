package types

import "io"

// ------------------------------
// Request Types
// ------------------------------

// QuestionID identifies a question within the current section.
type QuestionID string

// AnswerSubmission is the JSON body of POST /session/{fileId}/answer.
type AnswerSubmission struct {
	QuestionID QuestionID `json:"question_id"`
	Answer     Answer     `json:"answer"`
}

// UploadRequest is a single file sent as multipart field "file".
type UploadRequest struct {
	Filename string
	Content  io.Reader
}
