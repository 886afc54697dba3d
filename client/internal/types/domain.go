package types

// ------------------------------
// Backend payloads
// ------------------------------

// FileType classifies an uploaded file as the backend sees it.
type FileType string

const (
	FileTypeDocument FileType = "document"
	FileTypeImage    FileType = "image"
)

// NextAction tells the caller what the tutor expects after an answer.
type NextAction string

const (
	NextActionContinue    NextAction = "continue"
	NextActionNextSection NextAction = "next_section"
	NextActionEnd         NextAction = "end"
)

// UploadResult is returned by POST /upload.
type UploadResult struct {
	FileID   string   `json:"file_id"`
	FileType FileType `json:"file_type"`
	Message  string   `json:"message"`
}

// Question is a single comprehension or pronunciation question.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
}

// Section is the current unit of content for a session. The backend answers
// with {"error": "..."} in Error when it cannot render the section.
type Section struct {
	PronunciationTips string     `json:"pronunciation_tips"`
	Questions         []Question `json:"questions"`
	AudioURL          string     `json:"audio_url,omitempty"`
	Error             string     `json:"error,omitempty"`
}

// Feedback is the verdict for a submitted answer.
type Feedback struct {
	IsCorrect   bool       `json:"is_correct"`
	Explanation string     `json:"explanation"`
	NextAction  NextAction `json:"next_action"`
}

// Ack is the plain acknowledgement returned when advancing a session.
type Ack struct {
	Message string `json:"message"`
}
