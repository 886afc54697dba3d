package client_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	client "github.com/miracles123-max/echo-tutor/client"
)

const maxUploadBytes = 1 << 20

// fakeBackend imitates the tutor service: uploads open a session, sessions
// walk through a fixed list of sections.
type fakeBackend struct {
	mu       sync.Mutex
	sessions map[string]int // fileId -> current section
	sections []client.Section
	nextID   int
}

func newFakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	fb := &fakeBackend{
		sessions: map[string]int{},
		sections: []client.Section{
			{
				PronunciationTips: "Keep the first tone level.",
				Questions:         []client.Question{{Question: "Which tone is mā?", Options: []string{"1", "2", "3", "4"}, CorrectAnswer: "1"}},
				AudioURL:          "/audio/s0.mp3",
			},
			{
				PronunciationTips: "The third tone dips.",
				Questions:         []client.Question{{Question: "Which tone is mǎ?", Options: []string{"1", "2", "3", "4"}, CorrectAnswer: "3"}},
				AudioURL:          "/audio/s1.mp3",
			},
		},
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/upload", fb.upload).Methods(http.MethodPost)
	api.HandleFunc("/session/{fileId}/current", fb.current).Methods(http.MethodGet)
	api.HandleFunc("/session/{fileId}/answer", fb.answer).Methods(http.MethodPost)
	api.HandleFunc("/session/{fileId}/next", fb.next).Methods(http.MethodPost)
	r.PathPrefix("/audio/").Handler(http.StripPrefix("/audio/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3" + r.URL.Path))
	})))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func detail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

func (fb *fakeBackend) upload(w http.ResponseWriter, r *http.Request) {
	f, hdr, err := r.FormFile("file")
	if err != nil {
		detail(w, http.StatusUnprocessableEntity, "field required")
		return
	}
	defer func() { _ = f.Close() }()
	content, _ := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if len(content) > maxUploadBytes {
		detail(w, http.StatusBadRequest, "File too large")
		return
	}

	var ft client.FileType
	switch strings.ToLower(filepath.Ext(hdr.Filename)) {
	case ".jpg", ".jpeg", ".png", ".bmp":
		ft = client.FileTypeImage
	case ".txt", ".md":
		ft = client.FileTypeDocument
	default:
		detail(w, http.StatusBadRequest, "Unsupported file type")
		return
	}

	fb.mu.Lock()
	fb.nextID++
	id := fmt.Sprintf("file-%d", fb.nextID)
	fb.sessions[id] = 0
	fb.mu.Unlock()

	writeJSON(w, http.StatusOK, client.UploadResult{FileID: id, FileType: ft, Message: "File uploaded and processed successfully"})
}

func (fb *fakeBackend) section(w http.ResponseWriter, r *http.Request) (client.Section, bool) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	idx, ok := fb.sessions[mux.Vars(r)["fileId"]]
	if !ok {
		detail(w, http.StatusNotFound, "Session not found")
		return client.Section{}, false
	}
	if idx >= len(fb.sections) {
		detail(w, http.StatusBadRequest, "No content available")
		return client.Section{}, false
	}
	return fb.sections[idx], true
}

func (fb *fakeBackend) current(w http.ResponseWriter, r *http.Request) {
	if s, ok := fb.section(w, r); ok {
		writeJSON(w, http.StatusOK, s)
	}
}

func (fb *fakeBackend) answer(w http.ResponseWriter, r *http.Request) {
	s, ok := fb.section(w, r)
	if !ok {
		return
	}
	var sub struct {
		QuestionID string `json:"question_id"`
		Answer     string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	qi, err := strconv.Atoi(sub.QuestionID)
	if err != nil || qi < 0 || qi >= len(s.Questions) {
		detail(w, http.StatusUnprocessableEntity, "unknown question")
		return
	}
	q := s.Questions[qi]
	correct := sub.Answer == q.CorrectAnswer
	writeJSON(w, http.StatusOK, client.Feedback{
		IsCorrect:   correct,
		Explanation: fmt.Sprintf("The answer is %s.", q.CorrectAnswer),
		NextAction:  client.NextActionContinue,
	})
}

func (fb *fakeBackend) next(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	id := mux.Vars(r)["fileId"]
	idx, ok := fb.sessions[id]
	if !ok {
		detail(w, http.StatusNotFound, "Session not found")
		return
	}
	fb.sessions[id] = idx + 1
	writeJSON(w, http.StatusOK, client.Ack{Message: "Moved to next section"})
}
