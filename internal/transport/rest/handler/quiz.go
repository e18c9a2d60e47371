package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"capsdiag/internal/service"
	"capsdiag/internal/transport/rest/middleware"
)

// QuizHandler handles the respondent endpoints
type QuizHandler struct {
	quizSvc *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc *service.QuizService) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc}
}

// AnswerRequest is the request body for answering a question.
// Answer is a pointer so a missing field is not read as 0.
type AnswerRequest struct {
	Answer *int `json:"answer"`
}

// QuestionView is a question as shown to respondents
type QuestionView struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Answer *int   `json:"answer"`
}

// StartSession handles POST /v1/sessions
func (h *QuizHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.quizSvc.StartSession(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Categories handles GET /v1/categories
func (h *QuizHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": h.quizSvc.Profiles()})
}

// Questions handles GET /v1/questions
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	session, err := h.quizSvc.Session(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	questions := h.quizSvc.Questions()
	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = QuestionView{Index: q.Index, Text: q.Text}
		if a, ok := session.Answers[q.Index]; ok {
			a := a
			views[i].Answer = &a
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": views})
}

// SetAnswer handles PUT /v1/answers/{index}
func (h *QuizHandler) SetAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question index")
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answer == nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	progress, err := h.quizSvc.SetAnswer(r.Context(), sessionID, index, *req.Answer)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}

// Progress handles GET /v1/progress
func (h *QuizHandler) Progress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.quizSvc.Progress(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// Result handles GET /v1/result
func (h *QuizHandler) Result(w http.ResponseWriter, r *http.Request) {
	detail, _ := strconv.ParseBool(r.URL.Query().Get("detail"))

	view, err := h.quizSvc.Result(r.Context(), middleware.GetSessionID(r.Context()), detail)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Reset handles DELETE /v1/answers
func (h *QuizHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.quizSvc.Reset(r.Context(), middleware.GetSessionID(r.Context())); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownQuestion), errors.Is(err, service.ErrInvalidAnswer):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrIncomplete):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
