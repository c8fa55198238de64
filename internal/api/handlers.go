package api

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/divyakumars/video-summarizer/internal/audio"
	"github.com/divyakumars/video-summarizer/internal/logger"
	"github.com/divyakumars/video-summarizer/internal/pipeline"
)

//go:embed templates/index.html
var templates embed.FS

// multipart parts above this size spill to disk
const maxMemory = 32 << 20

type handler struct {
	pipeline pipeline.Pipeline
	logger   logger.Logger
	opts     Options
	page     *template.Template
}

func newHandler(p pipeline.Pipeline, log logger.Logger, opts Options) *handler {
	return &handler{
		pipeline: p,
		logger:   log,
		opts:     opts,
		page:     template.Must(template.ParseFS(templates, "templates/index.html")),
	}
}

type summaryResponse struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
	ElapsedMS  int64  `json:"elapsed_ms"`
}

type pageData struct {
	Accept     string
	Transcript string
	Summary    string
	Error      string
	Stage      string
}

// requestError is an error with the HTTP status it should be reported as.
type requestError struct {
	status int
	stage  string
	msg    string
}

func (e *requestError) Error() string { return e.msg }

// Health reports liveness and which backends are configured.
func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]interface{}{
		"status":      "ok",
		"transcriber": h.opts.Transcriber,
		"generator":   h.opts.Generator,
		"active":      h.pipeline.Active(),
	}, http.StatusOK)
}

// Index renders the upload page.
func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageData{}, http.StatusOK)
}

// SummarizeForm handles the upload page's form post.
func (h *handler) SummarizeForm(w http.ResponseWriter, r *http.Request) {
	_, res, err := h.summarize(w, r)
	if err != nil {
		var re *requestError
		errors.As(err, &re)
		h.render(w, r, pageData{Error: re.msg, Stage: re.stage}, re.status)
		return
	}
	h.render(w, r, pageData{Transcript: res.Transcript, Summary: res.Summary}, http.StatusOK)
}

// SummarizeJSON accepts a multipart "video" field and returns transcript and summary.
func (h *handler) SummarizeJSON(w http.ResponseWriter, r *http.Request) {
	up, res, err := h.summarize(w, r)
	if err != nil {
		var re *requestError
		errors.As(err, &re)
		jsonError(w, re.msg, re.stage, re.status)
		return
	}

	jsonResponse(w, summaryResponse{
		ID:         up.id,
		Filename:   up.filename,
		Transcript: res.Transcript,
		Summary:    res.Summary,
		ElapsedMS:  res.Elapsed.Milliseconds(),
	}, http.StatusOK)
}

type upload struct {
	id       string
	filename string
	path     string
}

// summarize stores the upload, runs the pipeline and removes the upload.
// Every returned error is a *requestError.
func (h *handler) summarize(w http.ResponseWriter, r *http.Request) (*upload, *pipeline.Result, error) {
	up, err := h.receive(w, r)
	if err != nil {
		return nil, nil, err
	}
	defer os.Remove(up.path)

	res, err := h.pipeline.Process(r.Context(), up.path)
	if err != nil {
		h.logger.Error(r.Context(), "Failed to summarize %s (%s): %v", up.filename, up.id, err)
		return nil, nil, classify(err)
	}
	return up, res, nil
}

func (h *handler) receive(w http.ResponseWriter, r *http.Request) (*upload, error) {
	if h.opts.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, uploadFailure(err, "invalid multipart form")
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("video")
	if err != nil {
		return nil, &requestError{status: http.StatusBadRequest, msg: "missing video file"}
	}
	defer file.Close()

	if !audio.IsVideoFile(header.Filename) {
		return nil, &requestError{
			status: http.StatusUnsupportedMediaType,
			msg:    fmt.Sprintf("unsupported file type %q", filepath.Ext(header.Filename)),
		}
	}

	if err := os.MkdirAll(h.opts.TempDir, 0755); err != nil {
		return nil, &requestError{status: http.StatusInternalServerError, msg: "failed to prepare upload"}
	}

	up := &upload{
		id:       uuid.NewString(),
		filename: filepath.Base(header.Filename),
	}
	up.path = filepath.Join(h.opts.TempDir, up.id+strings.ToLower(filepath.Ext(header.Filename)))

	out, err := os.Create(up.path)
	if err != nil {
		return nil, &requestError{status: http.StatusInternalServerError, msg: "failed to store upload"}
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		os.Remove(up.path)
		return nil, uploadFailure(err, "failed to store upload")
	}
	if err := out.Close(); err != nil {
		os.Remove(up.path)
		return nil, &requestError{status: http.StatusInternalServerError, msg: "failed to store upload"}
	}

	h.logger.Info(r.Context(), "Received upload %s as %s", up.filename, up.id)
	return up, nil
}

func uploadFailure(err error, msg string) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &requestError{
			status: http.StatusRequestEntityTooLarge,
			msg:    fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit),
		}
	}
	return &requestError{status: http.StatusBadRequest, msg: msg}
}

// classify maps a pipeline failure to an HTTP status, keeping the cause's message.
func classify(err error) error {
	var se *pipeline.StageError
	if !errors.As(err, &se) {
		return &requestError{status: http.StatusServiceUnavailable, msg: err.Error()}
	}

	re := &requestError{stage: string(se.Stage), msg: se.Err.Error()}
	switch se.Stage {
	case pipeline.StageTranscription, pipeline.StageSummarization:
		re.status = http.StatusBadGateway
	default:
		re.status = http.StatusInternalServerError
	}
	return re
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, data pageData, status int) {
	data.Accept = strings.Join(audio.SupportedExtensions(), ",")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.page.Execute(w, data); err != nil {
		h.logger.Error(r.Context(), "Failed to render page: %v", err)
	}
}
