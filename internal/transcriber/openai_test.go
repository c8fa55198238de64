package transcriber

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/divyakumars/video-summarizer/internal/config"
	"github.com/divyakumars/video-summarizer/internal/logger"
)

func TestOpenAITranscribe(t *testing.T) {
	var gotModel, gotLanguage string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("invalid multipart body: %v", err)
		}
		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"  welcome to the show  "}`))
	}))
	defer ts.Close()

	audioPath := filepath.Join(t.TempDir(), "a.wav")
	if err := os.WriteFile(audioPath, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}

	tr := NewOpenAI("sk-test", ts.URL+"/v1", config.WhisperConfig{Language: "en"}, logger.NewNop())
	got, err := tr.Transcribe(context.Background(), audioPath)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if got != "welcome to the show" {
		t.Errorf("Transcribe() = %q", got)
	}
	if gotModel != "whisper-1" {
		t.Errorf("model = %q, want whisper-1", gotModel)
	}
	if gotLanguage != "en" {
		t.Errorf("language = %q, want en", gotLanguage)
	}
	if tr.Name() != "openai/whisper-1" {
		t.Errorf("Name() = %q", tr.Name())
	}
}

func TestNewSelectsBackend(t *testing.T) {
	cfg := &config.Config{Whisper: whisperConfig()}
	tr, err := New(cfg, &fakeExecutor{}, logger.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if tr.Name() != "whisper.cpp" {
		t.Errorf("Name() = %q, want whisper.cpp", tr.Name())
	}

	cfg.Whisper.Backend = "vosk"
	if _, err := New(cfg, &fakeExecutor{}, logger.NewNop()); err == nil {
		t.Error("New() should reject unknown backend")
	}
}
