package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diogo/docchat/internal/api"
	"github.com/diogo/docchat/internal/config"
	"github.com/diogo/docchat/internal/models"
)

// withMockGenerator swaps the transport seam for the duration of the test
func withMockGenerator(t *testing.T, mock *api.MockGenerator) {
	t.Helper()
	orig := newGenerator
	newGenerator = func(cfg config.Config) (api.Generator, error) {
		return mock, nil
	}
	t.Cleanup(func() { newGenerator = orig })
}

func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
	modelFlag, outputFlag, fileFlag, docFlag = "", "", "", ""
	t.Cleanup(func() {
		modelFlag, outputFlag, fileFlag, docFlag = "", "", "", ""
	})
}

func TestRunQuery_EmptyPrompt(t *testing.T) {
	resetFlags(t)
	withMockGenerator(t, &api.MockGenerator{})

	if err := runQuery("   "); err == nil {
		t.Error("runQuery with blank input should fail")
	}
}

func TestRunQuery_WritesAnswerToOutputFile(t *testing.T) {
	resetFlags(t)
	mock := &api.MockGenerator{GenerateContentVal: "the answer"}
	withMockGenerator(t, mock)

	outputFlag = filepath.Join(t.TempDir(), "answer.md")

	if err := runQuery("What is Go?"); err != nil {
		t.Fatalf("runQuery() returned error: %v", err)
	}

	if got := mock.LastPrompt(); got != "What is Go?" {
		t.Errorf("Expected prompt 'What is Go?', got %q", got)
	}

	data, err := os.ReadFile(outputFlag)
	if err != nil {
		t.Fatalf("answer file not written: %v", err)
	}
	if string(data) != "the answer" {
		t.Errorf("Expected file content 'the answer', got %q", data)
	}
}

func TestRunQuery_GroundsPromptInDocument(t *testing.T) {
	resetFlags(t)
	mock := &api.MockGenerator{GenerateContentVal: "summary"}
	withMockGenerator(t, mock)

	docPath := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(docPath, []byte("Doc says X"), 0o644); err != nil {
		t.Fatal(err)
	}
	docFlag = docPath
	outputFlag = filepath.Join(t.TempDir(), "out.md")

	if err := runQuery("Summarize"); err != nil {
		t.Fatalf("runQuery() returned error: %v", err)
	}

	want := "Summarize" + models.ContextSeparator + "Doc says X"
	if got := mock.LastPrompt(); got != want {
		t.Errorf("Expected grounded prompt %q, got %q", want, got)
	}
}

func TestRunQuery_MissingDocument(t *testing.T) {
	resetFlags(t)
	withMockGenerator(t, &api.MockGenerator{})

	docFlag = filepath.Join(t.TempDir(), "missing.pdf")

	err := runQuery("Summarize")
	if err == nil {
		t.Fatal("runQuery with a missing document should fail")
	}
	if !strings.Contains(err.Error(), "failed to read document") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunQuery_TransportErrorPropagates(t *testing.T) {
	resetFlags(t)
	withMockGenerator(t, &api.MockGenerator{GenerateContentErr: errors.New("boom")})

	if err := runQuery("Hello"); err == nil {
		t.Error("transport failure should propagate from runQuery")
	}
}
