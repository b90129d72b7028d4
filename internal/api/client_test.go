package api

import (
	"errors"
	"testing"
	"time"

	apierrors "github.com/diogo/docchat/internal/errors"
	"github.com/diogo/docchat/internal/models"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient("")
	if !errors.Is(err, apierrors.ErrNoAPIKey) {
		t.Errorf("Expected ErrNoAPIKey, got %v", err)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := newTestClient(t, NewMockHttpClient(nil, 200))

	if client.Model() != models.DefaultModel {
		t.Errorf("Expected default model %q, got %q", models.DefaultModel, client.Model())
	}
	if client.Timeout() != DefaultTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultTimeout, client.Timeout())
	}
}

func TestNewClient_Options(t *testing.T) {
	client, err := NewClient("test-key",
		WithHTTPClient(NewMockHttpClient(nil, 200)),
		WithModel("gemini-2.5-flash"),
		WithTimeout(5*time.Second),
	)
	if err != nil {
		t.Fatalf("NewClient() returned error: %v", err)
	}

	if client.Model() != "gemini-2.5-flash" {
		t.Errorf("Expected model 'gemini-2.5-flash', got %q", client.Model())
	}
	if client.Timeout() != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", client.Timeout())
	}
}

func TestClient_SetModel(t *testing.T) {
	client := newTestClient(t, NewMockHttpClient(nil, 200))

	client.SetModel("gemini-2.5-flash")
	if client.Model() != "gemini-2.5-flash" {
		t.Errorf("SetModel did not take effect, got %q", client.Model())
	}
}

func TestClient_Close(t *testing.T) {
	client := newTestClient(t, NewMockHttpClient(nil, 200))

	if client.IsClosed() {
		t.Error("new client should not be closed")
	}

	client.Close()
	client.Close() // idempotent

	if !client.IsClosed() {
		t.Error("client should be closed after Close()")
	}

	if _, err := client.GenerateContent("Hello"); err == nil {
		t.Error("GenerateContent on closed client should fail")
	}
}
