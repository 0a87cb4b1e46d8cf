package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(Config{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
}

func TestClient_Upload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v2/files" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		user, _, ok := r.BasicAuth()
		if !ok || user != "test-key" {
			t.Errorf("expected basic auth with API key, got ok=%v user=%q", ok, user)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("expected file field: %v", err)
		}
		defer f.Close()

		json.NewEncoder(w).Encode(map[string]string{"id": "file-1"})
	})

	id, err := client.Upload(context.Background(), "bonjour")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "file-1" {
		t.Errorf("expected file id 'file-1', got %q", id)
	}
}

func TestClient_Upload_EmptyText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "file-2"})
	})

	id, err := client.Upload(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "file-2" {
		t.Errorf("expected file id 'file-2', got %q", id)
	}
}

func TestClient_Upload_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("Forbidden"))
	})

	_, err := client.Upload(context.Background(), "bonjour")
	if err == nil {
		t.Error("expected error for non-2xx status")
	}
}

func TestClient_Upload_MissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	})

	_, err := client.Upload(context.Background(), "bonjour")
	if err == nil {
		t.Error("expected error when response is missing the file id")
	}
}

func TestClient_FileInfo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/files/file-1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if user, _, _ := r.BasicAuth(); user != "test-key" {
			t.Errorf("expected basic auth with API key, got %q", user)
		}
		json.NewEncoder(w).Encode(FileStatus{ID: "file-1", DetectedLang: "fr"})
	})

	info, err := client.FileInfo(context.Background(), "file-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.DetectedLang != "fr" {
		t.Errorf("expected detected_lang 'fr', got %q", info.DetectedLang)
	}
}

func TestClient_FileInfo_NotYetDetected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(FileStatus{ID: "file-1"})
	})

	info, err := client.FileInfo(context.Background(), "file-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.DetectedLang != "" {
		t.Errorf("expected empty detected_lang, got %q", info.DetectedLang)
	}
}

func TestClient_StartTranslation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v2/translations" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var payload struct {
			FileID   string `json:"file_id"`
			MemoryID int    `json:"memory_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if payload.FileID != "file-1" {
			t.Errorf("expected file_id 'file-1', got %q", payload.FileID)
		}
		if payload.MemoryID != 23 {
			t.Errorf("expected memory_id 23, got %d", payload.MemoryID)
		}

		json.NewEncoder(w).Encode(map[string]string{"id": "tr-1"})
	})

	id, err := client.StartTranslation(context.Background(), "file-1", 23)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "tr-1" {
		t.Errorf("expected translation id 'tr-1', got %q", id)
	}
}

func TestClient_StartTranslation_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := client.StartTranslation(context.Background(), "file-1", 23)
	if err == nil {
		t.Error("expected error for non-2xx status")
	}
}

func TestClient_TranslationStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/translations/tr-1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(JobStatus{ID: "tr-1", Status: StatusReady})
	})

	status, err := client.TranslationStatus(context.Background(), "tr-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != StatusReady {
		t.Errorf("expected status %q, got %q", StatusReady, status.Status)
	}
}

func TestClient_Download(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/translations/tr-1/download" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte("Hello"))
	})

	text, err := client.Download(context.Background(), "tr-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Hello" {
		t.Errorf("expected 'Hello', got %q", text)
	}
}

func TestClient_Download_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Download(context.Background(), "tr-1")
	if err == nil {
		t.Error("expected error for non-2xx status")
	}
}
