package translator

import (
	"net/http"
	"time"
)

const (
	// LangUndetermined is the sentinel the service returns when it cannot
	// identify the language of an uploaded file.
	LangUndetermined = "und"

	// StatusReady marks a translation job whose result can be downloaded.
	StatusReady = "ready"
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// HTTPClient overrides the default client; tests inject the httptest one.
	HTTPClient *http.Client
}

// FileStatus is the state of an uploaded file. DetectedLang stays empty until
// the service has finished analyzing the file.
type FileStatus struct {
	ID           string `json:"id"`
	DetectedLang string `json:"detected_lang"`
}

// JobStatus is the state of a translation job.
type JobStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
