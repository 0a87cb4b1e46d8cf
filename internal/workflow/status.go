package workflow

// Status is the UI-facing lifecycle of one translate action.
type Status int

const (
	StatusReady Status = iota
	StatusTranslating
	StatusTranslated
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusTranslating:
		return "translating"
	case StatusTranslated:
		return "translated"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
