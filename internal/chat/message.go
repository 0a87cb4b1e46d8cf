// Package chat holds the message-side types of the translate action.
package chat

// Message is the slice of a chat message the translation feature needs:
// who sent it, who is reading it, and the text body.
type Message struct {
	Sender      string
	CurrentUser string
	Body        string
}

// CanTranslate reports whether the translate action should be offered for m.
// Messages written by the current user are never offered; the body plays no
// part in the decision.
func CanTranslate(m Message) bool {
	return m.Sender != m.CurrentUser
}
