package leakage

import "time"

// Warning is the structured payload handed to the UI-side notifier when a
// message is rejected. The engine fills it in; how (or whether) it is
// rendered belongs to the caller.
type Warning struct {
	Title       string
	Description string
	Kind        string
	Duration    time.Duration
}

const (
	warningTitle    = "Không thể gửi tin nhắn"
	warningKind     = "error"
	warningDuration = 5 * time.Second
)

// ValidateAndNotify screens text and, when it is rejected, invokes notify
// exactly once with a renderable warning before returning false. Accepted
// messages return true without touching notify. A nil notify only skips the
// callback; the verdict is unchanged.
func ValidateAndNotify(text string, notify func(Warning)) bool {
	res := Validate(text)
	if res.Valid {
		return true
	}
	if notify != nil {
		notify(Warning{
			Title:       warningTitle,
			Description: res.Message,
			Kind:        warningKind,
			Duration:    warningDuration,
		})
	}
	return false
}
