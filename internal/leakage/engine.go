// Package leakage screens marketplace chat messages for attempts to move a
// deal off-platform: telephone numbers written in digits, grouped digits, or
// Vietnamese number words, URLs and bare domains, and the names of known
// social/messaging platforms.
//
// The engine is a pure function over its input. Every lookup table is built
// at package init and never mutated afterwards, so all entry points are safe
// for concurrent use without locking.
package leakage

import "strings"

// Reason tags why a message was rejected. The zero value means the message
// was accepted.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonSocialMedia Reason = "social_media"
	ReasonLink        Reason = "link"
	ReasonPhoneDigits Reason = "phone_digits"
	ReasonPhoneWords  Reason = "phone_words"
)

// Result is the outcome of screening one message. Message carries the
// user-facing explanation and is empty for accepted messages.
type Result struct {
	Valid   bool   `json:"valid"`
	Reason  Reason `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// reasonMessages maps each rejection reason to the explanation shown to the
// sender.
var reasonMessages = map[Reason]string{
	ReasonSocialMedia: "Tin nhắn chứa tên mạng xã hội hoặc ứng dụng nhắn tin bên ngoài. Vui lòng trao đổi trực tiếp trên nền tảng.",
	ReasonLink:        "Tin nhắn chứa đường dẫn ra ngoài nền tảng. Vui lòng không gửi liên kết trong cuộc trò chuyện.",
	ReasonPhoneDigits: "Tin nhắn chứa số điện thoại. Vui lòng trao đổi trực tiếp trên nền tảng.",
	ReasonPhoneWords:  "Tin nhắn chứa số điện thoại viết bằng chữ. Vui lòng trao đổi trực tiếp trên nền tảng.",
}

// Validate classifies a message and never panics; blank or empty input is
// always accepted with no reason.
//
// Detector order is fixed and load-bearing, not incidental: keywords run
// before anything consults the allow list, because some allow-listed tokens
// are deliberate near-homographs of blocked aliases ("alo" is allowed while
// "zalo" is not) and the stricter rule must win. Links outrank phone
// detection so a URL with digits in it reports as a link.
func Validate(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Valid: true}
	}

	switch {
	case hasBlockedKeyword(text):
		return reject(ReasonSocialMedia)
	case hasLink(text):
		return reject(ReasonLink)
	case hasDigitPhone(text):
		return reject(ReasonPhoneDigits)
	case hasWordedPhone(text):
		return reject(ReasonPhoneWords)
	}

	// Final affirmative pass. Allow-listed greetings and everything else
	// both come out valid today; the branch exists so detectors added below
	// it later inherit the precedence above without re-deriving it.
	if isAllowListed(text) {
		return Result{Valid: true}
	}
	return Result{Valid: true}
}

func reject(r Reason) Result {
	return Result{Valid: false, Reason: r, Message: reasonMessages[r]}
}
