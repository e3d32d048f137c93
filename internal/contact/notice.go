package contact

import "fmt"

// NoticeKind distinguishes success from failure notices.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the message shown to the visitor after a submission.
type Notice struct {
	Kind  NoticeKind `json:"kind"`
	Title string     `json:"title"`
	Body  string     `json:"body"`
}

// SuccessNotice confirms a delivered message.
func SuccessNotice() Notice {
	return Notice{
		Kind:  NoticeSuccess,
		Title: "Message sent successfully!",
		Body:  "We'll get back to you within 24 hours.",
	}
}

// FailureNotice asks the visitor to retry or write to fallbackEmail.
func FailureNotice(fallbackEmail string) Notice {
	return Notice{
		Kind:  NoticeError,
		Title: "Failed to send message",
		Body:  fmt.Sprintf("Please try again or email us directly at %s.", fallbackEmail),
	}
}

// ValidationNotice lists what the visitor needs to fix.
func ValidationNotice() Notice {
	return Notice{
		Kind:  NoticeError,
		Title: "Please check the form",
		Body:  "Name, a valid email address and a message are required.",
	}
}

// BusyNotice is shown when a submission is already being sent.
func BusyNotice() Notice {
	return Notice{
		Kind:  NoticeError,
		Title: "Already sending",
		Body:  "Your previous message is still being sent. Please wait a moment.",
	}
}
