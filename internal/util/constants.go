package util

const DateFormat = "2006-01-02"

// FallbackTip is returned when the tip corpus is empty.
const FallbackTip = "Love nature! 🌍"

const (
	MsgAlreadyCompleted = "You have already completed this task today!"
	MsgRetryLater       = "Something went wrong. Please try again."
)
