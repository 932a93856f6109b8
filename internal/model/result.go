package model

type Path string

const (
	PathPrimary  Path = "primary"
	PathFallback Path = "fallback"
)

// RunResult is the terminal outcome of one invocation: which path produced
// the delivery, the message that went out, and the messenger's confirmation.
type RunResult struct {
	Path         Path
	Message      string
	Confirmation string
}
