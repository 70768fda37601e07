package drill

import "github.com/abhisek/mathdrill/internal/session"

// finishedMsg is sent once the drill has been summarised and persisted.
type finishedMsg struct {
	Result *session.Result
	Err    error
}
