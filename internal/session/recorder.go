package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/abhisek/mathdrill/internal/pipeline"
	"github.com/abhisek/mathdrill/internal/question"
	"github.com/abhisek/mathdrill/internal/store"
)

// recorder turns resolved steps into store records. Elapsed time is
// measured per attempt, from the moment the prompt was shown.
type recorder struct {
	clock   clockwork.Clock
	started time.Time
	records []store.Record
}

func newRecorder(clock clockwork.Clock) *recorder {
	return &recorder{clock: clock}
}

func (r *recorder) Hooks() pipeline.Hooks {
	return pipeline.Hooks{OnStart: r.start, OnEnd: r.end}
}

func (r *recorder) start(question.Question) {
	r.started = r.clock.Now()
}

func (r *recorder) end(q question.Question, correct bool) {
	now := r.clock.Now()
	r.records = append(r.records, store.Record{
		ID:              uuid.NewString(),
		QuestionType:    string(q.Kind()),
		FormattedBody:   q.Prompt(),
		IsAnswerRight:   correct,
		TimeMillis:      now.Sub(r.started).Milliseconds(),
		CreatedAtMillis: now.UnixMilli(),
	})
}
