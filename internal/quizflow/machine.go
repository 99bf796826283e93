// Package quizflow models the client's linear screen flow and running
// score. The server never sees this state; it exists so any embedding
// client (terminal UI, bot, web bridge) drives the quiz the same way.
package quizflow

import (
	"errors"
	"fmt"
	"time"

	"pokequiz-service/internal/domain"
)

// Screen is one of the client's display states.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenLoadFailed
	ScreenStart
	ScreenQuiz
	ScreenLoadingResults
	ScreenResults
	ScreenFullResults
)

func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenLoadFailed:
		return "load_failed"
	case ScreenStart:
		return "start"
	case ScreenQuiz:
		return "quiz"
	case ScreenLoadingResults:
		return "loading_results"
	case ScreenResults:
		return "results"
	case ScreenFullResults:
		return "full_results"
	}
	return "unknown"
}

// ResultsDelay is the presentational pause between the last answer and
// the results screen. It is not a network wait; the embedding client
// sleeps for this long and then calls ResultsReady.
const ResultsDelay = 3 * time.Second

// ErrInvalidTransition reports an event that is not legal from the
// current screen.
var ErrInvalidTransition = errors.New("invalid screen transition")

// Answer is one recorded verdict in the running score.
type Answer struct {
	QuestionID      int
	SelectedPokemon string
	ResultType      domain.ResultCategory
	Dialogue        string
	Points          int
}

// Machine is the screen-state machine plus the session-scoped answer
// log. It is not safe for concurrent use; a client session owns one.
type Machine struct {
	screen    Screen
	questions []domain.QuestionSummary
	index     int
	answers   []Answer
	score     int
}

// New starts in the loading screen; Start is unreachable until the
// question list has arrived.
func New() *Machine {
	return &Machine{screen: ScreenLoading}
}

// Screen returns the current display state.
func (m *Machine) Screen() Screen {
	return m.screen
}

// QuestionsLoaded delivers the fetched question list. An empty list is
// a load failure: there is nothing to quiz on.
func (m *Machine) QuestionsLoaded(questions []domain.QuestionSummary) error {
	if m.screen != ScreenLoading {
		return transitionError(m.screen, "questions loaded")
	}
	if len(questions) == 0 {
		m.screen = ScreenLoadFailed
		return nil
	}
	m.questions = questions
	m.screen = ScreenStart
	return nil
}

// LoadFailed routes to the terminal error display offering retry.
func (m *Machine) LoadFailed() error {
	if m.screen != ScreenLoading {
		return transitionError(m.screen, "load failed")
	}
	m.screen = ScreenLoadFailed
	return nil
}

// Retry re-enters the same loading attempt.
func (m *Machine) Retry() error {
	if m.screen != ScreenLoadFailed {
		return transitionError(m.screen, "retry")
	}
	m.screen = ScreenLoading
	return nil
}

// Start begins the quiz from the first question with a clean score.
func (m *Machine) Start() error {
	if m.screen != ScreenStart {
		return transitionError(m.screen, "start")
	}
	m.index = 0
	m.answers = nil
	m.score = 0
	m.screen = ScreenQuiz
	return nil
}

// CurrentQuestion returns the question being asked, if any.
func (m *Machine) CurrentQuestion() (domain.QuestionSummary, bool) {
	if m.screen != ScreenQuiz || m.index >= len(m.questions) {
		return domain.QuestionSummary{}, false
	}
	return m.questions[m.index], true
}

// RecordAnswer folds a submit verdict into the running score. A failed
// submission is simply not recorded; the client stays on the question.
func (m *Machine) RecordAnswer(result domain.AnswerResult) error {
	if m.screen != ScreenQuiz {
		return transitionError(m.screen, "record answer")
	}
	question, ok := m.CurrentQuestion()
	if !ok {
		return fmt.Errorf("record answer: no current question")
	}
	points := result.ResultType.Points()
	m.answers = append(m.answers, Answer{
		QuestionID:      question.ID,
		SelectedPokemon: result.SelectedPokemon,
		ResultType:      result.ResultType,
		Dialogue:        result.Dialogue,
		Points:          points,
	})
	m.score += points
	return nil
}

// Advance moves to the next question, or into the results delay when
// the answered question was the last one.
func (m *Machine) Advance() error {
	if m.screen != ScreenQuiz {
		return transitionError(m.screen, "advance")
	}
	if m.index < len(m.questions)-1 {
		m.index++
		return nil
	}
	m.screen = ScreenLoadingResults
	return nil
}

// ResultsReady fires after ResultsDelay has elapsed.
func (m *Machine) ResultsReady() error {
	if m.screen != ScreenLoadingResults {
		return transitionError(m.screen, "results ready")
	}
	m.screen = ScreenResults
	return nil
}

// ViewFullResults switches to the per-answer breakdown.
func (m *Machine) ViewFullResults() error {
	if m.screen != ScreenResults {
		return transitionError(m.screen, "view full results")
	}
	m.screen = ScreenFullResults
	return nil
}

// BackToResults returns from the breakdown to the summary.
func (m *Machine) BackToResults() error {
	if m.screen != ScreenFullResults {
		return transitionError(m.screen, "back to results")
	}
	m.screen = ScreenResults
	return nil
}

// Reset returns to the start screen, discarding the session's answers.
func (m *Machine) Reset() error {
	if m.screen != ScreenResults && m.screen != ScreenFullResults {
		return transitionError(m.screen, "reset")
	}
	m.index = 0
	m.answers = nil
	m.score = 0
	m.screen = ScreenStart
	return nil
}

// Score is the running point total.
func (m *Machine) Score() int {
	return m.score
}

// Answers returns the recorded answers in submission order.
func (m *Machine) Answers() []Answer {
	out := make([]Answer, len(m.answers))
	copy(out, m.answers)
	return out
}

// Percentage normalizes the score into 0..100 against the best case
// (every answer super_valid) and the worst (every answer hell_no).
func (m *Machine) Percentage() float64 {
	n := len(m.questions)
	if n == 0 {
		return 0
	}
	max := n * domain.ResultSuperValid.Points()
	min := n * domain.ResultHellNo.Points()
	return float64(m.score-min) / float64(max-min) * 100
}

func transitionError(from Screen, event string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, from)
}
