package quizflow

import (
	"errors"
	"testing"

	"pokequiz-service/internal/domain"
)

func twoQuestions() []domain.QuestionSummary {
	return []domain.QuestionSummary{
		{ID: 1, CategoryName: "Starter energy", PokemonCount: 2},
		{ID: 2, CategoryName: "Legendary landlords", PokemonCount: 3},
	}
}

func TestFullFlow(t *testing.T) {
	m := New()
	if m.Screen() != ScreenLoading {
		t.Fatalf("expected loading, got %s", m.Screen())
	}

	if err := m.QuestionsLoaded(twoQuestions()); err != nil {
		t.Fatalf("questions loaded: %v", err)
	}
	if m.Screen() != ScreenStart {
		t.Fatalf("expected start, got %s", m.Screen())
	}

	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	q, ok := m.CurrentQuestion()
	if !ok || q.ID != 1 {
		t.Fatalf("expected question 1, got %+v ok=%v", q, ok)
	}

	// pikachu judged valid: +10
	if err := m.RecordAnswer(domain.AnswerResult{
		ResultType:      domain.ResultValid,
		Dialogue:        "Zap!",
		SelectedPokemon: "pikachu",
	}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if m.Score() != 10 {
		t.Fatalf("expected score 10, got %d", m.Score())
	}

	if err := m.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	q, _ = m.CurrentQuestion()
	if q.ID != 2 {
		t.Fatalf("expected question 2, got %+v", q)
	}

	if err := m.RecordAnswer(domain.AnswerResult{
		ResultType:      domain.ResultHellNo,
		Dialogue:        "Absolutely not.",
		SelectedPokemon: "magikarp",
	}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if m.Score() != -10 {
		t.Fatalf("expected score -10, got %d", m.Score())
	}

	if err := m.Advance(); err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if m.Screen() != ScreenLoadingResults {
		t.Fatalf("expected loading_results, got %s", m.Screen())
	}
	if err := m.ResultsReady(); err != nil {
		t.Fatalf("results ready: %v", err)
	}
	if m.Screen() != ScreenResults {
		t.Fatalf("expected results, got %s", m.Screen())
	}

	answers := m.Answers()
	if len(answers) != 2 || answers[0].Points != 10 || answers[1].Points != -20 {
		t.Fatalf("unexpected answer log: %+v", answers)
	}

	if err := m.ViewFullResults(); err != nil {
		t.Fatalf("view full results: %v", err)
	}
	if err := m.BackToResults(); err != nil {
		t.Fatalf("back to results: %v", err)
	}
}

func TestEmptyQuestionListIsLoadFailure(t *testing.T) {
	m := New()
	if err := m.QuestionsLoaded(nil); err != nil {
		t.Fatalf("questions loaded: %v", err)
	}
	if m.Screen() != ScreenLoadFailed {
		t.Fatalf("expected load_failed, got %s", m.Screen())
	}
}

func TestRetryAfterLoadFailure(t *testing.T) {
	m := New()
	if err := m.LoadFailed(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := m.Retry(); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if m.Screen() != ScreenLoading {
		t.Fatalf("expected loading after retry, got %s", m.Screen())
	}
	if err := m.QuestionsLoaded(twoQuestions()); err != nil {
		t.Fatalf("questions loaded after retry: %v", err)
	}
	if m.Screen() != ScreenStart {
		t.Fatalf("expected start, got %s", m.Screen())
	}
}

func TestInvalidTransitions(t *testing.T) {
	m := New()

	cases := []struct {
		name string
		call func() error
	}{
		{"start before load", m.Start},
		{"advance before load", m.Advance},
		{"retry before failure", m.Retry},
		{"results ready before quiz", m.ResultsReady},
		{"view full results early", m.ViewFullResults},
		{"back to results early", m.BackToResults},
		{"reset before results", m.Reset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected invalid transition, got %v", err)
			}
		})
	}
	// The machine must be unharmed by rejected events.
	if m.Screen() != ScreenLoading {
		t.Fatalf("screen drifted to %s", m.Screen())
	}
}

func TestRecordAnswerRequiresQuizScreen(t *testing.T) {
	m := New()
	if err := m.QuestionsLoaded(twoQuestions()); err != nil {
		t.Fatalf("questions loaded: %v", err)
	}
	err := m.RecordAnswer(domain.AnswerResult{ResultType: domain.ResultValid})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	if m.Score() != 0 {
		t.Fatalf("rejected answer changed the score: %d", m.Score())
	}
}

func TestResetClearsSession(t *testing.T) {
	m := newFinishedMachine(t)

	if err := m.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if m.Screen() != ScreenStart {
		t.Fatalf("expected start after reset, got %s", m.Screen())
	}
	if m.Score() != 0 || len(m.Answers()) != 0 {
		t.Fatalf("reset kept session data: score=%d answers=%d", m.Score(), len(m.Answers()))
	}

	// A fresh run begins from the first question.
	if err := m.Start(); err != nil {
		t.Fatalf("start after reset: %v", err)
	}
	q, ok := m.CurrentQuestion()
	if !ok || q.ID != 1 {
		t.Fatalf("expected question 1, got %+v", q)
	}
}

func TestPercentage(t *testing.T) {
	m := newFinishedMachine(t) // two questions: +15 and -20, score -5

	// With 2 questions the range is [-40, 30].
	got := m.Percentage()
	want := float64(-5-(-40)) / float64(30-(-40)) * 100
	if got != want {
		t.Fatalf("expected %.2f%%, got %.2f%%", want, got)
	}
	if got < 0 || got > 100 {
		t.Fatalf("percentage out of range: %.2f", got)
	}
}

func TestPercentageWithoutQuestions(t *testing.T) {
	if got := New().Percentage(); got != 0 {
		t.Fatalf("expected 0 for empty machine, got %.2f", got)
	}
}

// newFinishedMachine plays a two-question session through to the results
// screen: one super_valid (+15), one hell_no (-20).
func newFinishedMachine(t *testing.T) *Machine {
	t.Helper()
	m := New()
	if err := m.QuestionsLoaded(twoQuestions()); err != nil {
		t.Fatalf("questions loaded: %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	steps := []domain.AnswerResult{
		{ResultType: domain.ResultSuperValid, SelectedPokemon: "shaymin"},
		{ResultType: domain.ResultHellNo, SelectedPokemon: "magikarp"},
	}
	for _, step := range steps {
		if err := m.RecordAnswer(step); err != nil {
			t.Fatalf("record: %v", err)
		}
		if err := m.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	if err := m.ResultsReady(); err != nil {
		t.Fatalf("results ready: %v", err)
	}
	return m
}
