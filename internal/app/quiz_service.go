package app

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"pokequiz-service/internal/domain"
	"pokequiz-service/internal/pokeapi"
)

// enrichConcurrency bounds the upstream fan-out for a single question fetch.
const enrichConcurrency = 3

// QuestionRepository loads question content (from cache/backing store).
type QuestionRepository interface {
	ListQuestions(ctx context.Context) ([]domain.Question, error)
	GetQuestion(ctx context.Context, id int) (domain.Question, error)
}

// SpeciesEnricher fetches live display attributes for a Pokémon name.
// A nil result with nil error means "no enrichment available".
type SpeciesEnricher interface {
	Fetch(ctx context.Context, name string) (*domain.Species, error)
}

// QuizService contains the quiz read and answer-submission use cases.
type QuizService struct {
	questions QuestionRepository
	enricher  SpeciesEnricher
}

func NewQuizService(questions QuestionRepository, enricher SpeciesEnricher) *QuizService {
	return &QuizService{questions: questions, enricher: enricher}
}

// ListQuestions returns slotless summaries of every question, ordered by id.
func (s *QuizService) ListQuestions(ctx context.Context) ([]domain.QuestionSummary, error) {
	questions, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.QuestionSummary, 0, len(questions))
	for _, q := range questions {
		summaries = append(summaries, q.Summary())
	}
	return summaries, nil
}

// GetQuestion returns the question enriched with live species data. Each
// slot is fetched independently; a failed fetch degrades that slot to
// placeholder attributes, so the result always carries exactly
// PokemonCount entries in slot order.
func (s *QuizService) GetQuestion(ctx context.Context, id int) (domain.EnrichedQuestion, error) {
	question, err := s.questions.GetQuestion(ctx, id)
	if err != nil {
		return domain.EnrichedQuestion{}, err
	}

	enriched := make([]domain.EnrichedSlot, question.PokemonCount)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i := 0; i < question.PokemonCount && i < len(question.Slots); i++ {
		i := i
		slot := question.Slots[i]
		g.Go(func() error {
			enriched[i] = s.enrichSlot(gctx, slot)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.EnrichedQuestion{}, err
	}

	// Declared count can exceed populated slots only on corrupt rows;
	// fill the tail with placeholders to keep the layout stable.
	for i := len(question.Slots); i < question.PokemonCount; i++ {
		enriched[i] = placeholderSlot(domain.Slot{})
	}

	return domain.EnrichedQuestion{
		ID:           question.ID,
		CategoryName: question.CategoryName,
		PokemonCount: question.PokemonCount,
		Pokemon:      enriched,
	}, nil
}

func (s *QuizService) enrichSlot(ctx context.Context, slot domain.Slot) domain.EnrichedSlot {
	name := strings.TrimSpace(slot.Name)
	if name == "" {
		return placeholderSlot(slot)
	}

	species, err := s.enricher.Fetch(ctx, name)
	if err != nil {
		log.Printf("enrich %q: %v", name, err)
	}
	if species == nil {
		return placeholderSlot(slot)
	}
	return domain.EnrichedSlot{
		Species:      *species,
		OriginalName: name,
		Dialogue:     slot.Dialogue,
		ResultType:   slot.ResultType,
	}
}

// placeholderSlot keeps the option layout intact when upstream data is
// unavailable: zeroed stats, unknown ability, no images.
func placeholderSlot(slot domain.Slot) domain.EnrichedSlot {
	name := strings.TrimSpace(slot.Name)
	resultType := slot.ResultType
	if resultType == "" {
		resultType = domain.ResultNo
	}
	return domain.EnrichedSlot{
		Species: domain.Species{
			Name:    name,
			Ability: domain.Ability{Name: "Unknown", Description: "Data not available"},
		},
		OriginalName: name,
		Dialogue:     slot.Dialogue,
		ResultType:   resultType,
	}
}

// SubmitAnswer resolves selectedName against the question's stored slots
// and returns the stored verdict. Nothing is persisted; the call is a
// pure lookup.
func (s *QuizService) SubmitAnswer(ctx context.Context, questionID int, selectedName string) (domain.AnswerResult, error) {
	question, err := s.questions.GetQuestion(ctx, questionID)
	if err != nil {
		return domain.AnswerResult{}, err
	}

	trimmed := strings.TrimSpace(selectedName)
	slot, ok := matchSlot(question, selectedName, trimmed)
	if !ok {
		names := make([]string, 0, len(question.Slots))
		for _, s := range question.Slots {
			names = append(names, s.Name)
		}
		log.Printf("submit: %q matched no slot of question %d, stored names: %v", selectedName, questionID, names)
		return domain.AnswerResult{}, domain.ErrPokemonNotFound
	}

	return domain.AnswerResult{
		ResultType:      slot.ResultType,
		Dialogue:        slot.Dialogue,
		SelectedPokemon: trimmed,
	}, nil
}

// matchSlot tries three strategies per slot, first match wins:
// exact case-insensitive on trimmed names, exact after stripping a
// form suffix from both sides, then exact case-insensitive on the raw
// untrimmed input. The last rule duplicates the first once inputs are
// trimmed; it is kept to preserve the historical matching contract.
func matchSlot(question domain.Question, raw, trimmed string) (domain.Slot, bool) {
	selectedLower := strings.ToLower(trimmed)
	selectedStripped := stripFormSuffix(selectedLower)
	rawLower := strings.ToLower(raw)

	for _, slot := range question.Slots {
		if slot.Name == "" {
			continue
		}
		storedLower := strings.ToLower(strings.TrimSpace(slot.Name))
		if storedLower == selectedLower {
			return slot, true
		}
		if stripFormSuffix(storedLower) == selectedStripped {
			return slot, true
		}
		if strings.ToLower(slot.Name) == rawLower {
			return slot, true
		}
	}
	return domain.Slot{}, false
}

// stripFormSuffix removes one known form-suffix variant, if present.
func stripFormSuffix(name string) string {
	for _, suffix := range pokeapi.FormSuffixes() {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}
