package domain

import "time"

// MaxSlots is the number of option column groups the questions table carries.
const MaxSlots = 5

// ResultCategory classifies how acceptable a given pick is.
type ResultCategory string

const (
	ResultSuperValid     ResultCategory = "super_valid"
	ResultValid          ResultCategory = "valid"
	ResultUnderstandable ResultCategory = "understandable"
	ResultNo             ResultCategory = "no"
	ResultHellNo         ResultCategory = "hell_no"
)

// ResultCategories lists every storable category, best to worst.
var ResultCategories = []ResultCategory{
	ResultSuperValid,
	ResultValid,
	ResultUnderstandable,
	ResultNo,
	ResultHellNo,
}

// Points returns the score delta for a category. The mapping is defined
// once here so clients and analytics cannot drift apart.
func (c ResultCategory) Points() int {
	switch c {
	case ResultSuperValid:
		return 15
	case ResultValid:
		return 10
	case ResultUnderstandable:
		return 5
	case ResultNo:
		return -10
	case ResultHellNo:
		return -20
	}
	return 0
}

// Valid reports whether the category is one of the five storable values.
func (c ResultCategory) Valid() bool {
	switch c {
	case ResultSuperValid, ResultValid, ResultUnderstandable, ResultNo, ResultHellNo:
		return true
	}
	return false
}

// Slot is one selectable option within a question: a Pokémon name, the
// dialogue shown after picking it, and how the pick is judged.
type Slot struct {
	Name       string         `json:"name"`
	ImageURL   string         `json:"imageUrl,omitempty"`
	Dialogue   string         `json:"dialogue"`
	ResultType ResultCategory `json:"resultType"`
}

// Question is a quiz question with 2 to 5 populated slots. Questions are
// seeded in bulk and immutable afterwards.
type Question struct {
	ID           int       `json:"id"`
	CategoryName string    `json:"category_name"`
	PokemonCount int       `json:"pokemon_count"`
	Slots        []Slot    `json:"slots"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// QuestionSummary is the slotless view returned by the question list.
type QuestionSummary struct {
	ID           int    `json:"id"`
	CategoryName string `json:"category_name"`
	PokemonCount int    `json:"pokemon_count"`
}

// Summary strips the slot payload from a question.
func (q Question) Summary() QuestionSummary {
	return QuestionSummary{ID: q.ID, CategoryName: q.CategoryName, PokemonCount: q.PokemonCount}
}

// Stats are the six base stats reported by the species API.
type Stats struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"spAttack"`
	SpDefense int `json:"spDefense"`
	Speed     int `json:"speed"`
}

// Ability is a name plus its English effect text.
type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Form is an alternate visual form of a species.
type Form struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Species holds the display attributes fetched live from the upstream
// data API for one Pokémon.
type Species struct {
	Name                string   `json:"name"`
	ImageURL            string   `json:"imageUrl"`
	AlternativeImageURL string   `json:"alternativeImageUrl"`
	ExpandedImageURL    string   `json:"expandedImageUrl,omitempty"`
	OfficialArtworkURL  string   `json:"officialArtworkUrl,omitempty"`
	Stats               Stats    `json:"stats"`
	Ability             Ability  `json:"ability"`
	HiddenAbility       *Ability `json:"hiddenAbility,omitempty"`
	Forms               []Form   `json:"forms,omitempty"`
}

// EnrichedSlot joins a stored slot with live species data. When
// enrichment fails the species fields hold placeholders so the option
// layout never shifts.
type EnrichedSlot struct {
	Species
	OriginalName string         `json:"originalName"`
	Dialogue     string         `json:"dialogue"`
	ResultType   ResultCategory `json:"resultType"`
}

// EnrichedQuestion is the full payload for one question: exactly
// PokemonCount entries, in slot order.
type EnrichedQuestion struct {
	ID           int            `json:"id"`
	CategoryName string         `json:"categoryName"`
	PokemonCount int            `json:"pokemonCount"`
	Pokemon      []EnrichedSlot `json:"pokemon"`
}

// AnswerResult is the verdict for a submitted answer. Nothing is
// persisted server-side; the client folds Points into its running score.
type AnswerResult struct {
	ResultType      ResultCategory `json:"resultType"`
	Dialogue        string         `json:"dialogue"`
	SelectedPokemon string         `json:"selectedPokemon"`
}

// Comment is a visitor comment attached to one question and one of its
// option names. Deleted in cascade with the parent question.
type Comment struct {
	ID            int       `json:"id"`
	QuestionID    int       `json:"question_id"`
	PokemonName   string    `json:"pokemon_name"`
	CommenterName string    `json:"commenter_name"`
	CommentText   string    `json:"comment_text"`
	CreatedAt     time.Time `json:"created_at"`
}

// SeedReport summarizes a bulk reseed run.
type SeedReport struct {
	Inserted int      `json:"questionsInserted"`
	Verified int      `json:"questionsVerified"`
	Expected int      `json:"totalQuestions"`
	Warnings []string `json:"warnings,omitempty"`
}

// Complete reports whether every dataset row made it into the store.
func (r SeedReport) Complete() bool {
	return r.Verified == r.Expected
}
