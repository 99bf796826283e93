// Package seed carries the fixed in-code question dataset the reseed
// operation loads into the store. Edit here, then run the seed command
// or hit the seed endpoint; the store itself is never edited in place.
package seed

import "pokequiz-service/internal/domain"

// Questions returns a fresh copy of the dataset so callers can't mutate
// the canonical set.
func Questions() []domain.Question {
	out := make([]domain.Question, len(dataset))
	copy(out, dataset)
	for i := range out {
		out[i].Slots = append([]domain.Slot(nil), out[i].Slots...)
	}
	return out
}

var dataset = []domain.Question{
	{
		CategoryName: "Pokemon you'd trust to watch your house",
		PokemonCount: 4,
		Slots: []domain.Slot{
			{Name: "arcanine", Dialogue: "Loyal, huge, and audibly terrifying to burglars.", ResultType: domain.ResultSuperValid},
			{Name: "snorlax", Dialogue: "Technically present. Technically.", ResultType: domain.ResultUnderstandable},
			{Name: "gengar", Dialogue: "It IS the thing your house needs guarding from.", ResultType: domain.ResultNo},
			{Name: "magikarp", Dialogue: "It flopped behind the couch an hour ago.", ResultType: domain.ResultHellNo},
		},
	},
	{
		CategoryName: "Pokemon to bring to a job interview",
		PokemonCount: 3,
		Slots: []domain.Slot{
			{Name: "alakazam", Dialogue: "Reads the interviewer's mind. Unfair advantage accepted.", ResultType: domain.ResultSuperValid},
			{Name: "machamp", Dialogue: "Four handshakes at once makes a strong first impression.", ResultType: domain.ResultValid},
			{Name: "psyduck", Dialogue: "It has a headache and now so does everyone else.", ResultType: domain.ResultNo},
		},
	},
	{
		CategoryName: "Pokemon as your weather forecaster",
		PokemonCount: 5,
		Slots: []domain.Slot{
			{Name: "castform", Dialogue: "Literally becomes the weather. Peak accuracy.", ResultType: domain.ResultSuperValid},
			{Name: "tornadus", Dialogue: "Causes the forecast instead of reading it.", ResultType: domain.ResultUnderstandable},
			{Name: "thundurus", Dialogue: "Every forecast is storms. Every single one.", ResultType: domain.ResultUnderstandable},
			{Name: "rayquaza", Dialogue: "Overqualified. Ends all weather out of spite.", ResultType: domain.ResultNo},
			{Name: "diglett", Dialogue: "Has never seen the sky.", ResultType: domain.ResultHellNo},
		},
	},
	{
		CategoryName: "Pokemon to carry your groceries",
		PokemonCount: 3,
		Slots: []domain.Slot{
			{Name: "machoke", Dialogue: "Born for this. Asks for nothing in return.", ResultType: domain.ResultSuperValid},
			{Name: "kadabra", Dialogue: "Floats them home. Spoons may bend.", ResultType: domain.ResultValid},
			{Name: "charizard", Dialogue: "The eggs are now an omelette.", ResultType: domain.ResultHellNo},
		},
	},
	{
		CategoryName: "Pokemon as a roommate",
		PokemonCount: 4,
		Slots: []domain.Slot{
			{Name: "chansey", Dialogue: "Cooks, cleans, provides free healthcare.", ResultType: domain.ResultSuperValid},
			{Name: "pikachu", Dialogue: "Adorable, but stop microwaving forks.", ResultType: domain.ResultValid},
			{Name: "giratina", Dialogue: "Your apartment is now a distortion dimension.", ResultType: domain.ResultNo},
			{Name: "koffing", Dialogue: "Violates the lease and the Geneva Convention.", ResultType: domain.ResultHellNo},
		},
	},
	{
		CategoryName: "Pokemon to officiate your wedding",
		PokemonCount: 3,
		Slots: []domain.Slot{
			{Name: "gardevoir", Dialogue: "Elegant, empathetic, brings everyone to tears.", ResultType: domain.ResultSuperValid},
			{Name: "ludicolo", Dialogue: "The ceremony is now a fiesta. Honestly, fine.", ResultType: domain.ResultUnderstandable},
			{Name: "hypno", Dialogue: "Nobody remembers the vows. Or the reception.", ResultType: domain.ResultHellNo},
		},
	},
	{
		CategoryName: "Pokemon as your alarm clock",
		PokemonCount: 4,
		Slots: []domain.Slot{
			{Name: "loudred", Dialogue: "You will never oversleep again. Or sleep.", ResultType: domain.ResultValid},
			{Name: "chatot", Dialogue: "Repeats your alarm in your own voice. Unsettling but effective.", ResultType: domain.ResultValid},
			{Name: "jigglypuff", Dialogue: "You missed three days and your face is drawn on.", ResultType: domain.ResultNo},
			{Name: "shaymin", Dialogue: "Wakes you gently with flowers. You're late, but serene.", ResultType: domain.ResultUnderstandable},
		},
	},
	{
		CategoryName: "Pokemon to do your taxes",
		PokemonCount: 2,
		Slots: []domain.Slot{
			{Name: "porygon", Dialogue: "It lives in the computer. The refund is optimal.", ResultType: domain.ResultSuperValid},
			{Name: "slowpoke", Dialogue: "Filed! For the 1998 tax year.", ResultType: domain.ResultNo},
		},
	},
}
