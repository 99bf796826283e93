package pokeapi

import (
	"strings"

	"pokequiz-service/internal/domain"
)

// hiddenAbilities is a curated hidden-ability table keyed by lowercased
// species name. It is served from here, not from upstream, so the quiz
// shows the same text even when the API omits or reorders abilities.
var hiddenAbilities = map[string]domain.Ability{
	"bulbasaur": {
		Name:        "Chlorophyll",
		Description: "Boosts the Pokémon's Speed stat in sunny weather.",
	},
	"charmander": {
		Name:        "Solar Power",
		Description: "In sunny weather, the Pokémon's Sp. Atk is boosted, but HP is taken away every turn.",
	},
	"squirtle": {
		Name:        "Rain Dish",
		Description: "The Pokémon has its HP restored by 1/16th of its maximum HP every turn when it is raining.",
	},
	"pikachu": {
		Name:        "Lightning Rod",
		Description: "The Pokémon draws in all Electric-type moves, and boosts its Sp. Atk stat.",
	},
	"articuno": {
		Name:        "Snow Cloak",
		Description: "Boosts the Pokémon's evasion in a snowstorm.",
	},
	"zapdos": {
		Name:        "Static",
		Description: "Contact with the Pokémon may cause paralysis.",
	},
	"moltres": {
		Name:        "Flame Body",
		Description: "Contact with the Pokémon may cause a burn.",
	},
	"chikorita": {
		Name:        "Leaf Guard",
		Description: "Prevents the Pokémon from incurring status conditions in sunny weather.",
	},
	"cyndaquil": {
		Name:        "Flash Fire",
		Description: "Powers up Fire-type moves if the Pokémon is hit by one.",
	},
	"totodile": {
		Name:        "Sheer Force",
		Description: "Removes the added effects of moves to increase their power by 30%.",
	},
	"raikou": {
		Name:        "Inner Focus",
		Description: "The Pokémon's intensely focused mind protects it from flinching.",
	},
	"entei": {
		Name:        "Inner Focus",
		Description: "The Pokémon's intensely focused mind protects it from flinching.",
	},
	"suicune": {
		Name:        "Water Absorb",
		Description: "Restores HP if the Pokémon is hit by a Water-type move.",
	},
	"lugia": {
		Name:        "Multiscale",
		Description: "Reduces the amount of damage the Pokémon takes while its HP is full.",
	},
	"ho-oh": {
		Name:        "Regenerator",
		Description: "Restores a small amount of the Pokémon's HP when it switches out of battle.",
	},
	"treecko": {
		Name:        "Unburden",
		Description: "Boosts the Speed stat if the Pokémon's held item is used or lost.",
	},
	"torchic": {
		Name:        "Speed Boost",
		Description: "The Pokémon's Speed stat is boosted at the end of each turn.",
	},
	"mudkip": {
		Name:        "Damp",
		Description: "Prevents the use of the moves Self-Destruct and Explosion.",
	},
	"regirock": {
		Name:        "Sturdy",
		Description: "The Pokémon cannot be knocked out in one hit as long as its HP is full.",
	},
	"regice": {
		Name:        "Ice Body",
		Description: "The Pokémon gradually recovers HP in a snowstorm.",
	},
	"registeel": {
		Name:        "Light Metal",
		Description: "Halves the Pokémon's weight.",
	},
	"giratina": {
		Name:        "Telepathy",
		Description: "Anticipates an ally's attack and dodges it.",
	},
	"tornadus": {
		Name:        "Defiant",
		Description: "Boosts the Pokémon's Attack stat sharply when its stats are lowered.",
	},
	"thundurus": {
		Name:        "Defiant",
		Description: "Boosts the Pokémon's Attack stat sharply when its stats are lowered.",
	},
	"landorus": {
		Name:        "Sheer Force",
		Description: "Removes the added effects of moves to increase their power by 30%.",
	},
	"keldeo": {
		Name:        "Justified",
		Description: "Being hit by a Dark-type move boosts the Attack stat of the Pokémon, for justice.",
	},
	"shaymin": {
		Name:        "Natural Cure",
		Description: "All status conditions heal when the Pokémon switches out.",
	},
}

// HiddenAbilityFor returns the curated hidden ability for name, if any.
func HiddenAbilityFor(name string) (domain.Ability, bool) {
	ability, ok := hiddenAbilities[strings.ToLower(name)]
	return ability, ok
}
