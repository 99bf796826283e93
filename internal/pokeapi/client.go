package pokeapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"pokequiz-service/internal/domain"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 root.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	noAbilityDescription = "No ability description available"
	maxForms             = 3
)

// formSuffixes are the alternate-form name endings tried, in order, when
// the bare name does not resolve upstream.
var formSuffixes = []string{"", "-incarnate", "-altered", "-therian", "-origin", "-ordinary", "-land", "-sky"}

// FormSuffixes returns the suffix variants (without the leading empty
// entry) for callers that strip them during name matching.
func FormSuffixes() []string {
	return formSuffixes[1:]
}

// Client fetches display attributes for a Pokémon from the upstream
// species API. It holds no cache; every Fetch is a live read.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client against baseURL (DefaultBaseURL if empty).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type pokemonResponse struct {
	Name      string `json:"name"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"ability"`
		IsHidden bool `json:"is_hidden"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
	} `json:"stats"`
	Sprites spriteSet `json:"sprites"`
	Forms   []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"forms"`
}

type spriteSet struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
	BackDefault  string `json:"back_default"`
	BackShiny    string `json:"back_shiny"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
			FrontShiny   string `json:"front_shiny"`
		} `json:"official-artwork"`
		Home struct {
			FrontDefault string `json:"front_default"`
			FrontShiny   string `json:"front_shiny"`
		} `json:"home"`
		DreamWorld struct {
			FrontDefault string `json:"front_default"`
		} `json:"dream_world"`
		Showdown struct {
			FrontDefault string `json:"front_default"`
			FrontShiny   string `json:"front_shiny"`
		} `json:"showdown"`
	} `json:"other"`
}

type speciesResponse struct {
	Varieties []struct {
		IsDefault bool `json:"is_default"`
		Pokemon   struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"pokemon"`
	} `json:"varieties"`
}

type abilityResponse struct {
	EffectEntries []struct {
		Effect   string `json:"effect"`
		Language struct {
			Name string `json:"name"`
		} `json:"language"`
	} `json:"effect_entries"`
}

type formResponse struct {
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
}

// Fetch resolves name against the upstream API, trying the bare name,
// each form-suffix variant, and finally a species-level lookup that
// redirects to the default variety. It returns (nil, nil) when every
// strategy fails; callers substitute placeholder attributes in that case.
func (c *Client) Fetch(ctx context.Context, name string) (*domain.Species, error) {
	base := strings.ToLower(strings.TrimSpace(name))
	if base == "" {
		return nil, nil
	}

	var data *pokemonResponse
	for _, suffix := range formSuffixes {
		var candidate pokemonResponse
		if c.getJSON(ctx, c.baseURL+"/pokemon/"+base+suffix, &candidate) {
			data = &candidate
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	if data == nil {
		data = c.fetchDefaultVariety(ctx, base)
	}
	if data == nil {
		log.Printf("pokeapi: %q not found after all variants", name)
		return nil, nil
	}

	return c.assemble(ctx, data), nil
}

// fetchDefaultVariety resolves base via the species resource and fetches
// its default (or first listed) variety.
func (c *Client) fetchDefaultVariety(ctx context.Context, base string) *pokemonResponse {
	var species speciesResponse
	if !c.getJSON(ctx, c.baseURL+"/pokemon-species/"+base, &species) {
		return nil
	}
	if len(species.Varieties) == 0 {
		return nil
	}
	variety := species.Varieties[0]
	for _, v := range species.Varieties {
		if v.IsDefault {
			variety = v
			break
		}
	}
	var data pokemonResponse
	if variety.Pokemon.URL != "" && c.getJSON(ctx, variety.Pokemon.URL, &data) {
		return &data
	}
	return nil
}

func (c *Client) assemble(ctx context.Context, data *pokemonResponse) *domain.Species {
	primary := primaryImage(data.Sprites)
	detail := distinctDetailImage(primary, data.Sprites)

	sp := &domain.Species{
		Name:                data.Name,
		ImageURL:            primary,
		AlternativeImageURL: firstNonEmpty(detail, primary),
		ExpandedImageURL:    detail,
		OfficialArtworkURL:  firstNonEmpty(data.Sprites.Other.OfficialArtwork.FrontDefault, primary),
		Ability:             c.resolveAbility(ctx, data),
	}
	if len(data.Stats) >= 6 {
		sp.Stats = domain.Stats{
			HP:        data.Stats[0].BaseStat,
			Attack:    data.Stats[1].BaseStat,
			Defense:   data.Stats[2].BaseStat,
			SpAttack:  data.Stats[3].BaseStat,
			SpDefense: data.Stats[4].BaseStat,
			Speed:     data.Stats[5].BaseStat,
		}
	}
	if hidden, ok := hiddenAbilities[strings.ToLower(data.Name)]; ok {
		h := hidden
		sp.HiddenAbility = &h
	}
	sp.Forms = c.fetchForms(ctx, data)
	return sp
}

// resolveAbility picks the first non-hidden ability (or the first of any
// kind) and fetches its English effect text.
func (c *Client) resolveAbility(ctx context.Context, data *pokemonResponse) domain.Ability {
	var name, url string
	for _, ab := range data.Abilities {
		if !ab.IsHidden {
			name, url = ab.Ability.Name, ab.Ability.URL
			break
		}
	}
	if name == "" && len(data.Abilities) > 0 {
		name, url = data.Abilities[0].Ability.Name, data.Abilities[0].Ability.URL
	}
	if name == "" {
		return domain.Ability{Name: "Unknown", Description: noAbilityDescription}
	}

	description := noAbilityDescription
	var ability abilityResponse
	if url != "" && c.getJSON(ctx, url, &ability) {
		for _, entry := range ability.EffectEntries {
			if entry.Language.Name == "en" {
				description = entry.Effect
				break
			}
		}
	}
	return domain.Ability{Name: name, Description: description}
}

// fetchForms collects up to maxForms alternate forms when the species
// lists more than one.
func (c *Client) fetchForms(ctx context.Context, data *pokemonResponse) []domain.Form {
	if len(data.Forms) <= 1 {
		return nil
	}
	forms := make([]domain.Form, 0, maxForms)
	for _, ref := range data.Forms {
		if len(forms) == maxForms {
			break
		}
		var form formResponse
		if !c.getJSON(ctx, ref.URL, &form) {
			continue
		}
		forms = append(forms, domain.Form{
			Name:     form.Name,
			ImageURL: firstNonEmpty(form.Sprites.FrontDefault, data.Sprites.FrontDefault),
		})
	}
	if len(forms) == 0 {
		return nil
	}
	return forms
}

// getJSON fetches url and decodes the body into target. Any transport or
// decode failure reads as "not found" so the caller can try the next
// candidate.
func (c *Client) getJSON(ctx context.Context, url string, target any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		log.Printf("pokeapi: decode %s: %v", url, err)
		return false
	}
	return true
}

// primaryImage picks the best available front sprite.
func primaryImage(s spriteSet) string {
	return firstNonEmpty(
		s.Other.OfficialArtwork.FrontDefault,
		s.Other.Home.FrontDefault,
		s.Other.DreamWorld.FrontDefault,
		s.FrontDefault,
	)
}

// distinctDetailImage picks a secondary image that differs from primary,
// so list and detail views never show the same picture twice.
func distinctDetailImage(primary string, s spriteSet) string {
	candidates := []string{
		s.FrontShiny,
		s.Other.Home.FrontShiny,
		s.Other.OfficialArtwork.FrontShiny,
		s.Other.Showdown.FrontDefault,
		s.Other.Showdown.FrontShiny,
		s.BackDefault,
		s.BackShiny,
		s.Other.DreamWorld.FrontDefault,
		s.FrontDefault,
	}
	for _, c := range candidates {
		if c != "" && c != primary {
			return c
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
