package pokeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeAPI serves a minimal slice of the upstream API and records which
// paths were requested.
type fakeAPI struct {
	mu        sync.Mutex
	requested []string
	handlers  map[string]any
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{handlers: make(map[string]any)}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requested = append(f.requested, r.URL.Path)
	payload, ok := f.handlers[r.URL.Path]
	f.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func (f *fakeAPI) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requested...)
}

func pokemonPayload(name, abilityName, abilityPath string) map[string]any {
	stats := make([]map[string]any, 6)
	for i := range stats {
		stats[i] = map[string]any{"base_stat": 50 + i}
	}
	return map[string]any{
		"name": name,
		"abilities": []map[string]any{
			{"ability": map[string]any{"name": "bad-dreams", "url": "http://HOST" + abilityPath + "-hidden"}, "is_hidden": true},
			{"ability": map[string]any{"name": abilityName, "url": "http://HOST" + abilityPath}, "is_hidden": false},
		},
		"stats": stats,
		"sprites": map[string]any{
			"front_default": "sprites/" + name + ".png",
			"front_shiny":   "sprites/" + name + "-shiny.png",
			"other": map[string]any{
				"official-artwork": map[string]any{"front_default": "artwork/" + name + ".png"},
			},
		},
	}
}

func abilityPayload(effect string) map[string]any {
	return map[string]any{
		"effect_entries": []map[string]any{
			{"effect": "Etwas auf Deutsch", "language": map[string]any{"name": "de"}},
			{"effect": effect, "language": map[string]any{"name": "en"}},
		},
	}
}

// rewriteHost replaces the HOST marker in recorded URLs with the test
// server's address so absolute resource links resolve back to the fake.
func rewriteHost(payload map[string]any, host string) map[string]any {
	data, _ := json.Marshal(payload)
	var out map[string]any
	json.Unmarshal([]byte(strings.ReplaceAll(string(data), "HOST", host)), &out)
	return out
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)
	host := server.URL[len("http://"):]
	api.mu.Lock()
	for path, payload := range api.handlers {
		if m, ok := payload.(map[string]any); ok {
			api.handlers[path] = rewriteHost(m, host)
		}
	}
	api.mu.Unlock()
	return NewClient(server.URL, time.Second)
}

func TestFetchTriesFormSuffixesInOrder(t *testing.T) {
	api := newFakeAPI()
	api.handlers["/pokemon/giratina-altered"] = pokemonPayload("giratina-altered", "levitate", "/ability/levitate")
	api.handlers["/ability/levitate"] = abilityPayload("Immune to ground moves.")
	client := newTestClient(t, api)

	sp, err := client.Fetch(context.Background(), "Giratina")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if sp == nil {
		t.Fatal("expected a species")
	}
	if sp.Name != "giratina-altered" {
		t.Fatalf("expected suffixed variant, got %q", sp.Name)
	}

	paths := api.paths()
	want := []string{"/pokemon/giratina", "/pokemon/giratina-incarnate", "/pokemon/giratina-altered"}
	if len(paths) < len(want) {
		t.Fatalf("too few requests: %v", paths)
	}
	for i, p := range want {
		if paths[i] != p {
			t.Fatalf("request %d: got %q, want %q (all: %v)", i, paths[i], p, paths)
		}
	}
}

func TestFetchFallsBackToSpeciesVariety(t *testing.T) {
	api := newFakeAPI()
	api.handlers["/pokemon-species/wormadam"] = map[string]any{
		"varieties": []map[string]any{
			{"is_default": false, "pokemon": map[string]any{"name": "wormadam-sandy", "url": "http://HOST/pokemon/wormadam-sandy"}},
			{"is_default": true, "pokemon": map[string]any{"name": "wormadam-plant", "url": "http://HOST/pokemon/wormadam-plant"}},
		},
	}
	api.handlers["/pokemon/wormadam-plant"] = pokemonPayload("wormadam-plant", "anticipation", "/ability/anticipation")
	api.handlers["/ability/anticipation"] = abilityPayload("Senses dangerous moves.")
	client := newTestClient(t, api)

	sp, err := client.Fetch(context.Background(), "wormadam")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if sp == nil || sp.Name != "wormadam-plant" {
		t.Fatalf("expected default variety, got %+v", sp)
	}
}

func TestFetchAssemblesSpecies(t *testing.T) {
	api := newFakeAPI()
	api.handlers["/pokemon/pikachu"] = pokemonPayload("pikachu", "static", "/ability/static")
	api.handlers["/ability/static"] = abilityPayload("May paralyze on contact.")
	client := newTestClient(t, api)

	sp, err := client.Fetch(context.Background(), "pikachu")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if sp == nil {
		t.Fatal("expected a species")
	}
	if sp.ImageURL != "artwork/pikachu.png" {
		t.Fatalf("expected official artwork as primary image, got %q", sp.ImageURL)
	}
	if sp.AlternativeImageURL != "sprites/pikachu-shiny.png" {
		t.Fatalf("expected shiny sprite as detail image, got %q", sp.AlternativeImageURL)
	}
	if sp.AlternativeImageURL == sp.ImageURL {
		t.Fatal("detail image must differ from primary")
	}
	// Non-hidden slot wins even though a hidden ability is listed first.
	if sp.Ability.Name != "static" || sp.Ability.Description != "May paralyze on contact." {
		t.Fatalf("unexpected ability: %+v", sp.Ability)
	}
	if sp.Stats.HP != 50 || sp.Stats.Speed != 55 {
		t.Fatalf("unexpected stats: %+v", sp.Stats)
	}
	// pikachu is in the curated hidden-ability table.
	if sp.HiddenAbility == nil || sp.HiddenAbility.Name != "Lightning Rod" {
		t.Fatalf("expected curated hidden ability, got %+v", sp.HiddenAbility)
	}
}

func TestFetchAbilityWithoutEnglishEntry(t *testing.T) {
	api := newFakeAPI()
	api.handlers["/pokemon/unown"] = pokemonPayload("unown", "levitate", "/ability/levitate")
	api.handlers["/ability/levitate"] = map[string]any{
		"effect_entries": []map[string]any{
			{"effect": "Nur Deutsch", "language": map[string]any{"name": "de"}},
		},
	}
	client := newTestClient(t, api)

	sp, err := client.Fetch(context.Background(), "unown")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if sp.Ability.Description != "No ability description available" {
		t.Fatalf("expected fallback description, got %q", sp.Ability.Description)
	}
}

func TestFetchReturnsNilWhenExhausted(t *testing.T) {
	api := newFakeAPI()
	client := newTestClient(t, api)

	sp, err := client.Fetch(context.Background(), "missingno")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if sp != nil {
		t.Fatalf("expected nil species, got %+v", sp)
	}

	// Every suffix variant plus the species fallback must have been tried.
	paths := api.paths()
	wantRequests := len(formSuffixes) + 1
	if len(paths) != wantRequests {
		t.Fatalf("expected %d requests, got %d: %v", wantRequests, len(paths), paths)
	}
	if last := paths[len(paths)-1]; last != "/pokemon-species/missingno" {
		t.Fatalf("expected species fallback last, got %q", last)
	}
}

func TestFetchBlankName(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", time.Second)
	sp, err := client.Fetch(context.Background(), "   ")
	if err != nil || sp != nil {
		t.Fatalf("expected nil/nil for blank name, got %v, %v", sp, err)
	}
}

func TestHiddenAbilityLookupIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"giratina", "GIRATINA", "Giratina"} {
		ability, ok := HiddenAbilityFor(name)
		if !ok {
			t.Fatalf("expected hidden ability for %q", name)
		}
		if ability.Name == "" {
			t.Fatalf("empty ability for %q", name)
		}
	}
	if _, ok := HiddenAbilityFor("not-a-pokemon"); ok {
		t.Fatal("unexpected hidden ability for unknown name")
	}
}
