// Package state owns the canonical in-memory application state and keeps
// it consistent with the configured persistence channel. There is exactly
// one writer entry point per collection; every other component receives
// copies, never references into the canonical collections.
package state

import (
	"sync"

	"go.uber.org/zap"

	"bakerspal/internal/codec"
	"bakerspal/internal/domain"
	"bakerspal/internal/logging"
	"bakerspal/internal/ports"
)

// Channel selects how state is persisted
type Channel string

const (
	// ChannelStore persists each collection under its own key
	ChannelStore Channel = "store"
	// ChannelSnapshot persists the whole state as one encoded token
	ChannelSnapshot Channel = "snapshot"
)

// Store keys
const (
	keyIngredients = "ingredients"
	keyRecipes     = "recipes"
	keySales       = "sales"
	keyNotes       = "notes"
	keyTheme       = "theme"
	keySnapshot    = "snapshot"
)

// Tracker owns the canonical AppState for the process lifetime
type Tracker struct {
	mu      sync.Mutex
	store   ports.StateStore
	channel Channel
	token   string
	log     *zap.Logger
	state   domain.AppState
}

// Option configures the Tracker
type Option func(*Tracker)

// WithChannel selects the persistence channel (default per-key store)
func WithChannel(channel Channel) Option {
	return func(t *Tracker) {
		if channel == ChannelSnapshot {
			t.channel = ChannelSnapshot
		}
	}
}

// WithToken seeds the initial state from an explicit share token. A valid
// token takes precedence over whatever the store holds.
func WithToken(token string) Option {
	return func(t *Tracker) {
		t.token = token
	}
}

// WithLogger sets the logger for restore and persist failure paths
func WithLogger(log *zap.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// Load restores state (explicit token, then store, then empty), runs the
// ingredient schema migration, and returns the ready tracker. A migration
// that changed anything is persisted immediately.
func Load(store ports.StateStore, opts ...Option) *Tracker {
	t := &Tracker{
		store:   store,
		channel: ChannelStore,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.state = normalize(t.restore())

	migrated, changed := domain.MigrateIngredients(t.state.Ingredients)
	if changed {
		t.state.Ingredients = migrated
		t.log.Info("migrated legacy ingredient records", zap.Int("count", len(migrated)))
		t.persist(keyIngredients)
	}

	return t
}

// restore resolves the initial state. Failures at each step fall through
// to the next source; the worst case is an empty state, never a crash.
func (t *Tracker) restore() domain.AppState {
	if t.token != "" {
		s, err := codec.Decode(t.token)
		if err == nil {
			return s
		}
		t.log.Warn("ignoring invalid share token", zap.Error(err))
	}

	if t.channel == ChannelSnapshot {
		var token string
		if t.store.Get(keySnapshot, &token) {
			s, err := codec.Decode(token)
			if err == nil {
				return s
			}
			t.log.Warn("stored snapshot is invalid, starting empty", zap.Error(err))
		}
		return domain.EmptyState()
	}

	s := domain.EmptyState()
	t.store.Get(keyIngredients, &s.Ingredients)
	t.store.Get(keyRecipes, &s.Recipes)
	t.store.Get(keySales, &s.Sales)
	t.store.Get(keyNotes, &s.Notes)
	return s
}

// State returns a deep copy of the full state
func (t *Tracker) State() domain.AppState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}

// Ingredients returns a copy of the ingredient collection
func (t *Tracker) Ingredients() []domain.Ingredient {
	return t.State().Ingredients
}

// Recipes returns a copy of the recipe collection
func (t *Tracker) Recipes() []domain.Recipe {
	return t.State().Recipes
}

// Sales returns a copy of the sales collection
func (t *Tracker) Sales() []domain.Sale {
	return t.State().Sales
}

// Notes returns a copy of the notes collection
func (t *Tracker) Notes() []domain.Note {
	return t.State().Notes
}

// ReplaceIngredients replaces the ingredient collection and persists
func (t *Tracker) ReplaceIngredients(ingredients []domain.Ingredient) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Ingredients = nonNilIngredients(ingredients)
	t.persist(keyIngredients)
}

// ReplaceRecipes replaces the recipe collection and persists
func (t *Tracker) ReplaceRecipes(recipes []domain.Recipe) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	t.state.Recipes = recipes
	t.persist(keyRecipes)
}

// ReplaceSales replaces the sales collection and persists
func (t *Tracker) ReplaceSales(sales []domain.Sale) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if sales == nil {
		sales = []domain.Sale{}
	}
	t.state.Sales = sales
	t.persist(keySales)
}

// ReplaceNotes replaces the notes collection and persists
func (t *Tracker) ReplaceNotes(notes []domain.Note) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if notes == nil {
		notes = []domain.Note{}
	}
	t.state.Notes = notes
	t.persist(keyNotes)
}

// ReplaceAll replaces the whole state and persists every collection.
// Used when opening a share token or importing a backup.
func (t *Tracker) ReplaceAll(s domain.AppState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = normalize(s)
	t.persist(keyIngredients, keyRecipes, keySales, keyNotes)
}

// Token encodes the current state as a URL-safe share token
func (t *Tracker) Token() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return codec.Encode(t.state)
}

// Theme reads the persisted theme name, defaulting to light
func (t *Tracker) Theme() string {
	var theme string
	if t.store.Get(keyTheme, &theme) && theme != "" {
		return theme
	}
	return "light"
}

// SetTheme persists the theme name
func (t *Tracker) SetTheme(theme string) {
	t.store.Set(keyTheme, theme)
}

// persist writes the named collections (or the whole snapshot) to the
// store, synchronously, so a reload immediately after a mutation never
// loses it. Caller holds the lock.
func (t *Tracker) persist(keys ...string) {
	if t.channel == ChannelSnapshot {
		token, err := codec.Encode(t.state)
		if err != nil {
			t.log.Warn("snapshot encode failed, write dropped", zap.Error(err))
			return
		}
		t.store.Set(keySnapshot, token)
		return
	}

	for _, key := range keys {
		switch key {
		case keyIngredients:
			t.store.Set(keyIngredients, t.state.Ingredients)
		case keyRecipes:
			t.store.Set(keyRecipes, t.state.Recipes)
		case keySales:
			t.store.Set(keySales, t.state.Sales)
		case keyNotes:
			t.store.Set(keyNotes, t.state.Notes)
		}
	}
}

func normalize(s domain.AppState) domain.AppState {
	s.Ingredients = nonNilIngredients(s.Ingredients)
	if s.Recipes == nil {
		s.Recipes = []domain.Recipe{}
	}
	if s.Sales == nil {
		s.Sales = []domain.Sale{}
	}
	if s.Notes == nil {
		s.Notes = []domain.Note{}
	}
	return s
}

func nonNilIngredients(ingredients []domain.Ingredient) []domain.Ingredient {
	if ingredients == nil {
		return []domain.Ingredient{}
	}
	return ingredients
}
