package app

import (
	"errors"
	"log/slog"

	"github.com/dwikikusuma/bookstore/internal/catalog/domain"
)

var ErrReentrant = errors.New("filter changed from its own listener")

type entry struct {
	id        string
	category  string
	displayed bool
}

// Filter holds the selected category and the derived per-book visibility.
// Like the cart it is driven by one event at a time.
type Filter struct {
	log       *slog.Logger
	selected  string
	entries   []entry
	listeners []VisibilityListener
	notifying bool
}

// NewFilter starts with every book displayed under AllCategories.
func NewFilter(log *slog.Logger, books []domain.Book) *Filter {
	if log == nil {
		log = slog.Default()
	}
	entries := make([]entry, len(books))
	for i, b := range books {
		entries[i] = entry{id: b.ID, category: b.Category, displayed: true}
	}
	return &Filter{
		log:      log,
		selected: domain.AllCategories,
		entries:  entries,
	}
}

func (f *Filter) OnVisibility(l VisibilityListener) {
	f.listeners = append(f.listeners, l)
}

// Selected is the single active category tag.
func (f *Filter) Selected() string {
	return f.selected
}

// SelectCategory makes tag the active category and recomputes visibility
// for every book. Unknown tags are accepted and hide everything.
func (f *Filter) SelectCategory(tag string) ([]domain.Visibility, error) {
	if f.notifying {
		return nil, ErrReentrant
	}

	f.selected = tag
	assignment := make([]domain.Visibility, len(f.entries))
	shown := 0
	for i := range f.entries {
		e := &f.entries[i]
		visible := tag == domain.AllCategories || e.category == tag
		assignment[i] = domain.Visibility{BookID: e.id, Visible: visible}
		e.displayed = visible
		if visible {
			shown++
		}
	}
	f.log.Debug("category selected", slog.String("tag", tag), slog.Int("visible", shown))

	f.notify(assignment)
	return assignment, nil
}

// Visibility reports the current assignment without changing it.
func (f *Filter) Visibility() []domain.Visibility {
	out := make([]domain.Visibility, len(f.entries))
	for i, e := range f.entries {
		out[i] = domain.Visibility{BookID: e.id, Visible: e.displayed}
	}
	return out
}

func (f *Filter) notify(assignment []domain.Visibility) {
	f.notifying = true
	defer func() { f.notifying = false }()
	for _, l := range f.listeners {
		l(assignment)
	}
}
