package app

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/dwikikusuma/bookstore/internal/cart/domain"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart  = errors.New("cart is empty")
	ErrReentrant  = errors.New("cart mutated from its own listener")
	ErrEmptyTitle = errors.New("title is required")
	ErrOverflow   = errors.New("cart total out of range")
)

// Store is an append-only cart. It is owned by the application root and is
// not safe for concurrent use; events are expected one at a time.
type Store struct {
	log       *slog.Logger
	entries   []domain.Entry
	total     int64
	listeners []CountListener
	notifying bool
}

func NewStore(log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{log: log}
}

func (s *Store) OnCountChanged(l CountListener) {
	s.listeners = append(s.listeners, l)
}

// AddEntry records one purchase. A price that does not parse, or that is
// quoted in a different currency than the entries already in the cart,
// leaves the cart untouched.
func (s *Store) AddEntry(title, price string) (domain.State, error) {
	if s.notifying {
		return s.State(), ErrReentrant
	}
	if title == "" {
		return s.State(), ErrEmptyTitle
	}

	money, err := domain.ParsePrice(price)
	if err != nil {
		s.log.Warn("cart entry rejected", slog.String("title", title), slog.Any("err", err))
		return s.State(), err
	}
	if len(s.entries) > 0 && s.entries[0].Price.Currency != money.Currency {
		err := fmt.Errorf("%w: %w: cart is in %s, got %q", domain.ErrParse, domain.ErrCurrencyMismatch, s.entries[0].Price.Currency, price)
		s.log.Warn("cart entry rejected", slog.String("title", title), slog.Any("err", err))
		return s.State(), err
	}

	if money.Amount > math.MaxInt64-s.total {
		err := fmt.Errorf("%w: adding %s to %d", ErrOverflow, money, s.total)
		s.log.Warn("cart entry rejected", slog.String("title", title), slog.Any("err", err))
		return s.State(), err
	}

	s.total += money.Amount
	s.entries = append(s.entries, domain.Entry{
		ID:    uuid.NewString(),
		Title: title,
		Price: money,
	})
	s.log.Debug("cart entry added", slog.String("title", title), slog.Int("count", len(s.entries)))

	s.notify(len(s.entries))
	return s.State(), nil
}

func (s *Store) notify(count int) {
	s.notifying = true
	defer func() { s.notifying = false }()
	for _, l := range s.listeners {
		l(count)
	}
}

func (s *Store) Count() int {
	return len(s.entries)
}

// Entry looks up one entry by the id it was given when added.
func (s *Store) Entry(id string) (domain.Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Entry{}, false
}

// State returns a copy of the cart contents.
func (s *Store) State() domain.State {
	entries := make([]domain.Entry, len(s.entries))
	copy(entries, s.entries)
	return domain.State{Entries: entries, Count: len(entries)}
}

// Summarize lists every entry in insertion order with the cart total.
// An empty cart yields ErrEmptyCart rather than a zero summary.
func (s *Store) Summarize() (domain.Summary, error) {
	if len(s.entries) == 0 {
		return domain.Summary{}, ErrEmptyCart
	}

	lines := make([]domain.SummaryLine, len(s.entries))
	for i, e := range s.entries {
		lines[i] = domain.SummaryLine{
			Index: i + 1,
			Title: e.Title,
			Price: e.Price,
		}
	}

	return domain.Summary{
		Lines: lines,
		Total: domain.Money{
			Currency: s.entries[0].Price.Currency,
			Amount:   s.total,
		},
	}, nil
}
