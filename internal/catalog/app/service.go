package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/bookstore/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Service answers lookups against the catalog loaded at startup. The
// catalog never changes after construction.
type Service struct {
	books      []domain.Book
	byID       map[string]int
	categories []domain.Category
}

func NewService(books []domain.Book, categories []domain.Category) *Service {
	byID := make(map[string]int, len(books))
	for i, b := range books {
		byID[b.ID] = i
	}
	return &Service{
		books:      books,
		byID:       byID,
		categories: categories,
	}
}

func (s *Service) GetBook(id string) (domain.Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Book{}, ErrInvalidInput
	}
	i, ok := s.byID[id]
	if !ok {
		return domain.Book{}, fmt.Errorf("book %s: %w", id, ErrNotFound)
	}
	return s.books[i], nil
}

func (s *Service) ListBooks() []domain.Book {
	out := make([]domain.Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *Service) Categories() []domain.Category {
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}
