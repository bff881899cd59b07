package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	cartdomain "github.com/dwikikusuma/bookstore/internal/cart/domain"
	"github.com/dwikikusuma/bookstore/internal/catalog/domain"
	"gopkg.in/yaml.v3"
)

var ErrInvalidManifest = errors.New("invalid catalog manifest")

//go:embed default.yaml
var defaultManifest string

type categoryRecord struct {
	Tag  string `yaml:"tag"`
	Name string `yaml:"name"`
}

type bookRecord struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
}

type file struct {
	Categories []categoryRecord `yaml:"categories"`
	Books      []bookRecord     `yaml:"books"`
}

type Catalog struct {
	Categories []domain.Category
	Books      []domain.Book
}

// Load reads the manifest at path, or the embedded catalog when path is empty.
// Every price must be quoted in currency.
func Load(path, currency string) (Catalog, error) {
	if path == "" {
		return Decode(strings.NewReader(defaultManifest), currency)
	}
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return Decode(f, currency)
}

func Decode(r io.Reader, currency string) (Catalog, error) {
	var m file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := m.validate(currency); err != nil {
		return Catalog{}, err
	}

	out := Catalog{
		Categories: make([]domain.Category, 0, len(m.Categories)),
		Books:      make([]domain.Book, 0, len(m.Books)),
	}
	for _, c := range m.Categories {
		out.Categories = append(out.Categories, domain.Category{Tag: c.Tag, Name: c.Name})
	}
	for _, b := range m.Books {
		out.Books = append(out.Books, domain.Book{
			ID:       b.ID,
			Title:    b.Title,
			Author:   b.Author,
			Category: b.Category,
			Price:    b.Price,
		})
	}
	return out, nil
}

func (m file) validate(currency string) error {
	tags := make(map[string]struct{}, len(m.Categories))
	for _, c := range m.Categories {
		switch {
		case c.Tag == "":
			return fmt.Errorf("%w: category with empty tag", ErrInvalidManifest)
		case c.Tag == domain.AllCategories:
			return fmt.Errorf("%w: category tag %q is reserved", ErrInvalidManifest, c.Tag)
		}
		if _, dup := tags[c.Tag]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidManifest, c.Tag)
		}
		tags[c.Tag] = struct{}{}
	}

	ids := make(map[string]struct{}, len(m.Books))
	for i, b := range m.Books {
		if b.ID == "" || strings.TrimSpace(b.Title) == "" {
			return fmt.Errorf("%w: book #%d needs an id and a title", ErrInvalidManifest, i+1)
		}
		if _, dup := ids[b.ID]; dup {
			return fmt.Errorf("%w: duplicate book id %q", ErrInvalidManifest, b.ID)
		}
		ids[b.ID] = struct{}{}

		if _, ok := tags[b.Category]; !ok {
			return fmt.Errorf("%w: book %q has unknown category %q", ErrInvalidManifest, b.ID, b.Category)
		}
		price, err := cartdomain.ParsePrice(b.Price)
		if err != nil {
			return fmt.Errorf("%w: book %q: %w", ErrInvalidManifest, b.ID, err)
		}
		if currency != "" && price.Currency != currency {
			return fmt.Errorf("%w: book %q priced in %s, store uses %s", ErrInvalidManifest, b.ID, price.Currency, currency)
		}
	}
	return nil
}
