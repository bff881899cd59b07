package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cartdomain "github.com/dwikikusuma/bookstore/internal/cart/domain"
	"github.com/dwikikusuma/bookstore/internal/catalog/domain"
	"github.com/google/go-cmp/cmp"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load("", "₹")
	if err != nil {
		t.Fatalf("Load default: %v", err)
	}
	if len(c.Books) == 0 || len(c.Categories) == 0 {
		t.Fatalf("default catalog is empty: %+v", c)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := `
categories:
  - {tag: poetry, name: Poetry}
books:
  - {id: leaves, title: Leaves of Grass, author: Walt Whitman, category: poetry, price: "$12"}
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path, "$")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Catalog{
		Categories: []domain.Category{{Tag: "poetry", Name: "Poetry"}},
		Books: []domain.Book{
			{ID: "leaves", Title: "Leaves of Grass", Author: "Walt Whitman", Category: "poetry", Price: "$12"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"reserved tag", `categories: [{tag: all, name: All}]`},
		{"duplicate tag", `categories: [{tag: a}, {tag: a}]`},
		{"unknown category", "categories: [{tag: a}]\nbooks: [{id: x, title: X, category: b, price: \"₹1\"}]"},
		{"duplicate id", "categories: [{tag: a}]\nbooks: [{id: x, title: X, category: a, price: \"₹1\"}, {id: x, title: Y, category: a, price: \"₹2\"}]"},
		{"missing title", "categories: [{tag: a}]\nbooks: [{id: x, category: a, price: \"₹1\"}]"},
		{"bad price", "categories: [{tag: a}]\nbooks: [{id: x, title: X, category: a, price: free}]"},
		{"other currency", "categories: [{tag: a}]\nbooks: [{id: x, title: X, category: a, price: \"$1\"}]"},
		{"unknown field", "categories: [{tag: a, colour: red}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.body), "₹")
			if !errors.Is(err, ErrInvalidManifest) {
				t.Fatalf("expected ErrInvalidManifest, got %v", err)
			}
		})
	}
}

func TestDecodeBadPriceKeepsParseError(t *testing.T) {
	_, err := Decode(strings.NewReader("categories: [{tag: a}]\nbooks: [{id: x, title: X, category: a, price: free}]"), "")
	if !errors.Is(err, cartdomain.ErrParse) {
		t.Fatalf("expected ErrParse in chain, got %v", err)
	}
}
