package view

import (
	"fmt"
	"io"
	"strings"

	cartdomain "github.com/dwikikusuma/bookstore/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/bookstore/internal/catalog/domain"
)

// Terminal renders storefront notifications as plain text lines.
type Terminal struct {
	w       io.Writer
	titles  map[string]string
	visible map[string]bool
}

// NewTerminal expects every book to be visible initially, as the filter does.
func NewTerminal(w io.Writer, books []catalogdomain.Book) *Terminal {
	titles := make(map[string]string, len(books))
	visible := make(map[string]bool, len(books))
	for _, b := range books {
		titles[b.ID] = b.Title
		visible[b.ID] = true
	}
	return &Terminal{w: w, titles: titles, visible: visible}
}

func (t *Terminal) CartCount(count int) {
	fmt.Fprintf(t.w, "[cart: %d]\n", count)
}

// Visibility lists the shown books, marking the ones that just appeared.
func (t *Terminal) Visibility(assignment []catalogdomain.Visibility) {
	shown := 0
	for _, v := range assignment {
		if v.Visible {
			mark := " "
			if !t.visible[v.BookID] {
				mark = "+"
			}
			fmt.Fprintf(t.w, " %s %-28s %s\n", mark, v.BookID, t.titles[v.BookID])
			shown++
		}
		t.visible[v.BookID] = v.Visible
	}
	if shown == 0 {
		fmt.Fprintln(t.w, "   (no books in this category)")
	}
}

func (t *Terminal) CartSummary(summary cartdomain.Summary) {
	fmt.Fprintln(t.w, summary.Text())
}

func (t *Terminal) Toast(message string) {
	fmt.Fprintf(t.w, "** %s\n", message)
}

func (t *Terminal) Navigate(section string) {
	fmt.Fprintf(t.w, "-> #%s\n", strings.TrimPrefix(section, "#"))
}
