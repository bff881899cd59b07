package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	catalogapp "github.com/dwikikusuma/bookstore/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/bookstore/internal/catalog/domain"
	storeapp "github.com/dwikikusuma/bookstore/internal/storefront/app"
)

var errQuit = errors.New("quit")

// maxLineSize bounds a single command line, long contact messages included.
const maxLineSize = 1 << 20

const helpText = `commands:
  books                 list the catalog
  categories            list category tags
  filter <tag|all>      show only books in a category
  category <tag>        jump to the book list filtered by a category
  buy <book-id>         add a book to the cart
  cart                  show the cart
  contact <name> | <email> | <phone> | <message>
  help, quit`

type event struct {
	name string
	arg  string
}

// Shell reads one command per line and hands each one to the storefront
// in arrival order.
type Shell struct {
	store   *storeapp.Service
	catalog *catalogapp.Service
	filter  *catalogapp.Filter
	out     io.Writer
}

func NewShell(store *storeapp.Service, catalog *catalogapp.Service, filter *catalogapp.Filter, out io.Writer) *Shell {
	return &Shell{store: store, catalog: catalog, filter: filter, out: out}
}

// Run returns when in is exhausted, on quit, or when ctx is cancelled.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	g, gctx := errgroup.WithContext(ctx)

	// The scanner cannot be interrupted, so it lives outside the group.
	// readErr is filled before lines is closed.
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-gctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			readErr <- err
		}
	}()

	events := make(chan event)

	g.Go(func() error {
		defer close(events)
		for {
			select {
			case <-gctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					select {
					case err := <-readErr:
						return fmt.Errorf("read input: %w", err)
					default:
						return nil
					}
				}
				ev, ok := parse(line)
				if !ok {
					continue
				}
				select {
				case events <- ev:
				case <-gctx.Done():
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		fmt.Fprintln(s.out, "Book6All - type `help` for commands")
		for ev := range events {
			if err := s.Handle(ev); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func parse(line string) (event, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return event{}, false
	}
	name, arg, _ := strings.Cut(line, " ")
	return event{name: strings.ToLower(name), arg: strings.TrimSpace(arg)}, true
}

// Handle runs a single command. Storefront errors are printed and do not
// stop the shell.
func (s *Shell) Handle(ev event) error {
	var err error
	switch ev.name {
	case "help", "?":
		fmt.Fprintln(s.out, helpText)
	case "quit", "exit":
		return errQuit
	case "books":
		s.listBooks()
	case "categories":
		s.listCategories()
	case "filter":
		err = s.store.SelectCategory(orAll(ev.arg))
	case "category":
		err = s.store.ShowCategory(orAll(ev.arg))
	case "buy":
		err = s.store.Buy(ev.arg)
	case "cart":
		err = s.store.RequestCartSummary()
	case "contact":
		err = s.store.SubmitContact(parseContact(ev.arg))
	default:
		fmt.Fprintf(s.out, "unknown command %q, try `help`\n", ev.name)
	}
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return nil
}

func (s *Shell) listBooks() {
	shown := make(map[string]bool)
	for _, v := range s.filter.Visibility() {
		shown[v.BookID] = v.Visible
	}
	for _, b := range s.catalog.ListBooks() {
		if !shown[b.ID] {
			continue
		}
		fmt.Fprintf(s.out, "  %-28s %-36s %-10s %s\n", b.ID, b.Title, b.Category, b.Price)
	}
}

func (s *Shell) listCategories() {
	active := s.filter.Selected()
	mark := func(tag string) string {
		if tag == active {
			return "*"
		}
		return " "
	}
	fmt.Fprintf(s.out, " %s %s\n", mark(catalogdomain.AllCategories), catalogdomain.AllCategories)
	for _, c := range s.catalog.Categories() {
		fmt.Fprintf(s.out, " %s %-10s %s\n", mark(c.Tag), c.Tag, c.Name)
	}
}

func orAll(tag string) string {
	if tag == "" {
		return catalogdomain.AllCategories
	}
	return tag
}

func parseContact(arg string) storeapp.ContactMessage {
	parts := strings.SplitN(arg, "|", 4)
	for len(parts) < 4 {
		parts = append(parts, "")
	}
	return storeapp.ContactMessage{
		Name:    parts[0],
		Email:   parts[1],
		Phone:   parts[2],
		Message: parts[3],
	}
}
