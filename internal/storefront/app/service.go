package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	cartapp "github.com/dwikikusuma/bookstore/internal/cart/app"
	catalogapp "github.com/dwikikusuma/bookstore/internal/catalog/app"
)

const (
	BooksSection = "books"

	emptyCartMessage = "Your cart is empty!"
	contactThanks    = "Thank you! Your message has been sent successfully."
)

var ErrInvalidContact = errors.New("name, email and message are required")

type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Service turns input events into store operations and reports the
// outcome to the view.
type Service struct {
	log     *slog.Logger
	catalog *catalogapp.Service
	filter  *catalogapp.Filter
	cart    *cartapp.Store
	view    View
}

func NewService(log *slog.Logger, catalog *catalogapp.Service, filter *catalogapp.Filter, cart *cartapp.Store, view View) *Service {
	if log == nil {
		log = slog.Default()
	}
	cart.OnCountChanged(view.CartCount)
	filter.OnVisibility(view.Visibility)
	return &Service{
		log:     log,
		catalog: catalog,
		filter:  filter,
		cart:    cart,
		view:    view,
	}
}

func (s *Service) Buy(bookID string) error {
	book, err := s.catalog.GetBook(bookID)
	if err != nil {
		return err
	}
	if _, err := s.cart.AddEntry(book.Title, book.Price); err != nil {
		return fmt.Errorf("add %s to cart: %w", book.ID, err)
	}
	s.view.Toast(book.Title + " added to cart!")
	return nil
}

func (s *Service) SelectCategory(tag string) error {
	_, err := s.filter.SelectCategory(tag)
	return err
}

// ShowCategory is the category card shortcut: it brings the book list into
// view and then applies the same selection as SelectCategory.
func (s *Service) ShowCategory(tag string) error {
	s.view.Navigate(BooksSection)
	return s.SelectCategory(tag)
}

func (s *Service) RequestCartSummary() error {
	summary, err := s.cart.Summarize()
	if errors.Is(err, cartapp.ErrEmptyCart) {
		s.view.Toast(emptyCartMessage)
		return nil
	}
	if err != nil {
		return err
	}
	s.view.CartSummary(summary)
	return nil
}

// SubmitContact accepts the contact form. Nothing is sent anywhere; the
// submission is only logged.
func (s *Service) SubmitContact(msg ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return ErrInvalidContact
	}

	s.log.Info("contact form submitted",
		slog.String("name", msg.Name),
		slog.String("email", msg.Email),
		slog.String("phone", msg.Phone),
		slog.Int("message_len", len(msg.Message)),
	)
	s.view.Toast(contactThanks)
	return nil
}
