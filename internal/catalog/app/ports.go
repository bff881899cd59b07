package app

import "github.com/dwikikusuma/bookstore/internal/catalog/domain"

// VisibilityListener receives the full visibility assignment after every
// category selection.
type VisibilityListener func(assignment []domain.Visibility)
