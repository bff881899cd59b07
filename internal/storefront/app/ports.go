package app

import (
	cartdomain "github.com/dwikikusuma/bookstore/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/bookstore/internal/catalog/domain"
)

// View renders what the storefront reports. It never calls back into the
// storefront while handling a notification.
type View interface {
	CartCount(count int)
	Visibility(assignment []catalogdomain.Visibility)
	CartSummary(summary cartdomain.Summary)
	Toast(message string)
	Navigate(section string)
}
