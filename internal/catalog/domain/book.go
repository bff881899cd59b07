package domain

// AllCategories is the reserved tag that disables filtering.
const AllCategories = "all"

type Category struct {
	Tag  string
	Name string
}

// Book is a static catalog item. Price is kept as quoted ("₹499") and is
// parsed by the cart when the book is bought.
type Book struct {
	ID       string
	Title    string
	Author   string
	Category string
	Price    string
}

// Visibility is the filter outcome for one book.
type Visibility struct {
	BookID  string
	Visible bool
}
