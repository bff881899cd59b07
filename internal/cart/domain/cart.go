package domain

import "strconv"

type Entry struct {
	ID    string
	Title string
	Price Money
}

// State is a read-only view of the cart. Count always equals len(Entries).
type State struct {
	Entries []Entry
	Count   int
}

type SummaryLine struct {
	Index int
	Title string
	Price Money
}

func (l SummaryLine) String() string {
	return strconv.Itoa(l.Index) + ". " + l.Title + " - " + l.Price.String()
}

type Summary struct {
	Lines []SummaryLine
	Total Money
}

// Text renders the summary the way the cart dialog shows it.
func (s Summary) Text() string {
	out := "Items in Cart:\n\n"
	for _, l := range s.Lines {
		out += l.String() + "\n"
	}
	return out + "\nTotal: " + s.Total.String()
}
