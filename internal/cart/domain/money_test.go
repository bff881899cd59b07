package domain

import (
	"errors"
	"testing"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want Money
	}{
		{"₹499", Money{Currency: "₹", Amount: 499}},
		{"$0", Money{Currency: "$", Amount: 0}},
		{"€1000", Money{Currency: "€", Amount: 1000}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			if got.String() != tt.in {
				t.Fatalf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParsePriceRejects(t *testing.T) {
	for _, in := range []string{"", "free", "499", "₹", "₹-5", "₹+5", "₹1,000", "₹4.99", "₹ 499", "₹₹499", " ₹499", "₹99999999999999999999", "a499", "#499", "Rs499"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePrice(in)
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestSummaryText(t *testing.T) {
	s := Summary{
		Lines: []SummaryLine{
			{Index: 1, Title: "Dune", Price: Money{Currency: "₹", Amount: 499}},
			{Index: 2, Title: "Emma", Price: Money{Currency: "₹", Amount: 250}},
		},
		Total: Money{Currency: "₹", Amount: 749},
	}
	want := "Items in Cart:\n\n1. Dune - ₹499\n2. Emma - ₹250\n\nTotal: ₹749"
	if got := s.Text(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
