package model

import (
	"slices"
	"strings"

	"github.com/andy/reconnect/internal/domain"
)

// containsWord reports whether sentence has a whole word equal to word,
// ignoring case.
func containsWord(sentence, word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	return slices.ContainsFunc(strings.Fields(sentence), func(w string) bool {
		return strings.EqualFold(w, word)
	})
}

func anyKeyword(keywords []string, fields ...string) bool {
	for _, k := range keywords {
		for _, f := range fields {
			if containsWord(f, k) {
				return true
			}
		}
	}
	return false
}

// ClientNameMatches keeps clients whose name contains any of the keywords.
func ClientNameMatches(keywords []string) Predicate[domain.Client] {
	return func(c domain.Client) bool {
		return anyKeyword(keywords, c.Name.String())
	}
}

// PropertyMatches keeps properties whose name or owner contains any keyword.
func PropertyMatches(keywords []string) Predicate[domain.Property] {
	return func(p domain.Property) bool {
		return anyKeyword(keywords, p.Name.String(), p.Owner.String())
	}
}

// DealMatches keeps deals whose property, parties or status match a keyword.
func DealMatches(keywords []string) Predicate[domain.Deal] {
	return func(d domain.Deal) bool {
		return anyKeyword(keywords, d.Property.String(), d.Buyer.String(), d.Seller.String(), d.Status.String())
	}
}

// EventMatches keeps events whose heading, property or client match a keyword.
func EventMatches(keywords []string) Predicate[domain.Event] {
	return func(e domain.Event) bool {
		return anyKeyword(keywords, e.Heading.String(), e.Property.String(), e.Client.String())
	}
}
