package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const maxNameLength = 50

const (
	ClientNameConstraints = "Client names should only contain alphanumeric characters, spaces, and ' - . , " +
		"and it should not be blank (max 50 characters)"
	PropertyNameConstraints = "Property names should only contain alphanumeric characters, spaces, and # ' - . , ( ) / & @ " +
		"and it should not be blank (max 50 characters)"
)

var (
	clientNamePattern   = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} '\-.,]*$`)
	propertyNamePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} #'\-.,()/&@]*$`)

	folder = cases.Fold()
)

// NormalizeName returns the identity form of a name: surrounding
// whitespace trimmed and case folded.
func NormalizeName(s string) string {
	return folder.String(strings.TrimSpace(s))
}

// ClientName is the full name of a client. The zero value is not a valid name.
type ClientName struct {
	value string
}

// NewClientName validates and wraps a client name.
func NewClientName(s string) (ClientName, error) {
	if !isValidName(s, clientNamePattern) {
		return ClientName{}, invalid("client name", ClientNameConstraints)
	}
	return ClientName{value: s}, nil
}

func (n ClientName) String() string { return n.value }

// Key is the identity of the name used for duplicate detection.
func (n ClientName) Key() string { return NormalizeName(n.value) }

// IsZero reports whether the name is unset.
func (n ClientName) IsZero() bool { return n.value == "" }

// PropertyName is the display name of a property and the key deals and
// events use to refer to it.
type PropertyName struct {
	value string
}

// NewPropertyName validates and wraps a property name.
func NewPropertyName(s string) (PropertyName, error) {
	if !isValidName(s, propertyNamePattern) {
		return PropertyName{}, invalid("property name", PropertyNameConstraints)
	}
	return PropertyName{value: s}, nil
}

func (n PropertyName) String() string { return n.value }

// Key is the identity of the name used for duplicate detection.
func (n PropertyName) Key() string { return NormalizeName(n.value) }

// IsZero reports whether the name is unset.
func (n PropertyName) IsZero() bool { return n.value == "" }

func isValidName(s string, pattern *regexp.Regexp) bool {
	if strings.TrimSpace(s) == "" || utf8.RuneCountInString(s) > maxNameLength {
		return false
	}
	return pattern.MatchString(s)
}
