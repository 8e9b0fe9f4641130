package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// AbsentMarker is how an optional field without a value is displayed.
const AbsentMarker = "-"

const notApplicable = "N/A"

const (
	PhoneConstraints       = "Phone numbers should only contain numbers, and it should be between 3 and 15 digits long"
	EmailConstraints       = "Emails should be of the format local-part@domain (max 100 characters)"
	AddressConstraints     = "Addresses can take any values, and it should not be blank (max 100 characters)"
	PriceConstraints       = "Price should only contain positive numbers (in S$ thousands) between 3 to 6 digits"
	SizeConstraints        = "Size should be a positive number (in square feet) between 2 to 6 digits"
	DescriptionConstraints = "Description should be between 1 and 50 characters."
	NoteConstraints        = "Note should not be blank (max 200 characters)"
	DealStatusConstraints  = "Deal status should be one of OPEN, PENDING or CLOSED"
	HeadingConstraints     = "Event heading should be one of MEETING, VIEWING, SIGNING or OTHERS"
	DateTimeConstraints    = "Date and time should be a valid date in the format YYYY-MM-DD HH:MM"
)

var (
	phonePattern = regexp.MustCompile(`^\d{3,15}$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9+_.\-]*[A-Za-z0-9])?@` +
		`([A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?\.)*[A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?$`)
	pricePattern = regexp.MustCompile(`^[1-9]\d{2,5}$`)
	sizePattern  = regexp.MustCompile(`^[1-9]\d{1,5}$`)
)

// isAbsent reports whether raw input means "no value" for an optional field.
func isAbsent(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || t == notApplicable || t == AbsentMarker
}

// Phone is a client's contact number.
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	if !phonePattern.MatchString(s) {
		return Phone{}, invalid("phone", PhoneConstraints)
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }
func (p Phone) IsZero() bool { return p.value == "" }

// Email is an optional client email address. The zero value means absent.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	if len(s) > 100 || !emailPattern.MatchString(s) {
		return Email{}, invalid("email", EmailConstraints)
	}
	// the last domain label must have at least two characters
	domain := s[strings.Index(s, "@")+1:]
	if len(domain)-strings.LastIndex(domain, ".")-1 < 2 {
		return Email{}, invalid("email", EmailConstraints)
	}
	return Email{value: s}, nil
}

func (e Email) String() string {
	if e.value == "" {
		return AbsentMarker
	}
	return e.value
}

func (e Email) IsZero() bool { return e.value == "" }

// Address is a street address. Required for properties, optional for
// clients (where the zero value means absent).
type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	if strings.TrimSpace(s) == "" || s[0] == ' ' || s[0] == '\t' || utf8.RuneCountInString(s) > 100 {
		return Address{}, invalid("address", AddressConstraints)
	}
	return Address{value: s}, nil
}

func (a Address) String() string {
	if a.value == "" {
		return AbsentMarker
	}
	return a.value
}

func (a Address) IsZero() bool { return a.value == "" }

// Price is an amount in S$ thousands.
type Price struct {
	value int64
}

func NewPrice(v int64) (Price, error) {
	if v <= 0 || !pricePattern.MatchString(strconv.FormatInt(v, 10)) {
		return Price{}, invalid("price", PriceConstraints)
	}
	return Price{value: v}, nil
}

// ParsePrice parses a decimal string into a Price.
func ParsePrice(s string) (Price, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return Price{}, invalid("price", PriceConstraints)
	}
	return NewPrice(v)
}

func (p Price) Value() int64 { return p.value }
func (p Price) String() string { return strconv.FormatInt(p.value, 10) }
func (p Price) IsZero() bool { return p.value == 0 }
func (p Price) IsMoreThan(o Price) bool { return p.value > o.value }
func (p Price) IsLessThan(o Price) bool { return p.value < o.value }

// Size is an optional floor area in square feet. The zero value means absent.
type Size struct {
	value int64
}

func NewSize(v int64) (Size, error) {
	if !sizePattern.MatchString(strconv.FormatInt(v, 10)) {
		return Size{}, invalid("size", SizeConstraints)
	}
	return Size{value: v}, nil
}

// ParseSize parses a size; blank, "-" and "N/A" yield the absent size.
func ParseSize(s string) (Size, error) {
	if isAbsent(s) {
		return Size{}, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return Size{}, invalid("size", SizeConstraints)
	}
	return NewSize(v)
}

func (s Size) Value() int64 { return s.value }
func (s Size) IsZero() bool { return s.value == 0 }

func (s Size) String() string {
	if s.value == 0 {
		return AbsentMarker
	}
	return strconv.FormatInt(s.value, 10)
}

// Description is an optional free-text property description.
// Blank input and "N/A" collapse to the absent value instead of failing.
type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	if isAbsent(s) {
		return Description{}, nil
	}
	if utf8.RuneCountInString(s) > 50 || strings.ContainsAny(s, "\r\n") {
		return Description{}, invalid("description", DescriptionConstraints)
	}
	return Description{value: s}, nil
}

func (d Description) IsZero() bool { return d.value == "" }

func (d Description) String() string {
	if d.value == "" {
		return AbsentMarker
	}
	return d.value
}

// Note is an optional remark attached to an event.
type Note struct {
	value string
}

func NewNote(s string) (Note, error) {
	if isAbsent(s) {
		return Note{}, nil
	}
	if utf8.RuneCountInString(s) > 200 {
		return Note{}, invalid("note", NoteConstraints)
	}
	return Note{value: s}, nil
}

func (n Note) IsZero() bool { return n.value == "" }

func (n Note) String() string {
	if n.value == "" {
		return AbsentMarker
	}
	return n.value
}

// DealStatus is the stage a deal is in.
type DealStatus string

const (
	DealStatusOpen    DealStatus = "OPEN"
	DealStatusPending DealStatus = "PENDING"
	DealStatusClosed  DealStatus = "CLOSED"
)

func ParseDealStatus(s string) (DealStatus, error) {
	switch st := DealStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case DealStatusOpen, DealStatusPending, DealStatusClosed:
		return st, nil
	}
	return "", invalid("deal status", DealStatusConstraints)
}

func (s DealStatus) String() string { return string(s) }

// Heading categorises an event.
type Heading string

const (
	HeadingMeeting Heading = "MEETING"
	HeadingViewing Heading = "VIEWING"
	HeadingSigning Heading = "SIGNING"
	HeadingOthers  Heading = "OTHERS"
)

func ParseHeading(s string) (Heading, error) {
	switch h := Heading(strings.ToUpper(strings.TrimSpace(s))); h {
	case HeadingMeeting, HeadingViewing, HeadingSigning, HeadingOthers:
		return h, nil
	}
	return "", invalid("heading", HeadingConstraints)
}

func (h Heading) String() string { return string(h) }

// DateTimeLayout is the input and storage format of event times.
const DateTimeLayout = "2006-01-02 15:04"

// DateTime is the minute-precision time an event takes place.
type DateTime struct {
	t time.Time
}

func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(DateTimeLayout, strings.TrimSpace(s))
	if err != nil {
		return DateTime{}, invalid("date-time", DateTimeConstraints)
	}
	return DateTime{t: t}, nil
}

func (d DateTime) Time() time.Time { return d.t }
func (d DateTime) IsZero() bool { return d.t.IsZero() }

func (d DateTime) String() string {
	if d.t.IsZero() {
		return AbsentMarker
	}
	return d.t.Format(DateTimeLayout)
}
