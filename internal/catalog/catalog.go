package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
)

//go:embed sample.json
var sampleJSON []byte

var idNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("courtside.catalog"))

// Catalog bundles every piece of static content shown by the screens.
type Catalog struct {
	Slides       []Slide       `json:"slides"`
	CarouselDots int           `json:"carouselDots"`
	Login        LoginCopy     `json:"login"`
	Verification VerifyCopy    `json:"verification"`
	Search       SearchCopy    `json:"search"`
	Courts       []Court       `json:"courts"`
	History      []Reservation `json:"history"`
	Profile      Profile       `json:"profile"`
}

// Slide is one onboarding carousel card.
type Slide struct {
	Icon   string `json:"icon"`
	Accent string `json:"accent"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// LoginCopy holds the login screen labels.
type LoginCopy struct {
	Greeting            string `json:"greeting"`
	UserPlaceholder     string `json:"userPlaceholder"`
	PasswordPlaceholder string `json:"passwordPlaceholder"`
	ForgotPassword      string `json:"forgotPassword"`
}

// VerifyCopy holds the email verification screen labels.
type VerifyCopy struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Confirm string `json:"confirm"`
}

// SearchCopy holds the search screen labels and filter options.
type SearchCopy struct {
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	States          []string `json:"states"`
	Cities          []string `json:"cities"`
	CourtTypes      []string `json:"courtTypes"`
	NamePlaceholder string   `json:"namePlaceholder"`
	FooterTitle     string   `json:"footerTitle"`
	FooterBody      string   `json:"footerBody"`
}

// Court is one listing card on the search screen.
type Court struct {
	ID           string   `json:"-"`
	Type         string   `json:"type"`
	Accent       string   `json:"accent"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Amenities    []string `json:"amenities"`
	PricePerHour Money    `json:"pricePerHour"`
}

// Reservation is one entry of the reservation history.
type Reservation struct {
	ID      string `json:"-"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Members int    `json:"members"`
	Status  Status `json:"status"`
	Paid    Money  `json:"paid"`
	Total   Money  `json:"total"`
}

// Progress returns the paid share of the total as a percentage in 0..100.
func (r Reservation) Progress() int {
	if r.Total <= 0 {
		return 0
	}
	pct := int(int64(r.Paid) * 100 / int64(r.Total))
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

// Profile holds the figures shown on the profile screen.
type Profile struct {
	UserName           string            `json:"userName"`
	Message            Message           `json:"message"`
	Upcoming           string            `json:"upcoming"`
	Reservation        ActiveReservation `json:"reservation"`
	ActiveReservations []string          `json:"activeReservations"`
}

// Message is a note sent by a court to the user.
type Message struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// ActiveReservation is the highlighted upcoming booking.
type ActiveReservation struct {
	Court          string   `json:"court"`
	Paid           Money    `json:"paid"`
	Receivable     Money    `json:"receivable"`
	When           string   `json:"when"`
	Members        int      `json:"members"`
	MemberInitials []string `json:"memberInitials"`
}

// Default parses the embedded sample catalog.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(sampleJSON))
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load decodes and validates a catalog document, then assigns stable IDs.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.assignIDs()
	return &c, nil
}

// ErrInvalidCatalog wraps every validation failure.
var ErrInvalidCatalog = errors.New("catalog: invalid")

// Validate checks the invariants the screens rely on.
func (c *Catalog) Validate() error {
	if len(c.Slides) == 0 {
		return fmt.Errorf("%w: no onboarding slides", ErrInvalidCatalog)
	}
	if c.CarouselDots < len(c.Slides) {
		return fmt.Errorf("%w: %d carousel dots for %d slides", ErrInvalidCatalog, c.CarouselDots, len(c.Slides))
	}
	for _, court := range c.Courts {
		if court.PricePerHour < 0 {
			return fmt.Errorf("%w: negative price for %q", ErrInvalidCatalog, court.Name)
		}
	}
	for _, entry := range c.History {
		if entry.Paid < 0 || entry.Total < 0 {
			return fmt.Errorf("%w: negative amount for %q", ErrInvalidCatalog, entry.Name)
		}
		if !entry.Status.Known() {
			return fmt.Errorf("%w: unknown status %q for %q", ErrInvalidCatalog, entry.Status, entry.Name)
		}
	}
	res := c.Profile.Reservation
	if res.Paid < 0 || res.Receivable < 0 {
		return fmt.Errorf("%w: negative profile amount", ErrInvalidCatalog)
	}
	return nil
}

func (c *Catalog) assignIDs() {
	for i := range c.Courts {
		c.Courts[i].ID = stableID("court", c.Courts[i].Name, i)
	}
	for i := range c.History {
		c.History[i].ID = stableID("reservation", c.History[i].Name, i)
	}
}

func stableID(kind, name string, position int) string {
	key := kind + ":" + name + ":" + strconv.Itoa(position)
	return uuid.NewSHA1(idNamespace, []byte(key)).String()
}
