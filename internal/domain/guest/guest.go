package guest

import (
	"net/mail"
	"strings"
	"time"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNameRequired = errs.Mark(errs.New("first and last name are required"), errs.ErrInvalidArgument)
	ErrInvalidEmail = errs.Mark(errs.New("invalid email address"), errs.ErrInvalidArgument)
)

// Profile holds the optional contact and identity fields of a guest.
type Profile struct {
	Email          string
	Phone          string
	Nationality    string
	DocumentType   string
	DocumentNumber string
	DateOfBirth    *calendar.Date
	Address        string
	Notes          string
}

type Guest struct {
	id         uuid.UUID
	propertyID uuid.UUID
	firstName  string
	lastName   string
	profile    Profile
	createdAt  time.Time
	updatedAt  time.Time
}

// NewQuickGuest creates a guest with only a name, as used at the front desk.
func NewQuickGuest(propertyID uuid.UUID, firstName, lastName string) (*Guest, error) {
	return NewGuest(propertyID, firstName, lastName, Profile{})
}

func NewGuest(propertyID uuid.UUID, firstName, lastName string, profile Profile) (*Guest, error) {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	if first == "" || last == "" {
		return nil, ErrNameRequired
	}

	profile.Email = strings.TrimSpace(profile.Email)
	if profile.Email != "" {
		if _, err := mail.ParseAddress(profile.Email); err != nil {
			return nil, errs.Wrap(ErrInvalidEmail, profile.Email)
		}
	}
	profile.Nationality = strings.ToUpper(strings.TrimSpace(profile.Nationality))

	return &Guest{
		id:         uuid.New(),
		propertyID: propertyID,
		firstName:  first,
		lastName:   last,
		profile:    profile,
	}, nil
}

func ReconstructGuest(id, propertyID uuid.UUID, firstName, lastName string, profile Profile, createdAt, updatedAt time.Time) *Guest {
	return &Guest{
		id:         id,
		propertyID: propertyID,
		firstName:  firstName,
		lastName:   lastName,
		profile:    profile,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (g *Guest) ID() uuid.UUID         { return g.id }
func (g *Guest) PropertyID() uuid.UUID { return g.propertyID }
func (g *Guest) FirstName() string     { return g.firstName }
func (g *Guest) LastName() string      { return g.lastName }
func (g *Guest) Profile() Profile      { return g.profile }
func (g *Guest) CreatedAt() time.Time  { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time  { return g.updatedAt }

func (g *Guest) FullName() string {
	return g.firstName + " " + g.lastName
}
