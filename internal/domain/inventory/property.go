package inventory

import (
	"regexp"
	"strings"
	"time"

	"hotel-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCode        = errs.Mark(errs.New("code is required and must be at most 32 characters"), errs.ErrInvalidArgument)
	ErrInvalidName        = errs.Mark(errs.New("name is required"), errs.ErrInvalidArgument)
	ErrInvalidTimeOfDay   = errs.Mark(errs.New("time of day must be HH:MM"), errs.ErrInvalidArgument)
	ErrInvalidCountryCode = errs.Mark(errs.New("country code must be two letters"), errs.ErrInvalidArgument)
)

var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

const (
	DefaultCheckInTime  = "15:00"
	DefaultCheckOutTime = "11:00"
	maxCodeLength       = 32
)

type PropertySpec struct {
	Code                string
	Name                string
	Email               string
	Phone               string
	CountryCode         string
	Timezone            string
	DefaultCheckInTime  string
	DefaultCheckOutTime string
}

type Property struct {
	id                  uuid.UUID
	code                string
	name                string
	email               string
	phone               string
	countryCode         string
	timezone            string
	defaultCheckInTime  string
	defaultCheckOutTime string
	createdAt           time.Time
	updatedAt           time.Time
}

func NewProperty(spec PropertySpec) (*Property, error) {
	code, err := normalizeCode(spec.Code)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	checkIn := orDefault(spec.DefaultCheckInTime, DefaultCheckInTime)
	checkOut := orDefault(spec.DefaultCheckOutTime, DefaultCheckOutTime)
	if !timeOfDayPattern.MatchString(checkIn) || !timeOfDayPattern.MatchString(checkOut) {
		return nil, ErrInvalidTimeOfDay
	}

	country := strings.ToUpper(strings.TrimSpace(spec.CountryCode))
	if country != "" && len(country) != 2 {
		return nil, ErrInvalidCountryCode
	}

	return &Property{
		id:                  uuid.New(),
		code:                code,
		name:                name,
		email:               strings.TrimSpace(spec.Email),
		phone:               strings.TrimSpace(spec.Phone),
		countryCode:         country,
		timezone:            orDefault(spec.Timezone, "UTC"),
		defaultCheckInTime:  checkIn,
		defaultCheckOutTime: checkOut,
	}, nil
}

func ReconstructProperty(id uuid.UUID, spec PropertySpec, createdAt, updatedAt time.Time) *Property {
	return &Property{
		id:                  id,
		code:                spec.Code,
		name:                spec.Name,
		email:               spec.Email,
		phone:               spec.Phone,
		countryCode:         spec.CountryCode,
		timezone:            spec.Timezone,
		defaultCheckInTime:  spec.DefaultCheckInTime,
		defaultCheckOutTime: spec.DefaultCheckOutTime,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (p *Property) ID() uuid.UUID               { return p.id }
func (p *Property) Code() string                { return p.code }
func (p *Property) Name() string                { return p.name }
func (p *Property) Email() string               { return p.email }
func (p *Property) Phone() string               { return p.phone }
func (p *Property) CountryCode() string         { return p.countryCode }
func (p *Property) Timezone() string            { return p.timezone }
func (p *Property) DefaultCheckInTime() string  { return p.defaultCheckInTime }
func (p *Property) DefaultCheckOutTime() string { return p.defaultCheckOutTime }
func (p *Property) CreatedAt() time.Time        { return p.createdAt }
func (p *Property) UpdatedAt() time.Time        { return p.updatedAt }

func normalizeCode(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" || len(c) > maxCodeLength {
		return "", ErrInvalidCode
	}
	return c, nil
}

func orDefault(v, fallback string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return fallback
}
