package service

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/kmdeck/userdir/internal/domain"
)

// Field length and range limits for a profile submission.
const (
	usernameMinLen = 3
	usernameMaxLen = 30
	fullNameMinLen = 2
	fullNameMaxLen = 100
	emailMaxLen    = 120
	bioMaxLen      = 500
	ageMin         = 1
	ageMax         = 120
)

// ProfileInput carries the raw form values of a profile submission.
// Age stays a string here; parsing it is part of validation.
type ProfileInput struct {
	Username string
	FullName string
	Email    string
	Age      string
	Bio      string
}

// Normalize trims surrounding whitespace from every text field.
// An empty bio stays an empty string, never null.
func (in ProfileInput) Normalize() ProfileInput {
	return ProfileInput{
		Username: strings.TrimSpace(in.Username),
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Age:      strings.TrimSpace(in.Age),
		Bio:      strings.TrimSpace(in.Bio),
	}
}

// ValidateProfile checks every field independently and reports all
// violations together, so a form can show each problem at once.
// On success it returns the parsed user (without an ID) and nil errors.
func ValidateProfile(in ProfileInput) (*domain.User, domain.FieldErrors) {
	errs := domain.FieldErrors{}

	for _, msg := range validateUsername(in.Username) {
		errs.Add("username", msg)
	}
	for _, msg := range validateFullName(in.FullName) {
		errs.Add("full_name", msg)
	}
	for _, msg := range validateEmail(in.Email) {
		errs.Add("email", msg)
	}
	age, ageErrs := validateAge(in.Age)
	for _, msg := range ageErrs {
		errs.Add("age", msg)
	}
	for _, msg := range validateBio(in.Bio) {
		errs.Add("bio", msg)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.User{
		Username: in.Username,
		FullName: in.FullName,
		Email:    in.Email,
		Age:      age,
		Bio:      in.Bio,
	}, nil
}

func validateUsername(v string) []string {
	if v == "" {
		return []string{"Username is required."}
	}
	if n := len([]rune(v)); n < usernameMinLen || n > usernameMaxLen {
		return []string{fmt.Sprintf("Username must be between %d and %d characters.", usernameMinLen, usernameMaxLen)}
	}
	return nil
}

func validateFullName(v string) []string {
	if v == "" {
		return []string{"Full name is required."}
	}
	if n := len([]rune(v)); n < fullNameMinLen || n > fullNameMaxLen {
		return []string{fmt.Sprintf("Full name must be between %d and %d characters.", fullNameMinLen, fullNameMaxLen)}
	}
	return nil
}

func validateEmail(v string) []string {
	if v == "" {
		return []string{"Email is required."}
	}
	var msgs []string
	if len(v) > emailMaxLen {
		msgs = append(msgs, fmt.Sprintf("Email must be at most %d characters.", emailMaxLen))
	}
	// Bare addr-spec only; addresses with display names are rejected.
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		msgs = append(msgs, "Invalid email address.")
	}
	return msgs
}

// validateAge parses the optional age field. A blank value is valid and
// yields nil (stored as NULL).
func validateAge(v string) (*int, []string) {
	if v == "" {
		return nil, nil
	}
	age, err := strconv.Atoi(v)
	if err != nil {
		return nil, []string{"Age must be a whole number."}
	}
	if age < ageMin || age > ageMax {
		return nil, []string{fmt.Sprintf("Age must be between %d and %d.", ageMin, ageMax)}
	}
	return &age, nil
}

func validateBio(v string) []string {
	if len([]rune(v)) > bioMaxLen {
		return []string{fmt.Sprintf("Bio must be at most %d characters.", bioMaxLen)}
	}
	return nil
}
