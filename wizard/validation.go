package wizard

import (
	"strings"

	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/story"
)

// Validator holds the per-step validation rules. Failures are
// step-scoped ValidationErrors; the messages are the user-facing texts
// rendered inline next to the form.
type Validator struct{}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

const (
	minChildAge = 0
	maxChildAge = 18
)

// ValidateCredentials checks the login/register form.
func (v *Validator) ValidateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return invalid("username", "Benutzername wird benötigt")
	}
	if password == "" {
		return invalid("password", "Passwort wird benötigt")
	}
	return nil
}

// ValidateUserInfo checks the role/age/name form.
func (v *Validator) ValidateUserInfo(role story.Role, childAge int, childName string) error {
	if !role.Valid() {
		return invalid("role", "Bitte eine Rolle auswählen")
	}
	if childAge < minChildAge || childAge > maxChildAge {
		return invalid("childAge", "Das Alter muss zwischen 0 und 18 liegen")
	}
	if strings.TrimSpace(childName) == "" {
		return invalid("childName", "Der Name des Kindes wird benötigt")
	}
	return nil
}

// ValidatePersonalization checks the name fields substituted into the
// story text.
func (v *Validator) ValidatePersonalization(childName string) error {
	if strings.TrimSpace(childName) == "" {
		return invalid("childName", "Der Name des Kindes wird benötigt")
	}
	return nil
}

// ValidatePhoto checks that a camera frame was captured.
func (v *Validator) ValidatePhoto(photo string) error {
	if photo == "" {
		return invalid("photo", "Bitte zuerst ein Foto aufnehmen")
	}
	return nil
}

// ValidateOrderForm checks that every order field is filled in.
func (v *Validator) ValidateOrderForm(form session.OrderForm) error {
	fields := []struct {
		name  string
		value string
	}{
		{"fullName", form.FullName},
		{"address", form.Address},
		{"city", form.City},
		{"zipCode", form.ZipCode},
		{"email", form.Email},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return invalid(f.name, "Bitte alle Felder ausfüllen")
		}
	}
	if !strings.Contains(form.Email, "@") {
		return invalid("email", "Ungültige E-Mail-Adresse")
	}
	return nil
}
