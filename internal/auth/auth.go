// Package auth derives the client-held session from a credential
// check. There is no server-side session store: the admin flag is
// computed once at login and trusted as sent by the client afterwards.
package auth

import (
	"strings"

	"github.com/adhikariaashish/gemini-blog/internal/models"
)

// Gate checks credentials against the configured admin pair.
type Gate struct {
	adminEmail    string
	adminPassword string
}

// NewGate creates an auth gate for the given admin credential pair.
// An empty admin email disables the admin profile entirely.
func NewGate(adminEmail, adminPassword string) *Gate {
	return &Gate{adminEmail: adminEmail, adminPassword: adminPassword}
}

// Login builds a session for the given credentials. IsAdmin is true
// only when both fields exactly match the configured pair.
func (g *Gate) Login(email, password string) (*models.Session, error) {
	if strings.TrimSpace(email) == "" {
		return nil, &models.ValidationError{Field: "email"}
	}
	if password == "" {
		return nil, &models.ValidationError{Field: "password"}
	}

	isAdmin := g.adminEmail != "" &&
		email == g.adminEmail && password == g.adminPassword

	return &models.Session{
		Email:   email,
		Name:    displayName(email),
		IsAdmin: isAdmin,
	}, nil
}

// displayName derives a readable name from the email local part.
func displayName(email string) string {
	name := email
	if i := strings.Index(email, "@"); i > 0 {
		name = email[:i]
	}
	if name == "" {
		return email
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
