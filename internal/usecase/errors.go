package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrEmailNotFound          = errors.New("email not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrNoJobSeekerSession     = errors.New("no job seeker session")
	ErrNoCompanySession       = errors.New("no company session")
	ErrCandidateNotFound      = errors.New("candidate not found")
)

type field struct {
	name  string
	value string
}

// requireFields returns ErrInvalidInput naming every blank field.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
}
