package validation

import (
	"regexp"
	"strings"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidPassword(password string) bool {
	return len(password) >= 6
}

func ValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

func ValidTaskTitle(title string) bool {
	return len(strings.TrimSpace(title)) >= 1
}

// ValidateRegister checks all fields and accumulates errors so the UI can
// show every problem at once.
func ValidateRegister(name, email, password string) []FieldError {
	var errs []FieldError
	if !ValidName(name) {
		errs = append(errs, FieldError{Field: "name", Message: "Name must be at least 2 characters long"})
	}
	if !ValidEmail(email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email address"})
	}
	if !ValidPassword(password) {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 6 characters long"})
	}
	return errs
}

func ValidateLogin(email, password string) []FieldError {
	var errs []FieldError
	if !ValidEmail(email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email address"})
	}
	if password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	}
	return errs
}

func ValidateTask(title string) []FieldError {
	var errs []FieldError
	if !ValidTaskTitle(title) {
		errs = append(errs, FieldError{Field: "title", Message: "Task title is required"})
	}
	return errs
}
