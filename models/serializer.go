package models

import (
	"fmt"
	"net/mail"
	"unicode/utf8"
)

const (
	msgRequired     = "This field is required."
	msgBlank        = "This field may not be blank."
	msgInvalidEmail = "Enter a valid email address."
)

func msgMaxLength(limit int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", limit)
}

// ValidationErrors maps a field name to the list of problems found with it.
// A nil map means the input passed validation.
type ValidationErrors map[string][]string

func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// SerializeTodo produces the wire representation of a record.
func SerializeTodo(t *Todo) TodoRepresentation {
	return TodoRepresentation{Task: t.Task, Details: t.Details, Completed: t.Completed}
}

// SerializeTodos maps a slice of records into their wire form. Always
// returns a non-nil slice so an empty list encodes as [] and not null.
func SerializeTodos(todos []Todo) []TodoRepresentation {
	out := make([]TodoRepresentation, 0, len(todos))
	for i := range todos {
		out = append(out, SerializeTodo(&todos[i]))
	}
	return out
}

// DeserializeTodo validates in and, only when validation passes, applies it
// onto t. With partial=false every writable field must be present; with
// partial=true absent fields keep their current value on t. The record is
// never half-written: either all supplied fields land or none do.
func DeserializeTodo(in TodoInput, t *Todo, partial bool) ValidationErrors {
	errs := ValidationErrors{}

	validateText(errs, "task", in.Task, MaxTaskLength, partial)
	validateText(errs, "details", in.Details, MaxDetailsLength, partial)

	if len(errs) > 0 {
		return errs
	}

	if in.Task != nil {
		t.Task = *in.Task
	}
	if in.Details != nil {
		t.Details = *in.Details
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	return nil
}

// validateText applies the required/blank/max-length checks shared by every
// character field. Limits are counted in characters, not bytes.
func validateText(errs ValidationErrors, field string, value *string, limit int, partial bool) {
	if value == nil {
		if !partial {
			errs.Add(field, msgRequired)
		}
		return
	}
	if *value == "" {
		errs.Add(field, msgBlank)
		return
	}
	if utf8.RuneCountInString(*value) > limit {
		errs.Add(field, msgMaxLength(limit))
	}
}

func validEmail(address string) bool {
	parsed, err := mail.ParseAddress(address)
	return err == nil && parsed.Address == address
}
