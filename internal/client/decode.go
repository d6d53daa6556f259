package client

import (
	"fmt"
	"strings"
)

// DecodeError reports exactly which required keys a response item was
// missing, instead of a bare "could not parse". List endpoints log it and
// drop the item; single-object endpoints fail the whole call with it.
type DecodeError struct {
	Entity  string
	Missing []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: missing or mistyped fields: %s", e.Entity, strings.Join(e.Missing, ", "))
}

// fieldCheck accumulates required-key validation for one wire object.
type fieldCheck struct {
	entity  string
	missing []string
}

func checkFields(entity string) *fieldCheck {
	return &fieldCheck{entity: entity}
}

func (f *fieldCheck) require(name string, present bool) *fieldCheck {
	if !present {
		f.missing = append(f.missing, name)
	}
	return f
}

func (f *fieldCheck) err() error {
	if len(f.missing) == 0 {
		return nil
	}
	return &DecodeError{Entity: f.entity, Missing: f.missing}
}
