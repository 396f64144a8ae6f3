package mapper

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/justtrackio/typemapper/pkg/funk"
)

// ArgumentError is returned before any lookup happens when a caller passes an
// absent value or an absent type.
type ArgumentError struct {
	Name   string
	Reason string
}

func newArgumentError(name string, reason string) *ArgumentError {
	return &ArgumentError{
		Name:   name,
		Reason: reason,
	}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Name, e.Reason)
}

// NotFoundError is returned when no transformer is registered for a key and
// the provider had nothing either. The failure is never cached, a later call
// consults the provider again.
type NotFoundError struct {
	Source string
	Target string
}

func newNotFoundError(key Key) *NotFoundError {
	return &NotFoundError{
		Source: typeName(key.source),
		Target: typeName(key.target),
	}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No mapper registered for %s -> %s", e.Source, e.Target)
}

// TypeInferenceError is returned when the element type of a sequence can not
// be determined, e.g. for an empty []any. It is distinct from NotFoundError
// so callers can tell a failed inference from a missing registration.
type TypeInferenceError struct {
	Sequence string
}

func (e *TypeInferenceError) Error() string {
	return fmt.Sprintf("unable to infer the element type of sequence %s", e.Sequence)
}

// RegistrationConflict describes a single key which would receive more than
// one transformer instance within one registration batch.
type RegistrationConflict struct {
	Key             Key
	Implementations []string
}

func (e *RegistrationConflict) Error() string {
	return fmt.Sprintf("duplicate transformers for %s: %s", e.Key, strings.Join(e.Implementations, ", "))
}

// ConfigurationError rejects a whole registration batch. It enumerates every
// conflicting key together with every competing implementation name, not just
// the first conflict found, so a setup can be fixed in one round-trip.
type ConfigurationError struct {
	conflicts *multierror.Error
}

func newConfigurationError(conflicts []*RegistrationConflict) *ConfigurationError {
	err := &multierror.Error{}

	for _, conflict := range conflicts {
		err = multierror.Append(err, conflict)
	}

	return &ConfigurationError{
		conflicts: err,
	}
}

// Conflicts returns one RegistrationConflict per offending key.
func (e *ConfigurationError) Conflicts() []*RegistrationConflict {
	return funk.Map(e.conflicts.Errors, func(err error) *RegistrationConflict {
		return err.(*RegistrationConflict)
	})
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid transformer registration batch: %s", e.conflicts.Error())
}

func (e *ConfigurationError) Unwrap() error {
	return e.conflicts
}
