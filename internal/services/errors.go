package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the store access layer. Handlers classify
// outcomes with errors.Is against the two roots; the entity-specific
// variants keep the failing entity inspectable at the call site.
var (
	// ErrNotFound is the root of every "entity missing" failure.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is the root of every uniqueness/duplication/blocked
	// failure.
	ErrConflict = errors.New("conflict")

	ErrUserNotFound        = fmt.Errorf("%w: user", ErrNotFound)
	ErrPizzaNotFound       = fmt.Errorf("%w: pizza", ErrNotFound)
	ErrIngredientNotFound  = fmt.Errorf("%w: ingredient", ErrNotFound)
	ErrAssociationNotFound = fmt.Errorf("%w: association", ErrNotFound)
	ErrClientNotFound      = fmt.Errorf("%w: client", ErrNotFound)

	// ErrUsernameTaken and ErrEmailTaken are raised from unique-index
	// violations on user creation, not from pre-checks.
	ErrUsernameTaken = fmt.Errorf("%w: username already registered", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrConflict)

	// ErrAssociationExists is raised from the composite-key violation on
	// the pizza_ingredients table.
	ErrAssociationExists = fmt.Errorf("%w: association already exists", ErrConflict)

	// ErrIngredientInUse is the Blocked outcome of a guarded ingredient
	// delete: the ingredient still appears on at least one pizza.
	ErrIngredientInUse = fmt.Errorf("%w: ingredient is used by a pizza", ErrConflict)
)

// IsNotFound reports whether err belongs to the not-found family.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err belongs to the conflict family.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
