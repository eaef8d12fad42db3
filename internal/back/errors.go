package back

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNotFound means no Player has the requested ID.
	ErrNotFound = errors.New("player not found")

	// ErrBadRequest means the caller sent something we can't even look at,
	// eg. a malformed ID.
	ErrBadRequest = errors.New("bad request")

	// ErrValidation matches any ValidationError using errors.Is.
	ErrValidation = errors.New("invalid player")
)

// ValidationError is returned when a Player breaks one or more field
// constraints. Err holds the concatenated public reasons.
type ValidationError struct {
	Err error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Err)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ParsePlayerID parses an ID received from a client, only strictly positive
// integers are valid IDs.
func ParsePlayerID(str string) (int64, error) {
	id, err := strconv.ParseInt(str, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: invalid player ID %q", ErrBadRequest, str)
	}

	return id, nil
}

func checkPlayerID(id int64) error {
	if id < 1 {
		return fmt.Errorf("%w: invalid player ID %d", ErrBadRequest, id)
	}

	return nil
}
