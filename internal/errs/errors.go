package errs

import (
	"errors"
	"fmt"

	pkgerr "github.com/pkg/errors"
)

var (
	NetworkFailure = errors.New("network request failed")
	Unauthorized   = errors.New("unauthorized")
	ServerError    = errors.New("unexpected server response")

	ObjectNotFound      = errors.New("object not found")
	ObjectAlreadyExists = errors.New("object already exists")
	NotFolder           = errors.New("not a folder")
	InvalidName         = errors.New("invalid name")

	SelfDestination = errors.New("destination is inside the source")
)

// NewErr wrap constant error with an extra message
// use errors.Is(err1, ObjectNotFound) to check if err belongs to any internal error
func NewErr(err error, format string, a ...any) error {
	return fmt.Errorf("%w; %s", err, fmt.Sprintf(format, a...))
}

func IsObjectNotFound(err error) bool {
	return errors.Is(pkgerr.Cause(err), ObjectNotFound)
}

func IsNetworkFailure(err error) bool {
	return errors.Is(pkgerr.Cause(err), NetworkFailure)
}

func IsConflict(err error) bool {
	return errors.Is(pkgerr.Cause(err), ObjectAlreadyExists) || errors.Is(pkgerr.Cause(err), InvalidName)
}
