package errs

import (
	"net/http"
	"testing"

	pkgerr "github.com/pkg/errors"
)

func TestNewErrKeepsSentinel(t *testing.T) {
	err := NewErr(ObjectNotFound, "list %s", "/docs/")
	if !IsObjectNotFound(err) {
		t.Errorf("wrapped error lost its sentinel: %v", err)
	}
	if IsNetworkFailure(err) {
		t.Errorf("wrong sentinel matched: %v", err)
	}
}

func TestHelpersSeeThroughWithMessage(t *testing.T) {
	err := pkgerr.WithMessage(NetworkFailure, "GET /api/v2/mounts")
	if !IsNetworkFailure(err) {
		t.Errorf("WithMessage wrapping must be transparent: %v", err)
	}
	if !IsConflict(pkgerr.WithMessagef(ObjectAlreadyExists, "copy")) {
		t.Error("conflict helper must match ObjectAlreadyExists")
	}
	if !IsConflict(InvalidName) {
		t.Error("conflict helper must match InvalidName")
	}
}

func TestFromStatusCode(t *testing.T) {
	datas := map[int]error{
		http.StatusOK:                  nil,
		http.StatusCreated:             nil,
		http.StatusBadRequest:          ObjectAlreadyExists,
		http.StatusConflict:            ObjectAlreadyExists,
		http.StatusUnauthorized:        Unauthorized,
		http.StatusForbidden:           Unauthorized,
		http.StatusNotFound:            ObjectNotFound,
		http.StatusInternalServerError: ServerError,
		http.StatusBadGateway:          ServerError,
	}
	for code, want := range datas {
		if got := FromStatusCode(code); got != want {
			t.Errorf("FromStatusCode(%d) = %v, want %v", code, got, want)
		}
	}
}
