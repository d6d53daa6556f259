package errs

import "net/http"

// FromStatusCode is the single place mapping an HTTP status to a domain
// error. Call sites branch with errors.Is instead of re-deriving the
// 200/400/404 switch per endpoint.
//
// Contract used by the API throughout: 200 success, 400 validation failure
// or name conflict, 404 resource gone (stale view, refresh), 401 expired or
// missing token, everything else an unclassified server error.
func FromStatusCode(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest, code == http.StatusConflict:
		return ObjectAlreadyExists
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return Unauthorized
	case code == http.StatusNotFound:
		return ObjectNotFound
	default:
		return ServerError
	}
}
