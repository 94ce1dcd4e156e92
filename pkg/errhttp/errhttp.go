// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/taskdeck/pkg/httpx"
	boarddomain "github.com/ghuser/taskdeck/services/board/domain"
	sharedomain "github.com/ghuser/taskdeck/services/share/domain"
	userdomain "github.com/ghuser/taskdeck/services/user/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, boarddomain.ErrCardNotFound),
		errors.Is(err, sharedomain.ErrShareNotFound),
		errors.Is(err, sharedomain.ErrUnknownRecipient),
		errors.Is(err, userdomain.ErrUserNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, boarddomain.ErrCardAlreadyExists),
		errors.Is(err, sharedomain.ErrDuplicateShare),
		errors.Is(err, userdomain.ErrUserAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, boarddomain.ErrInvalidCardTitle),
		errors.Is(err, boarddomain.ErrInvalidCategory),
		errors.Is(err, sharedomain.ErrSelfShare),
		errors.Is(err, userdomain.ErrInvalidUsername):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, userdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
