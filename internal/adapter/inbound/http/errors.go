package http

import (
	"errors"
	"net/http"

	domainerror "github.com/azkarapp/azkar-backend/internal/domain/error"
)

// Error messages exposed on the two authentication endpoints. They mirror the
// mobile client contract: a single generic message for any verification or
// persistence failure, and a distinct one for the link conflict.
const (
	msgAuthenticationFailed = "authentication with facebook failed"
	msgSomeoneElseConnected = "someone else already connected this facebook account"
	msgInternalError        = "internal server error"
)

var validationErrors = []error{
	domainerror.ErrUserIDRequired,
	domainerror.ErrUserUsernameRequired,
	domainerror.ErrFacebookUserIDRequired,
	domainerror.ErrFacebookAccessTokenRequired,
	domainerror.ErrGroupNameRequired,
	domainerror.ErrChallengeNameRequired,
	domainerror.ErrChallengeMotivationRequired,
	domainerror.ErrChallengeExpiryInPast,
	domainerror.ErrChallengeSubChallengesRequired,
	domainerror.ErrChallengeZekrRequired,
	domainerror.ErrChallengeRepetitionsInvalid,
}

var notFoundErrors = []error{
	domainerror.ErrUserNotFound,
	domainerror.ErrGroupNotFound,
	domainerror.ErrChallengeNotFound,
}

// writeAuthEndpointError maps failures of the login and connect flows. The
// session precondition errors indicate a routing bug, not a user error, so
// they surface as 500; everything else collapses into the two client-facing
// 422 messages.
func writeAuthEndpointError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerror.ErrFacebookAccountAlreadyLinked):
		writeError(w, http.StatusUnprocessableEntity, msgSomeoneElseConnected)
	case errors.Is(err, domainerror.ErrLoginRequiresAnonymousSession),
		errors.Is(err, domainerror.ErrConnectRequiresAuthenticatedSession):
		writeError(w, http.StatusInternalServerError, msgInternalError)
	case isValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		// Verification failures and persistence errors alike
		writeError(w, http.StatusUnprocessableEntity, msgAuthenticationFailed)
	}
}

// writeDomainError maps failures of the non-auth endpoints.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case isValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case isNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}

func isValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isNotFound(err error) bool {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
