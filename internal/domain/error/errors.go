package error

import (
	"github.com/0xsj/overwatch-pkg/errors"
)

// Domain error codes
const (
	// User errors
	CodeUserNotFound         errors.Code = "USER_NOT_FOUND"
	CodeUserIDRequired       errors.Code = "USER_ID_REQUIRED"
	CodeUserUsernameRequired errors.Code = "USER_USERNAME_REQUIRED"

	// Facebook identity errors
	CodeFacebookVerificationFailed    errors.Code = "FACEBOOK_VERIFICATION_FAILED"
	CodeFacebookAccountAlreadyLinked  errors.Code = "FACEBOOK_ACCOUNT_ALREADY_LINKED"
	CodeFacebookUserIDRequired        errors.Code = "FACEBOOK_USER_ID_REQUIRED"
	CodeFacebookAccessTokenRequired   errors.Code = "FACEBOOK_ACCESS_TOKEN_REQUIRED"
	CodeLoginRequiresAnonymousSession errors.Code = "LOGIN_REQUIRES_ANONYMOUS_SESSION"
	CodeConnectRequiresAuthSession    errors.Code = "CONNECT_REQUIRES_AUTHENTICATED_SESSION"

	// Group errors
	CodeGroupNotFound            errors.Code = "GROUP_NOT_FOUND"
	CodeGroupNameRequired        errors.Code = "GROUP_NAME_REQUIRED"
	CodeGroupFull                errors.Code = "GROUP_FULL"
	CodeGroupMemberAlreadyExists errors.Code = "GROUP_MEMBER_ALREADY_EXISTS"

	// Challenge errors
	CodeChallengeNotFound               errors.Code = "CHALLENGE_NOT_FOUND"
	CodeChallengeNameRequired           errors.Code = "CHALLENGE_NAME_REQUIRED"
	CodeChallengeMotivationRequired     errors.Code = "CHALLENGE_MOTIVATION_REQUIRED"
	CodeChallengeExpiryInPast           errors.Code = "CHALLENGE_EXPIRY_IN_PAST"
	CodeChallengeSubChallengesRequired  errors.Code = "CHALLENGE_SUB_CHALLENGES_REQUIRED"
	CodeChallengeZekrRequired           errors.Code = "CHALLENGE_ZEKR_REQUIRED"
	CodeChallengeRepetitionsInvalid     errors.Code = "CHALLENGE_REPETITIONS_INVALID"
	CodeChallengeRepetitionsExhausted   errors.Code = "CHALLENGE_REPETITIONS_EXHAUSTED"
	CodeChallengeSubChallengeOutOfRange errors.Code = "CHALLENGE_SUB_CHALLENGE_OUT_OF_RANGE"

	// Token errors
	CodeTokenInvalid errors.Code = "TOKEN_INVALID"
	CodeTokenExpired errors.Code = "TOKEN_EXPIRED"
)

// User errors
var (
	ErrUserNotFound = errors.New(errors.KindNotFound, CodeUserNotFound, "user not found")

	ErrUserIDRequired = errors.New(errors.KindValidation, CodeUserIDRequired, "user ID is required")

	ErrUserUsernameRequired = errors.New(errors.KindValidation, CodeUserUsernameRequired, "username is required")
)

// Facebook identity errors
var (
	ErrFacebookVerificationFailed = errors.New(errors.KindUnauthorized, CodeFacebookVerificationFailed, "facebook identity verification failed")

	ErrFacebookAccountAlreadyLinked = errors.New(errors.KindConflict, CodeFacebookAccountAlreadyLinked, "facebook account is already linked to another user")

	ErrFacebookUserIDRequired = errors.New(errors.KindValidation, CodeFacebookUserIDRequired, "facebook user ID is required")

	ErrFacebookAccessTokenRequired = errors.New(errors.KindValidation, CodeFacebookAccessTokenRequired, "facebook access token is required")

	// Precondition violations: the HTTP layer routes login/connect by session
	// state, so reaching these means a caller bug, not a user error.
	ErrLoginRequiresAnonymousSession = errors.New(errors.KindDomain, CodeLoginRequiresAnonymousSession, "login requires an anonymous session")

	ErrConnectRequiresAuthenticatedSession = errors.New(errors.KindDomain, CodeConnectRequiresAuthSession, "connect requires an authenticated session")
)

// Group errors
var (
	ErrGroupNotFound = errors.New(errors.KindNotFound, CodeGroupNotFound, "group not found")

	ErrGroupNameRequired = errors.New(errors.KindValidation, CodeGroupNameRequired, "group name is required")

	ErrGroupFull = errors.New(errors.KindDomain, CodeGroupFull, "binary group already has two members")

	ErrGroupMemberAlreadyExists = errors.New(errors.KindDomain, CodeGroupMemberAlreadyExists, "user is already a member of this group")
)

// Challenge errors
var (
	ErrChallengeNotFound = errors.New(errors.KindNotFound, CodeChallengeNotFound, "challenge not found")

	ErrChallengeNameRequired = errors.New(errors.KindValidation, CodeChallengeNameRequired, "challenge name is required")

	ErrChallengeMotivationRequired = errors.New(errors.KindValidation, CodeChallengeMotivationRequired, "challenge motivation is required")

	ErrChallengeExpiryInPast = errors.New(errors.KindValidation, CodeChallengeExpiryInPast, "challenge expiry date must be in the future")

	ErrChallengeSubChallengesRequired = errors.New(errors.KindValidation, CodeChallengeSubChallengesRequired, "challenge requires at least one sub-challenge")

	ErrChallengeZekrRequired = errors.New(errors.KindValidation, CodeChallengeZekrRequired, "sub-challenge zekr text is required")

	ErrChallengeRepetitionsInvalid = errors.New(errors.KindValidation, CodeChallengeRepetitionsInvalid, "sub-challenge repetitions must be positive")

	ErrChallengeRepetitionsExhausted = errors.New(errors.KindDomain, CodeChallengeRepetitionsExhausted, "sub-challenge has no repetitions left")

	ErrChallengeSubChallengeOutOfRange = errors.New(errors.KindValidation, CodeChallengeSubChallengeOutOfRange, "sub-challenge index out of range")
)

// Token errors
var (
	ErrTokenInvalid = errors.New(errors.KindUnauthorized, CodeTokenInvalid, "token is invalid")

	ErrTokenExpired = errors.New(errors.KindUnauthorized, CodeTokenExpired, "token has expired")
)

// Helper functions

func UserNotFound(id string) *errors.Error {
	return errors.NotFoundf("user %s not found", id)
}

func GroupNotFound(id string) *errors.Error {
	return errors.NotFoundf("group %s not found", id)
}

func ChallengeNotFound(id string) *errors.Error {
	return errors.NotFoundf("challenge %s not found", id)
}
