package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTokenIsExpired marks a well-formed, correctly signed token whose
	// lifetime has run out. Clients should re-authenticate rather than retry.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsExpiredOrInvalid covers every other token defect: bad
	// signature, wrong issuer, malformed string. Deliberately unspecific so
	// responses do not leak why a forged token was rejected.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrVersionIsNotSpecified is shared by the app-info service (missing
	// build version at startup) and the delete endpoint (missing `version`
	// query parameter).
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
