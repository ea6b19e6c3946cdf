package services

import "errors"

// Not-found sentinels, one per entity. Handlers translate these into the
// French-facing 404 payloads of the API.
var (
	ErrReportNotFound     = errors.New("report not found")
	ErrCaseNotFound       = errors.New("legal case not found")
	ErrCaseAlreadySigned  = errors.New("legal case already signed")
	ErrPermissionNotFound = errors.New("permission request not found")
	ErrWhitelistNotFound  = errors.New("authorized content not found")
	ErrAlertNotFound      = errors.New("monitoring alert not found")
	ErrProfileNotFound    = errors.New("user profile not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks user-correctable input failures. The message is
// user-facing and returned verbatim by the HTTP layer.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
