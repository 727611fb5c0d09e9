package apperrors

// ErrorCode is a machine-readable error code.
type ErrorCode string

// Validation and resource errors
const (
	// ErrCodeInvalidInput indicates the request payload failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates the resource already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Authentication/Authorization errors
const (
	// ErrCodeInvalidCredentials indicates a failed login. The same code and
	// message are used whether the email is unknown or the password is wrong,
	// so a caller cannot enumerate registered accounts.
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	// ErrCodeUnauthorized indicates a missing, invalid, or expired token.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeForbidden indicates an authenticated caller with the wrong role.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
)

// Operational errors
const (
	// ErrCodeDependency indicates a backing service (storage) is unavailable.
	ErrCodeDependency ErrorCode = "DEPENDENCY_UNAVAILABLE"
	// ErrCodeConfig indicates a misconfigured service (operator fault).
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeDependency: true,
}

// IsRetryableCode reports whether the code indicates a retryable condition.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
