package domain

import "errors"

// Kind classifies an error for transport-level translation.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidInput
	KindBusinessRule
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	case KindBusinessRule:
		return "business_rule"
	default:
		return "internal"
	}
}

// Business rule codes carried in the response body.
const (
	CodeBadCredentials = 401
	CodeForbidden      = 403
	CodeRecordNotFound = 404
	CodeDuplicate      = 409
)

// Error is a tagged application error. Code is only meaningful for
// KindBusinessRule.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Code: 404, Message: msg}
}

func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Code: 400, Message: msg}
}

func BusinessRule(code int, msg string) *Error {
	return &Error{Kind: KindBusinessRule, Code: code, Message: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Code: 500, Message: msg, Err: err}
}

var (
	ErrRecordNotFound = BusinessRule(CodeRecordNotFound, "record not found")
	ErrBadCredentials = BusinessRule(CodeBadCredentials, "bad credentials")
	ErrForbidden      = BusinessRule(CodeForbidden, "forbidden")
	ErrUsernameTaken  = BusinessRule(CodeDuplicate, "username already exists")

	// ErrNoSession means the request carries no usable session. It never
	// reaches the error handler: the session middleware redirects instead.
	ErrNoSession = errors.New("no valid session")
)

// AsError returns the tagged error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// KindOf reports the kind of err. Untagged errors are KindInternal.
func KindOf(err error) Kind {
	if de, ok := AsError(err); ok {
		return de.Kind
	}
	return KindInternal
}
