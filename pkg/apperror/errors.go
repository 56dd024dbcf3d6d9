package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a 400 error for a missing or invalid request field.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Address Ledger (LEDGER) ----

func ErrNotFound(entity string) *AppError {
	return New("LEDGER_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrAddressExists(address string) *AppError {
	return New("LEDGER_002", fmt.Sprintf("address %s is already mapped", address), http.StatusConflict)
}

// ---- Wallet RPC (RPC) ----

// ErrWalletUnreachable reports a transport-level failure: the wallet RPC host
// could not be reached at all (DNS, refused connection, timeout).
func ErrWalletUnreachable(baseURL string, err error) *AppError {
	msg := fmt.Sprintf(
		"cannot reach monero-wallet-rpc at %s; check that the wallet RPC service is running "+
			"and the host is resolvable from this process (on Linux Docker, map host.docker.internal "+
			"via extra_hosts or point wallet.url at the host IP)", baseURL)
	return Wrap("RPC_001", msg, http.StatusInternalServerError, err)
}

// ErrWalletHTTP reports a non-2xx HTTP status from the wallet RPC endpoint
// after authentication negotiation has run its course.
func ErrWalletHTTP(status int, scheme string, challenge string) *AppError {
	msg := fmt.Sprintf(
		"HTTP %d from wallet RPC (auth scheme %q, server challenge %q); check credentials and wallet.auth_scheme",
		status, scheme, challenge)
	return New("RPC_002", msg, http.StatusInternalServerError)
}

// ErrWalletRPC reports an error payload embedded in a JSON-RPC envelope.
func ErrWalletRPC(code int, message string) *AppError {
	return New("RPC_003", fmt.Sprintf("wallet RPC error %d: %s", code, message), http.StatusInternalServerError)
}

// ---- Queue (QUEUE) ----

// ErrMessageFormat reports a queue payload that cannot be processed.
func ErrMessageFormat(message string) *AppError {
	return New("QUEUE_001", message, http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ---- Kind predicates ----

// IsTransport reports whether err is a wallet transport failure.
func IsTransport(err error) bool { return hasCode(err, "RPC_001") }

// IsProtocol reports whether err is a wallet protocol failure (non-2xx HTTP
// status or embedded JSON-RPC error).
func IsProtocol(err error) bool { return hasCode(err, "RPC_002") || hasCode(err, "RPC_003") }

func hasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
