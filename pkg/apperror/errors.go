package apperror

import (
	"fmt"
)

// AppError is a structured error carrying a stable machine-readable code.
type AppError struct {
	Code    string
	Message string
	Err     error // Wrapped underlying error, if any
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
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an underlying error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ---- Generation preconditions (GEN) ----

func ErrInvalidCount(count int) *AppError {
	return New("GEN_001", fmt.Sprintf("invalid record count %d: must be >= 0", count))
}

func ErrEmptyTable(table string) *AppError {
	return New("GEN_002", fmt.Sprintf("reference table %s is empty", table))
}

func ErrInvalidBrand(brand string, err error) *AppError {
	return Wrap("GEN_003", fmt.Sprintf("invalid card brand definition %s", brand), err)
}

// ---- Encoding (ENC) ----

func ErrEncode(format string, err error) *AppError {
	return Wrap("ENC_001", fmt.Sprintf("encoding %s output", format), err)
}

// ---- Output I/O (IO) ----

func ErrCreateOutput(name string, err error) *AppError {
	return Wrap("IO_001", fmt.Sprintf("creating output %s", name), err)
}

func ErrWriteOutput(name string, err error) *AppError {
	return Wrap("IO_002", fmt.Sprintf("writing output %s", name), err)
}

// ---- Configuration (CFG) ----

func ErrConfig(err error) *AppError {
	return Wrap("CFG_001", "loading configuration", err)
}
