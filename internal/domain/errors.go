package domain

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyFile           = errors.New("file is empty")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrEngineNotReady      = errors.New("inference engine is not ready")
	ErrDocumentDecode      = errors.New("document could not be decoded")
)

// DecodeError reports a document byte stream that could not be parsed at all.
// It aborts the whole batch before any page unit is created.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause == nil {
		return ErrDocumentDecode.Error()
	}
	return ErrDocumentDecode.Error() + ": " + e.Cause.Error()
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, ErrDocumentDecode) match any DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDocumentDecode }

// NewDecodeError wraps the underlying decode failure.
func NewDecodeError(cause error) *DecodeError {
	return &DecodeError{Cause: cause}
}
