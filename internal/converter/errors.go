package converter

import (
	"errors"
	"io/fs"

	goerrors "github.com/goliatone/go-errors"
)

const (
	// CodeSourceNotFound marks a source path that does not resolve to a file.
	CodeSourceNotFound = "SOURCE_NOT_FOUND"

	// CodeConversionFailed marks any other read, parse, or write failure.
	CodeConversionFailed = "CONVERSION_FAILED"

	// MsgNotFound is reported for a missing source.
	MsgNotFound = "Error: File not found."
)

// SourceError classifies a failure to read a source file.
// A missing file is NotFound; everything else is a ConversionError.
func SourceError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	if errors.Is(err, fs.ErrNotExist) {
		return goerrors.Wrap(err, goerrors.CategoryNotFound, MsgNotFound).
			WithTextCode(CodeSourceNotFound)
	}
	return conversionError(err)
}

// conversionError wraps err as a ConversionError carrying its message.
func conversionError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, err.Error()).
		WithTextCode(CodeConversionFailed)
}

// IsNotFound reports whether err is the missing-source condition.
func IsNotFound(err error) bool {
	return err != nil && goerrors.IsCategory(err, goerrors.CategoryNotFound)
}

// IsConversionError reports whether err is a read, parse, or write failure.
func IsConversionError(err error) bool {
	return err != nil && goerrors.IsCategory(err, goerrors.CategoryInternal)
}

// Message returns the text reported for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if IsNotFound(err) {
		return MsgNotFound
	}
	var wrapped *goerrors.Error
	if errors.As(err, &wrapped) {
		return "An error occurred: " + wrapped.Message
	}
	return "An error occurred: " + err.Error()
}
