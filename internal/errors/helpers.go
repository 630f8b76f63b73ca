package errors

import (
	"errors"
)

// Is is errors.Is; coded errors match by code
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of the outermost coded error in err's chain.
// Uncoded errors are Internal and nil has no code.
func GetCode(err error) Code {
	if err == nil {
		return ""
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

func hasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

func IsNotFound(err error) bool           { return hasCode(err, CodeNotFound) }
func IsInvalidArgument(err error) bool    { return hasCode(err, CodeInvalidArgument) }
func IsInternal(err error) bool           { return hasCode(err, CodeInternal) }
func IsResourceExhausted(err error) bool  { return hasCode(err, CodeResourceExhausted) }
func IsFailedPrecondition(err error) bool { return hasCode(err, CodeFailedPrecondition) }

// IsUnknownAttributeKind reports a strict stats lookup on an absent kind
func IsUnknownAttributeKind(err error) bool { return hasCode(err, CodeUnknownAttributeKind) }

func IsTemplateLoad(err error) bool     { return hasCode(err, CodeTemplateLoad) }
func IsTextureComposite(err error) bool { return hasCode(err, CodeTextureComposite) }
