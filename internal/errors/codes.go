package errors

// Code classifies an error
type Code string

// Generic codes
const (
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
)

// Item engine codes
const (
	CodeUnknownAttributeKind Code = "UNKNOWN_ATTRIBUTE_KIND"
	CodeTemplateLoad         Code = "TEMPLATE_LOAD"
	CodeTextureComposite     Code = "TEXTURE_COMPOSITE"
)

func (c Code) String() string {
	return string(c)
}
