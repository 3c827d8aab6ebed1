// Package types provides core type definitions for the Data-Transform SDK.
package types

import "fmt"

// TransformerConfig contains configuration settings for a transformer.
type TransformerConfig struct {
	// Name is the unique identifier for the transformer instance.
	Name string `json:"name"`

	// Type categorizes the transformer (e.g., "identity", "mapping").
	Type string `json:"type"`

	// EnableStatistics controls whether per-operation statistics are
	// collected during take and emit processing.
	EnableStatistics bool `json:"enable_statistics"`

	// Settings holds transformer-specific configuration values.
	Settings map[string]interface{} `json:"settings"`
}

// Validate checks the configuration for errors.
// Returns a slice of all validation errors found, or nil if valid.
func (c *TransformerConfig) Validate() []error {
	var errs []error

	if !isValidIdentifier(c.Name) {
		errs = append(errs, fmt.Errorf("invalid transformer name %q: must contain only alphanumerics, hyphens, and underscores", c.Name))
	}
	if !isValidIdentifier(c.Type) {
		errs = append(errs, fmt.Errorf("invalid transformer type %q: must contain only alphanumerics, hyphens, and underscores", c.Type))
	}

	return errs
}

// isValidIdentifier reports whether s is empty or consists solely of
// alphanumerics, hyphens, and underscores. Empty is allowed because
// constructors supply defaults.
func isValidIdentifier(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

// TransformerStatistics tracks performance metrics for a transformer.
type TransformerStatistics struct {
	// ChunksConsumed is the number of chunks dequeued and handed to the
	// chunk handler.
	ChunksConsumed uint64

	// ItemsProduced is the number of completed items returned by take
	// operations.
	ItemsProduced uint64

	// MarkersPassed is the number of control markers passed through
	// unparsed.
	MarkersPassed uint64

	// ItemsEmitted is the number of items serialized via Emit.
	ItemsEmitted uint64

	// ChunksEmitted is the number of output chunks produced via Emit.
	ChunksEmitted uint64

	// FeedCount is the number of feed operations performed.
	FeedCount uint64

	// TakeCount is the number of take operations performed,
	// including those that produced nothing.
	TakeCount uint64

	// ProcessingTimeUs is the cumulative take processing time in microseconds.
	ProcessingTimeUs uint64

	// AverageProcessingTimeUs is the average take processing time in microseconds.
	AverageProcessingTimeUs float64

	// MaxProcessingTimeUs is the maximum observed take processing time.
	MaxProcessingTimeUs uint64

	// MinProcessingTimeUs is the minimum observed take processing time.
	MinProcessingTimeUs uint64

	// CurrentBufferDepth is the number of elements currently buffered.
	CurrentBufferDepth int

	// PeakBufferDepth is the maximum number of elements ever buffered.
	PeakBufferDepth int
}

// ErrorCode identifies a category of transformer error.
type ErrorCode int

const (
	// AbstractTransformer indicates an attempt to construct the base
	// transformer without a chunk handler. This is a programming error
	// in the concrete transformer, not a runtime data condition.
	AbstractTransformer ErrorCode = iota

	// NotImplemented indicates a required extension point was not supplied.
	NotImplemented

	// InvalidConfiguration indicates a configuration value failed validation.
	InvalidConfiguration

	// TransformerDisposed indicates an operation on a closed transformer.
	TransformerDisposed

	// TransformerAlreadyExists indicates a name collision during
	// registration or stack assembly.
	TransformerAlreadyExists

	// TransformerNotFound indicates a lookup for an unknown transformer.
	TransformerNotFound

	// StackEmpty indicates a removal from a stack with no layers.
	StackEmpty
)

// String returns a human-readable string representation of the ErrorCode.
func (c ErrorCode) String() string {
	switch c {
	case AbstractTransformer:
		return "AbstractTransformer"
	case NotImplemented:
		return "NotImplemented"
	case InvalidConfiguration:
		return "InvalidConfiguration"
	case TransformerDisposed:
		return "TransformerDisposed"
	case TransformerAlreadyExists:
		return "TransformerAlreadyExists"
	case TransformerNotFound:
		return "TransformerNotFound"
	case StackEmpty:
		return "StackEmpty"
	default:
		return fmt.Sprintf("ErrorCode(%d)", c)
	}
}

// description returns the default message for the code.
func (c ErrorCode) description() string {
	switch c {
	case AbstractTransformer:
		return "abstract transformer cannot be instantiated without a chunk handler"
	case NotImplemented:
		return "required extension point not implemented"
	case InvalidConfiguration:
		return "invalid transformer configuration"
	case TransformerDisposed:
		return "transformer has been closed"
	case TransformerAlreadyExists:
		return "transformer with this name already exists"
	case TransformerNotFound:
		return "transformer not found"
	case StackEmpty:
		return "transformer stack is empty"
	default:
		return "unknown transformer error"
	}
}

// TransformerError is an error with an associated code, suitable for
// classification by callers.
type TransformerError struct {
	// Code classifies the error.
	Code ErrorCode

	// Message optionally adds context to the code's default description.
	Message string
}

// Error implements the error interface.
func (e *TransformerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code.description(), e.Message)
	}
	return e.Code.description()
}

// TransformError creates an error for the given code.
func TransformError(code ErrorCode) error {
	return &TransformerError{Code: code}
}

// TransformErrorf creates an error for the given code with a formatted message.
func TransformErrorf(code ErrorCode, format string, args ...interface{}) error {
	return &TransformerError{Code: code, Message: fmt.Sprintf(format, args...)}
}
