package shape

import "fmt"

// Classifier tags the kind of failure a shape-algebra function returned.
// Callers can switch on Classifier without parsing the message string.
type Classifier int

const (
	// NoError is the zero value; Error values with this classifier are never returned.
	NoError Classifier = iota

	ShapeBroadcast
	ShapeReshape
	ShapeMatmulInner
	ShapeMatmulBatch
	AxisOutOfRange
	AxisDuplicate
	SliceZeroStep
	SliceIndexOutOfRange
	SqueezeNonUnit
	ExpandNonSingleton
	LayoutNonContiguous
	RankOverflow
	SizeOverflow
	InvalidDType

	// Einops-specific classifiers; kept in the same enum since callers
	// across the engine all switch on one ShapeError type.
	EmptyPattern
	MultipleArrows
	UnmatchedParen
	DuplicateIdentifier
	MultipleEllipses
	UnknownAxisInOutput
	NewAxisRequiresSize
	CompositeDoesNotDivide
	PatternRankMismatch

	// Symbolic-overlay classifiers.
	ConstraintViolation
	UnresolvedDim
	ResolutionDivergent
)

var classifierNames = map[Classifier]string{
	NoError: "NoError",
	ShapeBroadcast: "ShapeBroadcast",
	ShapeReshape: "ShapeReshape",
	ShapeMatmulInner: "ShapeMatmulInner",
	ShapeMatmulBatch: "ShapeMatmulBatch",
	AxisOutOfRange: "AxisOutOfRange",
	AxisDuplicate: "AxisDuplicate",
	SliceZeroStep: "SliceZeroStep",
	SliceIndexOutOfRange: "SliceIndexOutOfRange",
	SqueezeNonUnit: "SqueezeNonUnit",
	ExpandNonSingleton: "ExpandNonSingleton",
	LayoutNonContiguous: "LayoutNonContiguous",
	RankOverflow: "RankOverflow",
	SizeOverflow: "SizeOverflow",
	InvalidDType: "InvalidDType",
	EmptyPattern: "EmptyPattern",
	MultipleArrows: "MultipleArrows",
	UnmatchedParen: "UnmatchedParen",
	DuplicateIdentifier: "DuplicateIdentifier",
	MultipleEllipses: "MultipleEllipses",
	UnknownAxisInOutput: "UnknownAxisInOutput",
	NewAxisRequiresSize: "NewAxisRequiresSize",
	CompositeDoesNotDivide: "CompositeDoesNotDivide",
	PatternRankMismatch: "PatternRankMismatch",
	ConstraintViolation: "ConstraintViolation",
	UnresolvedDim: "UnresolvedDim",
	ResolutionDivergent: "ResolutionDivergent",
}

// String implements fmt.Stringer.
func (c Classifier) String() string {
	if name, ok := classifierNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Classifier(%d)", int(c))
}

// Error is the engine's single error type: every shape-algebra,
// layout, operation-catalog, einops and symbolic failure returns one of
// these, tagged with a Classifier so callers never need to parse messages.
type Error struct {
	Classifier Classifier
	Message string

	// Axis names the offending axis (per "offending
	// shapes/axes/values"). Left at -1 when not applicable.
	Axis int

	// Pattern and Pos describe an einops pattern-parse error's source text
	// and position. No constructor in this module fills them in; they stay
	// at their zero values.
	Pattern string
	Pos int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// newError builds an Error with the given classifier and formatted message.
func newError(c Classifier, format string, args ...any) *Error {
	return &Error{Classifier: c, Message: fmt.Sprintf(format, args...), Axis: -1}
}

// newAxisError builds an Error that additionally carries the offending axis.
func newAxisError(c Classifier, axis int, format string, args ...any) *Error {
	return &Error{Classifier: c, Message: fmt.Sprintf(format, args...), Axis: axis}
}

// NewError is newError exported for the engine's other packages (layout,
// einops, symbolic): they raise classifiers that conceptually belong to
// them, but every error still needs to come back as this same *Error type,
// so construction has to live here or be open to them.
func NewError(c Classifier, format string, args ...any) *Error {
	return newError(c, format, args...)
}

// NewAxisError is newAxisError exported; see NewError.
func NewAxisError(c Classifier, axis int, format string, args ...any) *Error {
	return newAxisError(c, axis, format, args...)
}

// ClassifierOf returns the Classifier of err if it is (or wraps) a *Error,
// and NoError otherwise.
func ClassifierOf(err error) Classifier {
	var se *Error
	if errAs(err, &se) {
		return se.Classifier
	}
	return NoError
}

// errAs is a tiny local errors.As to avoid importing the standard errors
// package just for this one call site used by ClassifierOf.
func errAs(err error, target **Error) bool {
	for err != nil {
		if se, ok := err.(*Error); ok {
			*target = se
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
