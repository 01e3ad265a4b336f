// Package optypes defines OpType, the tag identifying which operation a
// StorageTransformation describes.
package optypes

import (
	"fmt"

	"github.com/gomlx/tensorshape/internal/utils"
)

// OpType enumerates every operation the catalog supports.
type OpType int

const (
	Invalid OpType = iota

	// Unary elementwise ops.
	Neg
	Abs
	Sign
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Exp
	Log
	Sqrt
	Square
	Floor
	Ceil
	Round
	LogicalNot

	// Binary elementwise ops.
	Add
	Sub
	Mul
	Div
	Mod
	Pow
	Min
	Max
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	LogicalAnd
	LogicalOr

	// Matmul.
	MatMul

	// View ops.
	Reshape
	Flatten
	Squeeze
	Unsqueeze
	Transpose
	Permute
	Slice

	// Copy-or-view ops.
	Expand
	Tile

	// Reductions.
	Sum
	Mean
	ReduceMax
	ReduceMin
	Prod

	// Einops.
	Rearrange
	EinopsReduce
	Repeat

	// Last is a counter marker, not a real op.
	Last
)

var opNames = [...]string{
	Invalid: "Invalid",
	Neg: "Neg",
	Abs: "Abs",
	Sign: "Sign",
	Sin: "Sin",
	Cos: "Cos",
	Tan: "Tan",
	Asin: "Asin",
	Acos: "Acos",
	Atan: "Atan",
	Exp: "Exp",
	Log: "Log",
	Sqrt: "Sqrt",
	Square: "Square",
	Floor: "Floor",
	Ceil: "Ceil",
	Round: "Round",
	LogicalNot: "LogicalNot",
	Add: "Add",
	Sub: "Sub",
	Mul: "Mul",
	Div: "Div",
	Mod: "Mod",
	Pow: "Pow",
	Min: "Min",
	Max: "Max",
	Eq: "Eq",
	Ne: "Ne",
	Lt: "Lt",
	Le: "Le",
	Gt: "Gt",
	Ge: "Ge",
	LogicalAnd: "LogicalAnd",
	LogicalOr: "LogicalOr",
	MatMul: "MatMul",
	Reshape: "Reshape",
	Flatten: "Flatten",
	Squeeze: "Squeeze",
	Unsqueeze: "Unsqueeze",
	Transpose: "Transpose",
	Permute: "Permute",
	Slice: "Slice",
	Expand: "Expand",
	Tile: "Tile",
	Sum: "Sum",
	Mean: "Mean",
	ReduceMax: "ReduceMax",
	ReduceMin: "ReduceMin",
	Prod: "Prod",
	Rearrange: "Rearrange",
	EinopsReduce: "EinopsReduce",
	Repeat: "Repeat",
	Last: "Last",
}

// String returns the op's Go identifier name.
func (op OpType) String() string {
	if int(op) < 0 || int(op) >= len(opNames) || opNames[op] == "" {
		return fmt.Sprintf("OpType(%d)", int(op))
	}
	return opNames[op]
}

// tagMappings overrides the default snake_case derivation for ops whose
// catalog tag differs from a straight case conversion of the name.
var tagMappings = map[OpType]string{
	MatMul: "matmul",
	ReduceMax: "max",
	ReduceMin: "min",
	EinopsReduce: "reduce",
}

// Tag returns the op_tag string attached to a StorageTransformation: the
// catalog entry name (e.g. "add", "logical_not", "rearrange"), falling
// back to a snake_case conversion of the Go identifier when no override
// applies.
func (op OpType) Tag() string {
	if tag, ok := tagMappings[op]; ok {
		return tag
	}
	return utils.ToSnakeCase(op.String())
}
