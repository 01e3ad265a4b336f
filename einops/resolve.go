package einops

import (
	"github.com/gomlx/tensorshape/shape"
)

// Bindings maps a bound axis name to its resolved size.
type Bindings map[string]int

// MatchInput runs common steps 1-3 against the input side
// of a pattern: it binds every simple axis and composite factor to a
// concrete size, and returns the dims consumed by the pattern's ellipsis
// (if any). axesMap supplies user-given sizes for composite factors that
// can't be inferred from the input shape alone.
func MatchInput(side Side, inputDims []int, axesMap map[string]int) (Bindings, []int, error) {
	nonEllipsis := 0
	hasEllipsis := false
	for _, atom := range side.Atoms {
		if _, ok := atom.(Ellipsis); ok {
			hasEllipsis = true
			continue
		}
		nonEllipsis++
	}

	ellipsisCount := 0
	if hasEllipsis {
		ellipsisCount = len(inputDims) - nonEllipsis
		if ellipsisCount < 0 {
			return nil, nil, shape.NewError(shape.PatternRankMismatch,
				"pattern requires at least %d dims, input has rank %d", nonEllipsis, len(inputDims))
		}
	} else if nonEllipsis != len(inputDims) {
		return nil, nil, shape.NewError(shape.PatternRankMismatch,
			"pattern has %d axes on its input side, input has rank %d", nonEllipsis, len(inputDims))
	}

	bindings := Bindings{}
	var ellipsisDims []int
	pos := 0
	for _, atom := range side.Atoms {
		switch a := atom.(type) {
		case Axis:
			if pos >= len(inputDims) {
				return nil, nil, shape.NewError(shape.PatternRankMismatch, "pattern consumes more axes than input rank %d", len(inputDims))
			}
			bindings[a.Name] = inputDims[pos]
			pos++
		case Singleton:
			pos++
		case Ellipsis:
			ellipsisDims = append(ellipsisDims, inputDims[pos:pos+ellipsisCount]...)
			pos += ellipsisCount
		case Composite:
			if pos >= len(inputDims) {
				return nil, nil, shape.NewError(shape.PatternRankMismatch, "pattern consumes more axes than input rank %d", len(inputDims))
			}
			if err := resolveComposite(a, inputDims[pos], axesMap, bindings); err != nil {
				return nil, nil, err
			}
			pos++
		}
	}
	return bindings, ellipsisDims, nil
}

// resolveComposite binds every factor inside a composite atom against the
// matched input dimension, inferring at most one unknown factor.
func resolveComposite(c Composite, dim int, axesMap map[string]int, bindings Bindings) error {
	unknownIdx := -1
	knownProduct := 1
	sizes := make([]int, len(c.Atoms))
	for i, atom := range c.Atoms {
		switch a := atom.(type) {
		case Singleton:
			sizes[i] = 1
			knownProduct *= 1
		case Axis:
			if size, ok := axesMap[a.Name]; ok {
				sizes[i] = size
				knownProduct *= size
				continue
			}
			if unknownIdx != -1 {
				return shape.NewError(shape.CompositeDoesNotDivide,
					"composite axis has more than one unresolved factor without an explicit size; provide one via the axes map")
			}
			unknownIdx = i
		default:
			return shape.NewError(shape.CompositeDoesNotDivide, "composite axes may only contain identifiers or '1'")
		}
	}

	if unknownIdx != -1 {
		if knownProduct == 0 || dim%knownProduct != 0 {
			return shape.NewError(shape.CompositeDoesNotDivide,
				"composite factors %v do not evenly divide matched dimension %d", c.Atoms, dim)
		}
		sizes[unknownIdx] = dim / knownProduct
	} else {
		product := 1
		for _, sz := range sizes {
			product *= sz
		}
		if product != dim {
			return shape.NewError(shape.CompositeDoesNotDivide,
				"composite factors %v multiply to %d, matched dimension is %d", c.Atoms, product, dim)
		}
	}

	for i, atom := range c.Atoms {
		if a, ok := atom.(Axis); ok {
			bindings[a.Name] = sizes[i]
		}
	}
	return nil
}

// EmitOutput walks the output side and produces its concrete dimensions
// (step 4). allowNewAxes controls whether an output
// identifier with no existing binding is permitted (true for repeat,
// false for rearrange/reduce); when permitted, its size must come from
// axesMap.
func EmitOutput(side Side, bindings Bindings, ellipsisDims []int, axesMap map[string]int, allowNewAxes bool) ([]int, error) {
	var dims []int
	for _, atom := range side.Atoms {
		switch a := atom.(type) {
		case Axis:
			size, err := resolveOutputAxis(a.Name, bindings, axesMap, allowNewAxes)
			if err != nil {
				return nil, err
			}
			dims = append(dims, size)
		case Singleton:
			dims = append(dims, 1)
		case Ellipsis:
			dims = append(dims, ellipsisDims...)
		case Composite:
			product := 1
			for _, inner := range a.Atoms {
				switch ia := inner.(type) {
				case Axis:
					size, err := resolveOutputAxis(ia.Name, bindings, axesMap, allowNewAxes)
					if err != nil {
						return nil, err
					}
					product *= size
				case Singleton:
					product *= 1
				}
			}
			dims = append(dims, product)
		}
	}
	return dims, nil
}

func resolveOutputAxis(name string, bindings Bindings, axesMap map[string]int, allowNewAxes bool) (int, error) {
	if size, ok := bindings[name]; ok {
		return size, nil
	}
	if !allowNewAxes {
		return 0, shape.NewError(shape.UnknownAxisInOutput,
			"output identifier %q does not appear on the pattern's input side", name)
	}
	if size, ok := axesMap[name]; ok {
		bindings[name] = size
		return size, nil
	}
	return 0, shape.NewError(shape.NewAxisRequiresSize,
		"new output identifier %q requires a size in the axes map", name)
}

// IdentifierSet collects every Axis name used anywhere in side, including
// inside composites, used to compare input/output coverage.
func IdentifierSet(side Side) map[string]bool {
	names := map[string]bool{}
	var walk func([]Atom)
	walk = func(atoms []Atom) {
		for _, atom := range atoms {
			switch a := atom.(type) {
			case Axis:
				names[a.Name] = true
			case Composite:
				walk(a.Atoms)
			}
		}
	}
	walk(side.Atoms)
	return names
}
