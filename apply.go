package jsonquery

// Apply evaluates prog against doc and returns the resulting Document, per
// §4.4 of the specification. It never mutates doc; the returned Document is
// independently owned. Any non-fatal diagnostics produced during evaluation
// (currently only "Truncate is not last") are returned as warnings rather
// than being written anywhere directly — callers that want them surfaced
// (the cli package does, to stderr) can range over the returned slice.
func Apply(prog *Program, doc Document) (Document, []Warning, error) {
	var warnings []Warning
	if len(prog.Chains) == 1 {
		result, err := applyChain(prog.Chains[0], doc, &warnings)
		if err != nil {
			return Document{}, warnings, err
		}
		return result, warnings, nil
	}
	results := make([]Document, len(prog.Chains))
	for i, chain := range prog.Chains {
		result, err := applyChain(chain, doc, &warnings)
		if err != nil {
			return Document{}, warnings, err
		}
		results[i] = result
	}
	return NewArray(results), warnings, nil
}

func applyChain(chain Chain, doc Document, warnings *[]Warning) (Document, error) {
	return applyStep(chain.Steps, 0, doc, warnings)
}

// applyStep dispatches on the (step, value) pair at steps[pos], then
// continues with steps[pos+1:] ("the remainder") on whatever sub-value the
// step produces. The remainder is threaded as a slice index rather than a
// stateful iterator, per §9 of the specification, so Range/Property/Filter
// can hand the identical remainder to many sub-values without cloning
// iterator state.
func applyStep(steps []Step, pos int, doc Document, warnings *[]Warning) (Document, error) {
	if pos >= len(steps) {
		return doc, nil
	}
	step := steps[pos]
	switch step.Kind {
	case StepAny:
		return applyStep(steps, pos+1, doc, warnings)

	case StepKey:
		if doc.Kind() != KindObject {
			return Document{}, typeError("Key", doc.Kind())
		}
		v, ok := doc.Get(step.Key)
		if !ok {
			return Document{}, notFoundError("Key", doc.Kind(), step.Key)
		}
		return applyStep(steps, pos+1, v, warnings)

	case StepIndex:
		if doc.Kind() != KindArray {
			return Document{}, typeError("Index", doc.Kind())
		}
		n := doc.Len()
		i := step.Index
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return Document{}, outOfRangeError("Index", doc.Kind(), "index out of range")
		}
		return applyStep(steps, pos+1, doc.At(i), warnings)

	case StepRange:
		if doc.Kind() != KindArray {
			return Document{}, typeError("Range", doc.Kind())
		}
		n := doc.Len()
		start, end, err := resolveRange(step, n)
		if err != nil {
			return Document{}, err
		}
		result := make([]Document, 0, end-start+1)
		for i := start; i <= end; i++ {
			r, err := applyStep(steps, pos+1, doc.At(i), warnings)
			if err != nil {
				return Document{}, err
			}
			result = append(result, r)
		}
		return NewArray(result), nil

	case StepProperty:
		if doc.Kind() != KindObject {
			return Document{}, typeError("Property", doc.Kind())
		}
		pairs := make([]Pair, 0, len(step.Props))
		for _, key := range step.Props {
			v, ok := doc.Get(key)
			if !ok {
				return Document{}, notFoundError("Property", doc.Kind(), key)
			}
			r, err := applyStep(steps, pos+1, v, warnings)
			if err != nil {
				return Document{}, err
			}
			pairs = append(pairs, Pair{Key: key, Value: r})
		}
		// Duplicate keys in step.Props are permitted by the grammar; the
		// first-wins rule is applied here, by NewObject, not by skipping
		// duplicates before evaluating them.
		return NewObject(pairs), nil

	case StepFilter:
		if doc.Kind() != KindArray {
			return Document{}, typeError("Filter", doc.Kind())
		}
		var result []Document
		for _, elem := range doc.Elements() {
			if elem.Kind() != KindObject {
				continue
			}
			v, ok := elem.Get(step.Key)
			if !ok {
				continue
			}
			r, err := applyStep(steps, pos+1, v, warnings)
			if err != nil {
				return Document{}, err
			}
			result = append(result, r)
		}
		return NewArray(result), nil

	case StepTruncate:
		if pos != len(steps)-1 {
			*warnings = append(*warnings, Warning{Message: "Truncate is not the last step of its chain"})
		}
		switch doc.Kind() {
		case KindObject:
			return NewObject(nil), nil
		case KindArray:
			return NewArray(nil), nil
		default:
			return doc, nil
		}

	case StepFlatten:
		if doc.Kind() != KindArray {
			return Document{}, typeError("Flatten", doc.Kind())
		}
		var result []Document
		for _, elem := range doc.Elements() {
			r, err := applyStep(steps, pos+1, elem, warnings)
			if err != nil {
				return Document{}, err
			}
			if r.Kind() == KindArray {
				result = append(result, r.Elements()...)
			}
		}
		return NewArray(result), nil

	default:
		return Document{}, typeError(step.Kind.String(), doc.Kind())
	}
}

// resolveRange computes the inclusive [start, end] bounds of a Range step
// against an array of length n, applying the open-question decisions of §9:
// negative bounds count from the end of the array (like Index), and a
// reversed range after resolution is an ApplyError.
func resolveRange(step Step, n int) (start, end int, err error) {
	explicitStart, explicitEnd := step.Start != nil, step.End != nil

	start = 0
	if explicitStart {
		start = *step.Start
		if start < 0 {
			start += n
		}
		if start < 0 || start >= n {
			return 0, 0, outOfRangeError("Range", KindArray, "range out of bounds")
		}
	}

	end = n - 1
	if explicitEnd {
		end = *step.End
		if end < 0 {
			end += n
		}
		if end < 0 || end >= n {
			return 0, 0, outOfRangeError("Range", KindArray, "range out of bounds")
		}
	}

	// `[]`/`[:]`, the all-open range, always selects the whole array
	// (including the empty array), per Range totality in the
	// specification's testable properties.
	if !explicitStart && !explicitEnd {
		return start, end, nil
	}
	if start > end {
		return 0, 0, outOfRangeError("Range", KindArray, "range out of bounds")
	}
	return start, end, nil
}

func typeError(step string, k Kind) *ApplyError {
	return &ApplyError{Step: step, ValKind: k}
}

func notFoundError(step string, k Kind, key string) *ApplyError {
	return &ApplyError{Step: step, ValKind: k, Message: "key \"" + key + "\" not found"}
}

func outOfRangeError(step string, k Kind, msg string) *ApplyError {
	return &ApplyError{Step: step, ValKind: k, Message: msg}
}
