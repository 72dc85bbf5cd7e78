package percent

// Result is the outcome of normalizing one value.
// Exactly one of Normalized and Err is set.
type Result struct {
	// Original is the value exactly as the caller supplied it.
	Original string

	// Normalized is the canonical decimal string, empty on failure.
	Normalized string

	// Err is nil on success.
	Err error
}

// Succeeded builds a successful result.
func Succeeded(original, normalized string) Result {
	return Result{Original: original, Normalized: normalized}
}

// Failed builds a failed result. A nil err is recorded as ErrMalformed so the
// result can never be empty on both sides.
func Failed(original string, err error) Result {
	if err == nil {
		err = ErrMalformed
	}
	return Result{Original: original, Err: err}
}

// Success reports whether the value was normalized.
func (r Result) Success() bool {
	return r.Err == nil
}

// Kind classifies the failure, KindNone on success.
func (r Result) Kind() ErrorKind {
	return KindOf(r.Err)
}

// String returns the normalized value, or the error text on failure.
func (r Result) String() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Normalized
}
