package errorx

// UnwrapAllError flattens an error tree, the root error first.
func UnwrapAllError(err error) []error {
	if err == nil {
		return nil
	}

	var result []error
	result = append(result, err)

	if unwrapper, ok := err.(interface{ Unwrap() []error }); ok {
		for _, subErr := range unwrapper.Unwrap() {
			result = append(result, UnwrapAllError(subErr)...)
		}
		return result
	}

	if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
		if subErr := unwrapper.Unwrap(); subErr != nil {
			result = append(result, UnwrapAllError(subErr)...)
		}
	}

	return result
}

// GetFirstCustomError returns the first coded error found in the error tree.
func GetFirstCustomError(err error) (CustomError, bool) {
	for _, e := range UnwrapAllError(err) {
		switch v := e.(type) {
		case CustomError:
			return v, true
		case CoreError:
			return v.CustomError(), true
		}
	}
	return CustomError{}, false
}
