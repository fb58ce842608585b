package resolutions

// result is the outcome of an edit that can miss its target: either the
// value it produced, or the reason nothing was found.
type result[T any] struct {
	value  T
	found  bool
	reason string
}

func success[T any](v T) result[T] {
	return result[T]{value: v, found: true}
}

func missing[T any](reason string) result[T] {
	return result[T]{reason: reason}
}

// NotFoundError is reported for a missing target when strict errors are
// enabled.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	return e.Reason
}

// Extensions tags the error in the response's errors list.
func (e *NotFoundError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": "NOT_FOUND",
	}
}
