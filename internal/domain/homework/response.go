// internal/domain/homework/response.go
package homework

import (
	"encoding/json"
	"fmt"
)

const (
	homeworksKey   = "homeworks"
	currentDateKey = "current_date"
)

// ExtractHomeworks validates the decoded API body and returns the list stored
// under "homeworks". An empty list is valid.
func ExtractHomeworks(body any) ([]any, error) {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, body)
	}

	raw, ok := obj[homeworksKey]
	if !ok {
		return nil, ErrEmptyResponse
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, want a list", ErrUnexpectedShape, homeworksKey, raw)
	}
	return list, nil
}

// CurrentDate returns the server-side cursor from the body, if present and numeric.
func CurrentDate(body any) (int64, bool) {
	obj, ok := body.(map[string]any)
	if !ok {
		return 0, false
	}

	switch v := obj[currentDateKey].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
