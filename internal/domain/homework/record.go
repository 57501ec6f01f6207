// internal/domain/homework/record.go
package homework

import "fmt"

const (
	nameKey   = "homework_name"
	statusKey = "status"
)

// Record is one homework entry as returned by the API.
type Record map[string]any

// AsRecord converts an element of the homeworks list into a Record.
func AsRecord(v any) (Record, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: homework is %T, want an object", ErrUnexpectedShape, v)
	}
	return Record(obj), nil
}

// Name returns homework_name, or "" when it is absent or not a string.
func (r Record) Name() string {
	s, _ := r[nameKey].(string)
	return s
}

// Status returns the raw status code, or "" when it is absent or not a string.
func (r Record) Status() string {
	s, _ := r[statusKey].(string)
	return s
}

// Render builds the notification text for a status change.
func Render(r Record) (string, error) {
	name := r.Name()
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, nameKey)
	}

	raw, ok := r[statusKey]
	if !ok || raw == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingField, statusKey)
	}

	verdict, ok := Verdict(r.Status())
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownStatus, raw)
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}
