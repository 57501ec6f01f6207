package homework

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdict(t *testing.T) {
	t.Run("known statuses", func(t *testing.T) {
		for _, status := range []Status{StatusApproved, StatusReviewing, StatusRejected} {
			v, ok := Verdict(string(status))
			assert.True(t, ok, status)
			assert.NotEmpty(t, v, status)
		}
	})

	t.Run("lookup is stable", func(t *testing.T) {
		first, _ := Verdict("approved")
		second, _ := Verdict("approved")
		assert.Equal(t, first, second)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, ok := Verdict("pending")
		assert.False(t, ok)
	})
}

func TestExtractHomeworks(t *testing.T) {
	t.Run("returns the list", func(t *testing.T) {
		body := map[string]any{"homeworks": []any{map[string]any{"homework_name": "X"}}}
		list, err := ExtractHomeworks(body)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("empty list is valid", func(t *testing.T) {
		list, err := ExtractHomeworks(map[string]any{"homeworks": []any{}})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("body is not an object", func(t *testing.T) {
		_, err := ExtractHomeworks([]any{})
		assert.ErrorIs(t, err, ErrNotAnObject)
	})

	t.Run("missing homeworks key", func(t *testing.T) {
		_, err := ExtractHomeworks(map[string]any{"current_date": 1})
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("homeworks is not a list", func(t *testing.T) {
		_, err := ExtractHomeworks(map[string]any{"homeworks": map[string]any{}})
		assert.ErrorIs(t, err, ErrUnexpectedShape)
	})
}

func TestCurrentDate(t *testing.T) {
	tests := []struct {
		name string
		body any
		want int64
		ok   bool
	}{
		{name: "json number", body: map[string]any{"current_date": json.Number("2000")}, want: 2000, ok: true},
		{name: "float", body: map[string]any{"current_date": float64(2000)}, want: 2000, ok: true},
		{name: "missing", body: map[string]any{"homeworks": []any{}}},
		{name: "not a number", body: map[string]any{"current_date": "soon"}},
		{name: "not an object", body: "oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CurrentDate(tt.body)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender(t *testing.T) {
	t.Run("renders name and verdict", func(t *testing.T) {
		msg, err := Render(Record{"homework_name": "X", "status": "reviewing"})
		require.NoError(t, err)
		assert.Equal(t, `Изменился статус проверки работы "X". Работа взята на проверку ревьюером.`, msg)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Render(Record{"status": "approved"})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := Render(Record{"homework_name": "", "status": "approved"})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("missing status", func(t *testing.T) {
		_, err := Render(Record{"homework_name": "X"})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := Render(Record{"homework_name": "X", "status": "lost"})
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})
}

func TestAsRecord(t *testing.T) {
	rec, err := AsRecord(map[string]any{"homework_name": "X", "status": "approved"})
	require.NoError(t, err)
	assert.Equal(t, "X", rec.Name())
	assert.Equal(t, "approved", rec.Status())

	_, err = AsRecord("X")
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}

func TestReportStateEquality(t *testing.T) {
	a := ReportState{Name: "X", Message: "approved"}
	b := ReportState{Name: "X", Message: "approved"}
	assert.True(t, a == b)
	assert.False(t, a == ReportState{Name: "X", Message: "rejected"})
	assert.True(t, ReportState{}.IsZero())
	assert.False(t, a.IsZero())
}
