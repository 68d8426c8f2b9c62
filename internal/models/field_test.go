package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Notes Nullable[string] `json:"notes"`
	}

	tests := []struct {
		name      string
		input     string
		wantSet   bool
		wantValid bool
		wantValue string
	}{
		{name: "absent key", input: `{}`, wantSet: false},
		{name: "explicit null", input: `{"notes":null}`, wantSet: true, wantValid: false},
		{name: "value", input: `{"notes":"vegan"}`, wantSet: true, wantValid: true, wantValue: "vegan"},
		{name: "empty string is a value", input: `{"notes":""}`, wantSet: true, wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			assert.Equal(t, tt.wantSet, p.Notes.Set)
			assert.Equal(t, tt.wantValid, p.Notes.Valid)
			assert.Equal(t, tt.wantValue, p.Notes.Value)
		})
	}
}

func TestNullable_Apply(t *testing.T) {
	stored := "keep"

	t.Run("absent leaves value", func(t *testing.T) {
		dst := &stored
		Nullable[string]{}.Apply(&dst)
		require.NotNil(t, dst)
		assert.Equal(t, "keep", *dst)
	})

	t.Run("null clears value", func(t *testing.T) {
		dst := &stored
		Null[string]().Apply(&dst)
		assert.Nil(t, dst)
	})

	t.Run("value replaces without aliasing", func(t *testing.T) {
		dst := &stored
		n := Value("new")
		n.Apply(&dst)
		require.NotNil(t, dst)
		assert.Equal(t, "new", *dst)
		assert.Equal(t, "keep", stored)
	})
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Completed Optional[bool] `json:"completed"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.False(t, p.Completed.Set)

	require.NoError(t, json.Unmarshal([]byte(`{"completed":false}`), &p))
	assert.True(t, p.Completed.Set)
	assert.False(t, p.Completed.Value)

	err := json.Unmarshal([]byte(`{"completed":null}`), &payload{})
	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "completed", typeErr.Field)

	err = json.Unmarshal([]byte(`{"completed":"yes"}`), &payload{})
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "completed", typeErr.Field)
}

func TestOptional_Apply(t *testing.T) {
	title := "Book venue"
	Optional[string]{}.Apply(&title)
	assert.Equal(t, "Book venue", title)

	Some("Book caterer").Apply(&title)
	assert.Equal(t, "Book caterer", title)
}

func TestUnderlying(t *testing.T) {
	assert.Nil(t, Optional[string]{}.Underlying())
	assert.Nil(t, Nullable[string]{}.Underlying())
	assert.Nil(t, Null[string]().Underlying())

	v, ok := Some("x").Underlying().(*string)
	require.True(t, ok)
	assert.Equal(t, "x", *v)

	m, ok := Value(MustMoney("10.5")).Underlying().(*Money)
	require.True(t, ok)
	assert.Equal(t, "10.50", m.String())
}
