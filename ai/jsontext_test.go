package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	t.Run("json fence", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	})

	t.Run("bare fence", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, StripFences("```\n{\"a\":1}\n```"))
	})

	t.Run("no fence", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, StripFences("  {\"a\":1}  "))
	})
}

func TestRepairJSON(t *testing.T) {
	t.Run("missing opening quote on key", func(t *testing.T) {
		assert.Equal(t, `{"concept": "x", "type": "y"}`, RepairJSON(`{"concept": "x", type": "y"}`))
	})

	t.Run("valid json untouched", func(t *testing.T) {
		in := `{"concept": "x", "type": "y"}`
		assert.Equal(t, in, RepairJSON(in))
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("clean json", func(t *testing.T) {
		var p payload
		require.NoError(t, DecodeJSON(`{"name": "age"}`, &p))
		assert.Equal(t, "age", p.Name)
	})

	t.Run("fenced json", func(t *testing.T) {
		var p payload
		require.NoError(t, DecodeJSON("```json\n{\"name\": \"age\"}\n```", &p))
		assert.Equal(t, "age", p.Name)
	})

	t.Run("truncated object", func(t *testing.T) {
		var m map[string]map[string]string
		// Model ran out of tokens before closing the outer object.
		require.NoError(t, DecodeJSON(`{"col": {"semantic_meaning": "an id"}`, &m))
		assert.Equal(t, "an id", m["col"]["semantic_meaning"])
	})

	t.Run("truncated array inside object", func(t *testing.T) {
		var m map[string][]string
		// Needs "]" then "}", in that order.
		require.NoError(t, DecodeJSON(`{"synonyms": ["id", "user_id"`, &m))
		assert.Equal(t, []string{"id", "user_id"}, m["synonyms"])
	})

	t.Run("delimiters inside strings are ignored", func(t *testing.T) {
		var m map[string]string
		require.NoError(t, DecodeJSON(`{"note": "values like {x} and [y]"`, &m))
		assert.Equal(t, "values like {x} and [y]", m["note"])
	})

	t.Run("hopeless input", func(t *testing.T) {
		var p payload
		err := DecodeJSON("this is not json at all", &p)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}
