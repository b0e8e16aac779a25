package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleArgs struct {
	Title    string  `json:"title" description:"Book title"`
	Author   string  `json:"author" description:"Book author"`
	Category *string `json:"category,omitempty" description:"Optional category"`
	hidden   int     // unexported, skipped by the generator
}

func TestCreateSchema(t *testing.T) {
	schema := CreateSchema(sampleArgs{})
	props, ok := schema["properties"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, props, "title")
	assert.Contains(t, props, "author")
	assert.Contains(t, props, "category")
	assert.NotContains(t, props, "hidden")

	title, _ := props["title"].(map[string]any)
	assert.Equal(t, "string", title["type"])
	assert.Equal(t, "Book title", title["description"])

	// pointer + omitempty fields are optional
	req, _ := schema["required"].([]string)
	assert.ElementsMatch(t, []string{"title", "author"}, req)
}

func TestCreateSchemaNonStruct(t *testing.T) {
	schema := CreateSchema(42)
	props, _ := schema["properties"].(map[string]any)
	assert.Empty(t, props)
}

func TestValidateParameters(t *testing.T) {
	schema := CreateSchema(sampleArgs{})

	assert.NoError(t, ValidateParameters(map[string]any{"title": "Dune", "author": "Frank Herbert"}, schema))
	assert.NoError(t, ValidateParameters(map[string]any{"title": "Dune", "author": "X", "category": "sci-fi"}, schema))

	err := ValidateParameters(map[string]any{"title": "Dune"}, schema)
	assert.Error(t, err)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "author", vErr.Field)

	err = ValidateParameters(map[string]any{"title": 7, "author": "X"}, schema)
	assert.Error(t, err)
}

func TestValidateParametersJSONRoundTrip(t *testing.T) {
	// schemas decoded from JSON carry []any for required and float64 numbers
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{"type": "integer"},
		},
		"required": []any{"id"},
	}
	assert.NoError(t, ValidateParameters(map[string]any{"id": float64(3)}, schema))
	assert.Error(t, ValidateParameters(map[string]any{"id": 3.5}, schema))
	assert.Error(t, ValidateParameters(map[string]any{}, schema))
}
