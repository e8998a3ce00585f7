package lessons

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// courseSchemaURL identifies the course schema inside the compiler.
const courseSchemaURL = "schema://course.json"

// CourseSchema is the JSON schema every course document must satisfy.
var CourseSchema = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "object",
	"properties": map[string]any{
		"schema_version": map[string]any{
			"type":        "string",
			"description": "Semantic version of the course format, e.g. v1.0.0",
		},
		"title":    map[string]any{"type": "string", "minLength": 1},
		"language": map[string]any{"type": "string", "minLength": 2},
		"paths": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"name":        map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"lessons": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
				},
				"required":             []any{"id", "name", "lessons"},
				"additionalProperties": false,
			},
		},
		"lessons": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    lessonSchema,
		},
	},
	"required":             []any{"schema_version", "title", "language", "paths", "lessons"},
	"additionalProperties": false,
}

var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "minLength": 1},
		"title": map[string]any{"type": "string"},
		"vocabulary": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"word":           map[string]any{"type": "string", "minLength": 1},
					"translation":    map[string]any{"type": "string", "minLength": 1},
					"part_of_speech": map[string]any{"type": "string"},
				},
				"required":             []any{"word", "translation"},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    questionSchema,
		},
	},
	"required":             []any{"id", "title", "questions"},
	"additionalProperties": false,
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{
			"type": "string",
			"enum": []any{"multiple_choice", "translation", "fill_in_blank"},
		},
		"prompt": map[string]any{"type": "string", "minLength": 1},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
		"choices": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items":    map[string]any{"type": "string", "minLength": 1},
		},
		"correct_index": map[string]any{"type": "integer", "minimum": 0},
		"source":        map[string]any{"type": "string"},
		"answer":        map[string]any{"type": "string", "minLength": 1},
		"accepted": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		},
	},
	"required":             []any{"type", "prompt", "difficulty"},
	"additionalProperties": false,
	"allOf": []any{
		requiredWhen("multiple_choice", "choices", "correct_index"),
		requiredWhen("translation", "source", "accepted"),
		requiredWhen("fill_in_blank", "answer"),
	},
}

// requiredWhen makes fields required for questions of the given type.
func requiredWhen(questionType string, fields ...string) map[string]any {
	req := make([]any, len(fields))
	for i, f := range fields {
		req[i] = f
	}
	return map[string]any{
		"if": map[string]any{
			"properties": map[string]any{"type": map[string]any{"const": questionType}},
		},
		"then": map[string]any{"required": req},
	}
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledCourseSchema compiles CourseSchema once.
func compiledCourseSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants plain decoded JSON, not Go ints and slices.
		raw, err := json.Marshal(CourseSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(courseSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(courseSchemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateDocument checks a decoded JSON document against CourseSchema.
func validateDocument(doc any) error {
	schema, err := compiledCourseSchema()
	if err != nil {
		return fmt.Errorf("course schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
