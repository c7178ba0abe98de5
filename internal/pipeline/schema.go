package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionBatchSchema only fixes the outer shape. Bad elements are dropped one by one.
const questionBatchSchema = `{
  "type": "array",
  "minItems": 1
}`

// evaluationSchema describes a response that needs no repair at all.
const evaluationSchema = `{
  "type": "object",
  "required": ["score", "feedback", "strengths", "improvements", "confidenceTips"],
  "properties": {
    "score": {"type": "number", "minimum": 0, "maximum": 10},
    "feedback": {"type": "string", "minLength": 1},
    "strengths": {"$ref": "#/$defs/tips"},
    "improvements": {"$ref": "#/$defs/tips"},
    "confidenceTips": {"$ref": "#/$defs/tips"}
  },
  "$defs": {
    "tips": {
      "type": "array",
      "minItems": 3,
      "maxItems": 3,
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

var (
	questionBatchValidator = mustCompileSchema("questions", questionBatchSchema)
	evaluationValidator    = mustCompileSchema("evaluation", evaluationSchema)
)

func mustCompileSchema(name, definition string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("parse %s schema: %v", name, err))
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, doc); err != nil {
		panic(fmt.Sprintf("add %s schema: %v", name, err))
	}
	compiled, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %v", name, err))
	}
	return compiled
}

// parsePayload decodes an extracted payload into generic JSON values
func parsePayload(payload string) (any, error) {
	var parsed any
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, &StageError{Kind: ParseFailed, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return parsed, nil
}

// validateQuestionBatch rejects anything that is not a non-empty array
func validateQuestionBatch(parsed any) ([]any, error) {
	if err := questionBatchValidator.Validate(parsed); err != nil {
		return nil, &StageError{Kind: ValidationFailed, Err: fmt.Errorf("question batch: %w", err)}
	}
	items, _ := parsed.([]any)
	return items, nil
}

// checkEvaluation reports whether an evaluation object needs no repair.
// The result is diagnostic; evaluations are repaired either way.
func checkEvaluation(parsed any) error {
	return evaluationValidator.Validate(parsed)
}
