package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swaggerParam struct {
	Name   string         `json:"name"`
	In     string         `json:"in"`
	Type   string         `json:"type"`
	Schema map[string]any `json:"schema"`
}

type swaggerResponse struct {
	Schema map[string]any `json:"schema"`
}

type swaggerOperation struct {
	Consumes   []string                   `json:"consumes"`
	Parameters []swaggerParam             `json:"parameters"`
	Responses  map[string]swaggerResponse `json:"responses"`
}

type swaggerDoc struct {
	BasePath    string                                 `json:"basePath"`
	Paths       map[string]map[string]swaggerOperation `json:"paths"`
	Definitions map[string]json.RawMessage             `json:"definitions"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()
	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	return doc
}

func TestQuestionUploadUsesFormData(t *testing.T) {
	doc := readDoc(t)
	assert.Equal(t, "/api", doc.BasePath)

	for _, method := range []string{"post", "put"} {
		path := "/exams/{title}/questions"
		if method == "put" {
			path += "/{id}"
		}
		op, ok := doc.Paths[path][method]
		require.True(t, ok, "%s %s", method, path)
		assert.Equal(t, []string{"multipart/form-data"}, op.Consumes)

		form := map[string]string{}
		for _, p := range op.Parameters {
			if p.In == "formData" {
				form[p.Name] = p.Type
			}
		}
		assert.Equal(t, map[string]string{
			"question": "string", "options": "string", "correctAnswer": "integer", "image": "file",
		}, form, "%s %s", method, path)
	}
}

func TestJSONWritesDeclareBodySchemas(t *testing.T) {
	doc := readDoc(t)
	cases := map[string]string{
		"/exams/{title}/date-time": "post",
		"/notifications":           "post",
		"/notifications/{id}":      "put",
		"/syllabus":                "post",
		"/syllabus/{id}":           "put",
		"/exam-qa":                 "post",
		"/concerns":                "post",
		"/candidates/{id}/answers": "post",
	}
	for path, method := range cases {
		op, ok := doc.Paths[path][method]
		require.True(t, ok, "%s %s", method, path)

		var ref string
		for _, p := range op.Parameters {
			if p.In == "body" {
				ref, _ = p.Schema["$ref"].(string)
			}
		}
		require.NotEmpty(t, ref, "%s %s has no body schema", method, path)
		assert.Contains(t, doc.Definitions, ref[len("#/definitions/"):])
	}
}

func TestSuccessResponsesReferenceDefinitions(t *testing.T) {
	doc := readDoc(t)
	for path, ops := range doc.Paths {
		for method, op := range ops {
			ok, found := op.Responses["200"]
			require.True(t, found, "%s %s", method, path)
			if ref, isRef := ok.Schema["$ref"].(string); isRef {
				assert.Contains(t, doc.Definitions, ref[len("#/definitions/"):], "%s %s", method, path)
			}
		}
	}
	assert.Contains(t, doc.Definitions, "dto.ScheduleRequest")
	assert.Contains(t, doc.Definitions, "dto.TodayResultsResponse")
	assert.Contains(t, doc.Definitions, "model.ExamResult")
}
