package analyzer

import (
	"bytes"
	"encoding/json"
	"text/template"

	"github.com/sozercan/schema-helper/apimodels"
)

// Prompt is the two-part content sent to the model: the schema text exactly
// as given, then the instructions.
type Prompt struct {
	Schema       string
	Instructions string
}

func (p Prompt) Contents() []string {
	return []string{p.Schema, p.Instructions}
}

func BuildPrompt(schema string, datatypes bool) Prompt {
	return Prompt{
		Schema:       schema,
		Instructions: instructions(datatypes),
	}
}

const exampleSchema = `{
  "title": "User API Schema",
  "type": "object",
  "properties": {
    "user_info": {
      "type": "object",
      "description": "General information about the user.",
      "properties": {
        "user_id": { "type": "string" },
        "email": { "type": "string" }
      },
      "required": ["user_id", "email"]
    },
    "preferences": {
      "type": "object",
      "description": "User's settings and preferences.",
      "properties": {
        "theme": { "type": "string", "default": "light" },
        "notifications": { "type": "boolean" }
      }
    }
  }
}`

var exampleResult = apimodels.AnalysisResult{
	SchemaTitle: "User API Schema",
	Fields: []apimodels.FieldSummary{
		{
			FieldName:         "user_info",
			Summary:           "Holds the core details of a user, namely the unique identifier and the contact email.",
			Subfields:         []string{"user_id", "email"},
			RequiredSubfields: []string{"user_id", "email"},
			Datatypes: []apimodels.DatatypeEntry{
				{Field: "user_id", Datatype: "str"},
				{Field: "email", Datatype: "str"},
			},
		},
		{
			FieldName:         "preferences",
			Summary:           "Holds the user's settings such as the UI theme and whether notifications are enabled.",
			Subfields:         []string{"theme", "notifications"},
			RequiredSubfields: []string{},
			Datatypes: []apimodels.DatatypeEntry{
				{Field: "theme", Datatype: "str"},
				{Field: "notifications", Datatype: "bool"},
			},
		},
	},
}

var instructionsTmpl = template.Must(template.New("instructions").Parse(
	`You are a data analyst who turns technical JSON Schema documents into a simplified, structured JSON summary. Analyze the schema given above and reply with exactly one valid JSON object.

The JSON object MUST follow this structure:

1. The root object has two properties: ` + "`schema_title`" + ` and ` + "`fields`" + `.

2. ` + "`schema_title`" + ` is a string. Use the schema's ` + "`title`" + ` if it has one. Otherwise write a short, human-readable title based on the schema's purpose or root ` + "`description`" + `, falling back to a generic but fitting title such as "User Profile Schema".

3. ` + "`fields`" + ` is an array with one object for each top-level key in the schema's root ` + "`properties`" + `, in the order they appear.

4. Each object in ` + "`fields`" + ` has these properties:
    * ` + "`field_name`" + `: string, the top-level key.
    * ` + "`summary`" + `: string, one or two sentences describing the purpose and content of the field.
    * ` + "`subfields`" + `: array of strings, the names of every sub-field inside the field.
    * ` + "`required_subfields`" + `: array of strings, the sub-fields marked as required inside the field. Use an empty array ` + "`[]`" + ` when none are required.
{{- if .Datatypes}}
    * ` + "`datatypes`" + `: array of objects, one per sub-field, each with ` + "`field`" + ` (the sub-field name) and ` + "`datatype`" + `. The datatype is one of: str, int, obj, float, list, bool, other.
{{- end}}

IMPORTANT: reply with the raw JSON object only. No introduction, no explanation, no Markdown formatting or code fences. The reply must start with ` + "`{`" + ` and end with ` + "`}`" + `.

Example input schema:
{{.ExampleSchema}}

Example output:
{{.ExampleOutput}}
`))

func instructions(datatypes bool) string {
	var buf bytes.Buffer
	// The template and its data are fixed, so execution cannot fail.
	_ = instructionsTmpl.Execute(&buf, struct {
		Datatypes     bool
		ExampleSchema string
		ExampleOutput string
	}{
		Datatypes:     datatypes,
		ExampleSchema: exampleSchema,
		ExampleOutput: exampleOutput(datatypes),
	})
	return buf.String()
}

func exampleOutput(datatypes bool) string {
	ex := exampleResult
	if !datatypes {
		ex.Fields = make([]apimodels.FieldSummary, len(exampleResult.Fields))
		for i, f := range exampleResult.Fields {
			f.Datatypes = nil
			ex.Fields[i] = f
		}
	}
	out, _ := json.MarshalIndent(ex, "", "  ")
	return string(out)
}
