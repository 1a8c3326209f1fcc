package analyzer

import (
	"slices"

	"github.com/invopop/jsonschema"

	"github.com/sozercan/schema-helper/apimodels"
)

const responseSchemaName = "analysis_result"

// ResponseSchema describes apimodels.AnalysisResult for structured output.
// Without datatypes the per-subfield datatype list is dropped from the shape.
func ResponseSchema(datatypes bool) *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		ExpandedStruct:            true,
	}
	s := r.Reflect(&apimodels.AnalysisResult{})
	s.Version = ""
	s.ID = ""

	fields, ok := s.Properties.Get("fields")
	if !ok || fields.Items == nil {
		return s
	}
	item := fields.Items
	if datatypes {
		if !slices.Contains(item.Required, "datatypes") {
			item.Required = append(item.Required, "datatypes")
		}
	} else {
		item.Properties.Delete("datatypes")
		item.Required = slices.DeleteFunc(item.Required, func(name string) bool {
			return name == "datatypes"
		})
	}
	return s
}
