package apimodels

// AnalysisResult is the shape requested from the model.
type AnalysisResult struct {
	SchemaTitle string         `json:"schema_title" jsonschema_description:"Title of the schema, taken from its title or generated from its purpose."`
	Fields      []FieldSummary `json:"fields" jsonschema_description:"One entry per top-level key of the schema's root properties, in order."`
}

type FieldSummary struct {
	FieldName         string          `json:"field_name"`
	Summary           string          `json:"summary" jsonschema_description:"One or two sentences on the purpose and content of the field."`
	Subfields         []string        `json:"subfields"`
	RequiredSubfields []string        `json:"required_subfields"`
	Datatypes         []DatatypeEntry `json:"datatypes,omitempty"`
}

type DatatypeEntry struct {
	Field    string `json:"field"`
	Datatype string `json:"datatype" jsonschema:"enum=str,enum=int,enum=obj,enum=float,enum=list,enum=bool,enum=other"`
}

// SchemaInfo is what could be read from the input without validating it.
type SchemaInfo struct {
	ValidJSON  bool     `json:"validJson"`
	Title      string   `json:"title,omitempty"`
	Properties []string `json:"properties,omitempty"`
}
