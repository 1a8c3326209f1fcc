package apimodels

type AnalysisRequest struct {
	// Schema is the raw JSON Schema text, passed to the model unchanged
	Schema string `json:"schema"`

	// Model is one of the supported model names; empty selects the default
	Model string `json:"model,omitempty"`

	// Datatypes overrides the server's datatype inference setting
	Datatypes *bool `json:"datatypes,omitempty"`
}
