package apimodels

const (
	KindStructured = "structured"
	KindRaw        = "raw"
)

type AnalysisResponse struct {
	// Kind is "structured" when Result is set, "raw" when only Raw is
	Kind string `json:"kind"`

	// The parsed analysis
	Result *AnalysisResult `json:"result,omitempty"`

	// Model output that did not come back as structured JSON
	Raw string `json:"raw,omitempty"`

	// What was read from the input schema
	Schema SchemaInfo `json:"schema"`

	// Metadata about the analysis
	Metadata AnalysisMetadata `json:"metadata"`
}

type AnalysisMetadata struct {
	// Time taken for analysis
	Duration string `json:"duration"`

	// Model used for analysis
	Model string `json:"model"`

	// Whether per-subfield datatypes were requested
	Datatypes bool `json:"datatypes"`

	// Tokens used in analysis
	TokensUsed int64 `json:"tokensUsed"`
}

type ModelsResponse struct {
	Models  []string `json:"models"`
	Default string   `json:"default"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
