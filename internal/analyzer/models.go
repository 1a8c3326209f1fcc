package analyzer

import "slices"

// Models are the selectable models, least to most capable.
var Models = []string{
	"gemini-2.0-flash-lite",
	"gemini-2.0-flash",
	"gemini-2.5-flash-lite",
	"gemini-2.5-flash",
}

const DefaultModel = "gemini-2.5-flash"

func IsKnownModel(name string) bool {
	return slices.Contains(Models, name)
}
