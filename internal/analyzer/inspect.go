package analyzer

import (
	"github.com/tidwall/gjson"

	"github.com/sozercan/schema-helper/apimodels"
)

// Inspect reads the title and root property names from schema text. It never
// rejects input: text that is not JSON yields a zero SchemaInfo.
func Inspect(schema string) apimodels.SchemaInfo {
	if !gjson.Valid(schema) {
		return apimodels.SchemaInfo{}
	}

	info := apimodels.SchemaInfo{
		ValidJSON: true,
		Title:     gjson.Get(schema, "title").String(),
	}
	props := gjson.Get(schema, "properties")
	if props.IsObject() {
		props.ForEach(func(key, _ gjson.Result) bool {
			info.Properties = append(info.Properties, key.String())
			return true
		})
	}
	return info
}
