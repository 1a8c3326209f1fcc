package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/schema-helper/apimodels"
	"github.com/sozercan/schema-helper/internal/analyzer"
)

func structured(fields ...apimodels.FieldSummary) analyzer.Outcome {
	return analyzer.Structured{Result: apimodels.AnalysisResult{SchemaTitle: "Title", Fields: fields}}
}

func TestRenderOneCardPerFieldInOrder(t *testing.T) {
	names := []string{"user_info", "preferences", "billing", "audit"}
	fields := make([]apimodels.FieldSummary, 0, len(names))
	for _, n := range names {
		fields = append(fields, apimodels.FieldSummary{FieldName: n, Summary: n + " summary"})
	}

	v := Render(structured(fields...), true)

	assert.False(t, v.IsRaw)
	assert.Equal(t, "Title", v.Title)
	require.Len(t, v.Cards, len(names))
	for i, n := range names {
		assert.Equal(t, n, v.Cards[i].Name)
		assert.Equal(t, n+" summary", v.Cards[i].Summary)
	}
}

func TestRequiredLabel(t *testing.T) {
	v := Render(structured(apimodels.FieldSummary{
		FieldName:         "f",
		Subfields:         []string{"a", "b", "c"},
		RequiredSubfields: []string{"a", "c"},
	}), true)

	require.Len(t, v.Cards, 1)
	assert.Equal(t, "Required: 2/3", v.Cards[0].RequiredLabel())

	badges := v.Cards[0].Badges
	require.Len(t, badges, 3)
	assert.True(t, badges[0].Required)
	assert.False(t, badges[1].Required)
	assert.True(t, badges[2].Required)
	assert.Equal(t, "●", badges[0].Indicator())
	assert.Equal(t, "○", badges[1].Indicator())
}

func TestRequiredOutsideSubfieldsIgnored(t *testing.T) {
	v := Render(structured(apimodels.FieldSummary{
		FieldName:         "f",
		Subfields:         []string{"a", "b"},
		RequiredSubfields: []string{"a", "ghost", "a"},
	}), true)

	require.Len(t, v.Cards, 1)
	card := v.Cards[0]
	assert.Equal(t, "Required: 1/2", card.RequiredLabel())
	require.Len(t, card.Badges, 2)
	assert.Equal(t, []string{"a", "b"}, []string{card.Badges[0].Label, card.Badges[1].Label})
}

func TestDatatypeColors(t *testing.T) {
	tests := map[string]string{
		"str":     ColorGreen,
		"obj":     ColorRed,
		"int":     ColorBlue,
		"float":   ColorOrange,
		"list":    ColorYellow,
		"bool":    ColorViolet,
		"other":   ColorGray,
		"unknown": ColorGray,
		"":        ColorGray,
		"STR":     ColorGray,
		"date":    ColorGray,
	}
	for dt, want := range tests {
		assert.Equal(t, want, DatatypeColor(dt), "datatype %q", dt)
	}
}

func TestBadgeDatatypeLookup(t *testing.T) {
	v := Render(structured(apimodels.FieldSummary{
		FieldName:         "user_info",
		Subfields:         []string{"user_id", "age", "meta", "tags"},
		RequiredSubfields: []string{"user_id"},
		Datatypes: []apimodels.DatatypeEntry{
			{Field: "user_id", Datatype: "str"},
			{Field: "age", Datatype: "int"},
			{Field: "age", Datatype: "float"},
			{Field: "tags", Datatype: "set"},
			{Field: "not_a_subfield", Datatype: "bool"},
		},
	}), true)

	badges := v.Cards[0].Badges
	require.Len(t, badges, 4)

	assert.Equal(t, "str", badges[0].Datatype)
	assert.Equal(t, ColorGreen, badges[0].Color)

	assert.Equal(t, "int", badges[1].Datatype, "first entry wins")
	assert.Equal(t, ColorBlue, badges[1].Color)

	assert.Equal(t, UnknownDatatype, badges[2].Datatype)
	assert.Equal(t, ColorGray, badges[2].Color)

	assert.Equal(t, "set", badges[3].Datatype)
	assert.Equal(t, ColorGray, badges[3].Color)
}

func TestBadgesWithoutDatatypes(t *testing.T) {
	v := Render(structured(apimodels.FieldSummary{
		FieldName:         "f",
		Subfields:         []string{"a", "b"},
		RequiredSubfields: []string{"b"},
		Datatypes:         []apimodels.DatatypeEntry{{Field: "a", Datatype: "str"}},
	}), false)

	badges := v.Cards[0].Badges
	require.Len(t, badges, 2)
	assert.Empty(t, badges[0].Datatype)
	assert.Equal(t, optionalColor, badges[0].Color)
	assert.Equal(t, requiredColor, badges[1].Color)
}

func TestRenderRawText(t *testing.T) {
	fenced := "```json\n{\"schema_title\":\"T\",\"fields\":[]}\n```"

	v := Render(analyzer.RawText{Text: fenced}, true)

	assert.True(t, v.IsRaw)
	assert.Empty(t, v.Cards)
	assert.Empty(t, v.Title)
	assert.Equal(t, "{\n  \"schema_title\": \"T\",\n  \"fields\": []\n}", v.Raw)
}

func TestRawJSON(t *testing.T) {
	assert.Equal(t, "not json at all", RawJSON("```json\nnot json at all\n```"))
	assert.Equal(t, "{\n  \"a\": 1\n}", RawJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, "{\n  \"a\": 1\n}", RawJSON(`  {"a":1}  `))
}

func TestRawJSONDropsTextAfterClosingFence(t *testing.T) {
	got := RawJSON("```json\n{\"a\":1}\n```\nLet me know if you need anything else.")
	assert.Equal(t, "{\n  \"a\": 1\n}", got)
	assert.NotContains(t, got, "```")
}

func TestRenderNilOutcome(t *testing.T) {
	v := Render(nil, true)
	assert.Empty(t, v.Cards)
	assert.False(t, v.IsRaw)
}

func TestLegend(t *testing.T) {
	withTypes := Legend(true)
	require.Len(t, withTypes, 7)
	assert.Equal(t, LegendEntry{Label: "str", Color: ColorGreen}, withTypes[0])
	assert.Equal(t, LegendEntry{Label: "other", Color: ColorGray}, withTypes[6])

	assert.Equal(t, []LegendEntry{
		{Label: "required", Color: requiredColor},
		{Label: "optional", Color: optionalColor},
	}, Legend(false))
}
