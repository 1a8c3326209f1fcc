// Package render turns analysis outcomes into view models for the UI.
package render

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/sozercan/schema-helper/apimodels"
	"github.com/sozercan/schema-helper/internal/analyzer"
)

const (
	ColorGreen  = "green"
	ColorRed    = "red"
	ColorBlue   = "blue"
	ColorOrange = "orange"
	ColorYellow = "yellow"
	ColorViolet = "violet"
	ColorGray   = "gray"

	// UnknownDatatype is used for subfields the model gave no datatype for.
	UnknownDatatype = "unknown"

	requiredColor = ColorBlue
	optionalColor = ColorGray
)

var datatypeOrder = []string{"str", "obj", "int", "float", "list", "bool"}

var datatypeColors = map[string]string{
	"str":   ColorGreen,
	"obj":   ColorRed,
	"int":   ColorBlue,
	"float": ColorOrange,
	"list":  ColorYellow,
	"bool":  ColorViolet,
}

// DatatypeColor maps any datatype to a color; unrecognized ones are gray.
func DatatypeColor(datatype string) string {
	if c, ok := datatypeColors[datatype]; ok {
		return c
	}
	return ColorGray
}

type Badge struct {
	Label    string
	Datatype string
	Color    string
	Required bool
}

// Indicator is a filled circle for required subfields, an open one otherwise.
func (b Badge) Indicator() string {
	if b.Required {
		return "●"
	}
	return "○"
}

type Card struct {
	Name          string
	Summary       string
	RequiredCount int
	TotalCount    int
	Badges        []Badge
}

func (c Card) RequiredLabel() string {
	return fmt.Sprintf("Required: %d/%d", c.RequiredCount, c.TotalCount)
}

// View is what the result panel shows. Exactly one of Cards or Raw is used.
type View struct {
	Title     string
	Cards     []Card
	Raw       string
	IsRaw     bool
	Datatypes bool
}

type LegendEntry struct {
	Label string
	Color string
}

// Legend lists datatype colors. With datatypes off it lists the two-color
// required/optional scheme instead.
func Legend(datatypes bool) []LegendEntry {
	if !datatypes {
		return []LegendEntry{
			{Label: "required", Color: requiredColor},
			{Label: "optional", Color: optionalColor},
		}
	}
	entries := make([]LegendEntry, 0, len(datatypeOrder)+1)
	for _, dt := range datatypeOrder {
		entries = append(entries, LegendEntry{Label: dt, Color: datatypeColors[dt]})
	}
	return append(entries, LegendEntry{Label: "other", Color: ColorGray})
}

func Render(outcome analyzer.Outcome, datatypes bool) View {
	switch o := outcome.(type) {
	case analyzer.Structured:
		v := View{
			Title:     o.Result.SchemaTitle,
			Cards:     make([]Card, 0, len(o.Result.Fields)),
			Datatypes: datatypes,
		}
		for _, f := range o.Result.Fields {
			v.Cards = append(v.Cards, renderCard(f, datatypes))
		}
		return v
	case analyzer.RawText:
		return View{Raw: RawJSON(o.Text), IsRaw: true, Datatypes: datatypes}
	default:
		return View{Datatypes: datatypes}
	}
}

// renderCard ignores required names that are not subfields and datatype
// entries for names that are not subfields.
func renderCard(f apimodels.FieldSummary, datatypes bool) Card {
	isRequired := make(map[string]bool, len(f.RequiredSubfields))
	for _, r := range f.RequiredSubfields {
		isRequired[r] = true
	}
	types := make(map[string]string, len(f.Datatypes))
	for _, dt := range f.Datatypes {
		if _, seen := types[dt.Field]; !seen {
			types[dt.Field] = dt.Datatype
		}
	}

	card := Card{
		Name:       f.FieldName,
		Summary:    f.Summary,
		TotalCount: len(f.Subfields),
		Badges:     make([]Badge, 0, len(f.Subfields)),
	}
	counted := make(map[string]bool, len(f.Subfields))
	for _, sub := range f.Subfields {
		req := isRequired[sub]
		if req && !counted[sub] {
			card.RequiredCount++
			counted[sub] = true
		}

		b := Badge{Label: sub, Required: req}
		if datatypes {
			b.Datatype = UnknownDatatype
			if dt, ok := types[sub]; ok {
				b.Datatype = dt
			}
			b.Color = DatatypeColor(b.Datatype)
		} else if req {
			b.Color = requiredColor
		} else {
			b.Color = optionalColor
		}
		card.Badges = append(card.Badges, b)
	}
	return card
}

// RawJSON strips a surrounding markdown code fence, and anything after the
// closing fence, then pretty-prints the body when it is valid JSON. Anything else is returned trimmed.
func RawJSON(text string) string {
	body := strings.TrimSpace(text)
	if strings.HasPrefix(body, "```") {
		body = strings.TrimPrefix(body, analyzer.FenceMarker)
		body = strings.TrimPrefix(body, "```")
		if end := strings.LastIndex(body, "```"); end >= 0 {
			body = body[:end]
		}
		body = strings.TrimSpace(body)
	}
	if gjson.Valid(body) {
		return strings.TrimSpace(string(pretty.Pretty([]byte(body))))
	}
	return body
}
