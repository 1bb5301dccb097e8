package palette

import "strings"

// Color is one entry of the header colour selector.
type Color struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DefaultName is the header colour of a freshly created widget.
const DefaultName = "Light Green"

var colors = []Color{
	{Name: "Red", Value: "#EF4444"},
	{Name: "Yellow", Value: "#F59E0B"},
	{Name: "Green", Value: "#10B981"},
	{Name: "Blue", Value: "#3B82F6"},
	{Name: "Indigo", Value: "#6366F1"},
	{Name: "Purple", Value: "#8B5CF6"},
	{Name: "Pink", Value: "#EC4899"},
	{Name: "Light Gray", Value: "#9CA3AF"},
	{Name: "Light Red", Value: "#F87171"},
	{Name: "Light Yellow", Value: "#FBBF24"},
	{Name: "Light Green", Value: "#34D399"},
	{Name: "Light Blue", Value: "#60A5FA"},
	{Name: "Light Indigo", Value: "#818CF8"},
	{Name: "Light Purple", Value: "#A78BFA"},
	{Name: "Light Pink", Value: "#F472B6"},
}

// All returns the palette in display order.
func All() []Color {
	out := make([]Color, len(colors))
	copy(out, colors)
	return out
}

func Default() Color {
	c, _ := ByName(DefaultName)
	return c
}

func ByName(name string) (Color, bool) {
	for _, c := range colors {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}

// ByValue looks a colour up by its hex value, ignoring case.
func ByValue(value string) (Color, bool) {
	for _, c := range colors {
		if strings.EqualFold(c.Value, value) {
			return c, true
		}
	}
	return Color{}, false
}
