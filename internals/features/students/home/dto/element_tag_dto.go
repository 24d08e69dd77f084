package dto

type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ElementTag describes an HTML element for the template layer: its content
// and attributes in render order.
type ElementTag struct {
	Content    string      `json:"content"`
	Attributes []Attribute `json:"attributes"`
}

// NewElementTag takes attributes as name/value pairs; a trailing odd name is dropped.
func NewElementTag(content string, nameValues ...string) ElementTag {
	attrs := make([]Attribute, 0, len(nameValues)/2)
	for i := 0; i+1 < len(nameValues); i += 2 {
		attrs = append(attrs, Attribute{Name: nameValues[i], Value: nameValues[i+1]})
	}
	return ElementTag{Content: content, Attributes: attrs}
}

// Attr returns the value of the named attribute, or "" if absent.
func (e ElementTag) Attr(name string) string {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}
