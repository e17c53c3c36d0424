package media

import "strings"

// Type partitions the asset tables.
type Type string

const (
	TypeAudio      Type = "audio"
	TypeBackground Type = "background"
	TypeSprite     Type = "sprite"
)

var allTypes = []Type{TypeAudio, TypeBackground, TypeSprite}

// tableNames routes each type to its table. A fixed map rather than
// name concatenation keeps SQL identifiers out of caller control.
var tableNames = map[Type]string{
	TypeAudio:      "media_audio",
	TypeBackground: "media_background",
	TypeSprite:     "media_sprite",
}

// AllTypes returns the ordered list of known media types.
func AllTypes() []Type {
	cp := make([]Type, len(allTypes))
	copy(cp, allTypes)
	return cp
}

// ParseType converts a string into a known Type.
func ParseType(value string) (Type, bool) {
	normalized := Type(strings.ToLower(strings.TrimSpace(value)))
	_, ok := tableNames[normalized]
	return normalized, ok
}

// Media is a stored asset record. Exactly one of Data and Link is set:
// Data for binary payloads, Link for assets hosted elsewhere. Which one a
// record carries is only checked at the point of use.
type Media struct {
	Type Type   `json:"type"`
	Name string `json:"name"`
	Data []byte `json:"-"`
	Link string `json:"link,omitempty"`
}

// IsLink reports whether the record points at an externally hosted asset.
func (m *Media) IsLink() bool {
	return m.Link != ""
}

// Value returns the synthetic URL stored inside story documents.
func (m *Media) Value() string {
	return string(m.Type) + ":" + m.Name
}
