package story

import (
	"encoding/json"
	"fmt"
)

// LineType discriminates the line variants in a story document.
type LineType string

const (
	LineText   LineType = "text"
	LineScene  LineType = "scene"
	LineOption LineType = "option"
)

// SceneKind identifies what a scene line changes.
type SceneKind string

const (
	SceneBackground SceneKind = "background"
	SceneAudio      SceneKind = "audio"
	SceneSE         SceneKind = "se"
)

// Line is the closed union over the three line variants. All lines carry a
// stable string id unique within their story.
type Line interface {
	LineID() string
	Type() LineType

	sealed()
}

// TextLine is a spoken or narrated passage.
type TextLine struct {
	ID            string          `json:"id"`
	Narrator      string          `json:"narrator"`
	Remote        map[string]bool `json:"remote"`
	Text          string          `json:"text"`
	NarratorColor string          `json:"narratorColor"`
	Sprites       []string        `json:"sprites"`
}

// SceneLine swaps a background, music track, or sound effect.
type SceneLine struct {
	ID      string    `json:"id"`
	Scene   SceneKind `json:"scene"`
	Media   string    `json:"media"`
	Style   string    `json:"style"`
	Classes []string  `json:"classes,omitempty"`
}

// Option is a single branch choice: label and destination reference.
type Option struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// OptionLine presents branch choices to the reader.
type OptionLine struct {
	ID      string   `json:"id"`
	Options []Option `json:"options"`
}

func (l *TextLine) LineID() string   { return l.ID }
func (l *TextLine) Type() LineType   { return LineText }
func (l *TextLine) sealed()          {}
func (l *SceneLine) LineID() string  { return l.ID }
func (l *SceneLine) Type() LineType  { return LineScene }
func (l *SceneLine) sealed()         {}
func (l *OptionLine) LineID() string { return l.ID }
func (l *OptionLine) Type() LineType { return LineOption }
func (l *OptionLine) sealed()        {}

// defaultNarratorColor is the color assigned to freshly created text lines.
const defaultNarratorColor = "#ffffff"

// NewTextLine constructs the default line template: an empty text line with
// a freshly allocated id.
func NewTextLine(alloc *Allocator) *TextLine {
	return &TextLine{
		ID:            alloc.Next(),
		Narrator:      "",
		Remote:        map[string]bool{},
		Text:          "",
		NarratorColor: defaultNarratorColor,
		Sprites:       []string{},
	}
}

func (l *TextLine) MarshalJSON() ([]byte, error) {
	type alias TextLine
	return json.Marshal(struct {
		Type LineType `json:"type"`
		*alias
	}{LineText, (*alias)(l)})
}

func (l *SceneLine) MarshalJSON() ([]byte, error) {
	type alias SceneLine
	return json.Marshal(struct {
		Type LineType `json:"type"`
		*alias
	}{LineScene, (*alias)(l)})
}

func (l *OptionLine) MarshalJSON() ([]byte, error) {
	type alias OptionLine
	return json.Marshal(struct {
		Type LineType `json:"type"`
		*alias
	}{LineOption, (*alias)(l)})
}

// decodeLine picks the concrete variant for a serialized line by its
// discriminant field.
func decodeLine(raw json.RawMessage) (Line, error) {
	var tag struct {
		Type LineType `json:"type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, fmt.Errorf("decode line tag: %w", err)
	}
	switch tag.Type {
	case LineText:
		line := new(TextLine)
		if err := json.Unmarshal(raw, line); err != nil {
			return nil, fmt.Errorf("decode text line: %w", err)
		}
		return line, nil
	case LineScene:
		line := new(SceneLine)
		if err := json.Unmarshal(raw, line); err != nil {
			return nil, fmt.Errorf("decode scene line: %w", err)
		}
		return line, nil
	case LineOption:
		line := new(OptionLine)
		if err := json.Unmarshal(raw, line); err != nil {
			return nil, fmt.Errorf("decode option line: %w", err)
		}
		return line, nil
	default:
		return nil, fmt.Errorf("decode line: unknown type %q", tag.Type)
	}
}
