package story

import "encoding/json"

// GfStory is the serialized story document: opaque character records plus
// the ordered line sequence. Line ids are unique within a story and are
// never reused while the document stays loaded.
type GfStory struct {
	Characters []json.RawMessage `json:"characters"`
	Lines      []Line            `json:"lines"`
}

// New returns an empty story that serializes with empty arrays rather
// than nulls.
func New() *GfStory {
	return &GfStory{
		Characters: []json.RawMessage{},
		Lines:      []Line{},
	}
}

func (s *GfStory) UnmarshalJSON(data []byte) error {
	var raw struct {
		Characters []json.RawMessage `json:"characters"`
		Lines      []json.RawMessage `json:"lines"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Characters = raw.Characters
	if s.Characters == nil {
		s.Characters = []json.RawMessage{}
	}
	s.Lines = make([]Line, 0, len(raw.Lines))
	for _, entry := range raw.Lines {
		line, err := decodeLine(entry)
		if err != nil {
			return err
		}
		s.Lines = append(s.Lines, line)
	}
	return nil
}

// Append adds a line to the end of the story.
func (s *GfStory) Append(line Line) {
	s.Lines = append(s.Lines, line)
}

// Find returns the line with the given id, or nil when absent.
func (s *GfStory) Find(id string) Line {
	for _, line := range s.Lines {
		if line.LineID() == id {
			return line
		}
	}
	return nil
}

// Remove deletes the line with the given id, preserving order. The id is
// retired permanently; the allocator never hands it out again.
func (s *GfStory) Remove(id string) bool {
	for i, line := range s.Lines {
		if line.LineID() == id {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return true
		}
	}
	return false
}
