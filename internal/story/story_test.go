package story_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/1ekc/gfl-pages/internal/story"
)

func TestNewTextLineDefaults(t *testing.T) {
	alloc := story.NewAllocator()
	alloc.Seed(story.New())

	line := story.NewTextLine(alloc)
	if line.Type() != story.LineText {
		t.Fatalf("expected type text, got %q", line.Type())
	}
	if line.ID == "" {
		t.Fatal("expected allocated id")
	}
	if line.NarratorColor != "#ffffff" {
		t.Fatalf("unexpected narrator color %q", line.NarratorColor)
	}
	if line.Narrator != "" || line.Text != "" {
		t.Fatalf("expected empty narrator and text, got %+v", line)
	}
	if line.Remote == nil || len(line.Remote) != 0 {
		t.Fatalf("expected empty remote flags, got %#v", line.Remote)
	}
	if line.Sprites == nil || len(line.Sprites) != 0 {
		t.Fatalf("expected empty sprites, got %#v", line.Sprites)
	}
}

func TestStoryRoundTrip(t *testing.T) {
	s := story.New()
	s.Characters = append(s.Characters, json.RawMessage(`{"name":"M4A1"}`))
	s.Append(&story.TextLine{
		ID:            "1",
		Narrator:      "M4A1",
		Remote:        map[string]bool{"cg": true},
		Text:          "...",
		NarratorColor: "#ffccaa",
		Sprites:       []string{"sprite:m4a1.png"},
	})
	s.Append(&story.SceneLine{
		ID:      "2",
		Scene:   story.SceneBackground,
		Media:   "background:cafe.png",
		Style:   "fade",
		Classes: []string{"dim"},
	})
	s.Append(&story.OptionLine{
		ID:      "3",
		Options: []story.Option{{Key: "Go left", Value: "4"}},
	})

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal story: %v", err)
	}

	var decoded story.GfStory
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal story: %v", err)
	}
	if len(decoded.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(decoded.Lines))
	}

	text, ok := decoded.Lines[0].(*story.TextLine)
	if !ok {
		t.Fatalf("expected first line to decode as text, got %T", decoded.Lines[0])
	}
	if text.Narrator != "M4A1" || !text.Remote["cg"] {
		t.Fatalf("text line lost fields: %+v", text)
	}

	scene, ok := decoded.Lines[1].(*story.SceneLine)
	if !ok {
		t.Fatalf("expected second line to decode as scene, got %T", decoded.Lines[1])
	}
	if scene.Scene != story.SceneBackground || scene.Media != "background:cafe.png" {
		t.Fatalf("scene line lost fields: %+v", scene)
	}

	option, ok := decoded.Lines[2].(*story.OptionLine)
	if !ok {
		t.Fatalf("expected third line to decode as option, got %T", decoded.Lines[2])
	}
	if len(option.Options) != 1 || option.Options[0].Key != "Go left" {
		t.Fatalf("option line lost fields: %+v", option)
	}
}

func TestMarshalWritesLiteralTypeTags(t *testing.T) {
	s := story.New()
	s.Append(&story.TextLine{ID: "1"})
	s.Append(&story.SceneLine{ID: "2", Scene: story.SceneAudio})
	s.Append(&story.OptionLine{ID: "3"})

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal story: %v", err)
	}
	for _, tag := range []string{`"type":"text"`, `"type":"scene"`, `"type":"option"`} {
		if !strings.Contains(string(data), tag) {
			t.Fatalf("expected serialized story to contain %s, got %s", tag, data)
		}
	}
}

func TestUnmarshalRejectsUnknownLineType(t *testing.T) {
	payload := `{"characters":[],"lines":[{"type":"dance","id":"1"}]}`
	var decoded story.GfStory
	if err := json.Unmarshal([]byte(payload), &decoded); err == nil {
		t.Fatal("expected error for unknown line type")
	}
}

func TestEmptyStoryMarshalsArrays(t *testing.T) {
	data, err := json.Marshal(story.New())
	if err != nil {
		t.Fatalf("marshal story: %v", err)
	}
	if string(data) != `{"characters":[],"lines":[]}` {
		t.Fatalf("unexpected empty story shape: %s", data)
	}
}

func TestFindAndRemove(t *testing.T) {
	s := story.New()
	s.Append(&story.TextLine{ID: "1"})
	s.Append(&story.TextLine{ID: "2"})
	s.Append(&story.TextLine{ID: "3"})

	if got := s.Find("2"); got == nil || got.LineID() != "2" {
		t.Fatalf("expected to find line 2, got %#v", got)
	}
	if !s.Remove("2") {
		t.Fatal("expected Remove to report success")
	}
	if s.Remove("2") {
		t.Fatal("expected second Remove to report absence")
	}
	if got := s.Find("2"); got != nil {
		t.Fatalf("expected line 2 gone, got %#v", got)
	}
	if len(s.Lines) != 2 || s.Lines[0].LineID() != "1" || s.Lines[1].LineID() != "3" {
		t.Fatalf("unexpected line order after removal: %#v", s.Lines)
	}
}
