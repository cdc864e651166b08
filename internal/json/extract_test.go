package json

import "testing"

func TestExtractPlainObject(t *testing.T) {
	got, err := Extract(`{"intent": "CONVERSATIONAL", "confidence": 0.9}`)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != `{"intent": "CONVERSATIONAL", "confidence": 0.9}` {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtractFencedObject(t *testing.T) {
	response := "```json\n{\"title\": \"Add tests\"}\n```"
	got, err := Extract(response)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != `{"title": "Add tests"}` {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtractObjectEmbeddedInProse(t *testing.T) {
	response := `Sure, here is the classification: {"intent": "PROJECT_QUERY"} Let me know if that helps.`
	got, err := Extract(response)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != `{"intent": "PROJECT_QUERY"}` {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtractTopLevelArray(t *testing.T) {
	response := "Here are the suggestions:\n[{\"title\": \"a\"}, {\"title\": \"b\"}]"
	got, err := Extract(response)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != `[{"title": "a"}, {"title": "b"}]` {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtractNoJSON(t *testing.T) {
	if _, err := Extract("no structured content here"); err == nil {
		t.Error("expected error for response without JSON")
	}
}

func TestUnmarshalTyped(t *testing.T) {
	type item struct {
		Title string `json:"title"`
	}
	items, err := Unmarshal[[]item]("```json\n[{\"title\": \"x\"}]\n```")
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(items) != 1 || items[0].Title != "x" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestUnmarshalTypeMismatch(t *testing.T) {
	type item struct {
		Title string `json:"title"`
	}
	if _, err := Unmarshal[[]item](`{"title": "not an array"}`); err == nil {
		t.Error("expected error unmarshaling object into slice")
	}
}
