package generate

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractArray_BareArray(t *testing.T) {
	raw := `[{"poll_phrase": "Who always shares their snacks?"}, {"poll_phrase": "Who naps in class?"}]`

	items, attErr := ExtractArray(raw)
	if attErr != nil {
		t.Fatalf("Expected success, got %v", attErr)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	var direct []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &direct); err != nil {
		t.Fatalf("Failed to parse fixture: %v", err)
	}
	for i := range items {
		if string(items[i]) != string(direct[i]) {
			t.Errorf("Item %d: expected %s, got %s", i, direct[i], items[i])
		}
	}
}

func TestExtractArray_SurroundingProse(t *testing.T) {
	raw := `Sure! [{"a":1}] Hope that helps`

	items, attErr := ExtractArray(raw)
	if attErr != nil {
		t.Fatalf("Expected success, got %v", attErr)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if string(items[0]) != `{"a":1}` {
		t.Errorf("Expected {\"a\":1}, got %s", items[0])
	}
}

func TestExtractArray_CodeFence(t *testing.T) {
	raw := "```json\n[{\"id\": 1, \"question\": \"q\"}]\n```"

	items, attErr := ExtractArray(raw)
	if attErr != nil {
		t.Fatalf("Expected success, got %v", attErr)
	}
	if len(items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(items))
	}
}

func TestExtractArray_ObjectWrapped(t *testing.T) {
	raw := `{"result": [{"a":1},{"a":2}]}`

	items, attErr := ExtractArray(raw)
	if attErr != nil {
		t.Fatalf("Expected success, got %v", attErr)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if string(items[0]) != `{"a":1}` || string(items[1]) != `{"a":2}` {
		t.Errorf("Unexpected items: %s, %s", items[0], items[1])
	}
}

func TestExtractArray_ObjectWrappedSkipsNonArrayValues(t *testing.T) {
	raw := `{"title": "Daily quiz", "count": 5, "questions": [{"id": 1}]}`

	items, attErr := ExtractArray(raw)
	if attErr != nil {
		t.Fatalf("Expected success, got %v", attErr)
	}
	if len(items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(items))
	}
}

func TestExtractArray_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind FailKind
	}{
		{"empty string", "", KindEmptyResponse},
		{"whitespace only", "  \n\t ", KindEmptyResponse},
		{"plain prose", "I cannot generate that for you.", KindExtractionFailed},
		{"object without array", `{"message": "ok", "count": 3}`, KindNoArrayFound},
		{"object with nested object only", `{"data": {"id": 1}}`, KindNoArrayFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, attErr := ExtractArray(tc.raw)
			if attErr == nil {
				t.Fatalf("Expected failure, got %d items", len(items))
			}
			if attErr.Kind != tc.kind {
				t.Errorf("Expected kind %s, got %s", tc.kind, attErr.Kind)
			}
		})
	}
}

func TestExtractArray_FailureDetailTruncated(t *testing.T) {
	raw := strings.Repeat("x", 500)

	_, attErr := ExtractArray(raw)
	if attErr == nil {
		t.Fatal("Expected failure")
	}
	if len(attErr.Detail) > 100 {
		t.Errorf("Expected detail capped at 100 chars, got %d", len(attErr.Detail))
	}
}

func TestExtractArray_FailureDetailStaysValidUTF8(t *testing.T) {
	raw := "죄송해요. " + strings.Repeat("오늘은 질문을 만들 수 없어요. ", 5)

	_, attErr := ExtractArray(raw)
	if attErr == nil {
		t.Fatal("Expected failure")
	}
	if len(attErr.Detail) > 100 {
		t.Errorf("Expected detail capped at 100 bytes, got %d", len(attErr.Detail))
	}
	if !utf8.ValidString(attErr.Detail) {
		t.Errorf("Expected detail to be valid UTF-8, got %q", attErr.Detail)
	}
}
