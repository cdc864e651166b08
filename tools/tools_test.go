package tools

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/workbenchhq/assist/retrieval"
	"github.com/workbenchhq/assist/workspace"
)

type stubWorkspace struct {
	snippets []workspace.Snippet
	docs     []workspace.Doc
	tasks    []workspace.Task
	err      error

	gotProjectID string
	gotFilter    string
	gotLimit     int
}

func (s *stubWorkspace) Project(ctx context.Context, id string) (workspace.Project, error) {
	return workspace.Project{}, errors.New("not implemented")
}

func (s *stubWorkspace) Task(ctx context.Context, id string) (workspace.Task, error) {
	return workspace.Task{}, errors.New("not implemented")
}

func (s *stubWorkspace) Tasks(ctx context.Context, projectID, titleFilter string, limit int) ([]workspace.Task, error) {
	s.gotProjectID, s.gotFilter, s.gotLimit = projectID, titleFilter, limit
	return s.tasks, s.err
}

func (s *stubWorkspace) Snippets(ctx context.Context, projectID, titleFilter string, limit int) ([]workspace.Snippet, error) {
	s.gotProjectID, s.gotFilter, s.gotLimit = projectID, titleFilter, limit
	return s.snippets, s.err
}

func (s *stubWorkspace) Docs(ctx context.Context, projectID, labelFilter string, limit int) ([]workspace.Doc, error) {
	s.gotProjectID, s.gotFilter, s.gotLimit = projectID, labelFilter, limit
	return s.docs, s.err
}

func (s *stubWorkspace) TaskSnippets(ctx context.Context, taskID string) ([]workspace.Snippet, error) {
	return nil, errors.New("not implemented")
}

func TestForceProjectIDOverwrites(t *testing.T) {
	args := json.RawMessage(`{"projectId":"spoofed","title":"auth"}`)
	forced := ForceProjectID(args, "proj-1")

	var m map[string]interface{}
	if err := json.Unmarshal(forced, &m); err != nil {
		t.Fatalf("unmarshal forced args: %v", err)
	}
	if m["projectId"] != "proj-1" {
		t.Errorf("projectId = %v, want proj-1", m["projectId"])
	}
	if m["title"] != "auth" {
		t.Errorf("title = %v, want auth", m["title"])
	}
}

func TestForceProjectIDMalformedArgs(t *testing.T) {
	forced := ForceProjectID(json.RawMessage(`not json`), "proj-1")

	var m map[string]interface{}
	if err := json.Unmarshal(forced, &m); err != nil {
		t.Fatalf("unmarshal forced args: %v", err)
	}
	if m["projectId"] != "proj-1" {
		t.Errorf("projectId = %v, want proj-1", m["projectId"])
	}
}

func TestSnippetsToolLimitsAndTruncates(t *testing.T) {
	long := strings.Repeat("x", 700)
	store := &stubWorkspace{snippets: []workspace.Snippet{
		{Title: "hash helper", Language: "go", Content: long},
	}}
	tool := NewSnippetsTool(store)

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"projectId":"p1","title":"hash"}`))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if store.gotProjectID != "p1" || store.gotFilter != "hash" || store.gotLimit != 5 {
		t.Errorf("query args = (%q, %q, %d), want (p1, hash, 5)", store.gotProjectID, store.gotFilter, store.gotLimit)
	}
	if !strings.Contains(out, "hash helper") || !strings.Contains(out, "(go)") {
		t.Errorf("missing snippet header in %q", out)
	}
	if strings.Contains(out, strings.Repeat("x", 601)) {
		t.Error("snippet content not truncated to 600 chars")
	}
	if !strings.Contains(out, "...") {
		t.Error("truncated content missing ellipsis")
	}
}

func TestSnippetsToolNoResults(t *testing.T) {
	tool := NewSnippetsTool(&stubWorkspace{})

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"projectId":"p1"}`))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "No snippets found") {
		t.Errorf("want explanatory no-results string, got %q", out)
	}
}

func TestDocsToolLimit(t *testing.T) {
	store := &stubWorkspace{docs: []workspace.Doc{
		{Title: "Runbook", Label: "ops", Content: "restart the worker"},
	}}
	tool := NewDocsTool(store)

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"projectId":"p1","label":"ops"}`))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if store.gotLimit != 3 {
		t.Errorf("limit = %d, want 3", store.gotLimit)
	}
	if !strings.Contains(out, "Runbook") || !strings.Contains(out, "[ops]") {
		t.Errorf("missing doc header in %q", out)
	}
}

func TestTasksToolListsStatus(t *testing.T) {
	store := &stubWorkspace{tasks: []workspace.Task{
		{Title: "Add login", Status: workspace.StatusInProgress, Description: "OAuth flow"},
		{Title: "Fix CI", Status: workspace.StatusTodo},
	}}
	tool := NewTasksTool(store)

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"projectId":"p1"}`))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if store.gotLimit != 15 {
		t.Errorf("limit = %d, want 15", store.gotLimit)
	}
	if !strings.Contains(out, "Add login [IN_PROGRESS]: OAuth flow") {
		t.Errorf("missing task line in %q", out)
	}
	if !strings.Contains(out, "Fix CI [TODO]") {
		t.Errorf("missing task line in %q", out)
	}
}

type stubEvidence struct {
	matches []retrieval.Match
	hits    []retrieval.Document

	gotFilters retrieval.Filters
}

func (s *stubEvidence) VectorSearch(ctx context.Context, query string, k int, filters retrieval.Filters) ([]retrieval.Match, error) {
	s.gotFilters = filters
	return s.matches, nil
}

func (s *stubEvidence) KeywordSearch(ctx context.Context, query string, filters retrieval.Filters) ([]retrieval.Document, error) {
	return s.hits, nil
}

func TestSearchToolFormatsMatches(t *testing.T) {
	evidence := &stubEvidence{matches: []retrieval.Match{
		{
			Document: retrieval.Document{
				PageContent: "bcrypt with cost 12",
				Metadata:    retrieval.Metadata{Type: retrieval.TypeSnippet},
			},
			Score: 0.87,
		},
	}}
	searcher := retrieval.NewSearcher(evidence, retrieval.SearcherConfig{}, log.New(io.Discard, "", 0))
	tool := NewSearchTool(searcher)

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"projectId":"p1","query":"password hashing"}`))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if evidence.gotFilters.ProjectID != "p1" {
		t.Errorf("search filters = %+v, want project p1", evidence.gotFilters)
	}
	if !strings.Contains(out, "[snippet] (relevance: 0.87)") {
		t.Errorf("missing formatted header in %q", out)
	}
	if !strings.Contains(out, "bcrypt with cost 12") {
		t.Errorf("missing content in %q", out)
	}
}

func TestSearchToolEmptyQuery(t *testing.T) {
	searcher := retrieval.NewSearcher(&stubEvidence{}, retrieval.SearcherConfig{}, log.New(io.Discard, "", 0))
	tool := NewSearchTool(searcher)

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"projectId":"p1"}`))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "No search query") {
		t.Errorf("want query guard message, got %q", out)
	}
}

func TestRegistryDefinitionsSorted(t *testing.T) {
	reg := NewRegistry()
	store := &stubWorkspace{}
	for _, tool := range []Tool{NewTasksTool(store), NewDocsTool(store), NewSnippetsTool(store)} {
		if err := reg.Register(tool); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	defs := reg.Definitions()
	want := []string{"getDocs", "getExistingTasks", "getSnippets"}
	if len(defs) != len(want) {
		t.Fatalf("got %d definitions, want %d", len(defs), len(want))
	}
	for i, name := range want {
		if defs[i].Name != name {
			t.Errorf("defs[%d].Name = %q, want %q", i, defs[i].Name, name)
		}
	}
}
