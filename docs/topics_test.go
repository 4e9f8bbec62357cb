package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeLinks parses readme.md and returns the local markdown files it links to.
func readmeLinks(t *testing.T) []string {
	t.Helper()
	src, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("reading readme: %v", err)
	}
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader([]byte(src)))

	var links []string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := n.(*ast.Link); ok {
			dest := string(link.Destination)
			if strings.HasSuffix(dest, ".md") && !strings.Contains(dest, "://") {
				links = append(links, strings.TrimSuffix(dest, ".md"))
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking readme: %v", err)
	}
	return links
}

// TestReadmeListsAllTopics keeps the readme index and the topic files in sync.
func TestReadmeListsAllTopics(t *testing.T) {
	linked := readmeLinks(t)
	all, err := AllTopics()
	if err != nil {
		t.Fatal(err)
	}

	set := make(map[string]bool, len(linked))
	for _, l := range linked {
		set[l] = true
	}
	for _, topic := range all {
		if !set[topic] {
			t.Errorf("topic %q exists but is not linked from readme.md", topic)
		}
	}
	for _, l := range linked {
		if _, err := GetTopic(l); err != nil {
			t.Errorf("readme.md links %q but the topic does not exist", l)
		}
	}
}

func TestGetTopics(t *testing.T) {
	content, err := GetTopics("pockets", "backup")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Pockets", "# Backup"} {
		if !strings.Contains(content, want) {
			t.Errorf("concatenated topics missing %q", want)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Fatal("expected error for unknown topic")
	}
}
