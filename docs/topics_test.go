package docs

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// topicLine matches the "* name: description" lines of the index.
var topicLine = regexp.MustCompile(`(?m)^\*\s+([^:]+):.*$`)

func TestTopicsIndex(t *testing.T) {
	var listed []string
	for _, m := range topicLine.FindAllStringSubmatch(Index(), -1) {
		listed = append(listed, strings.TrimSpace(m[1]))
	}
	if len(listed) == 0 {
		t.Fatal("the index lists no topic")
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q listed in the index cannot be loaded: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("margin"); !errors.Is(err, ErrUnknownTopic) {
		t.Errorf("GetTopic(unknown) error = %v, want ErrUnknownTopic", err)
	}
}

func TestGetTopicsStar(t *testing.T) {
	got, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) failed: %v", err)
	}
	all, _ := GetAllTopics()
	for _, topic := range all {
		content, _ := GetTopic(topic)
		if !strings.Contains(got, content) {
			t.Errorf("GetTopic(*) does not contain %q", topic)
		}
	}
}

// TestTopicsStructure checks that every topic is a single document with one
// title and that its code blocks are annotated.
func TestTopicsStructure(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range append(all, index) {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			var titles int
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				switch n := n.(type) {
				case *ast.Heading:
					if n.Level == 1 {
						titles++
					}
				case *ast.FencedCodeBlock:
					if n.Info == nil {
						t.Errorf("code block without language at offset %d", n.Lines().At(0).Start)
					}
				}
				return ast.WalkContinue, nil
			})
			if titles != 1 {
				t.Errorf("got %d titles, want 1", titles)
			}
		})
	}
}
