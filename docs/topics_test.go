package docs

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures the documentation stays in sync with itself:
	// 1. Every topic listed in readme.md can be loaded with GetTopic.
	// 2. Every embedded topic file is listed in readme.md.
	// 3. Every topic document starts with a level-1 heading.

	content, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}

	var topicsInReadme []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for _, line := range strings.Split(string(content), "\n") {
		matches := topicRegex.FindStringSubmatch(line)
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if len(topicsInReadme) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	allTopics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	for _, topic := range allTopics {
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is embedded but not listed in readme.md", topic)
		}
	}

	for _, topic := range allTopics {
		t.Run("heading_"+topic, func(t *testing.T) {
			doc, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(doc)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok || heading.Level != 1 {
				t.Errorf("topic %q does not start with a level-1 heading", topic)
			}
		})
	}
}

func TestGetTopics_Concatenates(t *testing.T) {
	doc, err := GetTopics("fifo-lots", "orders")
	if err != nil {
		t.Fatalf("GetTopics() unexpected error: %v", err)
	}
	if !strings.Contains(doc, "# FIFO lots") || !strings.Contains(doc, "# Orders") {
		t.Error("GetTopics() did not concatenate both topics")
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() expected an error for an unknown topic")
	}
}
