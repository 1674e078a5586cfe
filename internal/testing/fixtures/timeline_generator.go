package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/darkfeline/chronoplot/internal/core/model"
)

// TestDataGenerator writes timeline input files for tests
type TestDataGenerator struct {
	baseDir string
}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator(baseDir string) *TestDataGenerator {
	return &TestDataGenerator{
		baseDir: baseDir,
	}
}

// GetBaseDir returns the base directory for test data
func (g *TestDataGenerator) GetBaseDir() string {
	return g.baseDir
}

// Launch is a single event in a single group
func Launch() []model.Event {
	return []model.Event{
		{Start: 0, Stop: 5, Group: "G", Text: "Launch"},
	}
}

// SequentialPair is two back-to-back events of different length in one group
func SequentialPair() []model.Event {
	return []model.Event{
		{Start: 0, Stop: 1, Group: "A", Text: "x"},
		{Start: 1, Stop: 3, Group: "A", Text: "y"},
	}
}

// OverlappingGroups is two groups whose events overlap in time
func OverlappingGroups() []model.Event {
	return []model.Event{
		{Start: 0, Stop: 2, Group: "A", Text: "alpha"},
		{Start: 1, Stop: 3, Group: "B", Text: "beta"},
	}
}

// ReleasePipeline is a larger multi-group timeline with wrapped titles
func ReleasePipeline() []model.Event {
	return []model.Event{
		{Start: 0, Stop: 1, Group: "build", Text: "compile"},
		{Start: 1, Stop: 1.5, Group: "build", Text: "link"},
		{Start: 1.5, Stop: 6, Group: "test", Text: "integration suite against staging"},
		{Start: 6, Stop: 7, Group: "deploy", Text: "canary"},
		{Start: 7, Stop: 12, Group: "deploy", Text: "gradual rollout to every region"},
	}
}

// FormatLine renders e as one input line with every field quoted
func FormatLine(e model.Event) string {
	return fmt.Sprintf("%s %s %s %s",
		strconv.FormatFloat(e.Start, 'g', -1, 64),
		strconv.FormatFloat(e.Stop, 'g', -1, 64),
		quote(e.Group),
		quote(e.Text))
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// WriteTimeline writes events to name under the base directory and returns
// the file path
func (g *TestDataGenerator) WriteTimeline(name string, events []model.Event) (string, error) {
	lines := make([]string, 0, len(events)+1)
	lines = append(lines, "# start stop group title")
	for _, e := range events {
		lines = append(lines, FormatLine(e))
	}
	return g.WriteRaw(name, strings.Join(lines, "\n")+"\n")
}

// WriteRaw writes content verbatim, for malformed-input tests
func (g *TestDataGenerator) WriteRaw(name, content string) (string, error) {
	if err := os.MkdirAll(g.baseDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(g.baseDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// CleanupTestData removes all generated test data
func (g *TestDataGenerator) CleanupTestData() error {
	return os.RemoveAll(g.baseDir)
}
