package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

//go:embed problems.yaml
var problemsYAML []byte

// Load returns every catalogued problem sorted by id.
func Load() ([]Problem, error) {
	return Parse(problemsYAML)
}

// Parse decodes a YAML list of problems and sorts it by id. Entries with an
// unknown difficulty are rejected.
func Parse(data []byte) ([]Problem, error) {
	var out []Problem
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	for i := range out {
		d, err := ParseDifficulty(string(out[i].Difficulty))
		if err != nil {
			return nil, fmt.Errorf("problem %d: %w", out[i].ID, err)
		}
		out[i].Difficulty = d
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Lookup returns the problem with the given id.
func Lookup(problems []Problem, id int) (Problem, error) {
	i := sort.Search(len(problems), func(i int) bool { return problems[i].ID >= id })
	if i < len(problems) && problems[i].ID == id {
		return problems[i], nil
	}

	return Problem{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// Filter keeps the problems matching difficulty and tag. Empty arguments match everything.
func Filter(problems []Problem, difficulty Difficulty, tag string) []Problem {
	out := make([]Problem, 0, len(problems))
	for _, p := range problems {
		if difficulty != "" && p.Difficulty != difficulty {
			continue
		}
		if tag != "" && !p.HasTag(tag) {
			continue
		}
		out = append(out, p)
	}

	return out
}

// Tally counts problems per difficulty. Every Difficulty has a key.
func Tally(problems []Problem) map[Difficulty]int {
	counts := make(map[Difficulty]int, len(Difficulties))
	for _, d := range Difficulties {
		counts[d] = 0
	}
	for _, p := range problems {
		counts[p.Difficulty]++
	}

	return counts
}

// Render writes problems to w as a table in the requested format.
// Markdown output links each title to its problem statement and shows the
// difficulty as a badge.
func Render(w io.Writer, problems []Problem, format Format) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Title", "Difficulty", "Tags", "Package"})

	for _, p := range problems {
		title, difficulty := p.Title, string(p.Difficulty)
		if format == FormatMarkdown {
			title = fmt.Sprintf("[%s](%s)", p.Title, p.URL())
			difficulty = p.Badge()
		}
		t.AppendRow(table.Row{p.Key(), title, difficulty, strings.Join(p.Tags, ", "), p.Package})
	}

	switch format {
	case FormatTable, "":
		t.SetStyle(table.StyleLight)
		t.AppendFooter(table.Row{"", "", "", "", fmt.Sprintf("%d problems", len(problems))})
		t.Render()
	case FormatMarkdown:
		t.RenderMarkdown()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return nil
}
