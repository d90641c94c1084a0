package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the catalog.
var (
	// ErrNotFound indicates that no problem carries the requested id.
	ErrNotFound = errors.New("catalog: problem not found")

	// ErrUnknownFormat indicates that Render was asked for an unsupported format.
	ErrUnknownFormat = errors.New("catalog: unknown output format")

	// ErrBadDifficulty indicates a difficulty outside Easy, Medium, Hard.
	ErrBadDifficulty = errors.New("catalog: unknown difficulty")
)

// Difficulty is the problem's rated difficulty.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists every Difficulty in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty matches s case-insensitively against the known difficulties.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrBadDifficulty, s)
}

// Problem is one catalogue entry.
type Problem struct {
	ID         int        `yaml:"id"`
	Title      string     `yaml:"title"`
	Slug       string     `yaml:"slug"`
	Difficulty Difficulty `yaml:"difficulty"`
	Tags       []string   `yaml:"tags"`
	Package    string     `yaml:"package"`

	// Time and Space are the solution's asymptotic costs, e.g. "O(n log n)".
	Time  string `yaml:"time"`
	Space string `yaml:"space"`
}

// Key is the zero-padded four-digit problem number, e.g. "0300".
func (p Problem) Key() string {
	return fmt.Sprintf("%04d", p.ID)
}

// Badge is a shields.io difficulty badge in markdown, coloured like the site.
func (p Problem) Badge() string {
	color := map[Difficulty]string{Easy: "5CB85D", Medium: "F0AE4E", Hard: "D95450"}[p.Difficulty]

	return fmt.Sprintf("![%s](https://img.shields.io/badge/%s-%s?style=flat-square)", p.Difficulty, p.Difficulty, color)
}

// URL links to the problem statement.
func (p Problem) URL() string {
	return "https://leetcode.com/problems/" + p.Slug + "/"
}

// HasTag reports whether p carries tag (case-insensitive).
func (p Problem) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}

	return false
}

// Format selects how Render lays out the table.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
)
