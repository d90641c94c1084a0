// Package catalog describes the solved problems: their number, title, slug,
// difficulty, topic tags and the Go package holding the solution.
//
// The list is compiled in from problems.yaml. Load parses it, Lookup finds a
// single entry, Filter narrows by difficulty or tag, Tally counts per
// difficulty, and Render prints a table (plain or markdown) suitable for a
// README.
package catalog
