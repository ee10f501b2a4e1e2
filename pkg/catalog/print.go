package catalog

import (
	"fmt"
	"io"
	"strings"
)

// NoResultsMessage is shown in place of an empty display plan.
const NoResultsMessage = "No results found."

// DefaultOutputFlags prints name, year and tags.
const DefaultOutputFlags = "nyt"

// ValidateOutputFlags checks that every letter of flags is known:
// n=name d=description y=year l=link s=link site t=tags c=category.
func ValidateOutputFlags(flags string) error {
	if flags == "" {
		return fmt.Errorf("empty output flags")
	}
	for _, f := range flags {
		switch f {
		case 'n', 'd', 'y', 'l', 's', 't', 'c':
		default:
			return fmt.Errorf("invalid output flag %q", f)
		}
	}
	return nil
}

// PrintPlan writes each group as a header line followed by one line per item.
func PrintPlan(w io.Writer, plan []DisplayGroup, outputFlags, delimiter string) error {
	if err := ValidateOutputFlags(outputFlags); err != nil {
		return err
	}
	if len(plan) == 0 {
		_, err := fmt.Fprintln(w, NoResultsMessage)
		return err
	}

	for i, g := range plan {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s [%s]\n", g.Category, g.Color); err != nil {
			return err
		}
		for _, it := range g.Items {
			line := createLine(it, outputFlags, delimiter)
			if len(line) == 0 {
				continue
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// createLine expects validated flags.
func createLine(it Item, outputFlags, delimiter string) string {
	var line string
	for _, f := range outputFlags {
		switch f {
		case 'n':
			line += it.Name + delimiter
		case 'd':
			line += it.Description + delimiter
		case 'y':
			line += it.CreationYear + delimiter
		case 'l':
			line += it.Link + delimiter
		case 's':
			line += LinkSite(it.Link) + delimiter
		case 't':
			line += strings.Join(it.Tags, ",") + delimiter
		case 'c':
			line += it.PrimaryTag() + delimiter
		}
	}
	return strings.TrimSuffix(line, delimiter)
}
