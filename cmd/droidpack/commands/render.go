package commands

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"go.trai.ch/droidpack/internal/app"
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/ui/output"
	"go.trai.ch/droidpack/internal/ui/style"
	"golang.org/x/term"
)

const (
	defaultWidth  = 80
	otherGroup    = "other"
	separator     = " - "
	minTextWidth  = 20
	notBuiltLabel = "not built"
)

// terminalWidth returns the width of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}

type styles struct {
	heading lipgloss.Style
	name    lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	profile := output.ColorProfile(w)
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	return styles{
		heading: r.NewStyle().Bold(true),
		name:    r.NewStyle().Foreground(style.Droid),
		muted:   r.NewStyle().Foreground(style.Slate),
	}
}

// RenderTasks writes tasks grouped by their group. Descriptions are wrapped to
// width and continuation lines are aligned under the first line.
func RenderTasks(w io.Writer, tasks []*domain.Task, width int) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks.")
		return err
	}

	st := newStyles(w)
	groups := make(map[string][]*domain.Task)
	nameWidth := 0
	for _, t := range tasks {
		group := cmp.Or(t.Group, otherGroup)
		groups[group] = append(groups[group], t)
		nameWidth = max(nameWidth, len(t.Name))
	}

	names := make([]string, 0, len(groups))
	for g := range groups {
		names = append(names, g)
	}
	// Ungrouped tasks are listed last.
	slices.SortFunc(names, func(a, b string) int {
		if (a == otherGroup) != (b == otherGroup) {
			if a == otherGroup {
				return 1
			}
			return -1
		}
		return strings.Compare(a, b)
	})

	var sb strings.Builder
	for i, group := range names {
		if i > 0 {
			sb.WriteString("\n")
		}
		heading := strings.ToUpper(group[:1]) + group[1:] + " tasks"
		sb.WriteString(st.heading.Render(heading) + "\n")
		sb.WriteString(strings.Repeat("-", len(heading)) + "\n")

		for _, t := range groups[group] {
			sb.WriteString(renderEntry(st, t.Name, t.Description, nameWidth, width))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// renderEntry writes "name - text" with text wrapped and hanging-indented.
func renderEntry(st styles, name, text string, nameWidth, width int) string {
	if text == "" {
		return st.name.Render(name) + "\n"
	}

	prefix := nameWidth + len(separator)
	wrapped := wordwrap.String(text, max(width-prefix, minTextWidth))
	first, rest, _ := strings.Cut(wrapped, "\n")

	line := padding.String(st.name.Render(name), uint(nameWidth)) + separator + first + "\n"
	if rest != "" {
		line += indent.String(rest, uint(prefix)) + "\n"
	}
	return line
}

// RenderArtifacts writes the artifacts grouped by bucket, each with its file
// and either its digest and size or a not built marker.
func RenderArtifacts(w io.Writer, artifacts []app.ArtifactInfo) error {
	if len(artifacts) == 0 {
		_, err := fmt.Fprintln(w, "No artifacts.")
		return err
	}

	st := newStyles(w)
	nameWidth := 0
	for _, a := range artifacts {
		nameWidth = max(nameWidth, len(a.Task))
	}

	var sb strings.Builder
	bucket := ""
	for _, a := range artifacts {
		if a.Bucket != bucket {
			if bucket != "" {
				sb.WriteString("\n")
			}
			bucket = a.Bucket
			heading := "Artifacts in " + bucket
			sb.WriteString(st.heading.Render(heading) + "\n")
			sb.WriteString(strings.Repeat("-", len(heading)) + "\n")
		}

		status := st.muted.Render(notBuiltLabel)
		if a.Digest != "" {
			status = fmt.Sprintf("%s (%d bytes)", a.Digest, a.Size)
		}
		sb.WriteString(padding.String(st.name.Render(a.Task), uint(nameWidth)) + "  " + a.File + "\n")
		sb.WriteString(strings.Repeat(" ", nameWidth+2) + status + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
