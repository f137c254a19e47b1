package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/zerr"

	"github.com/soldera/lockaudit/internal/core/domain"
	"github.com/soldera/lockaudit/internal/ui/style"
)

// WriteResult renders a single ad-hoc check result.
func (wr *Writer) WriteResult(w io.Writer, res domain.Result, verbose bool) error {
	st := newStyles(w)
	var b strings.Builder

	name := res.Expectation.Name.String()
	switch res.Status {
	case domain.StatusNotFound:
		fmt.Fprintf(&b, "%s package not found: %s\n", st.icon(res.Status), name)

	case domain.StatusVersionMismatch:
		fmt.Fprintf(&b, "%s found %s but no occurrence matches the requested version\n",
			st.icon(res.Status), name)
		fmt.Fprintf(&b, "   expected version: %s\n", joinSpecs(res.Expectation.Versions))
		b.WriteString("   found versions:\n")
		writeOccurrences(&b, res.Occurrences, verbose)

	default:
		if len(res.Expectation.Versions) > 0 {
			fmt.Fprintf(&b, "%s found %s @ %s\n", st.icon(res.Status), name,
				joinSpecs(res.Expectation.Versions))
		} else {
			fmt.Fprintf(&b, "%s found %s\n", st.icon(res.Status), name)
		}
		writeOccurrences(&b, res.Matches, verbose)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write result")
	}
	return nil
}

// WriteRun renders the batch summary: one line per expectation in input
// order, details for everything that is not a clean Found (or for every row
// when verbose), and the aggregate counter block.
func (wr *Writer) WriteRun(w io.Writer, run domain.Run, verbose bool) error {
	st := newStyles(w)
	var b strings.Builder

	b.WriteString("Batch audit results:\n\n")
	for _, res := range run.Results {
		fmt.Fprintf(&b, "%s %s\n", st.icon(res.Status), res.Expectation.Name.String())

		if !verbose && res.Status == domain.StatusFound {
			continue
		}

		expected := "any"
		if len(res.Expectation.Versions) > 0 {
			expected = joinSpecs(res.Expectation.Versions)
		}
		fmt.Fprintf(&b, "   expected versions: %s\n", expected)

		if res.Status != domain.StatusNotFound {
			b.WriteString("   found versions:\n")
			writeOccurrences(&b, res.Occurrences, verbose)
		}
		if res.Expectation.AdvisoryStatus != "" {
			fmt.Fprintf(&b, "   advisory status: %s\n", res.Expectation.AdvisoryStatus)
		}
		if res.Expectation.DetectionDate != "" {
			fmt.Fprintf(&b, "   detection date: %s\n", res.Expectation.DetectionDate)
		}
	}

	c := run.Counters
	b.WriteString("\nSummary:\n")
	fmt.Fprintf(&b, "   total:            %d\n", c.Total)
	fmt.Fprintf(&b, "   found:            %d\n", c.Found)
	fmt.Fprintf(&b, "   partial match:    %d\n", c.Partial)
	fmt.Fprintf(&b, "   version mismatch: %d\n", c.Mismatch)
	fmt.Fprintf(&b, "   not found:        %d\n", c.NotFound)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write summary")
	}
	return nil
}

func writeOccurrences(b *strings.Builder, occs []domain.Occurrence, verbose bool) {
	for _, o := range occs {
		fmt.Fprintf(b, "   - %s\n", formatOccurrence(o))
		if verbose && o.Specifier != "" {
			fmt.Fprintf(b, "     specifier: %s\n", o.Specifier)
		}
	}
}

// styles binds status icons to a lipgloss renderer for the target writer,
// so color is applied only when the destination supports it.
type styles struct {
	found    lipgloss.Style
	partial  lipgloss.Style
	mismatch lipgloss.Style
	notFound lipgloss.Style
}

func newStyles(w io.Writer) styles {
	var opts []termenv.OutputOption
	if os.Getenv("NO_COLOR") != "" {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	r := lipgloss.NewRenderer(w, opts...)
	return styles{
		found:    r.NewStyle().Foreground(style.Green),
		partial:  r.NewStyle().Foreground(style.Yellow),
		mismatch: r.NewStyle().Foreground(style.Yellow),
		notFound: r.NewStyle().Foreground(style.Red),
	}
}

func (st styles) icon(s domain.Status) string {
	switch s {
	case domain.StatusFound:
		return st.found.Render(style.Check)
	case domain.StatusPartialMatch:
		return st.partial.Render(style.Tilde)
	case domain.StatusVersionMismatch:
		return st.mismatch.Render(style.Warning)
	default:
		return st.notFound.Render(style.Cross)
	}
}
