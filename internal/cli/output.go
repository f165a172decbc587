package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/goliatone/go-docgen/pkg/model"
)

var (
	stageStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
)

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// painter applies lipgloss styles only when writing to a terminal.
type painter struct {
	styled bool
}

func (p painter) paint(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

type progressPrinter struct {
	w io.Writer
	painter
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w, painter: painter{styled: isTerminalWriter(w)}}
}

func (p *progressPrinter) print(ev model.Progress) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%3.0f%%] %s", ev.OverallPercent, p.paint(stageStyle, fmt.Sprintf("%-17s", ev.Stage)))
	fmt.Fprintf(&b, " %s", ev.Event)
	if ev.SectionsTotal > 0 {
		fmt.Fprintf(&b, " %d/%d sections", ev.SectionsCompleted, ev.SectionsTotal)
	}
	if ev.ETA > 0 {
		fmt.Fprintf(&b, " %s", p.paint(mutedStyle, "eta "+ev.ETA.Round(10*time.Millisecond).String()))
	}
	if ev.Message != "" {
		fmt.Fprintf(&b, " %s", p.paint(mutedStyle, ev.Message))
	}
	fmt.Fprintln(p.w, b.String())
}

type reportPrinter struct {
	w io.Writer
	painter
}

func newReportPrinter(w io.Writer) *reportPrinter {
	return &reportPrinter{w: w, painter: painter{styled: isTerminalWriter(w)}}
}

func (p *reportPrinter) status(s model.CheckStatus) string {
	switch s {
	case model.CheckPass:
		return p.paint(passStyle, string(s))
	case model.CheckWarning:
		return p.paint(warningStyle, string(s))
	default:
		return p.paint(failStyle, string(s))
	}
}

func (p *reportPrinter) summary(doc model.GeneratedDocument) {
	fmt.Fprintf(p.w, "%s: %d sections, %d pages\n", doc.TemplateName, len(doc.Sections), doc.TotalPages)
	fmt.Fprintf(p.w, "Validation: %s\n", p.status(doc.Validation.OverallStatus))
	for _, check := range doc.Validation.Checks {
		fmt.Fprintf(p.w, "  %-8s %s: %s\n", p.status(check.Status), check.Name, check.Details)
	}
}
