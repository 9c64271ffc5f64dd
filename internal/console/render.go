package console

import (
	"fmt"

	"codeberg.org/mutker/jitterctl/internal/histogram"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	summaryStyle = lipgloss.NewStyle().Faint(true)
)

// Renderer formats a populated histogram as report lines. Bucket lines
// are deliberately plain text so the report survives dumb terminals and
// log capture; only the framing around them is styled.
type Renderer struct {
	console *Console
	styled  bool
}

func NewRenderer(c *Console, styled bool) *Renderer {
	return &Renderer{
		console: c,
		styled:  styled,
	}
}

// Render prints the capture report: a header, one line per non-zero
// bucket labeled with the real delta value, and a distribution
// summary. Empty buckets produce no output at all.
func (r *Renderer) Render(h *histogram.Histogram) {
	r.console.WriteLine(r.style(headerStyle, "Finished capturing."))
	r.console.WriteLine(fmt.Sprintf("%d buckets used; omitting empty buckets.", histogram.NumBuckets))

	counts := h.Counts()
	for i, count := range counts {
		if count == 0 {
			continue
		}
		r.console.WriteLine(fmt.Sprintf("Bucket %4d: %d", int(histogram.BaseOffset)+i, count))
	}

	if h.InRange() > 0 {
		r.console.WriteLine(r.style(summaryStyle, renderSparkline(counts[:])))
	}

	minDelta, maxDelta := h.DeltaRange()
	summary := fmt.Sprintf("in range: %d, discarded: %d", h.InRange(), h.Discarded())
	if h.InRange()+h.Discarded() > 0 {
		summary += fmt.Sprintf(", delta span: [%d, %d]", minDelta, maxDelta)
	}
	r.console.WriteLine(r.style(summaryStyle, summary))
}

// Prompt prints the session trigger prompt.
func (r *Renderer) Prompt() {
	r.console.WriteLine(r.style(headerStyle, "Strike enter to begin capture."))
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}

	return s.Render(text)
}
