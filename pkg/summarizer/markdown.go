package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator translates headings and labels.
func WithTranslator(t func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.t = t
	}
}

// WithVersion adds the generator version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct {
	t       func(string) string
	version string
}

// NewMarkdownFormatter creates a formatter with the given options.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{t: func(s string) string { return s }}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder
	t := f.t

	fmt.Fprintf(&b, "# %s\n\n", t("Bulk Summary"))

	fmt.Fprintf(&b, "## %s\n\n", t("Request"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %d x %d |\n", t("Dimensions"), s.Request.Width, s.Request.Height)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Count"), s.Request.Count)
	fmt.Fprintf(&b, "| %s | %s |\n", t("Text"), orDash(escapeCell(s.Request.Text)))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Color"), orDash(escapeCell(s.Request.Color)))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Same Background"), f.yesNo(s.Request.SameBG))
	fmt.Fprintf(&b, "| %s | %s |\n\n", t("Numbering"), f.yesNo(s.Request.Numbering))

	if len(s.Images) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Images"))
		fmt.Fprintf(&b, "| # | %s | %s | %s |\n|---|---|---|---|\n", t("File"), t("Background"), t("Size"))
		for _, img := range s.Images {
			fmt.Fprintf(&b, "| %d | %s | `%s` | %s |\n", img.Index, img.Filename, img.Background, formatBytes(img.Bytes))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	fmt.Fprintf(&b, "- %s: %s\n", t("Total Image Size"), formatBytes(s.TotalBytes()))
	fmt.Fprintf(&b, "- %s: %d\n", t("Distinct Backgrounds"), s.DistinctBackgrounds())
	if s.Output.Archive != "" {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", t("Archive"), s.Output.Archive, formatBytes(s.Output.ArchiveBytes))
	}
	fmt.Fprintf(&b, "- %s: %d ms\n\n", t("Elapsed"), s.Output.ElapsedMs)

	b.WriteString("---\n\n")
	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format(time.RFC3339))
	if f.version != "" {
		footer += fmt.Sprintf(" (placeholder %s)", f.version)
	}
	b.WriteString(footer + "\n")

	return b.String()
}

func (f *MarkdownFormatter) yesNo(v bool) string {
	if v {
		return f.t("Yes")
	}
	return f.t("No")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// escapeCell keeps user text from breaking the table.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// formatBytes formats a byte count with binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
