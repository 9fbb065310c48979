// Package markup builds Confluence storage-format page bodies from typed
// fragments. A Builder accumulates fragments in call order and renders them
// by plain concatenation; it never parses or validates the result.
package markup

import (
	"fmt"
	"html"
	"strings"
)

// Heading levels supported by the storage format.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

var warningKinds = []string{"note", "tip", "info", "warning"}

var chartKinds = []string{"line", "pie", "bar", "area"}

// Builder accumulates storage-format fragments. A Builder owns its buffer
// exclusively; concurrent use requires external synchronization.
type Builder struct {
	fragments []string
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AddTitle appends a heading. Level must be between 1 and 6.
func (b *Builder) AddTitle(text string, level int) error {
	if level < MinHeadingLevel || level > MaxHeadingLevel {
		return &InvalidArgumentError{Arg: "heading level", Value: fmt.Sprintf("%d", level)}
	}
	b.append(fmt.Sprintf("<h%d>%s</h%d>", level, html.EscapeString(text), level))
	return nil
}

// AddTableOfContents appends the table-of-contents macro.
func (b *Builder) AddTableOfContents() {
	b.append(`<ac:structured-macro ac:name="toc"/>`)
}

// AddWarning appends an admonition macro. Kind must be one of note, tip,
// info or warning. An empty title omits the title parameter.
func (b *Builder) AddWarning(text, kind, title string) error {
	if !contains(warningKinds, kind) {
		return &InvalidArgumentError{Arg: "warning kind", Value: kind, Allowed: warningKinds}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, `<ac:structured-macro ac:name=%q>`, kind)
	if title != "" {
		fmt.Fprintf(&sb, `<ac:parameter ac:name="title">%s</ac:parameter>`, html.EscapeString(title))
	}
	fmt.Fprintf(&sb, `<ac:rich-text-body>%s</ac:rich-text-body></ac:structured-macro>`, html.EscapeString(text))
	b.append(sb.String())
	return nil
}

// AddCodeBlock appends a code macro. Language and theme are passed through
// as opaque macro parameters; the remote renderer validates them.
func (b *Builder) AddCodeBlock(code, language, theme string) {
	var sb strings.Builder
	sb.WriteString(`<ac:structured-macro ac:name="code">`)
	if theme != "" {
		fmt.Fprintf(&sb, `<ac:parameter ac:name="theme">%s</ac:parameter>`, html.EscapeString(theme))
	}
	if language != "" {
		fmt.Fprintf(&sb, `<ac:parameter ac:name="language">%s</ac:parameter>`, html.EscapeString(language))
	}
	fmt.Fprintf(&sb, `<ac:plain-text-body><![CDATA[%s]]></ac:plain-text-body></ac:structured-macro>`, escapeCDATA(code))
	b.append(sb.String())
}

// AddTable appends the dataset as a storage-format table. Column and row
// order follow the dataset's declared order exactly.
func (b *Builder) AddTable(data Dataset) {
	b.append(renderTable(data))
}

// AddChart appends a chart macro fed by the dataset's table. Kind must be
// one of line, pie, bar or area.
func (b *Builder) AddChart(data Dataset, kind string) error {
	if !contains(chartKinds, kind) {
		return &InvalidArgumentError{Arg: "chart kind", Value: kind, Allowed: chartKinds}
	}
	b.append(fmt.Sprintf(`<ac:structured-macro ac:name="chart"><ac:parameter ac:name="type">%s</ac:parameter><ac:rich-text-body>%s</ac:rich-text-body></ac:structured-macro>`,
		kind, renderTable(data)))
	return nil
}

// AddNewLine appends a single line break.
func (b *Builder) AddNewLine() {
	b.append("<br/>")
}

// AddCustomHTML appends raw markup verbatim. This is the one escape hatch
// for content the builder cannot otherwise express; the caller is
// responsible for producing valid storage format.
func (b *Builder) AddCustomHTML(html string) {
	b.append(html)
}

// AddTagUser appends a user mention. The username is not checked against
// the remote system.
func (b *Builder) AddTagUser(username string) {
	b.append(fmt.Sprintf(`<ac:link><ri:user ri:username=%q/></ac:link>`, html.EscapeString(username)))
}

// AddPageLink appends a link to a page. An empty spaceKey produces a
// same-space relative link; otherwise the link addresses the page across
// spaces.
func (b *Builder) AddPageLink(title, spaceKey string) {
	if spaceKey == "" {
		b.append(fmt.Sprintf(`<ac:link><ri:page ri:content-title=%q/></ac:link>`, html.EscapeString(title)))
		return
	}
	b.append(fmt.Sprintf(`<ac:link><ri:page ri:space-key=%q ri:content-title=%q/></ac:link>`,
		html.EscapeString(spaceKey), html.EscapeString(title)))
}

// AddPDFPreview appends a viewpdf macro referencing a page attachment by
// filename. The filename is not validated against any actual attachment.
func (b *Builder) AddPDFPreview(filename string) {
	b.append(fmt.Sprintf(`<ac:structured-macro ac:name="viewpdf"><ac:parameter ac:name="name"><ri:attachment ri:filename=%q/></ac:parameter></ac:structured-macro>`,
		html.EscapeString(filename)))
}

// Render concatenates all accumulated fragments in insertion order. It is
// read-only and may be called any number of times.
func (b *Builder) Render() string {
	return strings.Join(b.fragments, "")
}

// Restart clears the buffer. There is no undo.
func (b *Builder) Restart() {
	b.fragments = nil
}

func (b *Builder) append(fragment string) {
	b.fragments = append(b.fragments, fragment)
}

func renderTable(data Dataset) string {
	cols := data.Columns()
	labels := data.RowLabels()
	indexed := false
	for _, l := range labels {
		if l != "" {
			indexed = true
			break
		}
	}

	var sb strings.Builder
	sb.WriteString("<table><thead><tr>")
	if indexed {
		sb.WriteString("<th/>")
	}
	for _, col := range cols {
		fmt.Fprintf(&sb, "<th>%s</th>", html.EscapeString(col))
	}
	sb.WriteString("</tr></thead><tbody>")
	for i, label := range labels {
		sb.WriteString("<tr>")
		if indexed {
			fmt.Fprintf(&sb, "<th>%s</th>", html.EscapeString(label))
		}
		for j := range cols {
			fmt.Fprintf(&sb, "<td>%s</td>", html.EscapeString(data.Value(i, j)))
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>")
	return sb.String()
}

// escapeCDATA splits any "]]>" inside code so the CDATA section cannot be
// terminated early.
func escapeCDATA(code string) string {
	return strings.ReplaceAll(code, "]]>", "]]]]><![CDATA[>")
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
