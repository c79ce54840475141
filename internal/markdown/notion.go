package markdown

import (
	"fmt"
	"strings"

	"github.com/jomei/notionapi"
)

// notionPageBaseURL prefixes child page links so they stay absolute once the
// document leaves Notion.
const notionPageBaseURL = "https://www.notion.so/"

// Node is a Notion block together with its already fetched children.
type Node struct {
	Block    notionapi.Block
	Children []Node
}

// Render converts a page's top-level nodes into a Markdown document.
// Unsupported block types produce no output. A non-empty result always ends
// with a single newline.
func Render(nodes []Node) string {
	out := renderNodes(nodes)
	if out == "" {
		return ""
	}
	return out + "\n"
}

// listState tracks the list run the renderer is currently inside.
type listState struct {
	numbered int
}

func renderNodes(nodes []Node) string {
	var sb strings.Builder
	ls := &listState{}
	prevList := false

	for _, n := range nodes {
		if _, ok := n.Block.(*notionapi.NumberedListItemBlock); !ok {
			ls.numbered = 0
		}

		md, isList := renderNode(n, ls)
		if md == "" {
			continue
		}

		if sb.Len() > 0 {
			if isList && prevList {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		sb.WriteString(md)
		prevList = isList
	}

	return sb.String()
}

// renderNode returns the Markdown for one block and whether it is a list
// item, so consecutive items can be joined without blank lines.
func renderNode(n Node, ls *listState) (string, bool) {
	switch b := n.Block.(type) {
	case *notionapi.ParagraphBlock:
		return withIndentedChildren(richText(b.Paragraph.RichText), n.Children), false

	case *notionapi.Heading1Block:
		return "# " + richText(b.Heading1.RichText) + nested(n.Children), false
	case *notionapi.Heading2Block:
		return "## " + richText(b.Heading2.RichText) + nested(n.Children), false
	case *notionapi.Heading3Block:
		return "### " + richText(b.Heading3.RichText) + nested(n.Children), false

	case *notionapi.BulletedListItemBlock:
		return listItem("- ", richText(b.BulletedListItem.RichText), n.Children), true

	case *notionapi.NumberedListItemBlock:
		ls.numbered++
		return listItem(fmt.Sprintf("%d. ", ls.numbered), richText(b.NumberedListItem.RichText), n.Children), true

	case *notionapi.ToDoBlock:
		box := "- [ ] "
		if b.ToDo.Checked {
			box = "- [x] "
		}
		return listItem(box, richText(b.ToDo.RichText), n.Children), true

	case *notionapi.ToggleBlock:
		var sb strings.Builder
		sb.WriteString("<details>\n<summary>")
		sb.WriteString(richText(b.Toggle.RichText))
		sb.WriteString("</summary>\n\n")
		if body := renderNodes(n.Children); body != "" {
			sb.WriteString(body)
			sb.WriteString("\n\n")
		}
		sb.WriteString("</details>")
		return sb.String(), false

	case *notionapi.CodeBlock:
		lang := b.Code.Language
		if lang == "plain text" {
			lang = ""
		}
		code := plainText(b.Code.RichText)
		f := fence(code)
		return f + lang + "\n" + code + "\n" + f, false

	case *notionapi.QuoteBlock:
		return quote(richText(b.Quote.RichText), n.Children), false

	case *notionapi.CalloutBlock:
		text := richText(b.Callout.RichText)
		if b.Callout.Icon != nil && b.Callout.Icon.Emoji != nil {
			text = string(*b.Callout.Icon.Emoji) + " " + text
		}
		return quote(text, n.Children), false

	case *notionapi.DividerBlock:
		return "---", false

	case *notionapi.ImageBlock:
		url := ""
		if b.Image.File != nil {
			url = b.Image.File.URL
		} else if b.Image.External != nil {
			url = b.Image.External.URL
		}
		caption := plainText(b.Image.Caption)
		if caption == "" {
			caption = "image"
		}
		return fmt.Sprintf("![%s](%s)", caption, url), false

	case *notionapi.BookmarkBlock:
		caption := plainText(b.Bookmark.Caption)
		if caption == "" {
			caption = b.Bookmark.URL
		}
		return fmt.Sprintf("[%s](%s)", caption, b.Bookmark.URL), false

	case *notionapi.EquationBlock:
		return "$$\n" + b.Equation.Expression + "\n$$", false

	case *notionapi.TableBlock:
		return table(n.Children), false

	case *notionapi.ChildPageBlock:
		return fmt.Sprintf("[%s](%s%s)", b.ChildPage.Title, notionPageBaseURL, strings.ReplaceAll(string(b.ID), "-", "")), false
	}

	return "", false
}

// fence returns a backtick fence longer than any backtick run inside code,
// never shorter than three.
func fence(code string) string {
	longest, run := 0, 0
	for _, r := range code {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return strings.Repeat("`", max(3, longest+1))
}

func listItem(marker, text string, children []Node) string {
	return marker + text + nested(children)
}

// nested renders children below their parent, indented by two spaces.
func nested(children []Node) string {
	body := renderNodes(children)
	if body == "" {
		return ""
	}
	return "\n" + indent(body)
}

func withIndentedChildren(text string, children []Node) string {
	body := renderNodes(children)
	if body == "" {
		return text
	}
	if text == "" {
		return indent(body)
	}
	return text + "\n\n" + indent(body)
}

func quote(text string, children []Node) string {
	body := text
	if rest := renderNodes(children); rest != "" {
		body += "\n\n" + rest
	}

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
			continue
		}
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}

// table renders table_row children as a GFM table. The first row is the
// header row; GFM has no headerless tables.
func table(rows []Node) string {
	var lines []string
	for _, row := range rows {
		r, ok := row.Block.(*notionapi.TableRowBlock)
		if !ok {
			continue
		}

		cells := make([]string, 0, len(r.TableRow.Cells))
		for _, cell := range r.TableRow.Cells {
			cells = append(cells, strings.ReplaceAll(richText(cell), "|", `\|`))
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")

		if len(lines) == 1 {
			sep := make([]string, len(cells))
			for i := range sep {
				sep[i] = "---"
			}
			lines = append(lines, "| "+strings.Join(sep, " | ")+" |")
		}
	}
	return strings.Join(lines, "\n")
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}

// richText applies Notion annotations and links to each rich text run.
func richText(rt []notionapi.RichText) string {
	var sb strings.Builder
	for _, t := range rt {
		text := content(t)
		if text == "" {
			continue
		}

		if a := t.Annotations; a != nil {
			if a.Code {
				text = "`" + text + "`"
			}
			if a.Bold {
				text = "**" + text + "**"
			}
			if a.Italic {
				text = "_" + text + "_"
			}
			if a.Strikethrough {
				text = "~~" + text + "~~"
			}
			if a.Underline {
				text = "<u>" + text + "</u>"
			}
		}

		if t.Href != "" {
			text = "[" + text + "](" + t.Href + ")"
		}

		sb.WriteString(text)
	}
	return sb.String()
}

func plainText(rt []notionapi.RichText) string {
	var sb strings.Builder
	for _, t := range rt {
		sb.WriteString(content(t))
	}
	return sb.String()
}

// content prefers the API-computed plain text and falls back to the raw
// text run for blocks built locally.
func content(t notionapi.RichText) string {
	if t.PlainText != "" {
		return t.PlainText
	}
	if t.Text != nil {
		return t.Text.Content
	}
	return ""
}
