package utils

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultBreakTags are the tags whose text StripHTML puts on a line of its
// own when no other list is given.
var DefaultBreakTags = []string{"strong", "em", "i", "b", "p"}

var (
	whitespaceRunRegex = regexp.MustCompile(`\s+`)
	wideGapRegex       = regexp.MustCompile(`\s{2,}`)
	anchorRunRegex     = regexp.MustCompile(`(\sA){2,}\s`)
	lineBreakRunRegex  = regexp.MustCompile(`\n+(\s+)?`)
	spaceRunRegex      = regexp.MustCompile(` +`)
	tabRunRegex        = regexp.MustCompile(`\t+`)
	anyTagRegex        = regexp.MustCompile(`<[^>]*>`)
	blockTagRegex      = regexp.MustCompile(`</?div>|</?p>|<br>`)
)

// StripHTML extracts the readable text of an HTML document. The body is
// parsed and script, style, menu and header elements are dropped; <br> and
// the break tags end a line, and paragraphs come out separated by a blank
// line. With simple set, tags are removed with regular expressions instead
// and only bare <div>, <p> and <br> tags break lines.
func StripHTML(document string, simple bool, breakTags []string) string {
	document = whitespaceRunRegex.ReplaceAllString(document, " ")
	if simple {
		return stripTagsSimple(document)
	}
	if len(breakTags) == 0 {
		breakTags = DefaultBreakTags
	}

	root, err := html.ParseWithOptions(strings.NewReader(document), html.ParseOptionEnableScripting(false))
	if err != nil {
		return strings.TrimSpace(anyTagRegex.ReplaceAllString(document, " "))
	}

	e := textExtractor{breakTags: make(map[string]bool, len(breakTags))}
	for _, tag := range breakTags {
		e.breakTags[strings.ToLower(tag)] = true
	}
	if body := findElement(root, atom.Body); body != nil {
		e.write(body, false)
	} else {
		e.write(root, false)
	}

	var lines []string
	for _, line := range strings.Split(e.sb.String(), "\n") {
		for _, part := range wideGapRegex.Split(strings.TrimSpace(line), -1) {
			if part = strings.TrimSpace(part); part != "" {
				lines = append(lines, part)
			}
		}
	}
	text := strings.Join(lines, "\n")
	text = anchorRunRegex.ReplaceAllString(text, " ")
	text = lineBreakRunRegex.ReplaceAllString(text, "\n\n")
	text = spaceRunRegex.ReplaceAllString(text, " ")
	return tabRunRegex.ReplaceAllString(text, " ")
}

func stripTagsSimple(document string) string {
	sections := strings.Split(blockTagRegex.ReplaceAllString(document, "\n"), "\n")
	for i, section := range sections {
		sections[i] = whitespaceRunRegex.ReplaceAllString(anyTagRegex.ReplaceAllString(section, " "), " ")
	}
	return strings.Join(sections, "\n")
}

type textExtractor struct {
	breakTags map[string]bool
	sb        strings.Builder
}

// write appends the text under n. Break tags nested in another break tag
// contribute their text without extra line breaks.
func (e *textExtractor) write(n *html.Node, inBreak bool) {
	switch n.Type {
	case html.TextNode:
		e.sb.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		if isBoilerplate(n) {
			return
		}
		if n.DataAtom == atom.Br {
			e.sb.WriteByte('\n')
			return
		}
		if !inBreak && e.breakTags[n.Data] {
			e.sb.WriteByte('\n')
			e.writeChildren(n, true)
			e.sb.WriteByte('\n')
			return
		}
	}
	e.writeChildren(n, inBreak)
}

func (e *textExtractor) writeChildren(n *html.Node, inBreak bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		e.write(c, inBreak)
	}
}

// isBoilerplate reports elements that never carry article text: scripts,
// styles and anything classed or identified as a menu or header.
func isBoilerplate(n *html.Node) bool {
	if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
		return true
	}
	for _, attr := range n.Attr {
		switch attr.Key {
		case "class":
			for _, class := range strings.Fields(attr.Val) {
				if class == "menu" || class == "header" {
					return true
				}
			}
		case "id":
			if strings.Contains(attr.Val, "menu") || strings.Contains(attr.Val, "header") {
				return true
			}
		}
	}
	return false
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
