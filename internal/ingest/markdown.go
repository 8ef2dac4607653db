package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blankLinesRe = regexp.MustCompile(`\n{3,}`)

// htmlToMarkdown converts already-sanitized HTML into plain markdown.
// Feed entries arrive as HTML fragments; markdown keeps the author's
// structure (headings, lists, emphasis) visible to the style analyzer
// without the markup noise.
func htmlToMarkdown(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	var b strings.Builder
	renderChildren(&b, doc.Selection.Find("body"))

	out := blankLinesRe.ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(out)
}

func renderChildren(b *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		renderNode(b, child)
	})
}

func renderNode(b *strings.Builder, sel *goquery.Selection) {
	switch goquery.NodeName(sel) {
	case "#text":
		b.WriteString(collapseSpace(sel.Text()))
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(goquery.NodeName(sel)[1] - '0')
		b.WriteString("\n\n" + strings.Repeat("#", level) + " " + strings.TrimSpace(sel.Text()) + "\n\n")
	case "p", "div", "section", "article":
		b.WriteString("\n\n")
		renderChildren(b, sel)
		b.WriteString("\n\n")
	case "br":
		b.WriteString("\n")
	case "ul", "ol":
		b.WriteString("\n\n")
		ordered := goquery.NodeName(sel) == "ol"
		sel.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
			marker := "- "
			if ordered {
				marker = strconv.Itoa(i+1) + ". "
			}
			var item strings.Builder
			renderChildren(&item, li)
			b.WriteString(marker + strings.TrimSpace(item.String()) + "\n")
		})
		b.WriteString("\n")
	case "a":
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())
		switch {
		case href == "":
			b.WriteString(text)
		case text == "":
			b.WriteString(href)
		default:
			b.WriteString("[" + text + "](" + href + ")")
		}
	case "strong", "b":
		b.WriteString("**" + strings.TrimSpace(sel.Text()) + "**")
	case "em", "i":
		b.WriteString("*" + strings.TrimSpace(sel.Text()) + "*")
	case "code":
		b.WriteString("`" + sel.Text() + "`")
	case "pre":
		b.WriteString("\n\n```\n" + strings.Trim(sel.Text(), "\n") + "\n```\n\n")
	case "blockquote":
		var quoted strings.Builder
		renderChildren(&quoted, sel)
		for _, line := range strings.Split(strings.TrimSpace(quoted.String()), "\n") {
			b.WriteString("> " + line + "\n")
		}
	case "script", "style", "iframe", "noscript":
		// dropped
	default:
		renderChildren(b, sel)
	}
}

var spaceRe = regexp.MustCompile(`[ \t\r\n]+`)

// collapseSpace folds runs of whitespace the way HTML rendering does,
// preserving a single leading/trailing space when one existed.
func collapseSpace(s string) string {
	if strings.TrimSpace(s) == "" {
		if s == "" {
			return ""
		}
		return " "
	}
	return spaceRe.ReplaceAllString(s, " ")
}
