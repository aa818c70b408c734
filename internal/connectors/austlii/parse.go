package austlii

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ozlaw/austlii-mcp/internal/core/ports/driven"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// parseListing turns a rendered result page into ordered entries.
// Each entry is an <li> holding a link to the matched document,
// optionally followed by a <small> annotation. Relative hrefs are made
// absolute against the index base URL.
func parseListing(body []byte, base *url.URL) ([]driven.ListingEntry, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var entries []driven.ListingEntry
	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		anchor := li.Find("a[href]").First()
		href, ok := anchor.Attr("href")
		if !ok {
			return
		}

		title := collapseSpace(anchor.Text())
		target := absoluteURL(base, href)
		if title == "" || target == "" {
			return
		}

		entries = append(entries, driven.ListingEntry{
			Title:   title,
			URL:     target,
			Summary: collapseSpace(li.Find("small").First().Text()),
		})
	})

	return entries, nil
}

// absoluteURL resolves href against base. Fragment-only and javascript
// links are not documents and resolve to "".
func absoluteURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

func collapseSpace(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
