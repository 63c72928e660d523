// Package chapter imports prose chapters from web-published novels so
// their text can be scanned for transport mentions.
package chapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fetch downloads a chapter page and extracts its plaintext content.
func Fetch(ctx context.Context, url string, rl *RateLimiter) (string, error) {
	if rl != nil {
		if err := rl.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching chapter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("chapter returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing chapter HTML: %w", err)
	}

	return ExtractText(doc), nil
}

// contentSelectors are tried in order; the first that yields paragraphs
// wins. Covers the common export formats of web-novel hosts before
// falling back to every paragraph on the page.
var contentSelectors = []string{
	"article .chapter-body p",
	"article p",
	"main .novel-body p",
	"main p",
	"p",
}

// ExtractText pulls plaintext paragraphs from a chapter's document.
func ExtractText(doc *goquery.Document) string {
	for _, sel := range contentSelectors {
		var paragraphs []string
		doc.Find(sel).Each(func(_ int, p *goquery.Selection) {
			text := strings.TrimSpace(p.Text())
			if text != "" {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) > 0 {
			return strings.Join(paragraphs, "\n\n")
		}
	}
	return ""
}
