package railapi

import (
	"context"
	"fmt"
	"regexp"
)

var lcSearchURLPattern = regexp.MustCompile(`var lc_search_url = '(.+?)'`)

// LCQueryPath returns the transfer-search path fragment, scraping it
// from the lcQuery init page on first use. The discovered path is
// cached for the process; a failed discovery is retried on the next
// call.
func (c *Client) LCQueryPath(ctx context.Context) (string, error) {
	return c.lcPath.Get(func() (string, error) {
		html, err := c.GetText(ctx, c.lcQueryInitURL)
		if err != nil {
			return "", fmt.Errorf("get lcQuery init page failed: %w", err)
		}
		m := lcSearchURLPattern.FindStringSubmatch(html)
		if m == nil {
			return "", fmt.Errorf("get lcQuery path failed: search URL not found in init page")
		}
		return m[1], nil
	})
}
