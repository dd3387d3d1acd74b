package banner

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"course-catalog/internal/httpx"
)

// noPrereqSentinel is the fixed phrase the service embeds when a section has
// no prerequisite rules at all.
const noPrereqSentinel = "No prerequisite information available"

// SectionPrerequisites fetches the prerequisite HTML fragment for one CRN and
// extracts its text. The fragment carries the text inside <pre> blocks under
// a section landmarked by aria-labelledby="preReqs"; anything missing along
// that path means "no prerequisites" and yields an empty string.
func (s *Session) SectionPrerequisites(ctx context.Context, crn string) (string, error) {
	q := url.Values{
		"term":                  {s.term},
		"courseReferenceNumber": {crn},
	}

	_, body, err := httpx.DoWithRetry(ctx, s.http, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			s.client.BaseURL+prereqPath+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept-Encoding", "br")
		return req, nil
	}, s.client.Retry)
	if err != nil {
		return "", err
	}

	return extractPrerequisiteText(string(body))
}

func extractPrerequisiteText(fragment string) (string, error) {
	if strings.Contains(fragment, noPrereqSentinel) {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	section := doc.Find(`section[aria-labelledby="preReqs"]`)
	if section.Length() == 0 {
		return "", nil
	}

	var b strings.Builder
	section.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		b.WriteString(strings.TrimSpace(pre.Text()))
	})

	return strings.TrimSpace(b.String()), nil
}
