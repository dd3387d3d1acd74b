package banner

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"course-catalog/internal/httpx"
)

const (
	searchInitPath    = "/StudentRegistrationSsb/ssb/term/search"
	searchResultsPath = "/StudentRegistrationSsb/ssb/searchResults/searchResults"
	prereqPath        = "/StudentRegistrationSsb/ssb/searchResults/getSectionPrerequisites"
)

// SessionError wraps failures during the authentication handshake. It is
// fatal: the caller decides whether to retry a whole Acquire.
type SessionError struct {
	Stage string // "handshake" or "search-init"
	Err   error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("banner session: %s failed: %v", e.Stage, e.Err)
}

func (e *SessionError) Unwrap() error { return e.Err }

// FetchError tags a failed page request with its offset so a failed run can
// report where it died.
type FetchError struct {
	Offset int
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("banner fetch: page at offset %d failed: %v", e.Offset, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client holds the connection policy for the registration service. It carries
// no cookie state; sessions do.
type Client struct {
	BaseURL string
	Timeout time.Duration
	Retry   httpx.RetryConfig
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: timeout,
		Retry:   httpx.SingleAttempt(),
	}
}

// Session is one authenticated conversation with the registration service.
// Each session owns its cookie jar; a live session must never be shared by
// concurrent workers, so clone or acquire per worker.
type Session struct {
	client *Client
	http   *http.Client
	term   string
}

// Acquire performs the two-step handshake: an unauthenticated GET against the
// service root to pick up cookies, then a term-scoped search initialization.
// Each call yields an independent session, so concurrent workers can hold
// their own.
func (c *Client) Acquire(ctx context.Context, term string) (*Session, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, &SessionError{Stage: "handshake", Err: err}
	}

	s := &Session{
		client: c,
		http:   &http.Client{Jar: jar, Timeout: c.Timeout},
		term:   term,
	}

	if _, _, err := httpx.DoWithRetry(ctx, s.http, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	}, c.Retry); err != nil {
		return nil, &SessionError{Stage: "handshake", Err: err}
	}

	form := url.Values{"term": {term}}
	if _, _, err := httpx.DoWithRetry(ctx, s.http, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.BaseURL+searchInitPath+"?mode=search",
			strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
		return req, nil
	}, c.Retry); err != nil {
		return nil, &SessionError{Stage: "search-init", Err: err}
	}

	return s, nil
}

// Clone copies the session's cookie state into a fresh session with its own
// jar and transport. No network round trips; this is how workers get private
// sessions without re-running the handshake.
func (s *Session) Clone() (*Session, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(s.client.BaseURL)
	if err != nil {
		return nil, err
	}
	jar.SetCookies(base, s.http.Jar.Cookies(base))

	return &Session{
		client: s.client,
		http:   &http.Client{Jar: jar, Timeout: s.client.Timeout},
		term:   s.term,
	}, nil
}

// Term returns the term code the session was initialized for.
func (s *Session) Term() string { return s.term }

// SearchPage fetches one page of the course search at the given offset.
func (s *Session) SearchPage(ctx context.Context, offset, pageSize int) (searchResponse, error) {
	q := url.Values{
		"txt_term":      {s.term},
		"pageOffset":    {strconv.Itoa(offset)},
		"pageMaxSize":   {strconv.Itoa(pageSize)},
		"sortColumn":    {"subjectDescription"},
		"sortDirection": {"asc"},
	}

	var out searchResponse
	err := httpx.DoJSON(ctx, s.http, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			s.client.BaseURL+searchResultsPath+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
		req.Header.Set("Accept-Encoding", "br")
		return req, nil
	}, &out, s.client.Retry)
	if err != nil {
		return searchResponse{}, err
	}

	return out, nil
}
