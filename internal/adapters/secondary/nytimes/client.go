package nytimes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/juju/clock"
	"github.com/juju/retry"
	log "github.com/sirupsen/logrus"

	"newsfeed-service/internal/config"
	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

// Endpoint paths of the NYT APIs this client talks to.
const (
	pathWireContent = "/svc/news/v3/content/%s/%s.json"
	pathWireLatest  = "/svc/news/v3/content.json"
	pathSectionList = "/svc/news/v3/content/section-list.json"
	pathMostPopular = "/svc/mostpopular/v2/%s/%d.json"
)

// MaxPageLimit is the largest page the wire content endpoint accepts.
const MaxPageLimit = 500

// Recorder counts upstream requests. A nil Recorder disables counting.
type Recorder interface {
	WireRequest(endpoint, status string)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	attempts   int
	delay      time.Duration
	clock      clock.Clock
	raw        ports.RawStore
	recorder   Recorder
}

type Option func(*Client)

// WithRawStore archives every successful response body before decoding.
func WithRawStore(store ports.RawStore) Option {
	return func(c *Client) { c.raw = store }
}

func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

func WithClock(clk clock.Clock) Option {
	return func(c *Client) { c.clock = clk }
}

func NewClient(cfg *config.NYTimesConfig, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		attempts: cfg.RetryAttempts,
		delay:    cfg.RetryDelay,
		clock:    clock.WallClock,
	}
	if c.attempts <= 0 {
		c.attempts = 1
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Content(ctx context.Context, source, section string, limit, offset int) ([]ports.WireArticle, error) {
	if err := domain.ValidateSource(source); err != nil {
		return nil, err
	}
	if section == "" {
		section = domain.SectionAll
	}
	path := fmt.Sprintf(pathWireContent, source, section)
	params := pageParams(limit, offset)

	var resp wireContentResponse
	label := fmt.Sprintf("newswire-%s_%s", source, section)
	if err := c.getJSON(ctx, "content", path, params, label, &resp); err != nil {
		return nil, err
	}
	return toWireArticles(resp.Results), nil
}

func (c *Client) Latest(ctx context.Context, limit int) ([]ports.WireArticle, error) {
	var resp wireContentResponse
	if err := c.getJSON(ctx, "latest", pathWireLatest, pageParams(limit, 0), "newswire-latest", &resp); err != nil {
		return nil, err
	}
	return toWireArticles(resp.Results), nil
}

func (c *Client) SectionList(ctx context.Context) ([]ports.WireSection, error) {
	var resp sectionListResponse
	if err := c.getJSON(ctx, "section-list", pathSectionList, nil, "newswire-sections", &resp); err != nil {
		return nil, err
	}
	sections := make([]ports.WireSection, 0, len(resp.Results))
	for _, r := range resp.Results {
		sections = append(sections, ports.WireSection{
			Section:     r.Section,
			DisplayName: r.DisplayName,
		})
	}
	return sections, nil
}

func (c *Client) MostPopular(ctx context.Context, kind string, period int) ([]domain.PopularArticle, error) {
	if err := domain.ValidatePopularKind(kind); err != nil {
		return nil, err
	}
	if err := domain.ValidatePeriod(period); err != nil {
		return nil, err
	}
	path := fmt.Sprintf(pathMostPopular, kind, period)

	var resp mostPopularResponse
	label := fmt.Sprintf("popular-%s-%dd", kind, period)
	if err := c.getJSON(ctx, "most-popular", path, nil, label, &resp); err != nil {
		return nil, err
	}

	articles := make([]domain.PopularArticle, 0, len(resp.Results))
	for _, r := range resp.Results {
		a := domain.PopularArticle{
			Title:    r.Title,
			Abstract: r.Abstract,
			URL:      r.URL,
			Byline:   r.Byline,
			Section:  r.Section,
			Source:   r.Source,
			ItemType: r.Type,
		}
		// Most Popular reports a bare date, not a timestamp.
		if t, err := time.Parse("2006-01-02", r.PublishedDate); err == nil {
			a.PublishedAt = t
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// statusError marks an upstream HTTP failure so the retry policy can tell
// transient failures from rejections.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("news wire returned status %d", e.code)
}

func (e *statusError) retryable() bool {
	return e.code >= 500 || e.code == http.StatusTooManyRequests
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, params url.Values, label string, out interface{}) error {
	var body []byte
	err := retry.Call(retry.CallArgs{
		Func: func() error {
			var err error
			body, err = c.doRequest(ctx, endpoint, path, params)
			return err
		},
		IsFatalError: func(err error) bool {
			var se *statusError
			if errors.As(err, &se) {
				return !se.retryable()
			}
			return ctx.Err() != nil
		},
		NotifyFunc: func(err error, attempt int) {
			log.WithFields(log.Fields{
				"endpoint": endpoint,
				"attempt":  attempt,
			}).WithError(err).Warn("news wire request failed, retrying")
		},
		Attempts:    c.attempts,
		Delay:       c.delay,
		BackoffFunc: retry.DoubleDelay,
		Clock:       c.clock,
		Stop:        ctx.Done(),
	})
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			return fmt.Errorf("%w: %v", domain.ErrWireRejected, err)
		}
		return fmt.Errorf("%w: %v", domain.ErrWireUnavailable, err)
	}

	if c.raw != nil {
		if name, err := c.raw.SaveSnapshot(label, body); err != nil {
			log.WithError(err).Warn("raw snapshot failed")
		} else {
			log.WithField("file", name).Debug("raw snapshot saved")
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	if env := envelopeOf(out); env != nil && env.Status != "OK" {
		return fmt.Errorf("%w: status %q", domain.ErrWireRejected, env.Status)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("api-key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create wire request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(endpoint, "error")
		return nil, fmt.Errorf("wire request: %w", err)
	}
	defer resp.Body.Close()

	c.record(endpoint, strconv.Itoa(resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read wire response: %w", err)
	}
	return body, nil
}

func (c *Client) record(endpoint, status string) {
	if c.recorder != nil {
		c.recorder.WireRequest(endpoint, status)
	}
}

func pageParams(limit, offset int) url.Values {
	params := url.Values{}
	if limit > 0 {
		if limit > MaxPageLimit {
			limit = MaxPageLimit
		}
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	return params
}

func toWireArticles(results []wireArticle) []ports.WireArticle {
	articles := make([]ports.WireArticle, 0, len(results))
	for _, r := range results {
		thumb := r.ThumbnailStandard
		if thumb == "" {
			for _, m := range r.Multimedia {
				if m.Type == "image" {
					thumb = m.URL
					break
				}
			}
		}
		articles = append(articles, ports.WireArticle{
			SlugName:          r.SlugName,
			Section:           r.Section,
			Subsection:        r.Subsection,
			Title:             r.Title,
			Abstract:          r.Abstract,
			URL:               r.URL,
			URI:               r.URI,
			Byline:            r.Byline,
			ItemType:          r.ItemType,
			Source:            r.Source,
			MaterialTypeFacet: r.MaterialTypeFacet,
			Kicker:            r.Kicker,
			DesFacet:          r.DesFacet,
			OrgFacet:          r.OrgFacet,
			PerFacet:          r.PerFacet,
			GeoFacet:          r.GeoFacet,
			ThumbnailURL:      thumb,
			UpdatedDate:       r.UpdatedDate,
			CreatedDate:       r.CreatedDate,
			PublishedDate:     r.PublishedDate,
			FirstPublished:    r.FirstPublishedDate,
		})
	}
	return articles
}

func envelopeOf(out interface{}) *envelope {
	switch v := out.(type) {
	case *wireContentResponse:
		return &v.envelope
	case *sectionListResponse:
		return &v.envelope
	case *mostPopularResponse:
		return &v.envelope
	}
	return nil
}
