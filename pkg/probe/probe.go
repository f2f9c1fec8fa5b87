// Package probe validates candidate endpoints against a live target.
// Candidates are requested sequentially in descending probability
// order with a fixed delay between requests, and classified by HTTP
// status: 200, 401 and 403 all mean the path exists.
package probe

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pathoracle/pathoracle/pkg/defaults"
	"github.com/pathoracle/pathoracle/pkg/httpclient"
	"github.com/pathoracle/pathoracle/pkg/iohelper"
	"github.com/pathoracle/pathoracle/pkg/score"
	"github.com/pathoracle/pathoracle/pkg/throttle"
)

// Result records the outcome of probing a single candidate path.
// StatusCode 0 means the request never produced a response.
type Result struct {
	Path        string  `json:"path"`
	URL         string  `json:"url"`
	Valid       bool    `json:"valid"`
	StatusCode  int     `json:"status_code"`
	Probability float64 `json:"probability"`
}

// Config controls probing behavior.
type Config struct {
	Timeout      time.Duration
	Throttle     time.Duration
	StaticSuffix string
	UserAgent    string
	Proxy        string
	SkipVerify   bool

	// HTTPClient overrides the built client when set.
	HTTPClient *http.Client

	// OnResult is invoked after each probe, in request order.
	OnResult func(Result)
}

// Prober issues the validation requests.
type Prober struct {
	client  *http.Client
	limiter *throttle.Limiter
	cfg     Config
}

// New builds a Prober from cfg, filling zero values with defaults.
func New(cfg Config) *Prober {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.RequestTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UAChrome
	}
	client := cfg.HTTPClient
	if client == nil {
		client = httpclient.New(httpclient.Config{
			Timeout:            cfg.Timeout,
			Proxy:              cfg.Proxy,
			InsecureSkipVerify: cfg.SkipVerify,
		})
	}
	return &Prober{
		client:  client,
		limiter: throttle.New(cfg.Throttle),
		cfg:     cfg,
	}
}

// Run probes each scored candidate in order. Candidates must already
// be sorted descending by probability. A cancelled context stops the
// remaining probes and returns the results gathered so far.
func (p *Prober) Run(ctx context.Context, target string, candidates []score.Scored) ([]Result, error) {
	base := strings.TrimRight(target, "/")
	results := make([]Result, 0, len(candidates))

	for _, cand := range candidates {
		if err := p.limiter.Wait(ctx); err != nil {
			return results, err
		}
		res := p.probe(ctx, base, cand)
		results = append(results, res)
		if p.cfg.OnResult != nil {
			p.cfg.OnResult(res)
		}
	}
	return results, nil
}

func (p *Prober) probe(ctx context.Context, base string, cand score.Scored) Result {
	path := cand.Path
	if p.cfg.StaticSuffix != "" {
		path += p.cfg.StaticSuffix
	}
	res := Result{
		Path:        cand.Path,
		URL:         base + path,
		Probability: cand.Probability,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, res.URL, nil)
	if err != nil {
		slog.Debug("probe request build failed", "url", res.URL, "error", err)
		return res
	}
	req.Header.Set("User-Agent", p.cfg.UserAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := p.client.Do(req)
	if err != nil {
		slog.Debug("probe request failed", "url", res.URL, "error", err)
		return res
	}
	defer iohelper.DrainAndClose(resp.Body)

	res.StatusCode = resp.StatusCode
	res.Valid = exists(resp.StatusCode)
	return res
}

// exists reports whether the status indicates the path is present.
// 401 and 403 mean the route is real but gated.
func exists(status int) bool {
	switch status {
	case http.StatusOK, http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return false
}

// Summary formats a one-line probe tally.
func Summary(results []Result) string {
	valid := 0
	for _, r := range results {
		if r.Valid {
			valid++
		}
	}
	return fmt.Sprintf("%d/%d candidates confirmed", valid, len(results))
}
