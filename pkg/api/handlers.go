package api

import (
	"net/http"

	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/platform"
	"github.com/dmitrymomot/devicekit/pkg/screen"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
	"github.com/dmitrymomot/devicekit/pkg/validator"
)

// Classification is the result returned by the device endpoints.
type Classification struct {
	Matched bool                 `json:"matched"`
	Rule    string               `json:"rule,omitempty"`
	Device  *platform.Descriptor `json:"device,omitempty"`
	Label   string               `json:"label"`
	Screen  screen.Metrics       `json:"screen"`
}

// ClassifyRequest is the body of POST /v1/classify. Omitted metrics fall
// back to the service defaults.
type ClassifyRequest struct {
	UserAgent    string   `json:"user_agent"`
	PixelDensity *float64 `json:"pixel_density,omitempty"`
	Width        *float64 `json:"width,omitempty"`
}

// RuleInfo describes one rule of the classifier.
type RuleInfo struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
}

func newClassification(d platform.Descriptor, matched bool, m screen.Metrics) Classification {
	c := Classification{Matched: matched, Label: d.String(), Screen: m}
	if matched {
		c.Device = &d
	}
	return c
}

// device reports the classification done by platform.Middleware.
func (a *api) device(w http.ResponseWriter, r *http.Request) {
	m, ok := screen.FromContext(r.Context())
	if !ok {
		m = a.defaults
	}
	d, matched := platform.FromContext(r.Context())
	writeData(w, newClassification(d, matched, m))
}

func (a *api) classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, a.log, err)
		return
	}

	if err := req.validate(); err != nil {
		writeError(w, r, a.log, err)
		return
	}

	ua, err := useragent.Parse(req.UserAgent)
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}
	m := req.metrics(a.defaults)

	res := newClassification(platform.Descriptor{}, false, m)
	if rule, ok := a.classifier.Match(ua, m); ok {
		res = newClassification(rule.Describe(ua.String()), true, m)
		res.Rule = rule.Name
	}

	a.log.DebugContext(r.Context(), "classify request served",
		logger.UserAgent(req.UserAgent),
		logger.Rule(res.Rule),
	)
	writeData(w, res)
}

func (a *api) rules(w http.ResponseWriter, _ *http.Request) {
	rules := a.classifier.Rules()
	out := make([]RuleInfo, 0, len(rules))
	for i, r := range rules {
		out = append(out, RuleInfo{Position: i + 1, Name: r.Name})
	}
	writeData(w, out)
}

func (req ClassifyRequest) validate() error {
	rules := []validator.Rule{validator.RequiredString("user_agent", req.UserAgent)}
	if req.PixelDensity != nil {
		rules = append(rules, validator.MinNum("pixel_density", *req.PixelDensity, 0))
	}
	if req.Width != nil {
		rules = append(rules, validator.MinNum("width", *req.Width, 0))
	}
	return validator.Apply(rules...)
}

func (req ClassifyRequest) metrics(defaults screen.Metrics) screen.Metrics {
	m := defaults
	if req.PixelDensity != nil {
		m.PixelDensity = *req.PixelDensity
	}
	if req.Width != nil {
		m.Width = *req.Width
	}
	return m
}
