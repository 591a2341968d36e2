// Copyright 2026 The Anvil Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resources

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"anvil.dev/internalhttp/router"
)

//go:embed deploy.html
var deployHTML string

// DefaultTemplateFetchTimeout bounds the optional remote template download so
// a slow origin never stalls a request-handling goroutine indefinitely.
const DefaultTemplateFetchTimeout = 10 * time.Second

// maxTemplateBytes caps the downloaded template size.
const maxTemplateBytes = 4 << 20

// DeployUI renders the template-deploy page. The page is a static template
// with a handful of placeholder substitutions; an optional templateURL query
// parameter pre-fills the template body from a remote document. Download or
// parse failures surface as an inline error banner, never as a failed request.
type DeployUI struct {
	client  *http.Client
	regions []string
	logger  *slog.Logger
}

// DeployUIOption configures a DeployUI.
type DeployUIOption func(*DeployUI)

// WithRegions sets the region names offered by the deploy form.
func WithRegions(regions []string) DeployUIOption {
	return func(d *DeployUI) {
		d.regions = regions
	}
}

// WithTemplateClient replaces the HTTP client used for template downloads.
// The client's timeout is kept as-is, so callers own the fetch bound.
func WithTemplateClient(client *http.Client) DeployUIOption {
	return func(d *DeployUI) {
		if client != nil {
			d.client = client
		}
	}
}

// WithDeployLogger sets the structured logger for fetch diagnostics.
func WithDeployLogger(logger *slog.Logger) DeployUIOption {
	return func(d *DeployUI) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDeployUI creates the deploy UI endpoint.
func NewDeployUI(opts ...DeployUIOption) *DeployUI {
	d := &DeployUI{
		client: &http.Client{Timeout: DefaultTemplateFetchTimeout},
		logger: router.NoopLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// OnGet renders the deploy page.
func (d *DeployUI) OnGet(req *router.Request) (any, error) {
	// Always a JSON array, never null, so the page's region loop is safe.
	regions := append(make([]string, 0, len(d.regions)), d.regions...)
	sort.Strings(regions)
	regionsJSON, err := json.Marshal(regions)
	if err != nil {
		return nil, err
	}

	params := map[string]string{
		"stackName":    "stack1",
		"templateBody": "{}",
		"errorMessage": "''",
		"regions":      string(regionsJSON),
	}

	if downloadURL := req.Query("templateURL"); downloadURL != "" {
		body, err := d.fetchTemplate(req.Context(), downloadURL)
		if err != nil {
			msg := fmt.Sprintf("Unable to download template URL: %v", err)
			d.logger.Info("template download failed", "url", downloadURL, "err", err)
			quoted, _ := json.Marshal(strings.ReplaceAll(msg, "\n", " - "))
			params["errorMessage"] = string(quoted)
		} else {
			params["templateBody"] = body
		}
	}

	page := deployHTML
	for key, value := range params {
		page = strings.ReplaceAll(page, "<"+key+">", value)
	}
	return router.HTML(http.StatusOK, []byte(page)), nil
}

// fetchTemplate downloads the template and normalizes it to JSON. The
// document may be JSON or YAML.
func (d *DeployUI) fetchTemplate(ctx context.Context, url string) (string, error) {
	d.logger.Debug("downloading deploy template", "url", url)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := d.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxTemplateBytes))
	if err != nil {
		return "", err
	}

	parsed, err := parseJSONOrYAML(raw)
	if err != nil {
		return "", err
	}
	normalized, err := json.Marshal(parsed)
	if err != nil {
		return "", err
	}
	return string(normalized), nil
}

// parseJSONOrYAML decodes a document that may be JSON or YAML, preferring the
// stricter JSON reading.
func parseJSONOrYAML(raw []byte) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err == nil {
		return v, nil
	}
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("document is neither valid JSON nor YAML: %w", err)
	}
	return v, nil
}
