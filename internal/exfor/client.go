// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package exfor queries the IAEA EXFOR web service for neutron-induced
// cross-section data and resolves a (target, reaction, library) triple to
// one concrete point-series dataset.
package exfor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/macs-engine/pkg/types"
)

// defaultBaseURL is the production EXFOR web service root. Tests substitute
// an httptest server through ArchiveConfig.BaseURL.
const defaultBaseURL = "https://www-nds.iaea.org/exfor"

// QuantitySIG requests cross-section data from the listing endpoint.
const QuantitySIG = "SIG"

// Client issues lookups against the EXFOR archive. Both archive calls are
// synchronous and made at most once; a failed request is not retried.
type Client struct {
	HTTP   *http.Client
	Config types.ArchiveConfig
}

// NewClient returns a Client for cfg, filling in the production base URL
// and the SIG quantity when cfg leaves them empty.
func NewClient(cfg types.ArchiveConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Quantity == "" {
		cfg.Quantity = QuantitySIG
	}
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}
}

// ListSections fetches the candidate measurement sections for a (target,
// reaction, quantity) triple from the e4list endpoint. Listing order is
// preserved as delivered by the archive.
func (c *Client) ListSections(target, reaction, quantity string) ([]Section, error) {
	params := url.Values{
		"Target":   {target},
		"Reaction": {reaction},
		"Quantity": {quantity},
	}
	// The archive expects a bare "json" flag, not "json=".
	reqURL := c.Config.BaseURL + "/e4list?" + params.Encode() + "&json"

	var lr listResponse
	if err := c.getJSON("e4list", reqURL, &lr); err != nil {
		return nil, err
	}
	return lr.Sections, nil
}

// SelectByLibrary returns the sections whose library name exactly equals
// libName. The match is case-sensitive with no normalization of spelling
// variants; callers supply the archive-recognized form. Relative order is
// preserved and an empty result is not an error.
func SelectByLibrary(sections []Section, libName string) []Section {
	var matched []Section
	for _, s := range sections {
		if s.LibName == libName {
			matched = append(matched, s)
		}
	}
	return matched
}

// ResolveDataset resolves a (target, reaction, library) triple to one
// dataset: it lists candidate sections, filters to libName, takes the first
// match in archive order, and fetches that section's point series from the
// e4sig endpoint.
//
// It fails with *NoMatchError when filtering leaves no section, with
// *EmptyDatasetError when the point-series envelope holds no datasets, and
// with *TransportError for any network, HTTP, or decoding failure.
func (c *Client) ResolveDataset(target, reaction, libName string) (*CrossSectionDataset, error) {
	sections, err := c.ListSections(target, reaction, c.Config.Quantity)
	if err != nil {
		return nil, err
	}

	matched := SelectByLibrary(sections, libName)
	if len(matched) == 0 {
		return nil, &NoMatchError{Target: target, Reaction: reaction, Library: libName}
	}

	// First match wins; archive listing order is the only ranking applied.
	section := matched[0]

	params := url.Values{
		"SectID":    {fmt.Sprintf("%d", section.SectID)},
		"PenSectID": {fmt.Sprintf("%d", section.PenSectID)},
	}
	reqURL := c.Config.BaseURL + "/e4sig?" + params.Encode() + "&json"

	var cr CrossSectionResponse
	if err := c.getJSON("e4sig", reqURL, &cr); err != nil {
		return nil, err
	}

	if len(cr.Datasets) == 0 {
		return nil, &EmptyDatasetError{SectID: section.SectID, PenSectID: section.PenSectID}
	}
	return &cr.Datasets[0], nil
}

// getJSON issues a single GET against reqURL and decodes the body into out.
// Every failure mode is wrapped in a *TransportError naming the endpoint.
func (c *Client) getJSON(endpoint, reqURL string, out any) error {
	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("creating request: %w", err)}
	}
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("parsing response: %w", err)}
	}
	return nil
}
