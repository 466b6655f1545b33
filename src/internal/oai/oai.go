// Package oai pulls UNTL metadata listings for UNT Digital Library
// collections over OAI-PMH and manages the local cache file.
package oai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"untl2zotero/src/internal/httpx"
)

// DefaultCachePath is the fixed file holding the last-fetched raw listing.
const DefaultCachePath = "cached_untl_metadata.xml"

const defaultEndpoint = "https://digital.library.unt.edu/explore/collections"

var endpoint = defaultEndpoint

// SetEndpoint overrides the collection endpoint base URL.
func SetEndpoint(base string) {
	if base != "" {
		endpoint = base
	}
}

var client httpx.Doer = &http.Client{Timeout: 60 * time.Second}

// SetHTTPClient replaces the HTTP client, for injection in tests.
func SetHTTPClient(c httpx.Doer) { client = c }

// CollectionURL returns the ListRecords URL for a collection id.
func CollectionURL(collectionID string) string {
	return fmt.Sprintf("%s/%s/oai/?verb=ListRecords&metadataPrefix=untl", endpoint, collectionID)
}

// Fetch pulls the full UNTL metadata listing for a collection in one GET.
// Transport errors and non-200 responses are returned with the attempted URL;
// there are no retries.
func Fetch(ctx context.Context, collectionID string) ([]byte, error) {
	u := CollectionURL(collectionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%v: %s", err, u)
	}
	httpx.SetUA(req)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%v: %s", err, u)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, u)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%v: %s", err, u)
	}
	return body, nil
}

// Load returns the raw listing for a collection. With useCache set and an
// existing cache file the file is read wholesale and no request is made;
// otherwise the listing is fetched and the cache file rewritten wholesale.
func Load(ctx context.Context, collectionID, cachePath string, useCache bool) ([]byte, error) {
	if useCache {
		if data, err := os.ReadFile(cachePath); err == nil {
			return data, nil
		}
	}
	data, err := Fetch(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		return nil, fmt.Errorf("write cache %s: %w", cachePath, err)
	}
	return data, nil
}
