// Package cosmic is a thin client for the Cosmic bucket API, the hosted
// object store behind the dashboard. It exposes the five operations the
// content repository needs: find by type, find one by id, insert, update
// and delete.
package cosmic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.cosmicjs.com/v3"

// ErrNotFound is returned when the store reports a 404 for a query or
// object id. Callers decide whether that is an error or an empty result.
var ErrNotFound = errors.New("cosmic: not found")

type Client struct {
	bucketSlug string
	readKey    string
	writeKey   string
	baseURL    string
	httpClient *http.Client
}

func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		bucketSlug: cfg.BucketSlug,
		readKey:    cfg.ReadKey,
		writeKey:   cfg.WriteKey,
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Find fetches every object of the given type into out, which must be a
// pointer to a slice. The store answers 404 when no object of the type
// exists; that surfaces as ErrNotFound.
func (c *Client) Find(ctx context.Context, typ string, opt FindOptions, out any) error {
	query, err := json.Marshal(map[string]string{"type": typ})
	if err != nil {
		return err
	}

	q := url.Values{}
	q.Set("read_key", c.readKey)
	q.Set("query", string(query))
	if len(opt.Props) > 0 {
		q.Set("props", strings.Join(opt.Props, ","))
	}
	if opt.Depth > 0 {
		q.Set("depth", strconv.Itoa(opt.Depth))
	}

	envelope := struct {
		Objects any `json:"objects"`
	}{Objects: out}
	return c.do(ctx, http.MethodGet, "/objects?"+q.Encode(), nil, &envelope)
}

// FindOne fetches a single object by id into out.
func (c *Client) FindOne(ctx context.Context, id string, depth int, out any) error {
	q := url.Values{}
	q.Set("read_key", c.readKey)
	if depth > 0 {
		q.Set("depth", strconv.Itoa(depth))
	}

	envelope := struct {
		Object any `json:"object"`
	}{Object: out}
	return c.do(ctx, http.MethodGet, "/objects/"+url.PathEscape(id)+"?"+q.Encode(), nil, &envelope)
}

// InsertOne creates an object from the generic envelope and decodes the
// stored result, including the assigned id and timestamps, into out.
func (c *Client) InsertOne(ctx context.Context, obj NewObject, out any) error {
	envelope := struct {
		Object any `json:"object"`
	}{Object: out}
	return c.do(ctx, http.MethodPost, "/objects", obj, &envelope)
}

// UpdateOne sends a partial envelope replacing the object's metadata
// wholesale and decodes the updated object into out.
func (c *Client) UpdateOne(ctx context.Context, id string, metadata any, out any) error {
	patch := map[string]any{"metadata": metadata}
	envelope := struct {
		Object any `json:"object"`
	}{Object: out}
	return c.do(ctx, http.MethodPatch, "/objects/"+url.PathEscape(id), patch, &envelope)
}

// DeleteOne removes an object by id.
func (c *Client) DeleteOne(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/objects/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	fullURL := c.baseURL + "/buckets/" + c.bucketSlug + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Writes authenticate with the write key; reads carry the read key in
	// the query string.
	if method != http.MethodGet {
		req.Header.Set("Authorization", "Bearer "+c.writeKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cosmic: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &apiErr)
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return fmt.Errorf("cosmic: %s %s: status %d: %s", method, path, resp.StatusCode, apiErr.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cosmic: decode %s %s: %w", method, path, err)
	}
	return nil
}
