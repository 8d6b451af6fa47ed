package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultPipelineAPIBase is the remote pipeline service the proxy variant
// talks to.
const DefaultPipelineAPIBase = "https://cloudpipeline-ext.ap-southeast-3.myhuaweicloud.com"

// pipelineDefinitionTemplate is the fixed single-stage definition every
// created pipeline starts from (base64-encoded JSON, sent verbatim).
const pipelineDefinitionTemplate = "eyJzdGFnZXMiOlt7Im5hbWUiOiJTdGFnZV8xIiwic2VxdWVuY2UiOiIwIiwiam9icyI6W3siaWQiOiIiLCJpZGVudGlmaWVyX29sZCI6bnVsbCwic3RhZ2VfaW5kZXgiOm51bGwsInR5cGUiOm51bGwsIm5hbWUiOiJOZXcgSm9iIiwiYXN5bmMiOm51bGwsImlkZW50aWZpZXIiOiJKT0JfSlhKd3ciLCJzZXF1ZW5jZSI6MCwiY29uZGl0aW9uIjoiJHt7IGRlZmF1bHQoKSB9fSIsInN0cmF0ZWd5Ijp7InNlbGVjdF9zdHJhdGVneSI6InNlbGVjdGVkIn0sInRpbWVvdXQiOiIiLCJyZXNvdXJjZSI6bnVsbCwic3RlcHMiOltdLCJzdGFnZV9pZCI6IjE3NDcwMzEyMzUzNzciLCJwaXBlbGluZV9pZCI6IjJmNWVkYzYxYjlhMjQxN2JhZGZlZjU1Mjg3Njc3NTBkIiwidW5maW5pc2hlZF9zdGVwcyI6bnVsbCwiY29uZGl0aW9uX3RhZyI6bnVsbCwiZXhlY190eXBlIjoiQUdFTlRMRVNTX0pPQiIsImRlcGVuZHNfb24iOltdLCJyZXVzYWJsZV9qb2JfaWQiOm51bGx9XSwiaWRlbnRpZmllciI6IjE3NDcwMzEyMzUzNzc1NTFhYmM5MS00NGE1LTQ4OTgtOWZiYi01YWUxMjBjOWM2ODgiLCJwcmUiOlt7InJ1bnRpbWVfYXR0cmlidXRpb24iOm51bGwsIm11bHRpX3N0ZXBfZWRpdGFibGUiOjAsIm9mZmljaWFsX3Rhc2tfdmVyc2lvbiI6bnVsbCwibmFtZSI6bnVsbCwidGFzayI6Im9mZmljaWFsX2RldmNsb3VkX2F1dG9UcmlnZ2VyIiwiYnVzaW5lc3NfdHlwZSI6bnVsbCwiaW5wdXRzIjpudWxsLCJlbnYiOm51bGwsInNlcXVlbmNlIjowLCJpZGVudGlmaWVyIjpudWxsLCJlbmRwb2ludF9pZHMiOm51bGx9XSwicG9zdCI6bnVsbCwiZGVwZW5kc19vbiI6W10sInJ1bl9hbHdheXMiOmZhbHNlLCJwaXBlbGluZV9pZCI6IjJmNWVkYzYxYjlhMjQxN2JhZGZlZjU1Mjg3Njc3NTBkIn1dfQ=="

// PipelineClient calls the remote pipeline REST API with token auth. Every
// request carries a 10-second timeout.
type PipelineClient struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewPipelineClient returns a client for the given API base. An empty base
// selects DefaultPipelineAPIBase.
func NewPipelineClient(baseURL, token string) *PipelineClient {
	if baseURL == "" {
		baseURL = DefaultPipelineAPIBase
	}
	return &PipelineClient{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *PipelineClient) post(ctx context.Context, url string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-auth-token", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP error: %d - %s", resp.StatusCode, string(raw))
	}
	return json.RawMessage(raw), nil
}

// ListPipelines fetches the pipeline list for a project.
func (c *PipelineClient) ListPipelines(ctx context.Context, projectID string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/v5/%s/api/pipelines/list", c.baseURL, projectID)
	return c.post(ctx, url, map[string]any{})
}

// CreatePipeline creates a pipeline from the fixed definition template.
func (c *PipelineClient) CreatePipeline(ctx context.Context, name, projectID string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/v5/%s/api/pipelines", c.baseURL, projectID)
	return c.post(ctx, url, map[string]any{
		"name":       name,
		"definition": pipelineDefinitionTemplate,
	})
}
