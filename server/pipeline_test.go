package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPipelineClientListPipelines(t *testing.T) {
	var gotPath, gotToken string
	var gotBody []byte

	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("x-auth-token")
		gotBody, _ = io.ReadAll(r.Body)
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"pipelines":[{"id":"pipe_1"}]}`)
	}))
	defer remote.Close()

	c := NewPipelineClient(remote.URL, "secret-token")
	raw, err := c.ListPipelines(context.Background(), "proj-42")
	if err != nil {
		t.Fatalf("ListPipelines: %v", err)
	}

	if gotPath != "/v5/proj-42/api/pipelines/list" {
		t.Errorf("path = %q", gotPath)
	}
	if gotToken != "secret-token" {
		t.Errorf("token header = %q", gotToken)
	}
	if strings.TrimSpace(string(gotBody)) != "{}" {
		t.Errorf("body = %q, want empty JSON object", gotBody)
	}
	if !strings.Contains(string(raw), "pipe_1") {
		t.Errorf("response = %s", raw)
	}
}

func TestPipelineClientCreatePipeline(t *testing.T) {
	var gotPath string
	var payload map[string]string

	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&payload)
		io.WriteString(w, `{"pipeline_id":"new_pipe"}`)
	}))
	defer remote.Close()

	c := NewPipelineClient(remote.URL, "secret-token")
	raw, err := c.CreatePipeline(context.Background(), "My Pipeline", "proj-42")
	if err != nil {
		t.Fatalf("CreatePipeline: %v", err)
	}

	if gotPath != "/v5/proj-42/api/pipelines" {
		t.Errorf("path = %q", gotPath)
	}
	if payload["name"] != "My Pipeline" {
		t.Errorf("name = %q", payload["name"])
	}
	if payload["definition"] != pipelineDefinitionTemplate {
		t.Error("definition template not sent verbatim")
	}
	if !strings.Contains(string(raw), "new_pipe") {
		t.Errorf("response = %s", raw)
	}
}

func TestPipelineClientHTTPError(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":"bad token"}`)
	}))
	defer remote.Close()

	c := NewPipelineClient(remote.URL, "wrong")
	_, err := c.ListPipelines(context.Background(), "proj-42")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "bad token") {
		t.Errorf("error = %v", err)
	}
}

func TestNewPipelineClientDefaultBase(t *testing.T) {
	c := NewPipelineClient("", "token")
	if c.baseURL != DefaultPipelineAPIBase {
		t.Errorf("baseURL = %q", c.baseURL)
	}
	if c.httpc.Timeout.Seconds() != 10 {
		t.Errorf("timeout = %v, want 10s", c.httpc.Timeout)
	}
}
