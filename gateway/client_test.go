package gateway

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"pipechat/server"
)

// startTestGateway serves the demo catalogs over a real MCP endpoint so the
// client's session-per-call flow runs against actual transport handshakes.
func startTestGateway(t *testing.T) *Client {
	t.Helper()

	g := server.NewGateway("pipechat-test", "0.0.0", zerolog.Nop())
	server.RegisterDemoItems(g)
	server.RegisterDemoPipelines(g)

	srv := httptest.NewServer(g.Handler())
	t.Cleanup(srv.Close)

	return NewClient(srv.URL+"/mcp", 5*time.Second)
}

func TestConnectDiscoversCatalog(t *testing.T) {
	c := startTestGateway(t)

	result, err := c.Connect(context.Background())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	wantStatus := fmt.Sprintf("Successfully connected to MCP Server at %s.", c.Address())
	if result.Status != wantStatus {
		t.Errorf("status = %q, want %q", result.Status, wantStatus)
	}

	if len(result.Tools) != 2 {
		t.Fatalf("got %d tools, want 2", len(result.Tools))
	}
	toolNames := map[string]bool{}
	for _, tool := range result.Tools {
		toolNames[tool.Name] = true
	}
	for _, name := range []string{"list_items", "list_pipelines"} {
		if !toolNames[name] {
			t.Errorf("tool %q not discovered", name)
		}
	}

	if len(result.Resources) != 2 {
		t.Fatalf("got %d resources, want 2", len(result.Resources))
	}
	uris := map[string]bool{}
	for _, res := range result.Resources {
		uris[res.URI] = true
	}
	for _, uri := range []string{"demo://items", "demo://pipelines"} {
		if !uris[uri] {
			t.Errorf("resource %q not discovered", uri)
		}
	}
}

func TestConnectEmptyCatalog(t *testing.T) {
	g := server.NewGateway("pipechat-test", "0.0.0", zerolog.Nop())
	srv := httptest.NewServer(g.Handler())
	t.Cleanup(srv.Close)

	result, err := NewClient(srv.URL+"/mcp", 5*time.Second).Connect(context.Background())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if len(result.Tools) != 0 || len(result.Resources) != 0 {
		t.Errorf("got %d tools, %d resources, want empty catalogs",
			len(result.Tools), len(result.Resources))
	}
}

func TestConnectInvalidAddress(t *testing.T) {
	_, err := NewClient("localhost:8000/mcp", time.Second).Connect(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "MCP Server Address must be a valid HTTP/HTTPS URL") {
		t.Errorf("error = %q", err)
	}
}

func TestConnectUnreachable(t *testing.T) {
	srv := httptest.NewServer(nil)
	addr := srv.URL + "/mcp"
	srv.Close()

	_, err := NewClient(addr, time.Second).Connect(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), fmt.Sprintf("Failed to connect to MCP Server at %s", addr)) {
		t.Errorf("error = %q", err)
	}
}

func TestCallTool(t *testing.T) {
	c := startTestGateway(t)

	content, err := c.CallTool(context.Background(), "list_items", map[string]any{})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	want := `[{"id":"item_1","name":"Item 1"},{"id":"item_2","name":"Item 2"}]`
	if content != want {
		t.Errorf("content = %q, want %q", content, want)
	}
}

func TestCallToolUnknown(t *testing.T) {
	c := startTestGateway(t)

	if _, err := c.CallTool(context.Background(), "no_such_tool", map[string]any{}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestReadResourceOverSession(t *testing.T) {
	c := startTestGateway(t)

	content, err := c.ReadResource(context.Background(), "demo://pipelines")
	if err != nil {
		t.Fatalf("ReadResource: %v", err)
	}
	want := `[{"id":"pipe_1","name":"Pipeline 1 (MCP)"},{"id":"pipe_2","name":"Pipeline 2 (MCP)"}]`
	if content != want {
		t.Errorf("content = %q, want %q", content, want)
	}
}

func TestReadResourceUnknown(t *testing.T) {
	c := startTestGateway(t)

	_, err := c.ReadResource(context.Background(), "demo://missing")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "demo://missing") {
		t.Errorf("error = %q", err)
	}
}
