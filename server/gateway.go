// Package server implements the tool gateway: an MCP server over streamable
// HTTP mounted at /mcp, plus plain REST endpoints mirroring the same data on
// the same listener.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// Gateway bundles the MCP server and the REST mux for one deployment.
type Gateway struct {
	log zerolog.Logger
	mcp *mcpserver.MCPServer
	mux *http.ServeMux
}

// NewGateway creates a gateway with MCP mounted at /mcp.
func NewGateway(name, version string, log zerolog.Logger) *Gateway {
	s := mcpserver.NewMCPServer(name, version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(true, true),
	)

	g := &Gateway{log: log, mcp: s, mux: http.NewServeMux()}
	g.mux.Handle("/mcp", mcpserver.NewStreamableHTTPServer(s,
		mcpserver.WithEndpointPath("/mcp"),
	))
	return g
}

// AddTool registers an MCP tool with invocation logging around the handler.
func (g *Gateway) AddTool(tool mcptypes.Tool, handler mcpserver.ToolHandlerFunc) {
	g.mcp.AddTool(tool, func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
		start := time.Now()
		res, err := handler(ctx, req)
		evt := g.log.Info()
		if err != nil || (res != nil && res.IsError) {
			evt = g.log.Error().Err(err)
		}
		evt.Str("tool", tool.Name).Dur("elapsed", time.Since(start)).Msg("tool call")
		return res, err
	})
}

// AddResource registers an MCP resource.
func (g *Gateway) AddResource(res mcptypes.Resource, handler mcpserver.ResourceHandlerFunc) {
	g.mcp.AddResource(res, handler)
}

// HandleJSON registers a GET endpoint whose payload is rendered as JSON.
func (g *Gateway) HandleJSON(path string, fn func(r *http.Request) (any, error)) {
	g.mux.HandleFunc("GET "+path, func(w http.ResponseWriter, r *http.Request) {
		payload, err := fn(r)
		if err != nil {
			g.log.Error().Err(err).Str("path", path).Msg("request failed")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	})
}

// Handler returns the combined MCP + REST handler with request logging.
func (g *Gateway) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		g.mux.ServeHTTP(w, r)
		g.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (g *Gateway) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: g.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	g.log.Info().Str("addr", addr).Msg("gateway listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
