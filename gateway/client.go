// Package gateway is the MCP client side of pipechat. Every operation opens
// its own streamable HTTP session (transport start + initialize) and tears
// it down when the call returns; nothing is pooled or reused, matching the
// one-connection-per-call contract of the gateway.
package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/client"
	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"pipechat/config"
)

const protocolVersion = "2025-06-18"

// Client talks to one MCP gateway address.
type Client struct {
	addr    string
	timeout time.Duration
}

// ConnectResult is what a successful discovery run reports back to the UI.
type ConnectResult struct {
	Status    string
	Tools     []mcptypes.Tool
	Resources []mcptypes.Resource
}

// NewClient returns a client for the given gateway address. A timeout of
// zero disables per-call deadlines.
func NewClient(addr string, timeout time.Duration) *Client {
	return &Client{addr: addr, timeout: timeout}
}

// Address returns the configured gateway address.
func (c *Client) Address() string {
	return c.addr
}

// withSession runs fn inside a fresh MCP session and closes it afterwards.
func (c *Client) withSession(ctx context.Context, fn func(ctx context.Context, session *client.Client) error) error {
	if !strings.HasPrefix(c.addr, "http://") && !strings.HasPrefix(c.addr, "https://") {
		return fmt.Errorf("MCP Server Address must be a valid HTTP/HTTPS URL")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	session, err := client.NewStreamableHttpClient(c.addr)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.GetTransport().Start(ctx); err != nil {
		return fmt.Errorf("failed to start HTTP transport: %w", err)
	}

	initReq := mcptypes.InitializeRequest{
		Params: mcptypes.InitializeParams{
			ProtocolVersion: protocolVersion,
			Capabilities:    mcptypes.ClientCapabilities{},
			ClientInfo: mcptypes.Implementation{
				Name:    "pipechat",
				Version: "1.0.0",
			},
		},
	}
	if _, err := session.Initialize(ctx, initReq); err != nil {
		return fmt.Errorf("failed to initialize session: %w", err)
	}

	return fn(ctx, session)
}

// Connect establishes a session and discovers the tool manifest and the
// resource catalog. Listing failures degrade to empty lists; only the
// handshake itself can fail the connect.
func (c *Client) Connect(ctx context.Context) (ConnectResult, error) {
	var result ConnectResult

	err := c.withSession(ctx, func(ctx context.Context, session *client.Client) error {
		toolsResult, err := session.ListTools(ctx, mcptypes.ListToolsRequest{})
		if err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[Gateway] tool listing failed: %v", err)
			}
		} else {
			result.Tools = toolsResult.Tools
		}

		resourcesResult, err := session.ListResources(ctx, mcptypes.ListResourcesRequest{})
		if err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[Gateway] resource listing failed: %v", err)
			}
		} else {
			result.Resources = resourcesResult.Resources
		}

		return nil
	})
	if err != nil {
		return ConnectResult{}, fmt.Errorf("Failed to connect to MCP Server at %s: %w", c.addr, err)
	}

	result.Status = fmt.Sprintf("Successfully connected to MCP Server at %s.", c.addr)
	return result, nil
}

// ReadResource fetches resource content by URI over its own session.
func (c *Client) ReadResource(ctx context.Context, uri string) (string, error) {
	var content string

	err := c.withSession(ctx, func(ctx context.Context, session *client.Client) error {
		res, err := session.ReadResource(ctx, mcptypes.ReadResourceRequest{
			Params: mcptypes.ReadResourceParams{URI: uri},
		})
		if err != nil {
			return err
		}
		content = NormalizeResourceContents(res.Contents)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error reading resource %s: %w", uri, err)
	}
	return content, nil
}

// CallTool executes a named tool over its own session and returns the
// result normalized to a string.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	var content string

	err := c.withSession(ctx, func(ctx context.Context, session *client.Client) error {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Gateway] calling tool %s", name)
		}
		res, err := session.CallTool(ctx, mcptypes.CallToolRequest{
			Params: mcptypes.CallToolParams{
				Name:      name,
				Arguments: args,
			},
		})
		if err != nil {
			return err
		}
		content, err = NormalizeToolResult(res)
		return err
	})
	if err != nil {
		return "", err
	}
	return content, nil
}
