package mcptool

import (
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/jongio/uri-core/logutil"
	"github.com/jongio/uri-core/uri"
	"github.com/jongio/uri-core/version"
)

// ParseToolName is the name of the parse tool.
const ParseToolName = "parse_uri"

// Options configures the MCP server.
type Options struct {
	// PathDelimiter is used when a call does not pass a delimiter.
	PathDelimiter string
	// RateLimit is tool calls per second; <= 0 disables limiting.
	RateLimit float64
	Burst     int
}

// NewServer creates an MCP server exposing the parse_uri tool.
func NewServer(info *version.Info, opts Options) *server.MCPServer {
	s := server.NewMCPServer(info.Name, info.Version, server.WithToolCapabilities(false))
	s.AddTool(ParseTool(), NewParseHandler(opts))
	return s
}

// ServeStdio runs s over the given streams until ctx is cancelled or the
// input is closed.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s).Listen(ctx, in, out)
}

// ParseTool describes the parse_uri tool.
func ParseTool() mcp.Tool {
	return mcp.NewTool(ParseToolName,
		mcp.WithDescription("Split a URI into scheme, host, optional port and path segments."),
		mcp.WithString("uri",
			mcp.Required(),
			mcp.Description("The URI to parse, e.g. http://www.example.com:8080/foo/bar"),
		),
		mcp.WithString("delimiter",
			mcp.Description("Path segment delimiter; may be several characters. Defaults to \"/\"."),
		),
	)
}

// NewParseHandler returns the handler backing the parse_uri tool.
func NewParseHandler(opts Options) server.ToolHandlerFunc {
	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	log := logutil.NewLogger("mcp").WithOperation(ParseToolName)

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if limiter != nil && !limiter.Allow() {
			log.Warn("rate limit exceeded")
			return mcp.NewToolResultError(fmt.Sprintf("rate limit exceeded for tool %q, please wait before retrying", ParseToolName)), nil
		}

		args := GetArgsMap(request)
		input, ok := GetStringParam(args, "uri")
		if !ok {
			return mcp.NewToolResultError("missing required string argument: uri"), nil
		}

		delimiter, _ := GetStringParam(args, "delimiter")
		if delimiter == "" {
			delimiter = opts.PathDelimiter
		}

		c, err := uri.ParseString(input, delimiter)
		if err != nil {
			log.Info("parse rejected", "input", input, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		log.Debug("parsed", "scheme", c.Scheme, "segments", len(c.Path))
		return MarshalToolResult(c)
	}
}
