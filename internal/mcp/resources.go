// resources.go implements the numeral resource template.
//
// A resource gives clients read-only context without a tool call:
// roman://numerals/1998 reads as "MCMXCVIII".

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/roman/internal/log"
	"github.com/jpl-au/roman/internal/roman"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ErrInvalidURI indicates a malformed resource URI.
var ErrInvalidURI = errors.New("invalid URI")

const numeralPrefix = "roman://numerals/"

func registerResources(s *server.MCPServer) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			numeralPrefix+"{number}",
			"Roman numeral",
			mcp.WithTemplateDescription("The canonical Roman numeral for a number in 1-3999"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		readNumeral,
	)
}

// readNumeral handles roman://numerals/{number} resource requests.
func readNumeral(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	numeral, err := numeralForURI(uri)
	log.Event("mcp:numerals", "encode").Input(uri).Output(numeral).Write(err)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     numeral,
		},
	}, nil
}

func numeralForURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, numeralPrefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	n, err := roman.ParseInt(strings.TrimPrefix(uri, numeralPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}
	return roman.FromInt(n)
}
