// Package mcptool serves URI parsing to AI assistants as a Model Context
// Protocol tool.
//
// The server exposes one tool, parse_uri, taking a required "uri" string and
// an optional "delimiter" string. The result is the uri.Components snapshot
// encoded as JSON text. An invalid port is reported as a tool error result
// rather than a protocol error, so the assistant sees the message.
//
//	s := mcptool.NewServer(version.New("urictl"), mcptool.Options{})
//	if err := mcptool.ServeStdio(ctx, s, os.Stdin, os.Stdout); err != nil {
//		return err
//	}
package mcptool
