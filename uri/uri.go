package uri

import (
	"fmt"
	"math"
	"strings"
)

// DefaultPathDelimiter is the path segment delimiter used until
// SetPathDelimiter is called.
const DefaultPathDelimiter = "/"

const (
	schemeSeparator = ':'
	portSeparator   = ':'
	authorityPrefix = "//"
)

// state holds everything a URI knows. It stays unexported so callers depend
// only on the accessor methods, never on field layout.
type state struct {
	scheme    string
	host      string
	hasPort   bool
	port      uint16
	path      []string
	delimiter string
}

// URI is a parsed Uniform Resource Identifier.
//
// The zero value is ready to use and behaves like the result of New.
type URI struct {
	s state
}

// New returns an empty URI using DefaultPathDelimiter.
func New() *URI {
	return &URI{s: state{delimiter: DefaultPathDelimiter}}
}

// SetPathDelimiter changes the string used to split the path on the next
// call to Parse. It may be longer than one character. An empty delimiter
// restores DefaultPathDelimiter. Already parsed components are not touched.
func (u *URI) SetPathDelimiter(delimiter string) {
	if delimiter == "" {
		delimiter = DefaultPathDelimiter
	}
	u.s.delimiter = delimiter
}

// PathDelimiter returns the delimiter the next Parse will use.
func (u *URI) PathDelimiter() string {
	if u.s.delimiter == "" {
		return DefaultPathDelimiter
	}
	return u.s.delimiter
}

// Parse decomposes input into scheme, authority and path, replacing the
// previously parsed components.
//
// The only error is a *PortError wrapping ErrInvalidPort. On that error the
// scheme and host already reflect input, HasPort is false, and the port and
// path still hold the values of the previous parse.
func (u *URI) Parse(input string) error {
	delimiter := u.PathDelimiter()

	// Scheme: everything before the first colon. Without a colon nothing is
	// consumed.
	rest := input
	if i := strings.IndexByte(input, schemeSeparator); i >= 0 {
		u.s.scheme = input[:i]
		rest = input[i+1:]
	} else {
		u.s.scheme = ""
	}

	// Authority: only present when the remainder starts with "//". It ends
	// at the next path delimiter, which is left in place for the path phase.
	u.s.hasPort = false
	port := uint16(0)
	hasPort := false
	if strings.HasPrefix(rest, authorityPrefix) {
		end := len(rest)
		if i := strings.Index(rest[len(authorityPrefix):], delimiter); i >= 0 {
			end = i + len(authorityPrefix)
		}
		authority := rest[len(authorityPrefix):end]

		if i := strings.IndexByte(authority, portSeparator); i < 0 {
			u.s.host = authority
		} else {
			u.s.host = authority[:i]
			p, err := parsePort(authority[i+1:])
			if err != nil {
				return err
			}
			port, hasPort = p, true
		}
		rest = rest[end:]
	} else {
		u.s.host = ""
	}

	u.s.hasPort = hasPort
	u.s.port = port
	u.s.path = splitPath(rest, delimiter)
	return nil
}

// Scheme returns the text before the first colon, or "" if the URI had none.
func (u *URI) Scheme() string {
	return u.s.scheme
}

// Host returns the authority without its port, or "" if there was no
// authority.
func (u *URI) Host() string {
	return u.s.host
}

// HasPort reports whether the last parse found a port.
func (u *URI) HasPort() bool {
	return u.s.hasPort
}

// Port returns the port number. It is only meaningful when HasPort is true.
func (u *URI) Port() uint16 {
	return u.s.port
}

// Path returns a copy of the path segments. A leading "" marks an absolute
// path.
func (u *URI) Path() []string {
	path := make([]string, len(u.s.path))
	copy(path, u.s.path)
	return path
}

// IsAbsolute reports whether the path starts with the delimiter.
func (u *URI) IsAbsolute() bool {
	return len(u.s.path) > 0 && u.s.path[0] == ""
}

// parsePort converts the decimal digits of a port. An empty string is port 0.
func parsePort(digits string) (uint16, error) {
	var port uint32
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, &PortError{
				Digits: digits,
				Reason: fmt.Sprintf("unexpected character %q at offset %d", rune(c), i),
			}
		}
		port = port*10 + uint32(c-'0')
		if port > math.MaxUint16 {
			return 0, &PortError{
				Digits: digits,
				Reason: fmt.Sprintf("value exceeds %d", math.MaxUint16),
			}
		}
	}
	return uint16(port), nil
}

// splitPath breaks rest into segments at every exact occurrence of
// delimiter.
func splitPath(rest, delimiter string) []string {
	if rest == delimiter {
		return []string{""}
	}
	if rest == "" {
		return []string{}
	}

	var segments []string
	for {
		i := strings.Index(rest, delimiter)
		if i < 0 {
			return append(segments, rest)
		}
		segments = append(segments, rest[:i])
		rest = rest[i+len(delimiter):]
	}
}
