// Package uri parses URI strings into their structural components: scheme,
// host, optional port, and path segments.
//
// It is not a full RFC 3986 grammar engine. Parsing is a strict left-to-right
// scan in three phases (scheme, authority, path) using plain index lookups,
// so corner cases such as an empty port or leading/trailing empty path
// segments behave the same on every input.
//
// # Usage
//
//	u := uri.New()
//	if err := u.Parse("http://www.example.com:8080/foo/bar"); err != nil {
//		return fmt.Errorf("bad uri: %w", err)
//	}
//	fmt.Println(u.Scheme()) // "http"
//	fmt.Println(u.Host())   // "www.example.com"
//	fmt.Println(u.Port())   // 8080
//	fmt.Println(u.Path())   // ["" "foo" "bar"]
//
// The path delimiter defaults to "/" and may be any non-empty string:
//
//	u.SetPathDelimiter(":")
//	_ = u.Parse("urn:book:fantasy:Hobbit")
//	fmt.Println(u.Path()) // ["book" "fantasy" "Hobbit"]
//
// # Path Segments
//
// A leading empty segment marks an absolute path. The path "/" parses to a
// single empty segment, the empty path to no segments at all.
//
// # Errors
//
// The only rejected input is a bad port: a port containing anything other
// than ASCII digits, or a value above 65535. Such failures wrap
// ErrInvalidPort:
//
//	if errors.Is(err, uri.ErrInvalidPort) { ... }
//
// Everything else (missing scheme, empty host, odd authority boundaries) is
// accepted and decomposed on a best-effort basis.
//
// A failed Parse is not atomic. Scheme and host are already updated when
// the port is rejected, while the port and path keep the values from the
// previous successful parse. HasPort is always false after a failure.
//
// # Concurrency
//
// A URI holds plain mutable state and no locks. Do not call Parse on the same
// value from multiple goroutines; separate values are independent.
package uri
