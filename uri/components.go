package uri

// Components is a read-only snapshot of a parsed URI, suitable for encoding.
type Components struct {
	Scheme        string   `json:"scheme" yaml:"scheme"`
	Host          string   `json:"host" yaml:"host"`
	HasPort       bool     `json:"hasPort" yaml:"hasPort"`
	Port          uint16   `json:"port" yaml:"port"`
	Path          []string `json:"path" yaml:"path"`
	PathDelimiter string   `json:"pathDelimiter" yaml:"pathDelimiter"`
}

// Components returns a snapshot of the current state. Port is reported as 0
// when HasPort is false.
func (u *URI) Components() Components {
	c := Components{
		Scheme:        u.Scheme(),
		Host:          u.Host(),
		HasPort:       u.HasPort(),
		Path:          u.Path(),
		PathDelimiter: u.PathDelimiter(),
	}
	if c.HasPort {
		c.Port = u.Port()
	}
	return c
}

// IsAbsolute reports whether the snapshot's path starts with the delimiter.
func (c Components) IsAbsolute() bool {
	return len(c.Path) > 0 && c.Path[0] == ""
}

// ParseString parses input with a fresh URI using delimiter (empty means
// DefaultPathDelimiter) and returns the resulting snapshot.
func ParseString(input, delimiter string) (Components, error) {
	u := New()
	u.SetPathDelimiter(delimiter)
	if err := u.Parse(input); err != nil {
		return Components{}, err
	}
	return u.Components(), nil
}
