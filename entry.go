package mimedb

// Compressibility is the tri-state compressible attribute of a media type
type Compressibility int

// Compressibility values.  CompressibilityUnknown means the table records nothing,
// and callers must decide for themselves.
const (
	CompressibilityUnknown Compressibility = iota
	Compressible
	Incompressible
)

func (c Compressibility) String() string {
	switch c {
	case Compressible:
		return "compressible"
	case Incompressible:
		return "incompressible"
	default:
		return "unknown"
	}
}

// Known reports whether the table records compressibility at all
func (c Compressibility) Known() bool {
	return c == Compressible || c == Incompressible
}

// Entry holds the attributes of one media type, as defined by mime-db.
// Every field is optional.
type Entry struct {
	Source       Source   `json:"source,omitempty" yaml:"source,omitempty"`
	Charset      string   `json:"charset,omitempty" yaml:"charset,omitempty"`
	Compressible *bool    `json:"compressible,omitempty" yaml:"compressible,omitempty"`
	Extensions   []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Compressibility converts the optional compressible flag into its tri-state form
func (e Entry) Compressibility() Compressibility {
	switch {
	case e.Compressible == nil:
		return CompressibilityUnknown
	case *e.Compressible:
		return Compressible
	default:
		return Incompressible
	}
}

// clone returns a copy sharing no memory with e
func (e Entry) clone() Entry {
	c := Entry{
		Source:  e.Source,
		Charset: e.Charset,
	}
	if e.Compressible != nil {
		v := *e.Compressible
		c.Compressible = &v
	}
	if e.Extensions != nil {
		c.Extensions = make([]string, len(e.Extensions))
		copy(c.Extensions, e.Extensions)
	}
	return c
}
