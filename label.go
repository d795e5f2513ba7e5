package dbscan

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the role a record plays in the clustering.
type Kind uint8

const (
	// Noise records belong to no cluster. It is the zero value.
	Noise Kind = iota
	// Core records have at least MinPoints neighbours.
	Core
	// Edge records are not dense themselves but lie within Epsilon of a
	// core record.
	Edge
)

func (k Kind) String() string {
	switch k {
	case Noise:
		return "noise"
	case Core:
		return "core"
	case Edge:
		return "edge"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ClusterID identifies a cluster. Identifiers are dense and zero-based,
// assigned in the order clusters are discovered.
type ClusterID int

// pos is an index into the input data. It is kept apart from record values
// and distances so the two are never mixed up.
type pos int

// Label is the classification of one record. The zero value is Noise.
type Label struct {
	Kind    Kind
	Cluster ClusterID
}

// CoreLabel returns the label of a core point of cluster id.
func CoreLabel(id ClusterID) Label { return Label{Kind: Core, Cluster: id} }

// EdgeLabel returns the label of an edge point of cluster id.
func EdgeLabel(id ClusterID) Label { return Label{Kind: Edge, Cluster: id} }

// ClusterID returns the cluster the record belongs to, or false for noise.
func (l Label) ClusterID() (ClusterID, bool) {
	if l.Kind == Noise {
		return 0, false
	}
	return l.Cluster, true
}

// IsNoise reports whether the record belongs to no cluster.
func (l Label) IsNoise() bool { return l.Kind == Noise }

// String formats the label as "noise", "core(N)" or "edge(N)".
func (l Label) String() string {
	if l.Kind == Noise {
		return "noise"
	}
	return l.Kind.String() + "(" + strconv.Itoa(int(l.Cluster)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLabel parses the format produced by Label.String.
func ParseLabel(s string) (Label, error) {
	s = strings.TrimSpace(s)
	if s == "noise" {
		return Label{}, nil
	}

	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Label{}, fmt.Errorf("dbscan: malformed label %q", s)
	}

	var kind Kind
	switch s[:open] {
	case "core":
		kind = Core
	case "edge":
		kind = Edge
	default:
		return Label{}, fmt.Errorf("dbscan: unknown label kind %q", s[:open])
	}

	id, err := strconv.Atoi(s[open+1 : len(s)-1])
	if err != nil || id < 0 {
		return Label{}, fmt.Errorf("dbscan: malformed cluster id in label %q", s)
	}
	return Label{Kind: kind, Cluster: ClusterID(id)}, nil
}
