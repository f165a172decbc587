package answers

import "strings"

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source points at an answers document.
type Source struct {
	kind     SourceKind
	location string
}

// Kind reports the loader modality.
func (s Source) Kind() SourceKind { return s.kind }

// Location is the path or URL.
func (s Source) Location() string { return s.location }

// SourceFromFile references a document on disk.
func SourceFromFile(path string) Source {
	return Source{kind: SourceKindFile, location: strings.TrimSpace(path)}
}

// SourceFromFS references a document inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return Source{kind: SourceKindFS, location: strings.TrimSpace(name)}
}

// SourceFromURL references a document served over HTTP(S).
func SourceFromURL(url string) Source {
	return Source{kind: SourceKindURL, location: strings.TrimSpace(url)}
}

// ParseSource picks the modality from the location: http(s) URLs load over
// the network, anything else from disk.
func ParseSource(location string) Source {
	trimmed := strings.TrimSpace(location)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return SourceFromURL(trimmed)
	}
	return SourceFromFile(trimmed)
}
