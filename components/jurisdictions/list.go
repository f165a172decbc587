package jurisdictions

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

//go:embed data/us_jurisdictions.txt
var dataFS embed.FS

const defaultListPath = "data/us_jurisdictions.txt"

// Jurisdiction is one governing-law option.
type Jurisdiction struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var (
	defaultOnce sync.Once
	defaultList []Jurisdiction
	defaultErr  error
)

// Default returns the embedded list ordered by name.
func Default() ([]Jurisdiction, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		defaultList, defaultErr = Load(f)
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]Jurisdiction{}, defaultList...), nil
}

// Names returns the names of the embedded list.
func Names() ([]string, error) {
	list, err := Default()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(list))
	for _, j := range list {
		out = append(out, j.Name)
	}
	return out, nil
}

// Load reads "CODE|Name" lines, skipping blanks, comments and duplicate
// codes, and sorts the result by name.
func Load(r io.Reader) ([]Jurisdiction, error) {
	if r == nil {
		return nil, fmt.Errorf("jurisdictions: missing reader")
	}

	scanner := bufio.NewScanner(r)
	list := make([]Jurisdiction, 0, 64)
	seen := map[string]struct{}{}

	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		code, name, ok := strings.Cut(line, "|")
		code, name = strings.ToUpper(strings.TrimSpace(code)), strings.TrimSpace(name)
		if !ok || code == "" || name == "" {
			return nil, fmt.Errorf("jurisdictions: line %d: want CODE|Name, got %q", n, line)
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		list = append(list, Jurisdiction{Code: code, Name: name})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// Normalize maps a code or a name, in any case, to the canonical name.
func Normalize(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	list, err := Default()
	if err != nil {
		return "", false
	}
	for _, j := range list {
		if strings.EqualFold(j.Code, value) || strings.EqualFold(j.Name, value) {
			return j.Name, true
		}
	}
	return "", false
}
