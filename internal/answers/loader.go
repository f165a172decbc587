// Package answers loads pre-filled intake answers from YAML or JSON documents
// on disk, in an fs.FS, or over HTTP.
package answers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-docgen/pkg/model"
)

// Option configures a Loader.
type Option func(*Loader)

// WithFileSystem enables SourceKindFS sources.
func WithFileSystem(files fs.FS) Option {
	return func(l *Loader) {
		l.fs = files
	}
}

// WithHTTPClient enables URL sources through client.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		if client != nil {
			clone := *client
			l.http = &clone
		}
	}
}

// WithHTTP enables URL sources through a default client.
func WithHTTP() Option {
	return func(l *Loader) {
		if l.http == nil {
			l.http = &http.Client{}
		}
	}
}

// WithTimeout bounds each HTTP request.
func WithTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		l.timeout = timeout
	}
}

// Loader fetches and decodes answers documents.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
}

// NewLoader constructs a Loader. URL sources are rejected unless an HTTP
// option is given.
func NewLoader(options ...Option) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load fetches src and decodes it.
func (l *Loader) Load(ctx context.Context, src Source) (model.Answers, error) {
	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case SourceKindURL:
		if l.http == nil {
			return nil, errors.New("answers loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("answers loader: unsupported source kind")
	}
	if err != nil {
		return nil, fmt.Errorf("answers loader: load %s: %w", src.Location(), err)
	}
	return Parse(data)
}

// Parse decodes a YAML or JSON mapping of question id to value. A document
// whose "answers" key holds a mapping is unwrapped first. Scalars are
// stringified: booleans become "Yes"/"No", lists join with newlines, nulls
// are dropped.
func Parse(data []byte) (model.Answers, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("answers loader: decode: %w", err)
	}
	if nested, ok := raw["answers"].(map[string]any); ok {
		raw = nested
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(model.Answers, len(raw))
	for _, key := range keys {
		value, ok, err := stringify(raw[key])
		if err != nil {
			return nil, fmt.Errorf("answers loader: %s: %w", key, err)
		}
		if ok {
			out[strings.TrimSpace(key)] = value
		}
	}
	return out, nil
}

func stringify(value any) (string, bool, error) {
	switch v := value.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case bool:
		if v {
			return "Yes", true, nil
		}
		return "No", true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case uint64:
		return strconv.FormatUint(v, 10), true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case time.Time:
		return v.Format("January 2, 2006"), true, nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			s, ok, err := stringify(item)
			if err != nil {
				return "", false, err
			}
			if ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n"), true, nil
	default:
		return "", false, fmt.Errorf("unsupported value of type %T", value)
	}
}
