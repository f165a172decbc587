package jurisdictions

import "net/http"

// EmptySearchMode decides what a blank query returns.
type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

// GuardFunc rejects a request before the lookup runs.
type GuardFunc func(r *http.Request) error

// Options configures search and the options handler.
type Options struct {
	RoutePath       string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc

	// Jurisdictions replaces the embedded list when non-nil.
	Jurisdictions []Jurisdiction
}

type OptionFn func(*Options)

// NewOptions returns defaults with fns applied; non-positive limits and blank
// fields fall back to the defaults.
func NewOptions(fns ...OptionFn) Options {
	opts := Options{}
	for _, fn := range fns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/v1/jurisdictions"
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 10
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 60
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchTop
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) { o.RoutePath = path }
}

func WithLimits(defaultLimit, maxLimit int) OptionFn {
	return func(o *Options) {
		o.DefaultLimit = defaultLimit
		o.MaxLimit = maxLimit
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) { o.EmptySearchMode = mode }
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) { o.Guard = guard }
}

func WithJurisdictions(list []Jurisdiction) OptionFn {
	return func(o *Options) {
		o.Jurisdictions = append([]Jurisdiction(nil), list...)
	}
}

// clampLimit maps zero to the default and caps at MaxLimit. Negative limits
// yield nothing.
func clampLimit(limit int, opts Options) int {
	switch {
	case limit < 0:
		return 0
	case limit == 0:
		limit = opts.DefaultLimit
	}
	return min(limit, opts.MaxLimit)
}
