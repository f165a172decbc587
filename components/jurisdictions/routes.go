package jurisdictions

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Component bundles the handler, its configuration and routing helpers.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Handler returns the options handler.
func (c *Component) Handler() http.Handler {
	return handler{opts: c.opts}
}

// Path returns the mount path under basePath.
func (c *Component) Path(basePath string) string {
	return mountPath(basePath, c.opts.RoutePath)
}

// RegisterRoutes mounts the handler under basePath on mux. wrap, when given,
// decorates the handler before it is registered.
func (c *Component) RegisterRoutes(mux Mux, basePath string, wrap func(http.Handler) http.Handler) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("jurisdictions: missing mux")
	}
	handler := c.Handler()
	if wrap != nil {
		handler = wrap(handler)
	}
	pattern := c.Path(basePath)
	mux.Handle(pattern, handler)
	return pattern, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/") + routePath
}
