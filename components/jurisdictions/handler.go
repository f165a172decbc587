package jurisdictions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

// StatusError lets a guard choose the response status. Guards returning any
// other error produce 403.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

// NewHandler builds the GET options handler.
func NewHandler(fns ...OptionFn) http.Handler {
	return handler{opts: NewOptions(fns...)}
}

type handler struct {
	opts Options
}

func (h handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if h.opts.Guard != nil {
		if err := h.opts.Guard(r); err != nil {
			code := http.StatusForbidden
			var se StatusError
			if errors.As(err, &se) && se.Code > 0 {
				code = se.Code
			}
			http.Error(w, http.StatusText(code), code)
			return
		}
	}

	list := h.opts.Jurisdictions
	if list == nil {
		var err error
		if list, err = Default(); err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	options := SearchOptions(list, query.Get("q"), limit, h.opts)
	if options == nil {
		options = []Option{}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(struct {
		Data []Option `json:"data"`
	}{Data: options})
}
