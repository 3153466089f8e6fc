package web

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/tdewolff/scatter"
)

// Handler returns an HTTP handler serving the chart page at the root path.
func Handler(ch *scatter.Chart, opts *Options) (http.Handler, error) {
	buf := &bytes.Buffer{}
	if err := Write(buf, ch, opts); err != nil {
		return nil, err
	}
	b := buf.Bytes()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		} else if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(b)))
		if r.Method == http.MethodGet {
			w.Write(b)
		}
	})
	return mux, nil
}
