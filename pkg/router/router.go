package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

type route struct {
	method  string
	pattern string
	handler HandlerFunc
}

// Router is a small wrapper around net/http with `*` path segments and
// colored request logging. Routes are matched in registration order, so
// register more specific patterns first.
type Router struct {
	routes []route
}

func New() *Router {
	return &Router{}
}

func (r *Router) register(method, pattern string, handler HandlerFunc) {
	r.routes = append(r.routes, route{method: method, pattern: pattern, handler: handler})
}

func (r *Router) GET(pattern string, handler HandlerFunc)    { r.register(http.MethodGet, pattern, handler) }
func (r *Router) POST(pattern string, handler HandlerFunc)   { r.register(http.MethodPost, pattern, handler) }
func (r *Router) PUT(pattern string, handler HandlerFunc)    { r.register(http.MethodPut, pattern, handler) }
func (r *Router) PATCH(pattern string, handler HandlerFunc)  { r.register(http.MethodPatch, pattern, handler) }
func (r *Router) DELETE(pattern string, handler HandlerFunc) { r.register(http.MethodDelete, pattern, handler) }

// ServeHTTP dispatches and logs every request
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	handler, pathKnown := r.match(req.Method, req.URL.Path)
	switch {
	case handler != nil:
		handler(lrw, req)
	case pathKnown:
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	default:
		http.Error(lrw, "Not Found", http.StatusNotFound)
	}

	duration := time.Since(start)
	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
		colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
		methodColor(req.Method), req.Method, colorReset,
		req.URL.Path,
		statusColor(lrw.statusCode), lrw.statusCode, colorReset,
		colorBlue, duration, colorReset,
	)
}

// match returns the first handler whose method and pattern fit, plus
// whether any pattern matched the path regardless of method.
func (r *Router) match(method, path string) (HandlerFunc, bool) {
	pathKnown := false
	for _, rt := range r.routes {
		if !matchPattern(path, rt.pattern) {
			continue
		}
		pathKnown = true
		if rt.method == method {
			return rt.handler, true
		}
	}
	return nil, pathKnown
}

// matchPattern checks a request path against a pattern where `*` matches
// a single segment, and a trailing `*` matches all remaining segments.
func matchPattern(path, pattern string) bool {
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")
	patSegs := strings.Split(strings.Trim(pattern, "/"), "/")

	trailingWildcard := len(patSegs) > 0 && patSegs[len(patSegs)-1] == "*"
	if trailingWildcard {
		// the trailing wildcard itself may match zero segments
		if len(pathSegs) < len(patSegs)-1 {
			return false
		}
	} else if len(pathSegs) != len(patSegs) {
		return false
	}

	for i, seg := range patSegs {
		if seg == "*" {
			continue
		}
		if i >= len(pathSegs) || pathSegs[i] != seg {
			return false
		}
	}
	return true
}

// Routes exposes the registered routes for testing
func (r *Router) Routes() []string {
	keys := make([]string, 0, len(r.routes))
	for _, rt := range r.routes {
		keys = append(keys, rt.method+":"+rt.pattern)
	}
	return keys
}

// Start runs the HTTP server on addr
func (r *Router) Start(addr string) {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	log.Fatal(http.ListenAndServe(addr, r))
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut, http.MethodPatch:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
