// Package transport exposes the internal/tools dispatch layer over HTTP:
// one route per tool, a permissive CORS wrapper, and a per-IP
// token-bucket rate limiter.
package transport

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// CORS wraps h with permissive cross-origin headers; tools carry no
// credentials or session state so there is nothing to protect by
// restricting origins beyond the default browser-safety headers.
func CORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// IPRateLimiter is a per-client-IP token bucket.
type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  sync.RWMutex
	r   rate.Limit
	b   int
}

// NewIPRateLimiter builds a limiter allowing r requests/sec with burst b
// per client IP.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{ips: make(map[string]*rate.Limiter), r: r, b: b}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()
	limiter, exists := i.ips[ip]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[ip] = limiter
	}
	return limiter
}

// LimitMiddleware rejects requests over the per-IP rate with 429.
func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.getLimiter(r.RemoteAddr).Allow() {
			http.Error(w, "Too Many Requests. Try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewRouter registers one POST /tools/{name} and GET /tools/{name}/schema
// route per entry in the tool registry.
func NewRouter(env *Env) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/tools").Subrouter()
	for name, entry := range registry {
		name, entry := name, entry
		api.HandleFunc("/"+name, func(w http.ResponseWriter, req *http.Request) {
			entry.handle(env, w, req)
		}).Methods("POST")
		api.HandleFunc("/"+name+"/schema", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, entry.schema)
		}).Methods("GET")
	}
	api.HandleFunc("/screen_materials_batch/upload", handleScreenMaterialsBatch(env)).Methods("POST")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	return r
}
