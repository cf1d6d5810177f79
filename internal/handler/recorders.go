package handler

import "sync"

// routeRecorder captures navigation requests issued by a request-scoped view
// so they can be returned to the browser as a redirect directive.
type routeRecorder struct {
	mu    sync.Mutex
	route string
}

func (r *routeRecorder) NavigateTo(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.route = route
}

func (r *routeRecorder) target() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.route
}

type notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type noteRecorder struct {
	mu   sync.Mutex
	note *notification
}

func (r *noteRecorder) Notify(level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.note = &notification{Level: level, Message: message}
}

func (r *noteRecorder) last() *notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.note
}
