package logger

import "sync"

// registry caches named Loggers so that Get("x") returns the same Logger,
// and therefore the same file lock, on every call.
type registry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// Logger returns the Logger registered under name, creating it on first
// use. Its class tag is "[name] ".
func (p *Process) Logger(name string) *Logger {
	r := &p.registry

	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[name]; ok {
		return l
	}
	if r.loggers == nil {
		r.loggers = make(map[string]*Logger)
	}
	l = p.NewLogger(ClassTag(name))
	r.loggers[name] = l
	return l
}

// ClassTag returns the class tag used for a Logger named name.
func ClassTag(name string) string {
	if name == "" {
		return ""
	}
	return "[" + name + "] "
}
