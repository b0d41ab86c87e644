package handlers

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"
)

// StaticOptions locates the files served by StaticHandler
type StaticOptions struct {
	Assets      fs.FS  // public directory
	Entry       fs.FS  // file system holding the entry file
	EntryName   string // entry file name within Entry
	SPAFallback bool   // serve the entry file when no asset matches
}

// StaticHandler serves the entry HTML file and the public assets.
// All file systems are read-only; nothing is cached between requests.
type StaticHandler struct {
	opts   StaticOptions
	logger *slog.Logger
}

// NewStaticHandler creates a new static handler
func NewStaticHandler(opts StaticOptions, logger *slog.Logger) *StaticHandler {
	return &StaticHandler{
		opts:   opts,
		logger: logger,
	}
}

// ServeEntry handles GET / by sending the entry file as text/html
func (h *StaticHandler) ServeEntry(w http.ResponseWriter, r *http.Request) {
	if h.opts.Entry == nil {
		WriteError(w, http.StatusNotFound, "Not found", h.logger)
		return
	}

	data, err := fs.ReadFile(h.opts.Entry, h.opts.EntryName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.logger.Warn("entry file not found", "file", h.opts.EntryName)
			WriteError(w, http.StatusNotFound, "Not found", h.logger)
			return
		}
		h.logger.Error("failed to read entry file", "file", h.opts.EntryName, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	var modTime time.Time
	if info, err := fs.Stat(h.opts.Entry, h.opts.EntryName); err == nil {
		modTime = info.ModTime()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, h.opts.EntryName, modTime, bytes.NewReader(data))
}

// ServeAsset is the fallback for every path no explicit route claimed.
// It serves the matching public file, then the entry file when SPA
// fallback is on, and otherwise answers 404.
func (h *StaticHandler) ServeAsset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		WriteError(w, http.StatusNotFound, "Not found", h.logger)
		return
	}

	if name, ok := h.lookup(r.URL.Path); ok {
		http.ServeFileFS(w, r, h.opts.Assets, name)
		return
	}

	if h.opts.SPAFallback {
		h.ServeEntry(w, r)
		return
	}

	WriteError(w, http.StatusNotFound, "Not found", h.logger)
}

// lookup resolves a URL path to a regular file in the public directory.
// Directories resolve to their index.html.
func (h *StaticHandler) lookup(urlPath string) (string, bool) {
	if h.opts.Assets == nil {
		return "", false
	}

	// Cleaning a rooted path drops every "..", so the result stays inside Assets.
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = "."
	}

	info, err := fs.Stat(h.opts.Assets, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.logger.Debug("static lookup failed", "path", name, "error", err)
		}
		return "", false
	}

	if info.IsDir() {
		name = path.Join(name, "index.html")
		info, err = fs.Stat(h.opts.Assets, name)
		if err != nil {
			return "", false
		}
	}

	if !info.Mode().IsRegular() {
		return "", false
	}
	return name, true
}
