// Package server implements the static file handler and the HTTP server
// lifecycle around it.
package server

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/f4ah6o/mobileserve/internal/config"
	"github.com/f4ah6o/mobileserve/internal/mimetype"
)

const (
	contentTypeHTML  = "text/html"
	contentTypePlain = "text/plain; charset=utf-8"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "*",
}

// Handler serves files from a root directory and falls back to the index
// document for paths that do not exist, so client-side routes of a
// single-page application resolve to the app shell.
//
// Request paths are appended to the root verbatim. Sequences such as "/../"
// are not cleaned or rejected, so a client can read files outside the root.
// The server is meant for a trusted LAN.
//
// A Handler holds no mutable state and is safe for concurrent use.
type Handler struct {
	root     string
	index    string
	types    *mimetype.Table
	logger   *zap.Logger
	readFile func(name string) ([]byte, error)
}

// NewHandler returns a Handler serving cfg.Root with cfg.Index as the
// default document. A nil logger disables logging.
func NewHandler(cfg *config.Config, types *mimetype.Table, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		root:     cfg.Root,
		index:    cfg.Index,
		types:    types,
		logger:   logger,
		readFile: os.ReadFile,
	}
}

// ServeHTTP answers one request as described on Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	header := w.Header()
	for key, value := range corsHeaders {
		header.Set(key, value)
	}

	logger := h.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var status int
	defer func() {
		logger.Debug("Handled request", zap.Int("status", status))
	}()

	// CORS preflight.
	if r.Method == http.MethodOptions {
		status = http.StatusOK
		w.WriteHeader(status)
		return
	}

	filePath := h.resolve(r.URL.Path)
	content, err := h.readFile(filePath)
	switch {
	case err == nil:
		status = h.write(w, logger, http.StatusOK, h.types.Lookup(filePath), content)
	case errors.Is(err, fs.ErrNotExist):
		status = h.serveFallback(w, r, logger)
	default:
		logger.Error("Failed to read file", zap.String("file", filePath), zap.Error(err))
		body := printerFor(r.Header.Get("Accept-Language")).Sprintf(msgServerErrorCode, errorCode(err))
		status = h.write(w, logger, http.StatusInternalServerError, contentTypePlain, []byte(body))
	}
}

// serveFallback answers with the index document. Only a missing file leads
// here; other read errors never reach the fallback.
func (h *Handler) serveFallback(w http.ResponseWriter, r *http.Request, logger *zap.Logger) int {
	indexPath := h.indexPath()
	content, err := h.readFile(indexPath)
	if err != nil {
		logger.Error("Failed to read fallback document", zap.String("file", indexPath), zap.Error(err))
		body := printerFor(r.Header.Get("Accept-Language")).Sprintf(msgServerError)
		return h.write(w, logger, http.StatusInternalServerError, contentTypePlain, []byte(body))
	}
	return h.write(w, logger, http.StatusOK, contentTypeHTML, content)
}

func (h *Handler) write(w http.ResponseWriter, logger *zap.Logger, status int, contentType string, body []byte) int {
	header := w.Header()
	header.Set("Content-Type", contentType)
	header.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)

	// The client may have disconnected while the file was being read.
	if _, err := w.Write(body); err != nil {
		logger.Debug("Failed to write response", zap.Error(err))
	}
	return status
}

// resolve maps a URL path to a file path by plain concatenation.
func (h *Handler) resolve(urlPath string) string {
	if urlPath == "" || urlPath == "/" {
		return h.indexPath()
	}
	return h.root + urlPath
}

func (h *Handler) indexPath() string {
	return h.root + "/" + h.index
}

// rootCause strips the path and operation that fs.PathError adds.
func rootCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
