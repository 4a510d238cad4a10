package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/pinmark"
)

// ShutdownTimeout is the time given for outstanding requests to finish.
const ShutdownTimeout = 5 * time.Second

// maxRequestSize caps the JSON body of a metadata request.
const maxRequestSize = 64 << 10

// Error reasons returned by the metadata route.
const (
	ReasonInvalidBody     = "invalid_body"
	ReasonMissingURL      = "missing_url"
	ReasonInvalidURL      = "invalid_url"
	ReasonUpstreamFailed  = "upstream_failed"
	ReasonUpstreamTimeout = "upstream_timeout"
	ReasonInternal        = "internal"
)

// Server serves headless metadata extraction over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	mux    *http.ServeMux

	// Addr is the address to listen on, e.g. ":8080".
	Addr string

	MetadataFetcher pinmark.MetadataFetcher
}

// NewServer creates a server answering metadata requests with mf.
func NewServer(mf pinmark.MetadataFetcher) *Server {
	s := &Server{
		mux:             http.NewServeMux(),
		MetadataFetcher: mf,
	}
	s.mux.HandleFunc("POST /api/metadata", s.handleMetadata)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.server = &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ServeHTTP routes a request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Open starts listening on Addr and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() { _ = s.server.Serve(s.ln) }()
	return nil
}

// URL returns the base URL of a running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	addr := s.ln.Addr().String()
	if strings.HasPrefix(addr, "[::]") {
		addr = "localhost" + strings.TrimPrefix(addr, "[::]")
	}
	return "http://" + addr
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

type metadataRequest struct {
	URL *string `json:"url"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	var req metadataRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ReasonInvalidBody, Message: "request body must be a JSON object"})
		return
	}
	if req.URL == nil || strings.TrimSpace(*req.URL) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ReasonMissingURL, Message: "url required"})
		return
	}

	md, err := s.MetadataFetcher.FetchMetadata(r.Context(), strings.TrimSpace(*req.URL))
	if err != nil {
		status, reason := errorStatus(err)
		writeJSON(w, status, errorResponse{Error: reason, Message: pinmark.ErrorMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, md)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorStatus maps an application error code to a status and reason.
func errorStatus(err error) (int, string) {
	switch pinmark.ErrorCode(err) {
	case pinmark.EINVALID:
		return http.StatusBadRequest, ReasonInvalidURL
	case pinmark.EUPSTREAM:
		return http.StatusBadGateway, ReasonUpstreamFailed
	case pinmark.ETIMEOUT:
		return http.StatusBadGateway, ReasonUpstreamTimeout
	default:
		return http.StatusInternalServerError, ReasonInternal
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
