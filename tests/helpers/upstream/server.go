package upstream

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2" //lint:ignore ST1001 this is a test file
	. "github.com/onsi/gomega"    //lint:ignore ST1001 this is a test file
)

type Server struct {
	mux        *http.ServeMux
	httpServer *httptest.Server
	requests   []*http.Request
}

func NewServer() *Server {
	return &Server{
		mux:      http.NewServeMux(),
		requests: []*http.Request{},
	}
}

func (s *Server) WithJSONResponse(pattern string, status int, body any) *Server {
	GinkgoHelper()

	bodyBytes, err := json.Marshal(body)
	Expect(err).NotTo(HaveOccurred())

	return s.WithHandler(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(bodyBytes)
	}))
}

func (s *Server) WithHandler(pattern string, handler http.Handler) *Server {
	s.mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		s.requests = append(s.requests, r)
		handler.ServeHTTP(w, r)
	}))

	return s
}

func (s *Server) Start() *Server {
	s.httpServer = httptest.NewServer(s.mux)
	return s
}

func (s *Server) URL() string {
	return s.httpServer.URL
}

func (s *Server) Stop() {
	s.httpServer.Close()
}

func (s *Server) ServedRequests() []*http.Request {
	return s.requests
}
