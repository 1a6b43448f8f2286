package httptransport

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SymbologyHandlerSuite struct {
	suite.Suite
	router http.Handler
}

func (s *SymbologyHandlerSuite) SetupSuite() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := New(logger, nil)
	s.router = NewRouter(handler, 5*time.Second)
}

func TestSymbologyHandlerSuite(t *testing.T) {
	suite.Run(t, new(SymbologyHandlerSuite))
}

func (s *SymbologyHandlerSuite) post(path string, body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *SymbologyHandlerSuite) TestParseService() {
	w := s.post("/v1/service/parse", parseServiceRequest{Service: "//blp/refdata"})

	s.Equal(http.StatusOK, w.Code)
	var resp parseServiceResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("//blp/refdata", resp.Service)
	s.Equal("blp", resp.Scheme)
	s.Equal("refdata", resp.Provider)
}

func (s *SymbologyHandlerSuite) TestParseServiceInvalid() {
	for _, input := range []string{"//blp/unknown", "refdata", "///blp/refdata", ""} {
		s.Run(input, func() {
			w := s.post("/v1/service/parse", parseServiceRequest{Service: input})

			s.Equal(http.StatusUnprocessableEntity, w.Code)
			var resp map[string]string
			s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			s.Equal("invalid_input", resp["error"])
			s.NotEmpty(resp["error_description"])
		})
	}
}

func (s *SymbologyHandlerSuite) TestParseQuantity() {
	tests := []struct {
		input    string
		value    float64
		factor   string
		resolved float64
	}{
		{"100", 100, "", 100},
		{"1.5MM", 1.5, "MM", 1_500_000},
		{"($2M)", 2, "M", 2_000},
		{"1000P", 1000, "P", 1000},
	}
	for _, tt := range tests {
		s.Run(tt.input, func() {
			w := s.post("/v1/quantity/parse", parseQuantityRequest{Quantity: tt.input})

			s.Equal(http.StatusOK, w.Code)
			var resp parseQuantityResponse
			s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			s.Equal(tt.value, resp.Value)
			s.Equal(tt.factor, resp.Factor)
			s.Equal(tt.resolved, resp.Resolved)
		})
	}
}

func (s *SymbologyHandlerSuite) TestParseQuantityInvalid() {
	w := s.post("/v1/quantity/parse", parseQuantityRequest{Quantity: "12KB"})

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("invalid_input", resp["error"])
}

func (s *SymbologyHandlerSuite) TestParseServiceBadBody() {
	req := httptest.NewRequest(http.MethodPost, "/v1/service/parse", bytes.NewReader([]byte("no")))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusBadRequest, w.Code)
}
