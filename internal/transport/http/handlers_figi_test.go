package httptransport

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type FIGIHandlerSuite struct {
	suite.Suite
	router http.Handler
}

func (s *FIGIHandlerSuite) SetupSuite() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// nil metrics: handlers record nothing, tests skip registry setup.
	handler := New(logger, nil)
	s.router = NewRouter(handler, 5*time.Second)
}

func TestFIGIHandlerSuite(t *testing.T) {
	suite.Run(t, new(FIGIHandlerSuite))
}

func (s *FIGIHandlerSuite) post(path string, body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *FIGIHandlerSuite) TestValidateValid() {
	w := s.post("/v1/figi/validate", validateFIGIRequest{FIGI: "BBG000BLNNH6"})

	s.Equal(http.StatusOK, w.Code)
	var resp figiResult
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Valid)
	s.Equal("BBG000BLNNH6", resp.FIGI)
	s.Equal("BB", resp.Prefix)
	s.Equal("G", resp.Marker)
	s.Equal("000BLNNH6", resp.Body)
	s.Require().NotNil(resp.CheckDigit)
	s.Equal(6, *resp.CheckDigit)
	s.Empty(resp.Reason)
}

func (s *FIGIHandlerSuite) TestValidateInvalid() {
	tests := []struct {
		input  string
		reason string
	}{
		{"BSG000BLNNH6", "invalid_prefix"},
		{"BBX000BLNNH6", "invalid_marker"},
		{"BBG000BLNNHH", "invalid_check_digit_format"},
		{"BBG000BLNNH7", "invalid_checksum"},
		{"BBG000BLNNH6EXTRA", "invalid_length"},
		{"", "invalid_length"},
		{"BBG0A0BLNNH6", "invalid_body_character"},
	}
	for _, tt := range tests {
		s.Run(tt.reason+"/"+tt.input, func() {
			w := s.post("/v1/figi/validate", validateFIGIRequest{FIGI: tt.input})

			s.Equal(http.StatusUnprocessableEntity, w.Code)
			var resp figiResult
			s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			s.False(resp.Valid)
			s.Equal(tt.input, resp.FIGI)
			s.Equal(tt.reason, resp.Reason)
			s.NotEmpty(resp.Message)
			s.Nil(resp.CheckDigit)
		})
	}
}

func (s *FIGIHandlerSuite) TestValidateBadBody() {
	req := httptest.NewRequest(http.MethodPost, "/v1/figi/validate", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("bad_request", resp["error"])
}

func (s *FIGIHandlerSuite) TestValidateBatch() {
	w := s.post("/v1/figi/validate/batch", validateFIGIBatchRequest{
		FIGIs: []string{"BBG000BLNNH6", "BSG000BLNNH6", "BBG000B9XRY4", "nonsense"},
	})

	s.Equal(http.StatusOK, w.Code)
	var resp validateFIGIBatchResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp.Results, 4)

	// Order is preserved regardless of fan-out.
	s.True(resp.Results[0].Valid)
	s.Equal("BBG000BLNNH6", resp.Results[0].FIGI)
	s.False(resp.Results[1].Valid)
	s.Equal("invalid_prefix", resp.Results[1].Reason)
	s.True(resp.Results[2].Valid)
	s.False(resp.Results[3].Valid)
	s.Equal("invalid_length", resp.Results[3].Reason)
}

func (s *FIGIHandlerSuite) TestValidateBatchEmpty() {
	w := s.post("/v1/figi/validate/batch", validateFIGIBatchRequest{FIGIs: []string{}})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *FIGIHandlerSuite) TestValidateBatchTooLarge() {
	figis := make([]string, maxBatchSize+1)
	for i := range figis {
		figis[i] = "BBG000BLNNH6"
	}
	w := s.post("/v1/figi/validate/batch", validateFIGIBatchRequest{FIGIs: figis})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *FIGIHandlerSuite) TestHealthz() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
}

func (s *FIGIHandlerSuite) TestUnknownRoute() {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *FIGIHandlerSuite) TestRequestIDHeader() {
	w := s.post("/v1/figi/validate", validateFIGIRequest{FIGI: "BBG000BLNNH6"})
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

// TestFigiReason pins the reason strings: they are client-visible API.
func TestFigiReason(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(logger, nil)

	tests := []struct {
		input  string
		reason string
	}{
		{"short", "invalid_length"},
		{"11G000BLNNH6", "invalid_prefix"},
		{"KYG000BLNNH6", "invalid_prefix"},
		{"BB!000BLNNH6", "invalid_marker"},
		{"BBG000blnnH6", "invalid_body_character"},
		{"BBG000BLNNHX", "invalid_check_digit_format"},
		{"BBG000BLNNH0", "invalid_checksum"},
	}
	for _, tt := range tests {
		result := h.validate(tt.input)
		require.False(t, result.Valid, tt.input)
		assert.Equal(t, tt.reason, result.Reason, tt.input)
	}
}
