package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/grantdesk/backend/internal/config"
	"github.com/grantdesk/backend/internal/controllers/api"
	"github.com/grantdesk/backend/internal/httperror"
	"github.com/grantdesk/backend/internal/router"
	"github.com/stretchr/testify/assert"
)

// Request is a helper method to simplify making a HTTP request for tests.
//
// A string body is sent as is, nil sends no body and everything else
// is marshalled to JSON.
func Request(t *testing.T, co api.Controller, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled from object input", err)
		}
		reader = bytes.NewBuffer(byteStr)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		assert.FailNow(t, "Configuration could not be parsed", err)
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	defer teardown()

	router.AttachRoutes(cfg, co, r.Group(cfg.APIURL.Path))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, reader)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// AssertHTTPStatus asserts that the response has one of the expected codes.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	assert.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError decodes an error response and returns its message.
func DecodeError(t *testing.T, r *httptest.ResponseRecorder) httperror.Error {
	var e httperror.Error
	DecodeResponse(t, r, &e)
	return e
}
