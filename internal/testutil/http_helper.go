// Package testutil provides utility functions for testing HTTP handlers.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// MakeJSONRequest is a helper function for making JSON requests in tests.
// An empty authToken sends no Authorization header.
func MakeJSONRequest(body gin.H, authToken string, r *gin.Engine, endpoint string, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, endpoint, bytes.NewReader(payload))
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// DecodeJSONList decodes a response body holding a JSON array.
func DecodeJSONList(rec *httptest.ResponseRecorder) []map[string]interface{} {
	list := []map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &list)
	return list
}
