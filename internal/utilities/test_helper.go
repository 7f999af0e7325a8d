package utilities

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// SimulateAPICall runs handlerFunc on a test context carrying a JSON request.
// A nil body sends an empty request body. The decoded JSON object is returned
// alongside the recorder.
func SimulateAPICall(
	handlerFunc func(*gin.Context),
	route string,
	method string,
	body interface{},
) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	var b []byte
	if body != nil {
		var err error
		if b, err = json.Marshal(body); err != nil {
			return nil, nil, err
		}
	}
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	req, err := http.NewRequest(method, route, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	handlerFunc(c)

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		return rec, nil, err
	}
	return rec, resp, nil
}
