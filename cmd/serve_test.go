package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/ringdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createParseReqBody(tune string, strict bool) io.Reader {
	data, err := json.Marshal(model.ParseRequestBody{RTTTL: tune, Strict: strict})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestHandleParse(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/parse", createParseReqBody("Intro:d=4,o=5,b=125:8g#,4p", false))
	w := httptest.NewRecorder()
	HandleParse(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)

	var parseResponse model.ParseResponse
	require.NoError(t, json.Unmarshal(respBody, &parseResponse))
	assert.Equal(model.ParseResponse{
		Title: "Intro",
		Notes: []model.ConvertedNote{
			{Frequency: 830.6, Duration: 240},
			{Frequency: 0, Duration: 480},
		},
		TotalDuration: 720,
	}, parseResponse)
}

func TestHandleParseReportsErrorKind(t *testing.T) {
	cases := map[string]string{
		"title;d=8,o=5,b=125;g#,e,g": "InvalidRTTTLFormat",
		"t:d=3,o=5,b=125:c":          "InvalidDefaults",
		"t:d=8,o=5,b=125:16hb":       "InvalidNote",
	}
	for tune, kind := range cases {
		req := httptest.NewRequest(http.MethodPost, "/parse", createParseReqBody(tune, false))
		w := httptest.NewRecorder()
		HandleParse(w, req)

		resp := w.Result()
		var errResponse model.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResponse))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, kind, errResponse.Kind)
		assert.NotEmpty(t, errResponse.Error)
	}
}

func TestHandleParseStrict(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/parse", createParseReqBody("t:d=4,o=5,b=63:8f#.6", true))
	w := httptest.NewRecorder()
	HandleParse(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandleParseBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	HandleParse(w, req)

	resp := w.Result()
	var errResponse model.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResponse))

	assert := assert.New(t)
	assert.Equal(http.StatusBadRequest, resp.StatusCode)
	assert.Empty(errResponse.Kind)
	assert.Contains(errResponse.Error, "Could not unmarshal request body")
}

func TestRouter(t *testing.T) {
	server := httptest.NewServer(NewRouter())
	defer server.Close()

	resp, err := http.Post(server.URL+"/parse", "application/json", createParseReqBody("t::c", false))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.NotEmpty(resp.Header.Get("X-Request-Id"))

	health, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer health.Body.Close()
	body, _ := io.ReadAll(health.Body)
	assert.Equal("ok", string(body))

	wrongMethod, err := http.Get(server.URL + "/parse")
	require.NoError(t, err)
	defer wrongMethod.Body.Close()
	assert.Equal(http.StatusMethodNotAllowed, wrongMethod.StatusCode)
}

func TestRouterKeepsRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/parse", createParseReqBody("t::c", false))
	req.Header.Set("X-Request-Id", "abc")
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)

	assert.Equal(t, "abc", w.Header().Get("X-Request-Id"))
}
