// Package testkit_test exercises the scenario framework against a minimal
// handler. Application packages use the same entry points with the real
// kernel router, for example:
//
//	func TestInventoryAPI(t *testing.T) {
//	    r := kernel.NewRouter()
//	    routes.RegisterAPI(r, api)
//	    testkit.RunDir(t, r.Handler(), "testdata")
//	}
package testkit_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bizdesk/pkg/testkit"
)

// testHandler stands in for the kernel router in these self-tests.
var testHandler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/health":
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`)) //nolint:errcheck
	}
})

// writeFixture drops a scenario or body file into dir and returns its path.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_HealthCheck(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "health_res.json", `{"status":"ok"}`)
	path := writeFixture(t, dir, "health_check.json", `{
		"name": "Health Check",
		"requestMethod": "GET",
		"requestUrl": "/health",
		"expectedCode": 200,
		"responseFileName": "health_res.json"
	}`)

	testkit.Run(t, testHandler, path)
}

// TestScenario_CustomMockExpectation shows testify/mock expectations layered
// on top of a loaded scenario: the fixture declares a supplier SKU check and
// an alert email, and the test pins the sendmail mocker behavior itself.
func TestScenario_CustomMockExpectation(t *testing.T) {
	mailer := testkit.NewFuncMocker("sendmail")
	mailer.Mock().On("Intercept", mock.AnythingOfType("[]uint8")).Return(nil)
	testkit.RegisterMocker("sendmail", mailer)

	dir := t.TempDir()
	path := writeFixture(t, dir, "create_product.json", `{
		"name": "Create Product - Supplier SKU Check + Alert Email",
		"requestMethod": "POST",
		"requestUrl": "/api/inventory",
		"expectedCode": 201,
		"isMockRequired": true,
		"netUtilMockStep": [
			{
				"method": "httprequest",
				"isMock": true,
				"matchUrl": "https://suppliers.example.com/v1/verify-sku",
				"returnData": {"statusCode": 200, "body": "eyJ2YWxpZCI6dHJ1ZX0="}
			},
			{
				"method": "sendmail",
				"isMock": true,
				"returnData": {}
			}
		]
	}`)

	s, err := testkit.LoadScenario(path)
	require.NoError(t, err)
	testkit.DumpScenario(s)

	assert.Equal(t, "Create Product - Supplier SKU Check + Alert Email", s.Name)
	assert.Equal(t, "POST", s.RequestMethod)
	assert.Equal(t, 201, s.ExpectedCode)
	assert.True(t, s.IsMockRequired)
	require.Len(t, s.NetUtilMockStep, 2)

	httpStep := s.NetUtilMockStep[0]
	assert.Equal(t, "httprequest", httpStep.Method)
	assert.True(t, httpStep.IsMock)
	assert.Equal(t, "https://suppliers.example.com/v1/verify-sku", httpStep.MatchURL)
	assert.NotEmpty(t, httpStep.ReturnData.Body)

	mailStep := s.NetUtilMockStep[1]
	assert.Equal(t, "sendmail", mailStep.Method)
	assert.True(t, mailStep.IsMock)
}

// TestMockTransport_URLMatching verifies prefix matching and base64 decoding
// of the synthetic response body.
func TestMockTransport_URLMatching(t *testing.T) {
	s := &testkit.Scenario{
		Name:           "mock transport test",
		IsMockRequired: true,
		ExpectedCode:   200,
		RequestURL:     "/anything",
		RequestMethod:  "GET",
		NetUtilMockStep: []testkit.MockStep{
			{
				Method:   "httprequest",
				IsMock:   true,
				MatchURL: "https://api.example.com/",
				ReturnData: testkit.MockReturnData{
					StatusCode: 200,
					// base64 of {"ok":true}
					Body: "eyJvayI6dHJ1ZX0=",
				},
			},
		},
	}

	mt := testkit.NewMockTransport(s)

	req := httptest.NewRequest(http.MethodGet, "https://api.example.com/users", nil)
	resp, err := mt.RoundTrip(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, mt.AssertAllCalled(), "all HTTP mock steps should have been called")
}

// TestMockTransport_UnmatchedCallFails verifies that an outgoing call with no
// matching mock errors out when isMockRequired is set.
func TestMockTransport_UnmatchedCallFails(t *testing.T) {
	s := &testkit.Scenario{
		Name:           "unmatched mock",
		IsMockRequired: true,
		ExpectedCode:   200,
		RequestURL:     "/anything",
		RequestMethod:  "GET",
		NetUtilMockStep: []testkit.MockStep{
			{
				Method:     "httprequest",
				IsMock:     true,
				MatchURL:   "https://suppliers.example.com/",
				ReturnData: testkit.MockReturnData{StatusCode: 200},
			},
		},
	}

	mt := testkit.NewMockTransport(s)

	req := httptest.NewRequest(http.MethodGet, "https://unexpected.com/api", nil)
	_, err := mt.RoundTrip(req)

	assert.Error(t, err, "should fail on unmatched URL when isMockRequired=true")
}

// TestAssertJSONBody verifies the deep diff tolerates key order and
// whitespace differences.
func TestAssertJSONBody(t *testing.T) {
	s := &testkit.Scenario{Name: "json assert test", ExpectedCode: 200}

	expected := []byte(`{"name":"Laptop","quantity":12}`)
	actual := []byte(`{"quantity":  12, "name": "Laptop"}`)
	testkit.AssertJSONBody(t, s, expected, actual)
}
