package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/scamshield/railshield/internal/analyzer"
	"github.com/scamshield/railshield/internal/api"
	"github.com/scamshield/railshield/internal/config"
	"github.com/scamshield/railshield/internal/database"
	"github.com/scamshield/railshield/internal/models"
	"github.com/scamshield/railshield/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *database.MemoryStore) {
	t.Helper()

	cfg := config.DefaultConfig()
	store := database.NewMemoryStore()
	engine := validation.NewEngine(store, cfg.Thresholds())
	router := api.NewRouter(cfg, analyzer.New(), engine, store)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, store
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// TestHealthCheck verifies the health endpoint payload.
func TestHealthCheck(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "ScamShield Rail API", body["service"])
	assert.NotEmpty(t, body["timestamp"])
}

// TestAnalyzeEndpoint verifies classification over HTTP.
func TestAnalyzeEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/analyze", models.AnalyzeRequest{
		Description: "The tea was stale and overpriced, charged Rs 50 extra",
		TrainNo:     "12951",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.AnalysisResult
	decodeBody(t, resp, &result)
	assert.Equal(t, "Overpricing", result.Category)
	assert.Equal(t, "Tea", result.Entities["itemName"])
	require.NotNil(t, result.TrainInfo)
	assert.True(t, result.TrainInfo.Valid)
}

// TestAnalyzeEndpoint_EmptyDescription verifies empty input is a 200, not an
// error.
func TestAnalyzeEndpoint_EmptyDescription(t *testing.T) {
	server, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/analyze", models.AnalyzeRequest{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.AnalysisResult
	decodeBody(t, resp, &result)
	assert.Equal(t, "Passenger reports an onboard issue.", result.Summary)
}

// TestCreateComplaint verifies filing with identity assignment and the
// anonymous default reporter.
func TestCreateComplaint(t *testing.T) {
	server, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/complaints", models.CreateComplaintRequest{
		TrainNo:     "12951",
		ItemName:    "Tea",
		Description: "charged Rs 50 for tea",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var c models.Complaint
	decodeBody(t, resp, &c)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "SCAM-2024-000001", c.TicketID)
	assert.Equal(t, models.StatusFiled, c.Status)
	require.NotNil(t, c.User)
	assert.Equal(t, "Anonymous", c.User.Name)
}

// TestListComplaints verifies the empty list is a JSON array, not null.
func TestListComplaints(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/complaints")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var complaints []*models.Complaint
	decodeBody(t, resp, &complaints)
	assert.NotNil(t, complaints)
	assert.Empty(t, complaints)
}

// TestGetComplaint covers found, not-found and malformed-ID paths.
func TestGetComplaint(t *testing.T) {
	server, store := newTestServer(t)

	c := &models.Complaint{Description: "stale tea"}
	require.NoError(t, store.CreateComplaint(context.Background(), c))

	resp, err := http.Get(fmt.Sprintf("%s/api/v1/complaints/%d", server.URL, c.ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(server.URL + "/api/v1/complaints/999")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(server.URL + "/api/v1/complaints/abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// TestUpdateComplaint verifies field overlay with identity preservation.
func TestUpdateComplaint(t *testing.T) {
	server, store := newTestServer(t)

	c := &models.Complaint{Description: "stale tea", VendorName: "Old Vendor"}
	require.NoError(t, store.CreateComplaint(context.Background(), c))

	resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/v1/complaints/%d", server.URL, c.ID),
		map[string]interface{}{
			"vendorName":  "New Vendor",
			"ticketId":    "FORGED-000001",
			"upvotes":     99,
			"description": "rewritten",
		})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Complaint
	decodeBody(t, resp, &updated)
	assert.Equal(t, "New Vendor", updated.VendorName)
	assert.Equal(t, "SCAM-2024-000001", updated.TicketID)
	assert.Equal(t, "stale tea", updated.Description)
	assert.Zero(t, updated.Upvotes)
}

// TestDeleteComplaint covers removal and the not-found path.
func TestDeleteComplaint(t *testing.T) {
	server, store := newTestServer(t)

	c := &models.Complaint{Description: "stale tea"}
	require.NoError(t, store.CreateComplaint(context.Background(), c))

	resp := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/v1/complaints/%d", server.URL, c.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	stored, err := store.GetComplaint(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/v1/complaints/%d", server.URL, c.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// TestVoteEndpoint covers the vote paths and their error mapping.
func TestVoteEndpoint(t *testing.T) {
	server, store := newTestServer(t)

	c := &models.Complaint{Description: "stale tea"}
	require.NoError(t, store.CreateComplaint(context.Background(), c))
	voteURL := fmt.Sprintf("%s/api/v1/complaints/%d/vote", server.URL, c.ID)

	resp := doJSON(t, http.MethodPost, voteURL, models.VoteRequest{Type: models.VoteUp})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Complaint
	decodeBody(t, resp, &updated)
	assert.Equal(t, 1, updated.Upvotes)

	resp = doJSON(t, http.MethodPost, voteURL, models.VoteRequest{Type: models.VoteType("sideways")})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid vote type", body["error"])

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/complaints/999/vote",
		models.VoteRequest{Type: models.VoteUp})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// TestInsightsEndpoint covers the report payload and the not-found path.
func TestInsightsEndpoint(t *testing.T) {
	server, store := newTestServer(t)

	c := &models.Complaint{Description: "stale tea", TrainNo: "12951", ItemName: "Tea"}
	require.NoError(t, store.CreateComplaint(context.Background(), c))

	resp, err := http.Get(fmt.Sprintf("%s/api/v1/complaints/%d/insights", server.URL, c.ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var insights models.ValidationInsights
	decodeBody(t, resp, &insights)
	assert.Equal(t, models.LevelPending, insights.ValidationStatus.Level)
	assert.Equal(t, 50.0, insights.TrustScore.Score)
	assert.NotEmpty(t, insights.Recommendations)

	resp, err = http.Get(server.URL + "/api/v1/complaints/999/insights")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// TestRequestIDHeader verifies a client-provided request ID is honored.
func TestRequestIDHeader(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "test-request-42")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "test-request-42", resp.Header.Get("X-Request-ID"))
}
