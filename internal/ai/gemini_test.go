package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mathaes-33/Hanover-Helpers/internal/models"
)

func geminiStub(t *testing.T, jobJSON string, status int) (*httptest.Server, *http.Request, *[]byte) {
	t.Helper()
	var captured http.Request
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		body, _ = io.ReadAll(r.Body)
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]interface{}{
			"candidates": []interface{}{
				map[string]interface{}{
					"content": map[string]interface{}{
						"parts": []interface{}{
							map[string]interface{}{"text": jobJSON},
						},
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	return srv, &captured, &body
}

func TestGeminiParser_ParseJob(t *testing.T) {
	jobJSON := `{"job":{"title":"Mow my front and back lawn","description":"Please mow my lawn this Saturday, I can pay $40","category":"Lawn Care","budget":{"type":"Fixed Rate","amount":40},"date":"This Saturday","isUrgent":false}}`
	srv, req, body := geminiStub(t, jobJSON, http.StatusOK)
	defer srv.Close()

	parser := NewGeminiParser("test-key", "gemini-2.5-flash")
	parser.baseURL = srv.URL

	job, err := parser.ParseJob(context.Background(), "Please mow my lawn this Saturday, I can pay $40")
	assert.NoError(t, err)
	assert.Equal(t, "Mow my front and back lawn", job.Title)
	assert.Equal(t, models.CategoryLawnCare, job.Category)
	assert.NotNil(t, job.Budget)
	assert.Equal(t, models.BudgetFixed, job.Budget.Type)
	assert.Equal(t, 40.0, job.Budget.Amount)
	assert.Equal(t, "This Saturday", job.Date)
	assert.False(t, job.IsUrgent)

	// The request targets the configured model with the API key
	assert.Contains(t, req.URL.Path, "gemini-2.5-flash")
	assert.Equal(t, "test-key", req.URL.Query().Get("key"))

	// The request carries the schema-constrained generation config
	assert.Contains(t, string(*body), `"responseMimeType":"application/json"`)
	assert.Contains(t, string(*body), `"responseSchema"`)
	assert.Contains(t, string(*body), "Hanover Helpers")
}

func TestGeminiParser_NoBudget(t *testing.T) {
	jobJSON := `{"job":{"title":"Walk my dog","description":"Need someone to walk my dog","category":"Pet Care","date":"Flexible","isUrgent":true}}`
	srv, _, _ := geminiStub(t, jobJSON, http.StatusOK)
	defer srv.Close()

	parser := NewGeminiParser("test-key", "gemini-2.5-flash")
	parser.baseURL = srv.URL

	job, err := parser.ParseJob(context.Background(), "Need someone to walk my dog ASAP")
	assert.NoError(t, err)
	assert.Nil(t, job.Budget)
	assert.True(t, job.IsUrgent)
}

func TestGeminiParser_UpstreamError(t *testing.T) {
	srv, _, _ := geminiStub(t, "", http.StatusInternalServerError)
	defer srv.Close()

	parser := NewGeminiParser("test-key", "gemini-2.5-flash")
	parser.baseURL = srv.URL

	_, err := parser.ParseJob(context.Background(), "anything")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGeminiParser_MissingAPIKey(t *testing.T) {
	parser := NewGeminiParser("", "gemini-2.5-flash")
	_, err := parser.ParseJob(context.Background(), "anything")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestGeminiParser_MalformedCandidate(t *testing.T) {
	srv, _, _ := geminiStub(t, "{not valid json", http.StatusOK)
	defer srv.Close()

	parser := NewGeminiParser("test-key", "gemini-2.5-flash")
	parser.baseURL = srv.URL

	_, err := parser.ParseJob(context.Background(), "anything")
	assert.Error(t, err)
}
