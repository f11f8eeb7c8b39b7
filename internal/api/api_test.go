package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/lowlevel-labs/internal/api"
	"github.com/povarna/lowlevel-labs/internal/list"
	"github.com/povarna/lowlevel-labs/internal/middleware"
	"github.com/rs/zerolog"
)

func setupTestAPI(t *testing.T) *restful.Container {
	t.Helper()

	logger := zerolog.Nop()
	handler := api.NewHandler(list.New(), &logger)

	container := restful.NewContainer()
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)
	return container
}

func doJSON(t *testing.T, container *restful.Container, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request: %v", err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)
	return recorder
}

func TestAPI_Health(t *testing.T) {
	container := setupTestAPI(t)

	recorder := doJSON(t, container, http.MethodGet, "/api/v1/health", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response.Status)
	}
}

func TestAPI_AddAndSnapshot(t *testing.T) {
	container := setupTestAPI(t)

	for _, req := range []api.AddRequest{
		{Index: 0, Value: 5},
		{Index: 0, Value: 3},
		{Index: 1, Value: 4},
	} {
		recorder := doJSON(t, container, http.MethodPost, "/api/v1/list/values", req)
		if recorder.Code != http.StatusOK {
			t.Fatalf("add %+v: expected status 200, got %d. Body: %s", req, recorder.Code, recorder.Body.String())
		}
	}

	recorder := doJSON(t, container, http.MethodGet, "/api/v1/list", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var response api.ListResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if want := []int{3, 4, 5}; !slices.Equal(response.Values, want) {
		t.Errorf("Values = %v, want %v", response.Values, want)
	}
	if response.Length != 3 {
		t.Errorf("Length = %d, want 3", response.Length)
	}
}

func TestAPI_AddNegativeIndex(t *testing.T) {
	container := setupTestAPI(t)

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/list/values", api.AddRequest{Index: -1, Value: 5})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", recorder.Code)
	}

	var response middleware.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Code != http.StatusBadRequest {
		t.Errorf("envelope code = %d, want 400", response.Code)
	}
}

func TestAPI_Delete(t *testing.T) {
	container := setupTestAPI(t)

	for i, v := range []int{3, 4, 5} {
		doJSON(t, container, http.MethodPost, "/api/v1/list/values", api.AddRequest{Index: i, Value: v})
	}

	recorder := doJSON(t, container, http.MethodDelete, "/api/v1/list/values/1", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	var response api.RemoveResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Value != 4 {
		t.Errorf("Value = %d, want 4", response.Value)
	}
	if response.Length != 2 {
		t.Errorf("Length = %d, want 2", response.Length)
	}
}

func TestAPI_DeleteInvalidIndex(t *testing.T) {
	container := setupTestAPI(t)

	tests := []struct {
		name     string
		index    string
		wantCode int
	}{
		{name: "past the end", index: "7", wantCode: http.StatusNotFound},
		{name: "empty list", index: "0", wantCode: http.StatusNotFound},
		{name: "negative", index: "-1", wantCode: http.StatusBadRequest},
		{name: "not a number", index: "abc", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("/api/v1/list/values/%s", tt.index)
			recorder := doJSON(t, container, http.MethodDelete, path, nil)
			if recorder.Code != tt.wantCode {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.wantCode, recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestAPI_Reset(t *testing.T) {
	container := setupTestAPI(t)

	doJSON(t, container, http.MethodPost, "/api/v1/list/values", api.AddRequest{Index: 0, Value: 1})
	recorder := doJSON(t, container, http.MethodPost, "/api/v1/list/reset", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	recorder = doJSON(t, container, http.MethodGet, "/api/v1/list", nil)
	var response api.ListResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Length != 0 || len(response.Values) != 0 {
		t.Errorf("list not empty after reset: %+v", response)
	}
}
