//go:build e2e

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

// Run against a live server and database:
//
//	API_BASE=http://localhost:5000 go test -tags e2e ./internal/server/

type e2eResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	InsertedID    string `json:"insertedId"`
	ModifiedCount int64  `json:"modifiedCount"`
	DeletedCount  int64  `json:"deletedCount"`
}

func apiBase(t *testing.T) string {
	base := os.Getenv("API_BASE")
	if base == "" {
		t.Skip("API_BASE not set")
	}
	return base
}

func postJSON(t *testing.T, method, url string, payload interface{}) *http.Response {
	jsonPayload, _ := json.Marshal(payload)
	req, err := http.NewRequest(method, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	return resp
}

func TestAPIEndpoints(t *testing.T) {
	base := apiBase(t)
	email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())
	password := "password123"

	t.Run("Health", func(t *testing.T) {
		resp, err := http.Get(base + "/")
		if err != nil {
			t.Fatalf("API server is not running at %s: %v", base, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Health check failed. Status: %d", resp.StatusCode)
		}
	})

	t.Run("Register User", func(t *testing.T) {
		payload := map[string]string{"name": "E2E", "email": email, "password": password}

		resp := postJSON(t, http.MethodPost, base+"/api/v1/register", payload)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			bodyBytes, _ := io.ReadAll(resp.Body)
			t.Fatalf("Failed to register user. Status: %d, Response: %s", resp.StatusCode, string(bodyBytes))
		}

		again := postJSON(t, http.MethodPost, base+"/api/v1/register", payload)
		defer again.Body.Close()
		if again.StatusCode != http.StatusBadRequest {
			t.Fatalf("Expected 400 for duplicate registration, got %d", again.StatusCode)
		}
	})

	var token string
	t.Run("Login", func(t *testing.T) {
		resp := postJSON(t, http.MethodPost, base+"/api/v1/login", map[string]string{"email": email, "password": password})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			t.Fatalf("Failed to login. Status: %d, Response: %s", resp.StatusCode, string(bodyBytes))
		}

		var authResp struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		token = authResp.Token
		if token == "" {
			t.Fatal("No token received")
		}

		bad := postJSON(t, http.MethodPost, base+"/api/v1/login", map[string]string{"email": email, "password": "wrong"})
		defer bad.Body.Close()
		if bad.StatusCode != http.StatusUnauthorized {
			t.Fatalf("Expected 401 for wrong password, got %d", bad.StatusCode)
		}
	})

	var supplyID string
	t.Run("Create Supply", func(t *testing.T) {
		resp := postJSON(t, http.MethodPost, base+"/api/v1/supplies",
			map[string]interface{}{"title": "E2E masks", "category": "PPE", "amount": 12})
		defer resp.Body.Close()

		var result e2eResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		supplyID = result.InsertedID
		if supplyID == "" {
			t.Fatal("No supply ID received")
		}
	})

	t.Run("Update Supply", func(t *testing.T) {
		if supplyID == "" {
			t.Skip("Skipping test due to no supply ID")
		}

		resp := postJSON(t, http.MethodPut, base+"/api/v1/update-supply/"+supplyID,
			map[string]interface{}{"title": "E2E masks", "category": "PPE", "amount": 24})
		defer resp.Body.Close()

		var result e2eResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result.ModifiedCount != 1 {
			t.Errorf("Expected one modified supply, got %d", result.ModifiedCount)
		}
	})

	t.Run("Delete Supply", func(t *testing.T) {
		if supplyID == "" {
			t.Skip("Skipping test due to no supply ID")
		}

		req, err := http.NewRequest(http.MethodDelete, base+"/api/v1/supplies/"+supplyID, nil)
		if err != nil {
			t.Fatalf("Failed to create request: %v", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Failed to send request: %v", err)
		}
		defer resp.Body.Close()

		var result e2eResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result.DeletedCount != 1 {
			t.Errorf("Expected one deleted supply, got %d", result.DeletedCount)
		}
	})
}
