package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty baseURL")
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	client, err := New("http://localhost:8000/")
	if err != nil {
		t.Fatal(err)
	}
	if client.BaseURL() != "http://localhost:8000" {
		t.Errorf("unexpected baseURL: %q", client.BaseURL())
	}
}

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Post{})
	}))
	defer server.Close()

	client, _ := New(server.URL, WithToken("secret-token"), WithHTTPClient(server.Client()))
	if _, err := client.ListPosts(context.Background(), 0, 50, false); err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_AnonymousOmitsHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Post{})
	}))
	defer server.Close()

	client, _ := New(server.URL, WithHTTPClient(server.Client()))
	if client.HasToken() {
		t.Error("fresh client should not report a token")
	}
	if _, err := client.ListPosts(context.Background(), 0, 50, false); err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_SetToken(t *testing.T) {
	client, _ := New("http://localhost:8000")
	client.SetToken("tok")
	if !client.HasToken() {
		t.Error("expected HasToken after SetToken")
	}
	client.SetToken("")
	if client.HasToken() {
		t.Error("expected anonymous after clearing token")
	}
}

func TestClient_ErrorDetailString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Post not found"})
	}))
	defer server.Close()

	client, _ := New(server.URL, WithHTTPClient(server.Client()))
	_, err := client.GetPost(context.Background(), 99999)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("expected IsNotFound, got: %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Detail() != "Post not found" {
		t.Errorf("unexpected detail: %q", apiErr.Detail())
	}
	if apiErr.Operation() != "get post" {
		t.Errorf("unexpected operation: %q", apiErr.Operation())
	}
}

func TestClient_ErrorValidationList(t *testing.T) {
	// FastAPI emits a structured list for 422; the raw payload is kept
	// as the detail string.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","text"],"msg":"field required"}]}`))
	}))
	defer server.Close()

	client, _ := New(server.URL, WithHTTPClient(server.Client()))
	_, err := client.CreateComment(context.Background(), 1, "")
	if !IsValidation(err) {
		t.Errorf("expected IsValidation, got: %v", err)
	}
}

func TestClient_ErrorNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client, _ := New(server.URL, WithHTTPClient(server.Client()))
	_, err := client.GetPost(context.Background(), 1)
	if !IsServerError(err) {
		t.Errorf("expected IsServerError, got: %v", err)
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail() != "Internal Server Error" {
		t.Errorf("unexpected detail: %q", apiErr.Detail())
	}
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, _ := New(server.URL)
	_, err := client.GetPost(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNetwork(err) {
		t.Errorf("expected IsNetwork, got: %v", err)
	}
	if IsServerError(err) || IsNotFound(err) {
		t.Error("transport failure must not satisfy status predicates")
	}
}

func TestPredicates_Statuses(t *testing.T) {
	cases := []struct {
		status int
		pred   func(error) bool
		name   string
	}{
		{http.StatusUnauthorized, IsUnauthorized, "unauthorized"},
		{http.StatusForbidden, IsForbidden, "forbidden"},
		{http.StatusNotFound, IsNotFound, "not found"},
		{http.StatusBadRequest, IsValidation, "bad request"},
		{http.StatusUnprocessableEntity, IsValidation, "unprocessable"},
		{http.StatusBadGateway, IsServerError, "bad gateway"},
	}
	for _, tc := range cases {
		err := newAPIError("op", tc.status, "boom")
		if !tc.pred(err) {
			t.Errorf("%s: predicate rejected HTTP %d", tc.name, tc.status)
		}
	}
	if IsNotFound(nil) || IsNetwork(nil) {
		t.Error("predicates must reject nil")
	}
}
