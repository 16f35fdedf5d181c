package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careerlink-team/career-portal/pkg/config"
)

func newTestClient(url string) *Client {
	return NewClient(&config.MailerConfig{BaseURL: url, MaxRetries: 1})
}

func TestSendPostsRecipientsAndBody(t *testing.T) {
	var got SendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sendEmail" {
			t.Errorf("path = %q, want /sendEmail", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(SendResponse{Data: "Correo enviado correctamente"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.Send(context.Background(), []string{"a@example.edu", "b@example.com"}, "Meeting scheduled", "<p>hello</p>")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if len(got.Emails) != 2 {
		t.Errorf("relay received %d recipients, want 2", len(got.Emails))
	}
	if got.Subject != "Meeting scheduled" {
		t.Errorf("subject = %q", got.Subject)
	}
	if got.HTML != "<p>hello</p>" {
		t.Errorf("html = %q", got.HTML)
	}
}

func TestSendFiltersEmptyAddresses(t *testing.T) {
	var got SendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(SendResponse{Data: "ok"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if err := client.Send(context.Background(), []string{"", "a@example.edu", ""}, "s", "h"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(got.Emails) != 1 || got.Emails[0] != "a@example.edu" {
		t.Errorf("relay received %v, want only the non-empty address", got.Emails)
	}
}

func TestSendSkipsRequestWithoutRecipients(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if err := client.Send(context.Background(), []string{"", ""}, "s", "h"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if called {
		t.Error("relay was called for an empty recipient list")
	}
}

func TestSendRetriesTransientFailures(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(SendResponse{Data: "ok"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if err := client.Send(context.Background(), []string{"a@example.edu"}, "s", "h"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if attempts != 2 {
		t.Errorf("relay saw %d attempts, want 2", attempts)
	}
}

func TestSendDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if err := client.Send(context.Background(), []string{"a@example.edu"}, "s", "h"); err == nil {
		t.Fatal("Send() succeeded against a rejecting relay")
	}
	if attempts != 1 {
		t.Errorf("relay saw %d attempts, want 1", attempts)
	}
}
