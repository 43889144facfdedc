// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	cerrors "github.com/NVIDIA/cocktail-explorer/pkg/errors"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()

	if c.Timeout != 12*time.Second {
		t.Errorf("expected 12s timeout, got %v", c.Timeout)
	}
	if c.UserAgent != DefaultUserAgent {
		t.Errorf("expected user agent %q, got %q", DefaultUserAgent, c.UserAgent)
	}
	if c.http == nil {
		t.Fatal("expected http client to be set")
	}
	if c.http.Timeout != c.Timeout {
		t.Errorf("http client timeout %v does not match %v", c.http.Timeout, c.Timeout)
	}
}

func TestNewClient_Options(t *testing.T) {
	hc := &http.Client{}
	c := NewClient(
		WithTimeout(3*time.Second),
		WithUserAgent("test-agent"),
		WithHTTPClient(hc),
	)

	if c.Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", c.Timeout)
	}
	if c.UserAgent != "test-agent" {
		t.Errorf("expected test-agent, got %q", c.UserAgent)
	}
	if c.http != hc {
		t.Error("expected supplied http client to be used")
	}
	if hc.Timeout != 3*time.Second {
		t.Errorf("expected supplied client timeout to be 3s, got %v", hc.Timeout)
	}
}

func TestFetch_Success(t *testing.T) {
	var gotQuery url.Values
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"drinks":[{"idDrink":"11007"}]}`))
	}))
	defer srv.Close()

	c := NewClient(WithUserAgent("ua-test"))
	body, err := c.Fetch(context.Background(), srv.URL+"/search.php", url.Values{"s": {"margarita"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(body) != `{"drinks":[{"idDrink":"11007"}]}` {
		t.Errorf("unexpected body: %s", body)
	}
	if gotQuery.Get("s") != "margarita" {
		t.Errorf("expected s=margarita, got %v", gotQuery)
	}
	if gotUA != "ua-test" {
		t.Errorf("expected user agent ua-test, got %q", gotUA)
	}
}

func TestFetch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    cerrors.ErrorCode
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: cerrors.ErrCodeUpstream,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.NotFound(w, nil)
			},
			want: cerrors.ErrCodeUpstream,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("<html>oops</html>"))
			},
			want: cerrors.ErrCodeInvalidResponse,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			want: cerrors.ErrCodeInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			body, err := NewClient().Fetch(context.Background(), srv.URL, nil)
			if err == nil {
				t.Fatalf("expected error, got body %q", body)
			}
			if body != nil {
				t.Errorf("expected nil body on error, got %q", body)
			}

			var se *cerrors.StructuredError
			if !errors.As(err, &se) {
				t.Fatalf("expected StructuredError, got %T", err)
			}
			if se.Code != tt.want {
				t.Errorf("expected code %s, got %s", tt.want, se.Code)
			}
			if se.Message == "" {
				t.Error("expected a human-readable message")
			}
		})
	}
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(WithTimeout(50 * time.Millisecond))
	_, err := c.Fetch(context.Background(), srv.URL, nil)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if code := cerrors.CodeOf(err); code != cerrors.ErrCodeTimeout {
		t.Errorf("expected TIMEOUT, got %s (%v)", code, err)
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	target := srv.URL
	srv.Close()

	_, err := NewClient(WithTimeout(2*time.Second)).Fetch(context.Background(), target, nil)
	if err == nil {
		t.Fatal("expected error for closed server")
	}
	if code := cerrors.CodeOf(err); code != cerrors.ErrCodeUnavailable {
		t.Errorf("expected SERVICE_UNAVAILABLE, got %s (%v)", code, err)
	}
}

func TestFetch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient().Fetch(ctx, srv.URL, nil)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		params  url.Values
		want    string
		wantErr bool
	}{
		{"no params", "https://example.com/random.php", nil, "https://example.com/random.php", false},
		{"params", "https://example.com/search.php", url.Values{"s": {"gin fizz"}}, "https://example.com/search.php?s=gin+fizz", false},
		{"merged", "https://example.com/a?x=1", url.Values{"y": {"2"}}, "https://example.com/a?x=1&y=2", false},
		{"override", "https://example.com/a?x=1", url.Values{"x": {"2"}}, "https://example.com/a?x=2", false},
		{"empty", "", nil, "", true},
		{"relative", "/search.php", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildURL(tt.raw, tt.params)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				if code := cerrors.CodeOf(err); code != cerrors.ErrCodeInvalidRequest {
					t.Errorf("expected INVALID_REQUEST, got %s", code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
