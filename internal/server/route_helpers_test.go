package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouteByMethod_MatchingMethod(t *testing.T) {
	called := false
	routes := MethodRouter{
		"GET": func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		},
	}

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	RouteByMethod(w, req, routes)

	if !called {
		t.Error("expected GET handler to be called")
	}
}

func TestRouteByMethod_NoMatchingMethod(t *testing.T) {
	routes := MethodRouter{
		"GET": func(w http.ResponseWriter, r *http.Request) {
			t.Error("GET handler should not be called")
		},
		"DELETE": func(w http.ResponseWriter, r *http.Request) {
			t.Error("DELETE handler should not be called")
		},
	}

	req := httptest.NewRequest("POST", "/test", nil)
	w := httptest.NewRecorder()

	RouteByMethod(w, req, routes)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
	if got := w.Header().Get("Allow"); got != "DELETE, GET" {
		t.Errorf("expected sorted Allow header, got %q", got)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected JSON error body, got %s", w.Header().Get("Content-Type"))
	}
}

func TestGetOnly_AllowsHEAD(t *testing.T) {
	calls := 0
	h := GetOnly(func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	for _, method := range []string{"GET", "HEAD"} {
		h(httptest.NewRecorder(), httptest.NewRequest(method, "/test", nil))
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestGetOnly_RejectsPUT(t *testing.T) {
	h := GetOnly(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("PUT", "/test", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
	if got := w.Header().Get("Allow"); got != "GET, HEAD" {
		t.Errorf("expected Allow: GET, HEAD, got %q", got)
	}
}
