package api

import (
	"net/http"
	"testing"
)

func TestIndexGreets(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	response := env.do(t, http.MethodGet, "/", "", "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	payload := map[string]string{}
	decodeJSON(t, response.Body, &payload)
	if payload["message"] != "Hello, world" {
		t.Fatalf("unexpected greeting %#v", payload)
	}
}

func TestUnknownRouteReturnsJSONNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	response := env.do(t, http.MethodGet, "/does-not-exist", "", "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
	if got := readAPIError(t, response.Body); got != "not found" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestSecureCookieCodecBindsPurpose(t *testing.T) {
	t.Parallel()

	codec, err := newSecureCookieCodec([]byte(testSecretKey))
	if err != nil {
		t.Fatalf("init codec: %v", err)
	}

	sealed, err := codec.seal(sessionCookiePurpose, []byte("token"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	opened, err := codec.open(sessionCookiePurpose, sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if string(opened) != "token" {
		t.Fatalf("expected round trip value, got %q", opened)
	}
	if _, err := codec.open("other", sealed); err == nil {
		t.Fatal("expected purpose mismatch to fail")
	}

	other, err := newSecureCookieCodec([]byte("a-different-secret"))
	if err != nil {
		t.Fatalf("init codec: %v", err)
	}
	if _, err := other.open(sessionCookiePurpose, sealed); err == nil {
		t.Fatal("expected foreign key to fail")
	}
}
