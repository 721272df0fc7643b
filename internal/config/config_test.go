package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSecretKey(t *testing.T) {
	if _, err := ResolveSecretKey(""); err == nil {
		t.Fatal("expected error when SECRET_KEY is empty")
	}
	if _, err := ResolveSecretKey("change_me_in_production"); err == nil {
		t.Fatal("expected error when SECRET_KEY uses insecure placeholder")
	}
	if _, err := ResolveSecretKey("replace_with_at_least_32_random_characters"); err == nil {
		t.Fatal("expected error when SECRET_KEY uses example placeholder")
	}
	if _, err := ResolveSecretKey("too-short-secret"); err == nil {
		t.Fatal("expected error when SECRET_KEY is too short")
	}

	valid := "0123456789abcdef0123456789abcdef"
	secret, err := ResolveSecretKey(" " + valid + " ")
	if err != nil {
		t.Fatalf("expected valid secret, got error: %v", err)
	}
	if secret != valid {
		t.Fatalf("expected %q, got %q", valid, secret)
	}
}

func TestResolvePort(t *testing.T) {
	port, err := ResolvePort("")
	if err != nil {
		t.Fatalf("expected default port, got error: %v", err)
	}
	if port != "8080" {
		t.Fatalf("expected default port 8080, got %q", port)
	}

	port, err = ResolvePort("9090")
	if err != nil {
		t.Fatalf("expected valid port, got error: %v", err)
	}
	if port != "9090" {
		t.Fatalf("expected port 9090, got %q", port)
	}

	for _, invalid := range []string{"0", "70000", "not-a-number"} {
		if _, err := ResolvePort(invalid); err == nil {
			t.Fatalf("expected invalid port %q to fail", invalid)
		}
	}
}

func TestServerValidate(t *testing.T) {
	server := Server{Port: " 9090 ", SecretKey: "0123456789abcdef0123456789abcdef", SessionTTL: time.Hour}
	require.NoError(t, server.Validate())
	assert.Equal(t, "9090", server.Port)

	server.SessionTTL = 0
	require.Error(t, server.Validate())

	server = Server{Port: "8080", SecretKey: "short", SessionTTL: time.Hour}
	require.Error(t, server.Validate())
}

func TestLoadLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation("", nil))
	assert.Equal(t, time.UTC, LoadLocation("Mars/Olympus_Mons", nil))
	assert.Equal(t, "UTC", LoadLocation("UTC", nil).String())
}

func TestDatabaseDSN(t *testing.T) {
	assert.Equal(t, "data/worktime.db", Database{Driver: "sqlite", Path: "data/worktime.db", URL: "postgres://x"}.DSN())
	assert.Equal(t, "postgres://x", Database{Driver: "postgres", Path: "data/worktime.db", URL: "postgres://x"}.DSN())
}

func TestArtifactStoreSettings(t *testing.T) {
	settings := ArtifactStore{Kind: "s3", S3Bucket: "qr", S3Region: "eu-west-1", S3Endpoint: "http://minio:9000"}.Settings()
	assert.Equal(t, "s3", settings.Kind)
	assert.Equal(t, "qr", settings.S3.Bucket)
	assert.Equal(t, "eu-west-1", settings.S3.Region)
	assert.Equal(t, "http://minio:9000", settings.S3.Endpoint)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WORKTIME_TEST_FROM_FILE=file\nWORKTIME_TEST_PRESET=file\n"), 0o600))

	t.Setenv("WORKTIME_TEST_PRESET", "env")
	t.Setenv("WORKTIME_TEST_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("WORKTIME_TEST_FROM_FILE"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "file", os.Getenv("WORKTIME_TEST_FROM_FILE"))
	assert.Equal(t, "env", os.Getenv("WORKTIME_TEST_PRESET"))
	require.NoError(t, os.Unsetenv("WORKTIME_TEST_FROM_FILE"))

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
