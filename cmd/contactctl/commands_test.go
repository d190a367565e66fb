package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSendCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	out, err := run(t, "send", "--url", srv.URL, "--lang", "en",
		"--name", "Ana Silva", "--email", "ana@example.com", "--message", "Quero saber mais sobre o sistema.")

	require.NoError(t, err)
	assert.Contains(t, out, "Sending...")
	assert.Contains(t, out, "Message sent successfully! Our team will be in touch shortly.")
}

func TestSendCommandInvalid(t *testing.T) {
	out, err := run(t, "send", "--url", "http://127.0.0.1:1", "--name", "A", "--email", "x", "--message", "hi")

	assert.Error(t, err)
	assert.Contains(t, out, "name: O nome deve ter pelo menos 2 caracteres")
	assert.Contains(t, out, "email: Email inválido")
}

func TestHealthCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","message":"SMTP not configured correctly","error":"AUTH"}`))
	}))
	defer srv.Close()

	out, err := run(t, "health", "--url", srv.URL)

	assert.Error(t, err)
	assert.Contains(t, out, "error: SMTP not configured correctly")
	assert.Contains(t, out, "error: AUTH")
}
