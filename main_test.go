package main

import (
	"os"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	buf := make([]byte, 16384)
	n, _ := r.Read(buf)
	return string(buf[:n])
}

func TestShowVersion(t *testing.T) {
	out := captureStdout(t, showVersion)

	if !strings.Contains(out, VERSION) {
		t.Errorf("Expected version %s to be printed", VERSION)
	}
	if !strings.Contains(out, PROJECT_NAME) {
		t.Errorf("Expected project name %s to be printed", PROJECT_NAME)
	}
}

func TestShowScoutArt(t *testing.T) {
	out := captureStdout(t, showScoutArt)

	if !strings.Contains(out, "TypoScout") {
		t.Error("Expected scout art to be printed")
	}
}

func TestShowUsage(t *testing.T) {
	out := captureStdout(t, showUsage)

	for _, flagName := range []string{"--check", "--authors", "--words", "--threshold", "--generate-config"} {
		if !strings.Contains(out, flagName) {
			t.Errorf("Expected usage to mention %s", flagName)
		}
	}
}
