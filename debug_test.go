package chilly

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestSetDebugTogglesLogging(t *testing.T) {
	SetDebug(false)
	if Debug() {
		t.Fatal("expected debug off by default after SetDebug(false)")
	}

	var buf bytes.Buffer
	oldOut := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldOut)
		log.SetFlags(oldFlags)
	}()

	logf("ingest: %s missing field %q", "baba", "author")
	if buf.Len() != 0 {
		t.Fatalf("expected no output while debug disabled, got %q", buf.String())
	}

	SetDebug(true)
	defer SetDebug(false)
	if !Debug() {
		t.Fatal("expected debug on after SetDebug(true)")
	}

	logf("ingest: %s missing field %q", "baba", "author")
	out := buf.String()
	if !strings.HasPrefix(out, "[chilly] ") {
		t.Errorf("expected [chilly] prefix, got %q", out)
	}
	if !strings.Contains(out, "baba") || !strings.Contains(out, "author") {
		t.Errorf("expected formatted message, got %q", out)
	}
}
