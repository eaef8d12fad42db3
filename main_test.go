package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
)

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestCloseLogged(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
	})

	ok := &closer{}
	closeLogged("database", ok)
	if !ok.closed || buf.Len() != 0 {
		t.Errorf("expected a silent close, got %q", buf.String())
	}

	failing := &closer{err: errors.New("disk I/O error")}
	closeLogged("database", failing)
	if !failing.closed {
		t.Error("expected Close to be called")
	}
	if out := buf.String(); !strings.Contains(out, "warning: unable to close database: disk I/O error") {
		t.Errorf("expected a warning, got %q", out)
	}
}
