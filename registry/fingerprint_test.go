package registry

import (
	"strings"
	"testing"
)

func TestFingerprint(t *testing.T) {
	fp := Fingerprint([]byte("hello"))

	if !strings.HasPrefix(fp, "01") {
		t.Errorf("fingerprint %q missing version prefix", fp)
	}
	if len(fp) != 2+128 {
		t.Errorf("fingerprint length = %d, want %d", len(fp), 2+128)
	}
	if fp != Fingerprint([]byte("hello")) {
		t.Error("fingerprint not deterministic")
	}
	if fp == Fingerprint([]byte("hello!")) {
		t.Error("distinct content produced the same fingerprint")
	}
}
