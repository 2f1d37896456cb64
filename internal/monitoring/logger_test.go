package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	orig := Logf
	defer func() { Logf = orig }()

	var got string
	SetLogger(func(format string, v ...any) { got = fmt.Sprintf(format, v...) })
	Logf("gen=%d", 3)
	if got != "gen=3" {
		t.Fatalf("logger received %q", got)
	}

	SetLogger(nil)
	Logf("dropped")
	if got != "gen=3" {
		t.Fatalf("nil logger still forwarded: %q", got)
	}
}
