package version

import (
	"strings"
	"testing"
)

func TestInfoDefaults(t *testing.T) {
	bi := Info()
	if bi.Service != "scorebook" || bi.Version != "dev" || bi.Commit != "none" {
		t.Fatalf("Info = %+v", bi)
	}
	if !strings.HasPrefix(bi.String(), "scorebook dev (none, unknown, go") {
		t.Fatalf("String = %q", bi.String())
	}
}
