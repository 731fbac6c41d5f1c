package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()

	if !strings.HasPrefix(info, "starlink-usage-dashboard ") {
		t.Errorf("Info() = %q, want starlink-usage-dashboard prefix", info)
	}
	if !strings.Contains(info, "commit:") {
		t.Errorf("Info() = %q, missing commit", info)
	}
}

func TestInfoStable(t *testing.T) {
	if Info() != Info() {
		t.Error("Info() should return the same string on repeated calls")
	}
}
