package pkg_test

import (
	"strings"
	"testing"

	"github.com/citetool/citet/pkg"
)

func TestVersionEmbedded(t *testing.T) {
	t.Parallel()

	v := strings.TrimSpace(pkg.Version)
	if v == "" {
		t.Fatal("embedded VERSION is empty")
	}

	if strings.Count(v, ".") != 2 {
		t.Errorf("VERSION %q is not a semantic version", v)
	}
}

func TestNameIsStable(t *testing.T) {
	t.Parallel()

	// Name feeds default config and cache paths; changing it orphans
	// existing user state.
	if pkg.Name != "citet" {
		t.Errorf("Name = %q, want %q", pkg.Name, "citet")
	}
}
