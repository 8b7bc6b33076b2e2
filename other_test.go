//go:build !windows

package displayarea

import (
	"errors"
	"testing"
)

func TestUnsupportedPlatform(t *testing.T) {
	if _, err := New().Catalog(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Catalog error = %v; want ErrUnsupported", err)
	}

	areas := EnumerateDisplayAreas()
	if areas == nil || len(areas) != 0 {
		t.Errorf("EnumerateDisplayAreas = %v; want empty, non-nil", areas)
	}
}
