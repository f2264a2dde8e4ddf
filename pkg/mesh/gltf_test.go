package mesh

import "testing"

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.glb")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}
