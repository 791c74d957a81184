package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderFileTree("root", nil))
}

func TestRenderFileTree_FilesAndDirs(t *testing.T) {
	files := map[string]string{
		"widget/":                     "Widget parts",
		"reset_password_binding.dart": "Dependency binding",
		"reset_password_view.dart":    "View layer",
		"reset_password_logic.dart":   "Logic contract",
		"reset_password_state.dart":   "Page state",
	}

	out := RenderFileTree("reset_password", files)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Root, directory first, then files alphabetically.
	assert.Equal(t, "reset_password/", lines[0])
	assert.Contains(t, lines[1], "widget/")
	assert.Contains(t, lines[2], "reset_password_binding.dart")
	assert.Contains(t, lines[len(lines)-1], "reset_password_view.dart")

	// Last entry uses the closing connector.
	assert.Contains(t, lines[len(lines)-1], treeLast)

	// Descriptions are present.
	assert.Contains(t, out, "Dependency binding")
	assert.Contains(t, out, "Widget parts")
}

func TestRenderFileTree_NestedFile(t *testing.T) {
	files := map[string]string{
		"widget/header.dart": "Header widget",
	}

	out := RenderFileTree("my_page", files)
	assert.Contains(t, out, "my_page/")
	assert.Contains(t, out, "widget/")
	assert.Contains(t, out, "header.dart")
}

func TestRenderFileTree_DescriptionAlignment(t *testing.T) {
	files := map[string]string{
		"a.dart": "short name",
	}

	out := RenderFileTree("x", files)
	line := strings.Split(out, "\n")[1]
	idx := strings.Index(line, "short name")
	assert.Equal(t, descriptionColumn, idx)
}
