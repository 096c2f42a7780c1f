package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_HTML(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	out, err := r.HTML("# Otite\n\n- **Définition** : inflammation\n- *Âge* : nourrisson\n")

	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Otite</h1>")
	assert.Contains(t, out, "<li><strong>Définition</strong> : inflammation</li>")
	assert.Contains(t, out, "<em>Âge</em>")
}

func TestRenderer_DropsRawHTML(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	out, err := r.HTML("texte\n\n<script>alert(1)</script>\n")

	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestRenderer_Table(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	out, err := r.HTML("| a | b |\n|---|---|\n| 1 | 2 |\n")

	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}
