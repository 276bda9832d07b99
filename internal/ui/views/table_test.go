package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pokebrowse/internal/domain"
)

func TestDetailContent(t *testing.T) {
	r := NewRenderer(nil)

	out := r.DetailContent(domain.Pokemon{ID: 25, Name: "pikachu", Weight: domain.IntPtr(60)})

	assert.True(t, strings.HasPrefix(out, "pikachu"))
	assert.Contains(t, out, "ID"+strings.Repeat(" ", detailLabelWidth-2)+" 25")
	assert.Contains(t, out, "Weight"+strings.Repeat(" ", detailLabelWidth-6)+" 60")
	assert.Contains(t, out, NoImage)
}
