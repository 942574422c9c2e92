package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	t.Run("keeps editorial markup", func(t *testing.T) {
		in := `<p>Aperti <strong>tutti i giorni</strong></p>`
		assert.Equal(t, in, HTML(in))
	})

	t.Run("strips scripts", func(t *testing.T) {
		out := HTML(`<p>ciao</p><script>alert(1)</script>`)
		assert.Equal(t, `<p>ciao</p>`, out)
	})

	t.Run("strips event handlers", func(t *testing.T) {
		out := HTML(`<p onclick="steal()">ciao</p>`)
		assert.NotContains(t, out, "onclick")
		assert.Contains(t, out, "ciao")
	})

	t.Run("empty passes through", func(t *testing.T) {
		assert.Equal(t, "", HTML(""))
	})
}
