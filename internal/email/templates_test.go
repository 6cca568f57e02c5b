package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_BuiltinsRender(t *testing.T) {
	t.Parallel()
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateVerification, TemplateData{
		"FirstName":       "Ada",
		"VerificationURL": "https://app.example.com/verify-email?token=abc",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Ada")
	assert.Contains(t, html, "https://app.example.com/verify-email?token=abc")

	html, err = tm.Render(TemplatePasswordReset, TemplateData{
		"FirstName": "Ada",
		"ResetURL":  "https://app.example.com/reset-password?token=xyz",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "reset-password?token=xyz")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	t.Parallel()
	tm := NewTemplateManager()

	_, err := tm.Render("does-not-exist", TemplateData{})
	assert.Error(t, err)
}

func TestTemplateManager_EscapesHTML(t *testing.T) {
	t.Parallel()
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateVerification, TemplateData{
		"FirstName":       "<script>alert(1)</script>",
		"VerificationURL": "https://app.example.com/verify",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestTemplateManager_AddTemplateOverride(t *testing.T) {
	t.Parallel()
	tm := NewTemplateManager()

	require.NoError(t, tm.AddTemplate(TemplateVerification, "custom {{.FirstName}}"))

	html, err := tm.Render(TemplateVerification, TemplateData{"FirstName": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "custom Ada", html)
}
