package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_SubstitutesVariables(t *testing.T) {
	tmpl := Template{
		Subject:     "Order {{order_id}} shipped",
		HTMLContent: "<p>Hi {{name}}, order {{order_id}} is on its way.</p>",
		TextContent: "Hi {{name}}, order {{order_id}} is on its way.",
	}
	vars := map[string]string{"name": "Alice", "order_id": "42"}

	content := Render(tmpl, vars)
	assert.Equal(t, "Order 42 shipped", content.Subject)
	assert.Equal(t, "<p>Hi Alice, order 42 is on its way.</p>", content.HTML)
	assert.Equal(t, "Hi Alice, order 42 is on its way.", content.Text)
}

func TestRender_UnresolvedPlaceholdersBecomeEmpty(t *testing.T) {
	tmpl := Template{Subject: "Hello {{name}}{{missing}}"}

	content := Render(tmpl, map[string]string{"name": "Bob"})
	assert.Equal(t, "Hello Bob", content.Subject)

	content = Render(tmpl, nil)
	assert.Equal(t, "Hello ", content.Subject)
}

func TestRender_ToleratesWhitespaceInPlaceholders(t *testing.T) {
	tmpl := Template{TextContent: "Hi {{ name }} and {{  other  }}"}

	content := Render(tmpl, map[string]string{"name": "Alice", "other": "Bob"})
	assert.Equal(t, "Hi Alice and Bob", content.Text)
}

func TestRender_DottedVariableNames(t *testing.T) {
	tmpl := Template{TextContent: "{{user.name}} logged in"}

	content := Render(tmpl, map[string]string{"user.name": "Alice"})
	assert.Equal(t, "Alice logged in", content.Text)
}

func TestFallback_RendersMessageVariable(t *testing.T) {
	content := Render(Fallback(), map[string]string{"message": "payment received"})
	assert.Equal(t, "Notification", content.Subject)
	assert.Equal(t, "<p>payment received</p>", content.HTML)
	assert.Equal(t, "payment received", content.Text)
}
