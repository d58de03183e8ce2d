package template

import "regexp"

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// Content is a rendered template ready for delivery.
type Content struct {
	Subject string
	HTML    string
	Text    string
}

// Render substitutes {{variable}} placeholders with plain text values.
// Unresolved placeholders are substituted with the empty string; rendering
// is side-effect-free and never fails.
func Render(t Template, vars map[string]string) Content {
	return Content{
		Subject: substitute(t.Subject, vars),
		HTML:    substitute(t.HTMLContent, vars),
		Text:    substitute(t.TextContent, vars),
	}
}

func substitute(s string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		return vars[name]
	})
}
