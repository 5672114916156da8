package renderer

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var htmlConverter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// HTMLDocument converts a markdown report into a standalone HTML page.
func HTMLDocument(title, markdown string) (string, error) {
	var body bytes.Buffer
	if err := htmlConverter.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("cannot convert report to HTML: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 50rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
</style>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(title), body.String())
	return page.String(), nil
}
