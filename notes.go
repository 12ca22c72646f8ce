package pnptex

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/valgut/go-pnptex/internal/fileutil"
)

// notesHTMLTemplate wraps the rendered fragment in a complete HTML5
// document so the notes file opens standalone in a browser.
const notesHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Class Notes</title>
</head>
<body>
%s
</body>
</html>`

// notesFileNames lists the files probed for class notes, in preference
// order.
var notesFileNames = []string{"notes.md", "README.md"}

// NotesRenderer converts Markdown class notes to HTML.
type NotesRenderer interface {
	RenderHTML(content string) (string, error)
}

// FindNotesFile returns the path of the class-notes Markdown file inside
// root, if one exists. notes.md wins over README.md.
func FindNotesFile(root string) (string, bool) {
	for _, name := range notesFileNames {
		path := filepath.Join(root, name)
		if fileutil.FileExists(path) {
			return path, true
		}
	}
	return "", false
}

// goldmarkNotesRenderer renders notes with GFM extensions and syntax
// highlighting.
type goldmarkNotesRenderer struct {
	md goldmark.Markdown
}

// newNotesRenderer creates the default notes renderer.
func newNotesRenderer() *goldmarkNotesRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &goldmarkNotesRenderer{md: md}
}

// RenderHTML converts Markdown content to a standalone HTML5 document.
func (r *goldmarkNotesRenderer) RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotesRender, err)
	}
	return fmt.Sprintf(notesHTMLTemplate, buf.String()), nil
}

// RenderNotesToFile renders the class-notes file from root to an HTML
// file at outputPath. It is a no-op returning (false, nil) when the root
// has no notes file.
func (s *Service) RenderNotesToFile(root, outputPath string) (bool, error) {
	notesPath, ok := FindNotesFile(root)
	if !ok {
		return false, nil
	}

	content, err := os.ReadFile(notesPath) // #nosec G304 -- path is derived from the user-provided root
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrReadNotes, err)
	}

	rendered, err := s.notes.RenderHTML(string(content))
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(outputPath, []byte(rendered), 0o644); err != nil {
		return false, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return true, nil
}
