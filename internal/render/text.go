package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/ewestra/tiledict/internal/merge"
)

type textRenderer struct{}

var textTemplate = template.Must(template.New("build").Funcs(template.FuncMap{
	"base": filepath.Base,
}).Parse(`Dictionary build
{{ range .Sources }}
{{ base .Path }} ({{ .Policy }}): read {{ .LinesRead }}, accepted {{ .Accepted }}, added {{ .Added }} -> {{ .Cumulative }}
{{- end }}

Total words: {{ .Total }}
`))

func (r *textRenderer) Render(result *merge.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := textTemplate.Execute(&buf, result); err != nil {
		return nil, fmt.Errorf("rendering build report: %w", err)
	}
	return buf.Bytes(), nil
}
