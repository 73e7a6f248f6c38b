package export

import (
	"html/template"
	"io"

	"cursorchat/internal"
)

// HTMLExporter renders a chat as a standalone HTML page
type HTMLExporter struct{}

var htmlTemplate = template.Must(template.New("chat").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
.message { margin-bottom: 1.5rem; }
.role { font-weight: bold; }
.user .role { color: #2563eb; }
.assistant .role { color: #7c3aed; }
.meta { color: #6b7280; font-size: 0.8rem; }
pre { background: #f3f4f6; padding: 0.75rem; overflow-x: auto; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Chat.RequestID}}<p class="meta">Request ID: {{.Chat.RequestID}}</p>{{end}}
{{range .Chat.Messages}}<div class="message {{.Role}}">
<span class="role">{{.Role}}</span>
{{if not .Timestamp.IsZero}}<span class="meta">{{.Timestamp.Format "2006-01-02 15:04:05"}}</span>{{end}}
<pre>{{.Content}}</pre>
</div>
{{end}}</body>
</html>
`))

// Export exports a chat to HTML format
func (e *HTMLExporter) Export(chat *internal.Chat, w io.Writer) error {
	data := struct {
		Title string
		Chat  *internal.Chat
	}{
		Title: chat.DisplayTitle(),
		Chat:  chat,
	}
	return htmlTemplate.Execute(w, data)
}

// Extension returns the file extension for this format
func (e *HTMLExporter) Extension() string {
	return "html"
}
