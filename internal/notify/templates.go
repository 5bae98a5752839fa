package notify

import (
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/hrithikcode/TO-DO-LIST/internal/models"
)

type resetData struct {
	Username  string
	Email     string
	ResetLink string
	Requested string
}

type digestData struct {
	Username    string
	TodoTitle   string
	TodoDesc    string
	ActiveTodos []models.Todo
	AppURL      string
	Sent        string
}

type summaryData struct {
	Username    string
	ActiveTodos []models.Todo
	AppURL      string
	Sent        string
}

func timestamp() string {
	return time.Now().Format("January 2, 2006 at 3:04 PM")
}

var resetHTML = htmltemplate.Must(htmltemplate.New("reset").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; line-height: 1.6;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #667eea;">Password Reset Request</h1>
    <h2>Hello {{.Username}}!</h2>
    <p>We received a request to reset the password for your Todo App account.</p>
    <p><strong>Account:</strong> {{.Email}}<br><strong>Requested:</strong> {{.Requested}}</p>
    <p style="text-align: center;">
      <a href="{{.ResetLink}}" style="display: inline-block; padding: 12px 24px; background: #ff6b6b; color: white; text-decoration: none; border-radius: 5px;">Reset Password</a>
    </p>
    <p>This link expires in <strong>1 hour</strong>. If you didn't request the reset,
    ignore this email and your password stays unchanged.</p>
    <p>Can't click the button? Copy this link into your browser:<br>
    <span style="word-break: break-all; font-family: monospace;">{{.ResetLink}}</span></p>
  </div>
</body>
</html>`))

var resetText = texttemplate.Must(texttemplate.New("reset").Parse(`Hello {{.Username}}!

We received a request to reset the password for your Todo App account ({{.Email}}).

Reset your password: {{.ResetLink}}

This link expires in 1 hour. If you didn't request the reset, ignore this email.
`))

var digestHTML = htmltemplate.Must(htmltemplate.New("digest").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; line-height: 1.6;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #667eea;">New Task Created</h1>
    <h2>Hello {{.Username}}!</h2>
    <p>You just added a new task:</p>
    <div style="background: #f9f9f9; padding: 12px; border-left: 4px solid #667eea;">
      <strong>{{.TodoTitle}}</strong>
      {{if .TodoDesc}}<br><small>{{.TodoDesc}}</small>{{end}}
    </div>
    <h3>Your active tasks ({{len .ActiveTodos}} total)</h3>
    {{range $i, $t := .ActiveTodos}}
    <div style="background: white; padding: 10px; border-left: 4px solid #667eea; margin: 6px 0;">
      <strong>{{$t.Title}}</strong>
      {{if $t.Description}}<br><small style="color: #666;">{{$t.Description}}</small>{{end}}
    </div>
    {{else}}
    <p style="color: #666; font-style: italic;">No active tasks. You're all caught up!</p>
    {{end}}
    <p style="text-align: center;"><a href="{{.AppURL}}" style="display: inline-block; padding: 12px 24px; background: #667eea; color: white; text-decoration: none; border-radius: 5px;">Open Todo App</a></p>
    <p style="color: #666; font-size: 12px; text-align: center;">Sent {{.Sent}}</p>
  </div>
</body>
</html>`))

var digestText = texttemplate.Must(texttemplate.New("digest").Parse(`Hello {{.Username}}!

You just added a new task: {{.TodoTitle}}
{{if .TodoDesc}}  {{.TodoDesc}}
{{end}}
Your active tasks ({{len .ActiveTodos}} total):
{{range .ActiveTodos}}- {{.Title}}{{if .Description}} ({{.Description}}){{end}}
{{else}}No active tasks. You're all caught up!
{{end}}
Open your Todo App: {{.AppURL}}
`))

var summaryHTML = htmltemplate.Must(htmltemplate.New("summary").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; line-height: 1.6;">
  <div style="max-width: 700px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #667eea;">Todo Summary</h1>
    <h2>Hello {{.Username}}!</h2>
    <p>Here's your current task summary, sent on demand:</p>
    <div style="background: #28a745; color: white; padding: 12px; border-radius: 6px; text-align: center;">
      <strong>{{len .ActiveTodos}} active tasks</strong>
    </div>
    {{range $i, $t := .ActiveTodos}}
    <div style="background: white; padding: 10px; border-left: 4px solid #667eea; margin: 6px 0;">
      <strong>{{$t.Title}}</strong>
      {{if $t.Description}}<br><small style="color: #666;">{{$t.Description}}</small>{{end}}
      <br><small style="color: #666;">Created: {{$t.CreatedAt.Format "Jan 2, 2006"}}</small>
    </div>
    {{else}}
    <p style="color: #666; font-style: italic;">No active tasks. You're all caught up!</p>
    {{end}}
    <p style="text-align: center;"><a href="{{.AppURL}}" style="display: inline-block; padding: 12px 24px; background: #667eea; color: white; text-decoration: none; border-radius: 5px;">Open Todo App</a></p>
    <p style="color: #666; font-size: 12px; text-align: center;">Sent on demand {{.Sent}}</p>
  </div>
</body>
</html>`))

var summaryText = texttemplate.Must(texttemplate.New("summary").Parse(`Hello {{.Username}}!

ON-DEMAND TASK SUMMARY

Active tasks: {{len .ActiveTodos}}
{{range .ActiveTodos}}- {{.Title}}{{if .Description}} ({{.Description}}){{end}} [created {{.CreatedAt.Format "Jan 2, 2006"}}]
{{else}}No active tasks. You're all caught up!
{{end}}
Open your Todo App: {{.AppURL}}
`))
