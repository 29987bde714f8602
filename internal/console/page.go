package console

import "html/template"

type pageData struct {
	Snapshot
	BackendURL string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Macro Tracking App - Backend Connection Test</title>
<style>
body { font-family: sans-serif; padding: 20px; max-width: 600px; margin: 0 auto; }
form { display: inline; }
button { padding: 10px 20px; margin-right: 10px; color: white; border: none; border-radius: 5px; cursor: pointer; }
button:disabled { cursor: not-allowed; opacity: 0.6; }
.health { background-color: #007bff; }
.sendgrid { background-color: #28a745; }
.status { padding: 10px; margin-bottom: 10px; border-radius: 5px; }
.ok { background-color: #d4edda; border: 1px solid #c3e6cb; }
.error { background-color: #f8d7da; border: 1px solid #f5c6cb; }
.help { margin-top: 20px; font-size: 14px; color: #666; }
</style>
</head>
<body>
<h1>Macro Tracking App</h1>
<h2>Backend Connection Test</h2>

<div style="margin-bottom: 20px">
  <form method="post" action="/actions/health">
    <button class="health" type="submit"{{if .Busy}} disabled{{end}}>{{if .Busy}}Testing...{{else}}Test Health Endpoint{{end}}</button>
  </form>
  <form method="post" action="/actions/sendgrid">
    <button class="sendgrid" type="submit"{{if .Busy}} disabled{{end}}>{{if .Busy}}Testing...{{else}}Test SendGrid{{end}}</button>
  </form>
</div>

{{with .HealthStatus}}
<div class="status {{if .Healthy}}ok{{else}}error{{end}}" id="health-status">
  <strong>Health Status:</strong> {{.}}
</div>
{{end}}

{{with .SendGridStatus}}
<div class="status {{if .Successful}}ok{{else}}error{{end}}" id="sendgrid-status">
  <strong>SendGrid Status:</strong> {{.}}
</div>
{{end}}

<div class="help">
  <p><strong>Instructions:</strong></p>
  <ul>
    <li>Make sure the backend is running on {{.BackendURL}}</li>
    <li>Click "Test Health Endpoint" to verify backend connection</li>
    <li>Click "Test SendGrid" to verify email functionality</li>
  </ul>
</div>
</body>
</html>
`))
