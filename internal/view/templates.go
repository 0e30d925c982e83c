package view

const layout = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>User Directory</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
nav { margin-bottom: 1.5rem; }
nav a { margin-right: 1rem; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.4rem 0.6rem; border-bottom: 1px solid #ddd; }
label { display: block; margin-top: 0.8rem; }
input, textarea { width: 100%; padding: 0.3rem; box-sizing: border-box; }
button { margin-top: 1rem; padding: 0.4rem 1rem; }
.flash { padding: 0.6rem; margin-bottom: 1rem; border-radius: 4px; }
.flash-success { background: #e7f6e7; }
.flash-error { background: #fbe5e5; }
.flash-warning { background: #fdf3da; }
.field-error { color: #b00020; margin: 0.2rem 0 0; font-size: 0.9rem; }
</style>
</head>
<body>
<nav><a href="/">All users</a><a href="/register">Register</a></nav>
{{range .Flashes}}<div class="flash flash-{{.Kind}}">{{.Message}}</div>{{end}}
{{template "content" .}}
</body>
</html>`

const listContent = `{{define "content"}}
<h1>Registered users</h1>
{{if .Users}}
<table>
<tr><th>ID</th><th>Username</th><th>Full name</th><th>Email</th></tr>
{{range .Users}}
<tr>
<td>{{.ID}}</td>
<td><a href="/profile/{{.ID}}">{{.Username}}</a></td>
<td>{{.FullName}}</td>
<td>{{.Email}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>No users registered yet.</p>
{{end}}
{{end}}`

const formContent = `{{define "content"}}
<h1>{{.Title}}</h1>
<form method="post" action="{{.Action}}">
<input type="hidden" name="csrf_token" value="{{.Form.CSRFToken}}">
<label>Username
<input type="text" name="username" value="{{.Form.Username}}">
</label>
{{range index .Form.Errors "username"}}<p class="field-error">{{.}}</p>{{end}}
<label>Full name
<input type="text" name="full_name" value="{{.Form.FullName}}">
</label>
{{range index .Form.Errors "full_name"}}<p class="field-error">{{.}}</p>{{end}}
<label>Email
<input type="text" name="email" value="{{.Form.Email}}">
</label>
{{range index .Form.Errors "email"}}<p class="field-error">{{.}}</p>{{end}}
<label>Age (optional)
<input type="text" name="age" value="{{.Form.Age}}">
</label>
{{range index .Form.Errors "age"}}<p class="field-error">{{.}}</p>{{end}}
<label>Bio (optional)
<textarea name="bio" rows="4">{{.Form.Bio}}</textarea>
</label>
{{range index .Form.Errors "bio"}}<p class="field-error">{{.}}</p>{{end}}
<button type="submit">Save</button>
</form>
{{end}}`

const profileContent = `{{define "content"}}
<h1>{{.User.Username}}</h1>
<table>
<tr><th>ID</th><td>{{.User.ID}}</td></tr>
<tr><th>Full name</th><td>{{.User.FullName}}</td></tr>
<tr><th>Email</th><td>{{.User.Email}}</td></tr>
<tr><th>Age</th><td>{{if .Age}}{{.Age}}{{else}}not provided{{end}}</td></tr>
<tr><th>Bio</th><td>{{.User.Bio}}</td></tr>
</table>
<p><a href="/update/{{.User.ID}}">Edit profile</a></p>
<form method="post" action="/delete/{{.User.ID}}">
<input type="hidden" name="csrf_token" value="{{.DeleteToken}}">
<button type="submit">Delete</button>
</form>
{{end}}`

const errorContent = `{{define "content"}}
<h1>Something went wrong</h1>
<p>{{.Message}}</p>
<p><a href="/">Back to the user list</a></p>
{{end}}`
