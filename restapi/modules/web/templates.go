package web

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
{{if .RefreshSeconds}}<meta http-equiv="refresh" content="{{.RefreshSeconds}}">{{end}}
<title>Incidencias ferroviarias</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,sans-serif;background:#f6f7f9;color:#1f2328;font-size:14px;line-height:1.5}
header{background:#1f2937;color:#f9fafb;padding:12px 20px;display:flex;align-items:center;gap:24px;flex-wrap:wrap}
header h1{font-size:18px;font-weight:700}
header .updated{margin-left:auto;font-size:12px;color:#d1d5db}
main{padding:16px 20px}
.cards{display:flex;gap:12px;margin-bottom:16px}
.card{background:#fff;border:1px solid #e5e7eb;border-radius:6px;padding:10px 16px;min-width:140px}
.card .value{font-size:24px;font-weight:700}
.card.red .value{color:#dc2626}
.card.yellow .value{color:#d97706}
form.filters{display:flex;gap:8px;margin-bottom:16px;flex-wrap:wrap}
form.filters input,form.filters select{padding:6px 8px;border:1px solid #d1d5db;border-radius:4px}
form.filters button{padding:6px 14px;border:0;border-radius:4px;background:#2563eb;color:#fff}
table{width:100%;border-collapse:collapse;background:#fff}
th,td{border-bottom:1px solid #e5e7eb;padding:6px 8px;text-align:left;vertical-align:top}
th{background:#f3f4f6;font-size:12px;text-transform:uppercase;color:#4b5563}
td.message{text-align:center;color:#6b7280;padding:24px}
td.message.error{color:#dc2626}
.badge{display:inline-block;padding:1px 8px;border-radius:10px;font-size:12px;font-weight:600}
.status-red{background:#fee2e2;color:#991b1b}
.status-yellow{background:#fef3c7;color:#92400e}
.status-blue{background:#dbeafe;color:#1e40af}
.status-green{background:#dcfce7;color:#166534}
.dot{display:inline-block;width:8px;height:8px;border-radius:50%;background:#e5e7eb;margin-right:2px}
.dot.filled{background:#dc2626}
.original{color:#6b7280;font-size:12px}
</style>
</head>
<body>
<header>
<h1>Incidencias ferroviarias</h1>
<span class="updated">Última actualización: <span id="last-update">{{slot .Board "last-update"}}</span></span>
</header>
<main>
{{template "content" .}}
</main>
</body>
</html>{{end}}`

const tmplBoard = `
{{define "content"}}
<div class="cards">
<div class="card"><div>Total</div><div class="value" id="total-incidencias">{{slot .Board "total-incidencias"}}</div></div>
<div class="card red"><div>Interrupciones</div><div class="value" id="total-red">{{slot .Board "total-red"}}</div></div>
<div class="card yellow"><div>Retrasos</div><div class="value" id="total-yellow">{{slot .Board "total-yellow"}}</div></div>
</div>

<form class="filters" method="get" action="/">
<input type="search" id="search" name="q" placeholder="Buscar..." value="{{.Criteria.Search}}">
<select id="network" name="network">
<option value="">Todas las redes</option>
{{range .Networks}}<option value="{{.}}"{{if eq (print .) $.Criteria.Network}} selected{{end}}>{{.Label}}</option>
{{end}}</select>
<select id="status" name="status">
<option value="">Todos los estados</option>
{{range .Statuses}}<option value="{{.}}"{{if eq (print .) $.Criteria.Status}} selected{{end}}>{{.Label}}</option>
{{end}}</select>
<button type="submit">Filtrar</button>
</form>

<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody id="incidents-body">
{{- if eq .Board.Body.Kind "rows"}}
{{- range .Board.Body.Rows}}
<tr>
<td><span class="badge {{.StatusClass}}">{{.Status}}</span></td>
<td>{{.Network}}</td>
<td>{{.Line}}</td>
<td>{{.Nodes}}</td>
<td>{{.Summary}}</td>
<td class="original">{{.OriginalDescription}}</td>
<td>{{range dots .Severity}}<span class="dot{{if .}} filled{{end}}"></span>{{end}}</td>
<td>{{.StartDate}}</td>
</tr>
{{- end}}
{{- else if eq .Board.Body.Kind "notice"}}
<tr><td class="message" colspan="{{len .Columns}}">{{.Board.Body.Message}}</td></tr>
{{- else if eq .Board.Body.Kind "error"}}
<tr><td class="message error" colspan="{{len .Columns}}">{{.Board.Body.Message}}</td></tr>
{{- end}}
</tbody>
</table>
{{end}}`
