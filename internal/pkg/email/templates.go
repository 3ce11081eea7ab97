package email

// Email templates in HTML format

// BaseTemplate is the base layout for all emails
const BaseTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: #f4f5f7;
            color: #1f2933;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 40px 20px;
        }
        .card {
            background: #ffffff;
            border-radius: 12px;
            padding: 32px;
            border: 1px solid #e4e7eb;
        }
        .logo {
            text-align: center;
            margin-bottom: 24px;
        }
        .logo h1 {
            font-size: 28px;
            color: #0f766e;
            margin: 0;
        }
        h2 {
            font-size: 22px;
            margin: 0 0 16px;
        }
        p {
            color: #52606d;
            font-size: 15px;
            line-height: 1.6;
        }
        table.meta {
            width: 100%;
            border-collapse: collapse;
            margin: 16px 0;
        }
        table.meta td {
            padding: 6px 8px;
            font-size: 14px;
            border-bottom: 1px solid #e4e7eb;
        }
        table.meta td.k {
            color: #7b8794;
            white-space: nowrap;
        }
        .footer {
            text-align: center;
            color: #9aa5b1;
            font-size: 12px;
            margin-top: 24px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            <div class="logo"><h1>HomeRoam</h1></div>
            {{.Content}}
        </div>
        <div class="footer">This is an automated message from HomeRoam.</div>
    </div>
</body>
</html>
`

// ContentReportTemplate notifies the moderation team about a new content report
const ContentReportTemplate = `
<h2>New content report #{{.ReportID}}</h2>
<p>A user has flagged content for review.</p>
<table class="meta">
    <tr><td class="k">Subject</td><td>{{.Subject}}</td></tr>
    <tr><td class="k">Content ref</td><td>{{.ContentRef}}</td></tr>
    <tr><td class="k">Content owner</td><td>{{.ContentOwner}}</td></tr>
    <tr><td class="k">Reporter</td><td>user #{{.ReporterUserID}}</td></tr>
    <tr><td class="k">Page</td><td>{{.Page}}</td></tr>
    <tr><td class="k">User agent</td><td>{{.UserAgent}}</td></tr>
</table>
<p>{{.Description}}</p>
`
