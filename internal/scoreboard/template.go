package scoreboard

// scoreboardTemplate renders the heat sheet. The page reloads itself on the
// refresher's cadence so a wall display stays current without client code.
const scoreboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    {{if gt .RefreshSeconds 0}}<meta http-equiv="refresh" content="{{.RefreshSeconds}}">{{end}}
    <title>{{if .MeetName}}{{.MeetName}} — {{end}}Scoreboard</title>
    <style>
        body { font-family: 'Segoe UI', Arial, sans-serif; background: #0a1e3c; color: #fff; margin: 0; padding: 20px; }
        h1 { text-align: center; margin-bottom: 4px; }
        .meta { text-align: center; color: #9db4d4; margin-bottom: 24px; font-size: 0.9em; }
        .event-container { background: #11294f; border-radius: 8px; margin-bottom: 20px; padding: 16px; }
        .event-container.no-details { opacity: 0.6; }
        .event-header { display: flex; justify-content: space-between; align-items: baseline; border-bottom: 2px solid #2a4a7f; padding-bottom: 8px; margin-bottom: 8px; }
        .event-header h2 { margin: 0; font-size: 1.2em; }
        .status-badge { font-size: 0.75em; padding: 2px 8px; border-radius: 10px; background: #2a4a7f; margin-left: 8px; text-transform: uppercase; }
        .status-badge.scored { background: #1e7a3c; }
        .heat-header { font-weight: bold; color: #ffd34d; margin: 12px 0 4px; }
        .lane { display: grid; grid-template-columns: 36px 1fr 120px 120px 60px; gap: 8px; padding: 6px 8px; border-bottom: 1px solid #1c365e; align-items: center; }
        .lane.place-1 { background: rgba(255, 211, 77, 0.15); }
        .lane.place-2 { background: rgba(192, 192, 192, 0.12); }
        .lane.place-3 { background: rgba(205, 127, 50, 0.12); }
        .lane-number { font-weight: bold; text-align: center; }
        .team-name { font-weight: bold; }
        .relay-swimmer { display: block; font-size: 0.85em; color: #c7d6ee; }
        .seed-time { color: #9db4d4; font-size: 0.85em; }
        .result-time { font-weight: bold; }
        .result-time.nt { color: #6b83a8; }
        .place { text-align: center; font-weight: bold; }
        .splits { grid-column: 2 / -1; font-size: 0.8em; color: #9db4d4; }
        .split-time { margin-right: 10px; }
        .no-details-message { color: #6b83a8; font-style: italic; padding: 8px 0; }
    </style>
</head>
<body>
    <h1>{{if .MeetName}}{{.MeetName}}{{else}}Swim Meet Scoreboard{{end}}</h1>
    <div class="meta">Generated: {{.GeneratedAt}} · Mode: {{.Mode}}</div>
{{range .Events}}
    <div class="event-container{{if not .HasDetails}} no-details{{end}}">
        <div class="event-header">
            <h2>Event #{{.Number}}</h2>
            <div>
                {{.Label}}
                <span class="status-badge{{if eq .State "scored"}} scored{{end}}">{{.State}}{{if not .HasDetails}} (no details){{end}}</span>
            </div>
        </div>
{{if not .HasDetails}}
        <div class="no-details-message">Heat and lane details not available</div>
{{else}}
{{range .Heats}}
        <div class="heat-header">HEAT {{.Number}}</div>
{{range .Lanes}}
        <div class="lane{{if eq .Place 1}} place-1{{else if eq .Place 2}} place-2{{else if eq .Place 3}} place-3{{end}}">
            <div class="lane-number">{{.Lane}}</div>
            <div>
{{if .RelayTeam}}
                <div class="team-name">{{.RelayTeam}}</div>
{{range .Swimmers}}                <span class="relay-swimmer">{{.Position}}. {{.Name}}</span>
{{end}}
{{else}}
                <div class="team-name">{{.Team}}</div>
                <div>{{.AthleteName}}</div>
{{end}}
            </div>
            <div class="seed-time">Seed: {{.SeedTime}}</div>
            <div class="result-time{{if eq .ResultTime "NT"}} nt{{end}}">{{.ResultTime}}</div>
            <div class="place">{{if .Place}}{{.Place}}{{else}}-{{end}}</div>
{{if .Splits}}
            <div class="splits">Splits:{{range .Splits}} <span class="split-time">{{.Distance}}y: {{.Time}}</span>{{end}}</div>
{{end}}
        </div>
{{end}}
{{end}}
{{end}}
    </div>
{{end}}
</body>
</html>
`
