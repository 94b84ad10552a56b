package render

import (
	"html/template"
	"strconv"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
)

var funcMap = template.FuncMap{
	"px": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"variance": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 3, 64)
	},
	"isLeft": func(a models.Axis) bool { return a.Orient == models.OrientLeft },
}

const svgTmpl = `{{define "axis"}}{{if isLeft .}}<g id="{{.ID}}" class="axis" transform="translate({{px .Offset}},0)">
<line x1="0" y1="{{px .Start}}" x2="0" y2="{{px .End}}" stroke="#000"/>
{{range .Ticks}}<g class="tick" transform="translate(0,{{px .Pos}})"><line x2="-6" stroke="#000"/><text x="-9" dy="0.32em" text-anchor="end">{{.Label}}</text></g>
{{end}}</g>{{else}}<g id="{{.ID}}" class="axis" transform="translate(0,{{px .Offset}})">
<line x1="{{px .Start}}" y1="0" x2="{{px .End}}" y2="0" stroke="#000"/>
{{range .Ticks}}<g class="tick" transform="translate({{px .Pos}},0)"><line y2="6" stroke="#000"/><text y="9" dy="0.71em" text-anchor="middle">{{.Label}}</text></g>
{{end}}</g>{{end}}{{end}}
{{define "svg"}}<svg xmlns="http://www.w3.org/2000/svg" id="heatmap" width="{{px .Width}}" height="{{px .Height}}" viewBox="0 0 {{px .Width}} {{px .Height}}" font-family="sans-serif" font-size="10">
<text id="{{.Title.ID}}" x="{{px .Title.X}}" y="{{px .Title.Y}}" font-size="24">{{.Title.Value}}</text>
<text id="{{.Subtitle.ID}}" x="{{px .Subtitle.X}}" y="{{px .Subtitle.Y}}" font-size="16">{{.Subtitle.Value}}</text>
<g id="cells">
{{range .Cells}}<rect class="cell" x="{{px .X}}" y="{{px .Y}}" width="{{px .Width}}" height="{{px .Height}}" fill="{{.Fill}}" data-year="{{.Year}}" data-month="{{.Month}}" data-month-name="{{.MonthName}}" data-variance="{{variance .Variance}}" data-bucket="{{.Bucket}}" data-tooltip="{{.Tooltip}}"><title>{{.Tooltip}}</title></rect>
{{end}}</g>
{{template "axis" .YAxis}}
{{template "axis" .XAxis}}
<g id="{{.Legend.ID}}">
{{range .Legend.Entries}}<rect class="legend-rect" x="{{px .X}}" y="{{px .Y}}" width="{{px .Width}}" height="{{px .Height}}" fill="{{.Color}}" data-value="{{variance .Value}}"/>
{{end}}{{template "axis" .Legend.Axis}}
</g>
</svg>{{end}}`

// svgDocTmpl is the standalone document body. The XML prolog is written by
// SVGRenderer because html/template escapes "<?" in template text.
const svgDocTmpl = `{{template "svg" .}}
`

const pageTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title.Value}}</title>
<style>
body { font-family: sans-serif; margin: 0; padding: 16px; }
#graph { position: relative; }
#tooltip { position: absolute; visibility: hidden; white-space: pre-line; pointer-events: none;
  background: rgba(0,0,0,0.8); color: #fff; padding: 6px 10px; border-radius: 4px; font-size: 12px; text-align: center; }
</style>
</head>
<body>
<div id="graph">
{{template "svg" .}}
<div id="{{.Tooltip.ID}}" data-offset-x="{{px .Tooltip.Offset.X}}" data-offset-y="{{px .Tooltip.Offset.Y}}"></div>
</div>
<script>
(function () {
  var tip = document.getElementById("tooltip");
  var dx = parseFloat(tip.dataset.offsetX), dy = parseFloat(tip.dataset.offsetY);
  document.querySelectorAll("#cells rect.cell").forEach(function (cell) {
    cell.addEventListener("pointerenter", function () {
      tip.textContent = cell.dataset.tooltip;
      tip.style.visibility = "visible";
    });
    cell.addEventListener("pointermove", function (e) {
      tip.style.top = (e.pageY + dy) + "px";
      tip.style.left = (e.pageX + dx) + "px";
    });
    cell.addEventListener("pointerleave", function () {
      tip.style.visibility = "hidden";
    });
  });
})();
</script>
</body>
</html>
`

const failureTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Rendering failed</title>
</head>
<body>
<div id="graph">
<div id="render-error" role="alert">
<h1>Rendering failed</h1>
<p>{{.}}</p>
</div>
</div>
</body>
</html>
`

var (
	svgTemplate     = mustParse("doc", svgDocTmpl)
	pageTemplate    = mustParse("page", pageTmpl)
	failureTemplate = template.Must(template.New("failure").Parse(failureTmpl))
)

// mustParse parses body first so the whitespace between the shared
// definitions does not end up in the output.
func mustParse(name, body string) *template.Template {
	t := template.Must(template.New(name).Funcs(funcMap).Parse(body))
	return template.Must(t.Parse(svgTmpl))
}
