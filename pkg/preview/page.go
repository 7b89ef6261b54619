package preview

import (
	"html/template"
	"io"
)

type pageData struct {
	Epoch      uint64
	Fullscreen bool
	Filename   string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>GenComp Preview</title>
<style>
  html, body { margin: 0; height: 100%; font-family: system-ui, sans-serif; background: #0f172a; color: #e2e8f0; }
  header { display: flex; align-items: center; justify-content: space-between; padding: 8px 16px; background: #1e293b; }
  header a { color: #93c5fd; margin-left: 12px; text-decoration: none; }
  #frame { border: 0; width: 100%; background: #fff; }
  body.chrome #frame { height: calc(100% - 40px); }
  body.full #frame { height: 100%; }
</style>
</head>
<body class="{{if .Fullscreen}}full{{else}}chrome{{end}}">
{{- if not .Fullscreen}}
<header>
  <span>Live Preview <small id="epoch">#{{.Epoch}}</small></span>
  <span><a href="fullscreen" target="_blank">Fullscreen</a><a href="download" download="{{.Filename}}">Download</a></span>
</header>
{{- end}}
<iframe id="frame" title="Generated UI Preview" sandbox="allow-scripts" src="doc?epoch={{.Epoch}}"></iframe>
<script>
(function () {
  var frame = document.getElementById("frame");
  var label = document.getElementById("epoch");
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var base = location.pathname.replace(/[^/]*$/, "");
  function connect() {
    var ws = new WebSocket(proto + "//" + location.host + base + "ws");
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      frame.src = "doc?epoch=" + msg.epoch + "&t=" + Date.now();
      if (label) { label.textContent = "#" + msg.epoch; }
    };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }
  connect();
})();
</script>
</body>
</html>
`))

func renderPage(w io.Writer, data pageData) error {
	return pageTemplate.Execute(w, data)
}
