package panel

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>seglink display</title>
<style>
body { background: #111; color: #888; font-family: monospace; text-align: center; }
#seg { margin: 3em auto; }
.on { fill: #f33; }
.off { fill: #311; }
#info { margin-top: 2em; }
</style>
</head>
<body>
<svg id="seg" width="160" height="280" viewBox="0 0 160 280">
<polygon id="sa" class="off" points="30,20 130,20 115,35 45,35"/>
<polygon id="sf" class="off" points="25,25 40,40 40,115 25,130"/>
<polygon id="sb" class="off" points="135,25 135,130 120,115 120,40"/>
<polygon id="sg" class="off" points="35,132 45,125 115,125 125,132 115,139 45,139"/>
<polygon id="se" class="off" points="25,135 40,150 40,225 25,240"/>
<polygon id="sc" class="off" points="135,135 135,240 120,225 120,150"/>
<polygon id="sd" class="off" points="30,245 130,245 115,230 45,230"/>
</svg>
<div id="info">waiting for data</div>
<script>
var ws = new WebSocket("ws://" + location.host + "/ws");
ws.binaryType = "arraybuffer";
ws.onmessage = function (ev) {
  var text = typeof ev.data === "string" ? ev.data
      : new TextDecoder().decode(ev.data);
  var st = JSON.parse(text);
  "abcdefg".split("").forEach(function (s) {
    document.getElementById("s" + s).setAttribute(
      "class", st.segments.indexOf(s) >= 0 ? "on" : "off");
  });
  document.getElementById("info").textContent =
    "digit " + st.digit + "  sample " + st.sample + "  frames " + st.frames;
};
ws.onclose = function () {
  document.getElementById("info").textContent = "disconnected";
};
</script>
</body>
</html>
`
