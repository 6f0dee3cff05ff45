package main

import "net/http"

const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Boardroom</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
textarea { width: 100%; height: 4rem; }
pre { white-space: pre-wrap; background: #f4f4f4; padding: 1rem; }
</style>
</head>
<body>
<h1>🏢 Boardroom</h1>
<p>Enter a topic and the agent team will research it and compile a report.</p>
<form id="f">
<textarea id="task" placeholder="benefits and risks of AI in healthcare"></textarea>
<button type="submit">Generate report</button>
</form>
<pre id="out"></pre>
<script>
document.getElementById('f').addEventListener('submit', async (e) => {
  e.preventDefault();
  const out = document.getElementById('out');
  out.textContent = 'Working...';
  const resp = await fetch('/report', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({task: document.getElementById('task').value})
  });
  const body = await resp.json();
  out.textContent = resp.ok ? body.report : 'Error: ' + body.error;
});
</script>
</body>
</html>
`

func indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}
