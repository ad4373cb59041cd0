package server

// pageTemplate is the html/template for the viewer shell page. The content
// region starts with the loading message; everything else arrives over the
// websocket.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.DocID}} README</title>
  <link rel="stylesheet" href="/assets/viewer.css">
</head>
<body data-doc-id="{{.DocID}}">
  <div class="loading-bar" id="loading-bar"></div>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h2 class="doc-title">{{.DocID}}</h2>
      <button class="search-toggle" id="search-toggle" aria-label="Search sections">
        <svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="11" cy="11" r="8"/><line x1="21" y1="21" x2="16.65" y2="16.65"/>
        </svg>
      </button>
    </div>
    <div class="search-container hidden" id="search-container">
      <input type="text" id="search-input" placeholder="Filter sections..." autocomplete="off">
    </div>
    <div class="toc" id="toc"></div>
  </nav>
  <main class="content" id="content">
    <article class="markdown-body" id="readme-content">
      <p class="readme-loading">{{.LoadingMessage}}</p>
    </article>
  </main>
  <script src="/assets/viewer.js"></script>
</body>
</html>`

// cssContent styles the viewer page.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2937;
  --muted: #6b7280;
  --border: #e5e7eb;
  --accent: #2563eb;
  --accent-bg: #eff6ff;
  --sidebar-width: 280px;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  color: var(--fg);
  background: var(--bg);
  display: flex;
  height: 100vh;
  overflow: hidden;
}

.loading-bar {
  position: fixed;
  top: 0;
  left: 0;
  height: 3px;
  width: 100%;
  background: linear-gradient(90deg, transparent, var(--accent), transparent);
  background-size: 200% 100%;
  animation: loading 1.2s linear infinite;
  z-index: 10;
}
.loading-bar.hidden { display: none; }

@keyframes loading {
  from { background-position: 200% 0; }
  to { background-position: -200% 0; }
}

.sidebar {
  width: var(--sidebar-width);
  flex-shrink: 0;
  border-right: 1px solid var(--border);
  overflow-y: auto;
  padding: 16px;
}

.sidebar-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
}

.doc-title { font-size: 16px; margin: 0; }

.search-toggle {
  border: none;
  background: none;
  cursor: pointer;
  color: var(--muted);
}

.search-container { margin: 12px 0; }
.search-container.hidden { display: none; }
.search-container input {
  width: 100%;
  padding: 6px 8px;
  border: 1px solid var(--border);
  border-radius: 4px;
}

.toc a {
  display: block;
  padding: 4px 8px;
  border-radius: 4px;
  color: var(--fg);
  text-decoration: none;
  font-size: 14px;
}
.toc a:hover { background: var(--accent-bg); }
.toc a.level-2 { padding-left: 20px; }
.toc a.active { color: var(--accent); background: var(--accent-bg); font-weight: 600; }
.toc a.sidebar-show-all { color: var(--muted); font-style: italic; }

.content {
  position: relative;
  flex: 1;
  overflow-y: auto;
  padding: 32px 48px;
}

.markdown-body { max-width: 860px; line-height: 1.6; }
.markdown-body pre { padding: 12px; overflow-x: auto; border-radius: 4px; background: #f6f8fa; }
.markdown-body table { border-collapse: collapse; }
.markdown-body th, .markdown-body td { border: 1px solid var(--border); padding: 4px 8px; }
.readme-loading { color: var(--muted); }
`

// jsContent is the thin client: it forwards user events to the session and
// applies the messages the session pushes back.
const jsContent = `(function () {
  var docId = document.body.getAttribute('data-doc-id') || '';
  var content = document.getElementById('content');
  var region = document.getElementById('readme-content');
  var toc = document.getElementById('toc');
  var loadingBar = document.getElementById('loading-bar');
  var searchToggle = document.getElementById('search-toggle');
  var searchContainer = document.getElementById('search-container');
  var searchInput = document.getElementById('search-input');

  var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
  var ws = new WebSocket(proto + '//' + location.host + '/ws/readme?id=' + encodeURIComponent(docId));

  function send(ev) {
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify(ev));
    }
  }

  function offsets() {
    var out = {};
    region.querySelectorAll('h1[id], h2[id]').forEach(function (h) {
      out[h.id] = h.offsetTop;
    });
    return out;
  }

  function metrics(type) {
    send({ type: type, scroll_top: content.scrollTop, offsets: offsets() });
  }

  function renderEntries(entries) {
    toc.innerHTML = '';
    (entries || []).forEach(function (e) {
      var a = document.createElement('a');
      a.href = e.href;
      a.textContent = e.label;
      if (e.show_all) {
        a.classList.add('sidebar-show-all');
      } else {
        a.classList.add('block');
        if (e.level === 2) a.classList.add('level-2');
      }
      if (e.active) a.classList.add('active');
      if (e.hidden) a.style.display = 'none';
      a.addEventListener('click', function (evt) {
        evt.preventDefault();
        if (e.show_all) {
          send({ type: 'show_all' });
        } else {
          metrics('metrics');
          send({ type: 'click', target: e.href.slice(1) });
        }
      });
      toc.appendChild(a);
    });
  }

  function applyState(state) {
    renderEntries(state.entries);
    searchContainer.classList.toggle('hidden', !state.search_open);
    if (document.activeElement !== searchInput) {
      searchInput.value = state.query || '';
    }
  }

  function scrollTo(target) {
    if (!target) {
      content.scrollTo({ top: 0, behavior: 'smooth' });
      return;
    }
    var el = document.getElementById(target);
    if (el) el.scrollIntoView({ behavior: 'smooth', block: 'start' });
  }

  ws.onmessage = function (evt) {
    var msg = JSON.parse(evt.data);
    switch (msg.type) {
      case 'loading':
        loadingBar.classList.toggle('hidden', !msg.loading);
        break;
      case 'content':
        region.innerHTML = msg.html;
        metrics('metrics');
        break;
      case 'state':
        applyState(msg.state);
        break;
      case 'scroll':
        scrollTo(msg.target);
        break;
      case 'error':
        console.warn('chartdoc:', msg.text);
        break;
    }
  };

  content.addEventListener('scroll', function () { metrics('scroll'); });
  window.addEventListener('resize', function () { metrics('resize'); });

  searchToggle.addEventListener('click', function () {
    send({ type: 'toggle_search' });
    setTimeout(function () { searchInput.focus(); }, 0);
  });
  searchInput.addEventListener('input', function () {
    send({ type: 'search', query: searchInput.value });
  });
})();
`
