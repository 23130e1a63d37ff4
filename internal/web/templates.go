package web

import (
	"bytes"
	"html/template"

	"github.com/kavia-common/tic-tac-toe-web-game-2651-2660/internal/domain"
)

type templates struct {
	page  *template.Template
	board *template.Template
}

// boardData feeds the board fragment template.
type boardData struct {
	Session string
	Board   domain.Board
	Status  string
	Verdict domain.Verdict
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"iter": func(n int) []int {
			a := make([]int, n)
			for i := range a {
				a[i] = i
			}
			return a
		},
		"cellSymbol": func(c domain.Cell) string { return c.String() },
		"add":        func(a, b int) int { return a + b },
		"mul":        func(a, b int) int { return a * b },
		"winCell": func(v domain.Verdict, i int) bool {
			if v.Outcome != domain.Won {
				return false
			}
			return v.WinLine[0] == i || v.WinLine[1] == i || v.WinLine[2] == i
		},
	}
}

func loadTemplates() *templates {
	// Minimal inline templates; can be replaced by file loading later.
	page := template.Must(template.New("page").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Tic Tac Toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org/dist/ext/sse.js"></script>
</head><body>
<h1>Tic Tac Toe</h1>
<div hx-ext="sse" hx-sse="connect:/events">
  <div id="board" hx-sse="swap:board">{{.BoardHTML}}</div>
</div>
</body></html>`))
	board := template.Must(template.New("board").Funcs(funcs()).Parse(boardTemplate))
	return &templates{page: page, board: board}
}

func renderTemplate(t *template.Template, data any) []byte {
	var buf bytes.Buffer
	_ = t.Execute(&buf, data)
	return buf.Bytes()
}

const boardTemplate = `
<div id="board" data-session="{{.Session}}">
  <div class="status">{{.Status}}</div>
  {{/* 3x3 grid */}}
  {{range $r := iter 3}}
  <div class="row">
    {{range $c := iter 3}}
      {{$i := add (mul $r 3) $c}}
      <form hx-post="/move" hx-target="#board" hx-swap="outerHTML" method="post">
        <input type="hidden" name="cell" value="{{$i}}">
        <button type="submit" class="cell{{if winCell $.Verdict $i}} win{{end}}">{{cellSymbol (index $.Board $i)}}</button>
      </form>
    {{end}}
  </div>
  {{end}}
  <form hx-post="/reset" hx-target="#board" hx-swap="outerHTML" method="post">
    <button type="submit" class="reset">Reset</button>
  </form>
</div>
`
