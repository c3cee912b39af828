package htmldoc_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/infrastructure/htmldoc"
	"github.com/bnema/fontify/internal/override"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><head><title>t</title><link rel="stylesheet" href="/site.css"></head>
<body><div id="app"><p>hello</p></div></body></html>`

func parse(t *testing.T, src string) *htmldoc.Document {
	t.Helper()

	doc, err := htmldoc.Parse(strings.NewReader(src), "https://example.com/")
	require.NoError(t, err)
	return doc
}

func TestDocument_HeadChildren(t *testing.T) {
	doc := parse(t, page)

	children, err := doc.HeadChildren()
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "title", children[0].Tag)
	assert.Equal(t, "t", children[0].Text)
	assert.True(t, children[1].IsStylesheet())
	assert.Equal(t, "/site.css", children[1].Attr("href"))
}

func TestDocument_AppendAndRemove(t *testing.T) {
	doc := parse(t, page)

	require.NoError(t, doc.AppendToHead(port.Node{Tag: "style", ID: "mine", Text: "p { color: red }"}))

	children, err := doc.HeadChildren()
	require.NoError(t, err)
	assert.Equal(t, "mine", children[len(children)-1].ID)

	removed, err := doc.RemoveByID("mine")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = doc.RemoveByID("mine")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = doc.RemoveByID("app")
	require.NoError(t, err)
	assert.True(t, removed, "removal reaches the body too")
}

func TestDocument_ObserversSeeInsertions(t *testing.T) {
	doc := parse(t, page)

	var head, body atomic.Int32
	stopHead, err := doc.ObserveHead(func(m []port.Mutation) {
		assert.Equal(t, port.MutationHead, m[0].Target)
		head.Add(1)
	})
	require.NoError(t, err)
	_, err = doc.ObserveBody(func([]port.Mutation) { body.Add(1) })
	require.NoError(t, err)

	require.NoError(t, doc.AppendToHead(port.Node{Tag: "meta"}))
	require.NoError(t, doc.AppendToBody(port.Node{Tag: "div"}))
	assert.Equal(t, int32(1), head.Load())
	assert.Equal(t, int32(1), body.Load())

	stopHead()
	require.NoError(t, doc.AppendToHead(port.Node{Tag: "meta"}))
	assert.Equal(t, int32(1), head.Load())
}

func TestDocument_CallbackMayReenter(t *testing.T) {
	doc := parse(t, page)

	_, err := doc.ObserveHead(func([]port.Mutation) {
		_, _ = doc.HeadChildren()
	})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = doc.AppendToHead(port.Node{Tag: "meta"})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("observer callback deadlocked")
	}
}

func TestDocument_RenderWithOverride(t *testing.T) {
	doc := parse(t, page)

	settings := entity.DefaultSettings()
	settings.Font.FontURL = "https://fonts.googleapis.com/css2?family=Lora"

	e := override.New(override.Deps{Settings: staticSettings{settings}}, override.Options{WatchdogMaxTicks: -1})
	e.Start(context.Background(), doc)
	<-e.Settled()
	e.Stop()
	require.Equal(t, override.StateMaintaining, e.State())

	out, err := doc.Bytes()
	require.NoError(t, err)
	html := string(out)

	linkAt := strings.Index(html, `id="fontify-custom-link"`)
	styleAt := strings.Index(html, `id="fontify-custom-font"`)
	headEnd := strings.Index(html, "</head>")
	require.Positive(t, linkAt)
	assert.Less(t, strings.Index(html, "/site.css"), linkAt)
	assert.Less(t, linkAt, styleAt)
	assert.Less(t, styleAt, headEnd)
	assert.Contains(t, html, "font-family: 'Lora', sans-serif !important;")
	assert.Contains(t, html, `href="https://fonts.googleapis.com/css2?family=Lora"`)
}

type staticSettings struct{ s *entity.Settings }

func (s staticSettings) Load(context.Context) (*entity.Settings, error) { return s.s, nil }

func TestLoader_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)

	loader := htmldoc.NewLoader(nil)

	doc, err := loader.Load(context.Background(), srv.URL+"/article")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/article", doc.URL())

	_, err = loader.Load(context.Background(), srv.URL+"/missing")
	var statusErr *port.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}
