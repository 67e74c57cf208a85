package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/navmenu/pkg/config"
	"github.com/mchmarny/navmenu/pkg/menu"
)

const docsYAML = `
title: Docs
wrap: {tag: nav}
menu:
  - {title: Home, url: /}
  - title: Guides
    url: /guides
    items:
      - {title: Install, url: /guides/install}
      - {title: Usage, url: /guides/usage}
  - {title: About, url: /about}
`

func newTestHandler(t *testing.T) (*Handler, *prometheus.Registry) {
	t.Helper()
	s, err := config.Parse([]byte(docsYAML))
	require.NoError(t, err)
	reg := prometheus.NewRegistry()
	return NewHandler(s, reg), reg
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPage(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, "/guides/install")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, "Docs", doc.Find("title").Text())
	assert.Equal(t, "Install", doc.Find("h1").Text())
	assert.Equal(t, 1, doc.Find("header > nav > ul").Length())

	var active []string
	doc.Find("li.active > a").Each(func(_ int, s *goquery.Selection) {
		active = append(active, s.Text())
	})
	assert.Equal(t, []string{"Guides", "Install"}, active)
	assert.Equal(t, "Install", doc.Find("li.exact-active").Text())

	var crumbs []string
	doc.Find("ol.breadcrumb li").Each(func(_ int, s *goquery.Selection) {
		crumbs = append(crumbs, s.Text())
	})
	assert.Equal(t, []string{"Guides", "Install"}, crumbs)
	href, _ := doc.Find("ol.breadcrumb a").First().Attr("href")
	assert.Equal(t, "/guides", href)
}

func TestPageWithoutActiveItem(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, 0, doc.Find("li.active").Length())
	assert.Equal(t, 0, doc.Find("ol.breadcrumb").Length())
	assert.Equal(t, "Docs", doc.Find("h1").Text())
}

func TestTree(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h.TreeHandler(), "/menu.json?url=/guides/usage")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got treeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	want := treeResponse{
		URL: "/guides/usage",
		Menu: menu.Node{
			Active: true,
			Items: []menu.Node{
				{Title: "Home", URL: "/"},
				{Title: "Guides", URL: "/guides", Active: true, Items: []menu.Node{
					{Title: "Install", URL: "/guides/install"},
					{Title: "Usage", URL: "/guides/usage", Active: true, ExactActive: true},
				}},
				{Title: "About", URL: "/about"},
			},
		},
		Breadcrumb: []string{"Guides", "Usage"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeDefaultsToRoot(t *testing.T) {
	h, _ := newTestHandler(t)

	var got treeResponse
	require.NoError(t, json.Unmarshal(serve(h.TreeHandler(), "/menu.json").Body.Bytes(), &got))

	assert.Equal(t, "/", got.URL)
	assert.False(t, got.Menu.Active)
	assert.Empty(t, got.Breadcrumb)
}

func TestNotReady(t *testing.T) {
	h := NewHandler(nil, prometheus.NewRegistry())

	require.ErrorIs(t, h.Ready(context.Background()), ErrNoSite)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h.TreeHandler(), "/menu.json").Code)

	s, err := config.Parse([]byte(docsYAML))
	require.NoError(t, err)
	h.SetSite(s)

	require.NoError(t, h.Ready(context.Background()))
	assert.Equal(t, http.StatusOK, serve(h, "/").Code)
}

func TestSetSiteNilUnloads(t *testing.T) {
	h, _ := newTestHandler(t)

	h.SetSite(nil)

	assert.Nil(t, h.Site())
	require.ErrorIs(t, h.Ready(context.Background()), ErrNoSite)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/guides").Code)
}

func TestSetSiteSwapsDefinition(t *testing.T) {
	h, _ := newTestHandler(t)

	s, err := config.Parse([]byte("title: Blog\nmenu:\n  - {title: Posts, url: /posts}\n"))
	require.NoError(t, err)
	h.SetSite(s)

	assert.Same(t, s, h.Site())

	doc, err := goquery.NewDocumentFromReader(serve(h, "/posts/hello").Body)
	require.NoError(t, err)
	assert.Equal(t, "Blog", doc.Find("title").Text())
	assert.Equal(t, "Posts", doc.Find("li.active").Text())
}

func TestRenderMetrics(t *testing.T) {
	h, reg := newTestHandler(t)

	serve(h, "/guides")
	serve(h, "/")
	serve(h.TreeHandler(), "/menu.json?url=/about")

	families, err := reg.Gather()
	require.NoError(t, err)

	renders := map[string]float64{}
	var observed uint64
	for _, f := range families {
		switch f.GetName() {
		case "navmenu_renders_total":
			for _, m := range f.GetMetric() {
				renders[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
			}
		case "navmenu_render_seconds":
			for _, m := range f.GetMetric() {
				observed += m.GetHistogram().GetSampleCount()
			}
		}
	}

	assert.Equal(t, map[string]float64{"true": 2, "false": 1}, renders)
	assert.Equal(t, uint64(3), observed)
}
