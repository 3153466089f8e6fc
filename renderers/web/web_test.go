package web

import (
	"bytes"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tdewolff/scatter"
	"github.com/tdewolff/test"
)

func testChart(t *testing.T) *scatter.Chart {
	ds := scatter.Dataset{
		{Geography: "Alpha", StateAbbr: "AA", FoodstampsNum: 10, PercentRenting: 5},
		{Geography: "Beta & Co", StateAbbr: "BB", FoodstampsNum: 20, PercentRenting: 10},
		{Geography: "Gamma", StateAbbr: "CC", FoodstampsNum: 30, PercentRenting: 15},
		{Geography: "Delta", StateAbbr: "DD", FoodstampsNum: math.NaN(), PercentRenting: 12},
	}
	ch, err := scatter.New(ds, scatter.DefaultConfig)
	test.Error(t, err)
	return ch
}

func TestWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, Write(buf, testChart(t), &Options{Title: "Test", Minify: false}))
	page := buf.String()

	test.That(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	test.That(t, !strings.Contains(page, "<?xml"), "no XML prolog inside HTML")
	test.That(t, strings.Contains(page, "<title>Test</title>"))
	test.That(t, strings.Contains(page, `<div class="tooltip"></div>`))
	test.That(t, strings.Contains(page, `.tooltip { position: absolute; opacity: 0;`))
	test.That(t, strings.Contains(page, `<svg width="960" height="500"`))
	test.That(t, strings.Contains(page, `translate(100,20)`))

	// the NaN mark is not drawn
	test.T(t, strings.Count(page, "<circle"), 3)
	test.That(t, strings.Contains(page, `cx="820" cy="70" r="10"`))
	test.That(t, strings.Contains(page, `data-tip="Gamma&lt;br&gt; Percent Renting: 15&lt;br&gt; Food Stamps: 30"`))
	test.That(t, strings.Contains(page, `data-tip="Beta &amp;amp; Co&lt;br&gt;`), "geography escaped for inner HTML")
	test.That(t, strings.Contains(page, ">CC</text>"))
	test.That(t, !strings.Contains(page, ">DD</text>"))
	test.That(t, strings.Contains(page, "People renting homes (%)"))
	test.That(t, strings.Contains(page, `rotate(-90)`))
	test.That(t, strings.Contains(page, `addEventListener("mouseout"`))
}

func TestWriteMinify(t *testing.T) {
	ch := testChart(t)
	plain, minified := &bytes.Buffer{}, &bytes.Buffer{}
	test.Error(t, Write(plain, ch, &Options{Minify: false}))
	test.Error(t, Write(minified, ch, nil))
	test.That(t, minified.Len() < plain.Len(), "minified page is smaller")
	test.That(t, strings.Contains(minified.String(), "tooltip"))
	test.T(t, strings.Count(minified.String(), "<circle"), 3)
}

func TestHandler(t *testing.T) {
	h, err := Handler(testChart(t), nil)
	test.Error(t, err)

	srv := httptest.NewServer(h)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/")
	test.Error(t, err)
	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	test.Error(t, err)
	test.T(t, res.StatusCode, http.StatusOK)
	test.String(t, res.Header.Get("Content-Type"), "text/html; charset=utf-8")
	test.That(t, bytes.Contains(body, []byte("<circle")))

	res, err = http.Get(srv.URL + "/data.csv")
	test.Error(t, err)
	res.Body.Close()
	test.T(t, res.StatusCode, http.StatusNotFound)

	res, err = http.Post(srv.URL+"/", "text/plain", strings.NewReader(""))
	test.Error(t, err)
	res.Body.Close()
	test.T(t, res.StatusCode, http.StatusMethodNotAllowed)
}
