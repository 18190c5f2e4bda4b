package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// printCSS keeps the rendered packet close to the plain court-filing look:
// serif body, bordered tables, generous line height for Korean text.
const printCSS = `
body{font-family:"Noto Serif KR","Batang",serif;font-size:11pt;line-height:1.75;color:#1c1917;}
h1{font-size:16pt;text-align:center;margin-bottom:1.2rem;}
h2{font-size:12pt;border-bottom:1px solid #a8a29e;padding-bottom:0.2rem;margin-top:1.4rem;}
table{width:100%;border-collapse:collapse;font-size:10pt;}
th,td{border:1px solid #a8a29e;padding:0.3rem 0.45rem;text-align:left;vertical-align:top;}
thead th{background:#f1f5f9;font-weight:700;}
blockquote{margin:0;padding:0.4rem 0.8rem;border-left:3px solid #a8a29e;color:#44403c;}
a{color:#1d4ed8;}
`

// PDFRenderer converts a markdown packet to PDF through headless Chromium.
type PDFRenderer struct {
	chromePath string
}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{chromePath: detectChromePath()}
}

// Render produces an A4 PDF of the markdown document.
func (r *PDFRenderer) Render(ctx context.Context, markdown string) ([]byte, error) {
	htmlDoc, err := buildHTML(markdown)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`<span class="pageNumber"></span> / <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.6).
				WithMarginBottom(0.75).
				WithMarginLeft(0.6).
				WithMarginRight(0.6).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

func buildHTML(markdown string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>법률 서면</title>" +
		"<style>" + printCSS +
		"@media print{ @page{size:A4;margin:12mm;} }" +
		"</style></head><body>" + content.String() + "</body></html>", nil
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
