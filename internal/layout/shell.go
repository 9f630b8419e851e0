package layout

import (
	"net/url"
	"strings"
	"text/template"
)

// googleFonts are the families the document shell may load from Google Fonts.
// Any other configured family renders with its CSS fallback stack instead of
// pulling an external stylesheet.
var googleFonts = map[string]bool{
	"Roboto":     true,
	"Poppins":    true,
	"Inter":      true,
	"Lato":       true,
	"Montserrat": true,
	"Open Sans":  true,
}

// fontLink builds the stylesheet link for the primary font family, or ""
// when the family is not in the supported set.
func fontLink(fontFamily string) string {
	primary := strings.SplitN(fontFamily, ",", 2)[0]
	primary = strings.Trim(strings.TrimSpace(primary), "'\"")
	if !googleFonts[primary] {
		return ""
	}
	family := url.QueryEscape(primary)
	return `<link href="https://fonts.googleapis.com/css2?family=` + family +
		`:wght@300;400;500;600;700&display=swap" rel="stylesheet" />`
}

// shellData is the payload for the document shell template. Body and FontLink
// carry pre-rendered markup; the scalar fields are CSS values validated at
// registry load.
type shellData struct {
	Title      string
	FontLink   string
	FontFamily string
	FontSize   string
	LineHeight string
	TextColor  string
	Background string
	PageSize   string
	Body       string
}

var shellTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8" />
<title>{{.Title}}</title>
{{.FontLink}}
<style>
  @page {
    size: {{.PageSize}};
    margin: 0;
  }
  * {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
  }
  html, body {
    font-family: {{.FontFamily}};
    font-size: {{.FontSize}};
    line-height: {{.LineHeight}};
    color: {{.TextColor}};
    background: {{.Background}};
    -webkit-print-color-adjust: exact;
    print-color-adjust: exact;
  }
  .page {
    width: 794px;
    min-height: 1123px;
    margin: 0 auto;
    background: {{.Background}};
    overflow: hidden;
  }
  .page + .page {
    page-break-before: always;
  }
  h1, h2, h3 {
    page-break-after: avoid;
    break-after: avoid;
  }
  .section-block, .item-block {
    page-break-inside: avoid;
    break-inside: avoid;
  }
  p {
    orphans: 3;
    widows: 3;
  }
  .section-divider {
    border: none;
    border-top: 1px solid rgba(0,0,0,0.08);
    margin: 4px 0 12px;
  }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))
