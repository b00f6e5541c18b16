// Package hocrrun reads hOCR output (for instance from Tesseract) into
// the TextRun sequence the parser consumes. Each ocrx_word element
// becomes one run; line assembly is left to the layout stage so scanned
// and born-digital songbooks travel the same pipeline.
package hocrrun

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/songbook/model"
)

// Config holds parse options.
type Config struct {
	// AccentFont reports whether the word's reported font marks it as
	// set in the source's highlight color. hOCR does not carry fill
	// color, so the cue is typographic; nil leaves runs un-accented.
	AccentFont func(fontName string) bool

	// DefaultFontSize is used when a word carries no x_fsize property.
	DefaultFontSize float64
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{DefaultFontSize: 10}
}

// Parse converts raw hOCR data into TextRuns. Word Y coordinates are
// already top-down; pages after the first are shifted by the running
// sum of page heights so cross-page ordering stays monotonic.
func Parse(data []byte, cfg Config) ([]model.TextRun, error) {
	decoded, err := decode(data)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(string(decoded)))
	if err != nil {
		return nil, fmt.Errorf("parse hocr: %w", err)
	}

	var runs []model.TextRun
	page := 0
	offset := 0.0

	var walkPages func(*html.Node)
	walkPages = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
			runs = append(runs, pageRuns(n, cfg, page, offset)...)
			if box := boundingBox(n); box != nil {
				offset += box.Height
			}
			page++
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkPages(c)
		}
	}
	walkPages(doc)

	if page == 0 {
		return nil, fmt.Errorf("no ocr_page elements found")
	}
	return runs, nil
}

// decode converts the document to UTF-8 when its meta charset names a
// legacy encoding. Central European songbook scans commonly declare
// windows-1250.
func decode(data []byte) ([]byte, error) {
	content := strings.ToLower(string(data))
	switch {
	case strings.Contains(content, "charset=windows-1250"):
		out, err := charmap.Windows1250.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode windows-1250: %w", err)
		}
		return out, nil
	case strings.Contains(content, "charset=iso-8859-1"):
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode iso-8859-1: %w", err)
		}
		return out, nil
	default:
		return data, nil
	}
}

// pageRuns collects every ocrx_word under the page node.
func pageRuns(pageNode *html.Node, cfg Config, page int, yOffset float64) []model.TextRun {
	var runs []model.TextRun

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
			if run, ok := wordRun(n, cfg, page, yOffset); ok {
				runs = append(runs, run)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(pageNode)

	return runs
}

// wordRun builds one TextRun from an ocrx_word element.
func wordRun(n *html.Node, cfg Config, page int, yOffset float64) (model.TextRun, bool) {
	box := boundingBox(n)
	text := strings.TrimSpace(nodeText(n))
	if box == nil || text == "" {
		return model.TextRun{}, false
	}

	props := parseTitle(attr(n, "title"))
	size := cfg.DefaultFontSize
	if v, ok := props["x_fsize"]; ok && len(v) > 0 {
		if f, err := strconv.ParseFloat(v[0], 64); err == nil && f > 0 {
			size = f
		}
	}
	fontName := ""
	if v, ok := props["x_font"]; ok && len(v) > 0 {
		fontName = v[0]
	}

	return model.TextRun{
		Text:     text,
		BBox:     model.NewBBox(box.Left(), box.Top()+yOffset, box.Width, box.Height),
		FontName: fontName,
		FontSize: size,
		Accent:   cfg.AccentFont != nil && cfg.AccentFont(fontName),
		Page:     page,
	}, true
}

// parseTitle breaks an hOCR title attribute into its properties, for
// example "bbox 100 200 300 400; x_wconf 95".
func parseTitle(title string) map[string][]string {
	props := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) > 0 {
			props[fields[0]] = fields[1:]
		}
	}
	return props
}

// boundingBox reads the node's bbox property as x1 y1 x2 y2.
func boundingBox(n *html.Node) *model.BBox {
	v, ok := parseTitle(attr(n, "title"))["bbox"]
	if !ok || len(v) < 4 {
		return nil
	}
	x1, err1 := strconv.ParseFloat(v[0], 64)
	y1, err2 := strconv.ParseFloat(v[1], 64)
	x2, err3 := strconv.ParseFloat(v[2], 64)
	y2, err4 := strconv.ParseFloat(v[3], 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return nil
	}
	box := model.NewBBox(x1, y1, x2-x1, y2-y1)
	return &box
}

func hasClass(n *html.Node, class string) bool {
	return strings.Contains(attr(n, "class"), class)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
