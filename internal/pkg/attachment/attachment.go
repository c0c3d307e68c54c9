package attachment

import (
	"net/url"
	"path"
	"strings"
)

// Category is the preview class of an attachment URL
type Category string

const (
	Image        Category = "image"
	PDF          Category = "pdf"
	Document     Category = "document"
	Spreadsheet  Category = "spreadsheet"
	Presentation Category = "presentation"
	Unknown      Category = "unknown"
)

// Surface is how an attachment is previewed
type Surface string

const (
	SurfaceInline   Surface = "inline_image"
	SurfaceEmbedded Surface = "embedded_viewer"
	SurfaceDownload Surface = "download_only"
)

// table is checked in order; the first category listing the extension wins.
// pdf has its own row and is not a document type, so .pdf always opens in
// the pdf viewer. The legacy approver page listed pdf under documents too,
// which made its pdf branch unreachable.
var table = []struct {
	category   Category
	extensions []string
}{
	{Image, []string{"jpg", "jpeg", "png", "gif", "bmp", "webp"}},
	{PDF, []string{"pdf"}},
	{Document, []string{"doc", "docx", "txt", "rtf"}},
	{Spreadsheet, []string{"xls", "xlsx", "csv"}},
	{Presentation, []string{"ppt", "pptx"}},
}

var icons = map[Category]string{
	Image:        "🖼️",
	PDF:          "📄",
	Document:     "📝",
	Spreadsheet:  "📊",
	Presentation: "📑",
	Unknown:      "📎",
}

// Classify returns the category of rawURL from its trailing file extension.
// Matching is case-insensitive; anything without a known extension is Unknown.
// It never touches the network.
func Classify(rawURL string) Category {
	ext := extension(rawURL)
	if ext == "" {
		return Unknown
	}
	for _, row := range table {
		for _, e := range row.extensions {
			if e == ext {
				return row.category
			}
		}
	}
	return Unknown
}

// Icon returns the glyph shown next to the attachment
func Icon(rawURL string) string {
	return icons[Classify(rawURL)]
}

// FileName returns the last path segment, or "Unknown File"
func FileName(rawURL string) string {
	name := lastSegment(rawURL)
	if name == "" {
		return "Unknown File"
	}
	return name
}

// PreviewSurface picks inline image, embedded viewer or download-only
func PreviewSurface(c Category) Surface {
	switch c {
	case Image:
		return SurfaceInline
	case PDF, Document, Spreadsheet, Presentation:
		return SurfaceEmbedded
	default:
		return SurfaceDownload
	}
}

// Preview describes how one attachment is rendered
type Preview struct {
	URL      string   `json:"url"`
	FileName string   `json:"file_name"`
	Category Category `json:"category"`
	Icon     string   `json:"icon"`
	Surface  Surface  `json:"surface"`
}

// Describe builds the preview descriptor for rawURL
func Describe(rawURL string) Preview {
	c := Classify(rawURL)
	return Preview{
		URL:      rawURL,
		FileName: FileName(rawURL),
		Category: c,
		Icon:     icons[c],
		Surface:  PreviewSurface(c),
	}
}

// DescribeAll builds descriptors for every URL, preserving order
func DescribeAll(urls []string) []Preview {
	out := make([]Preview, 0, len(urls))
	for _, u := range urls {
		out = append(out, Describe(u))
	}
	return out
}

func extension(rawURL string) string {
	name := lastSegment(rawURL)
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// lastSegment strips query and fragment and returns the final path element
func lastSegment(rawURL string) string {
	s := strings.TrimSpace(rawURL)
	if s == "" {
		return ""
	}
	if u, err := url.Parse(s); err == nil && u.Path != "" {
		s = u.Path
	} else if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if s == "" || strings.HasSuffix(s, "/") {
		return ""
	}
	return path.Base("/" + s)
}
