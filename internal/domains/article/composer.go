package article

import "strings"

// SegmentKind phân loại segment khi render
type SegmentKind string

const (
	SegmentHeading    SegmentKind = "heading"
	SegmentSubheading SegmentKind = "subheading"
	SegmentParagraphs SegmentKind = "paragraphs"
	SegmentImage      SegmentKind = "image"
)

// Segment là một đơn vị render đã được compose từ block
type Segment struct {
	Kind       SegmentKind `json:"kind"`
	Text       string      `json:"text,omitempty"`
	Paragraphs []string    `json:"paragraphs,omitempty"`
	ImageURL   string      `json:"image_url,omitempty"`
	ImageAlt   string      `json:"image_alt,omitempty"`
}

// Compose chuyển block set (đã sort theo order) thành danh sách segment render được
// - title/subtitle → heading/subheading
// - text → các paragraph tách theo newline, bỏ paragraph rỗng
// - image → chỉ khi có ImageURL
// Block set rỗng → slice rỗng, caller render "no content", không phải error
func Compose(blocks []Block) []Segment {
	segments := make([]Segment, 0, len(blocks))

	for _, b := range blocks {
		switch b.Type {
		case BlockTypeTitle:
			if b.Content != nil && strings.TrimSpace(*b.Content) != "" {
				segments = append(segments, Segment{Kind: SegmentHeading, Text: strings.TrimSpace(*b.Content)})
			}
		case BlockTypeSubtitle:
			if b.Content != nil && strings.TrimSpace(*b.Content) != "" {
				segments = append(segments, Segment{Kind: SegmentSubheading, Text: strings.TrimSpace(*b.Content)})
			}
		case BlockTypeText:
			if b.Content == nil {
				continue
			}
			paragraphs := SplitParagraphs(*b.Content)
			if len(paragraphs) > 0 {
				segments = append(segments, Segment{Kind: SegmentParagraphs, Paragraphs: paragraphs})
			}
		case BlockTypeImage:
			if b.ImageURL == nil || *b.ImageURL == "" {
				continue
			}
			seg := Segment{Kind: SegmentImage, ImageURL: *b.ImageURL}
			if b.ImageAlt != nil {
				seg.ImageAlt = *b.ImageAlt
			}
			segments = append(segments, seg)
		}
	}

	return segments
}

// SplitParagraphs tách text content theo newline, trim từng dòng, bỏ dòng rỗng
func SplitParagraphs(content string) []string {
	lines := strings.Split(content, "\n")
	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

const (
	summaryLimit         = 200
	summaryEllipsis      = "..."
	NoContentPlaceholder = "No content available."
)

// Summary derive excerpt cho list view:
// - content của text block đầu tiên, cắt còn 200 ký tự + "..." nếu bị cắt
// - không có text block → fallback subtitle
// - không có gì → placeholder cố định
func Summary(a *Article) string {
	for _, b := range a.Blocks {
		if b.Type == BlockTypeText && b.Content != nil && *b.Content != "" {
			return truncate(*b.Content, summaryLimit)
		}
	}

	if a.Subtitle != nil && *a.Subtitle != "" {
		return *a.Subtitle
	}

	return NoContentPlaceholder
}

// truncate cắt theo rune để không chém đôi ký tự multi-byte
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + summaryEllipsis
}
