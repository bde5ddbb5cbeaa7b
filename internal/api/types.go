package api

// SectionType classifies an extracted content block.
type SectionType string

const (
	SectionHero    SectionType = "hero"
	SectionNav     SectionType = "nav"
	SectionFooter  SectionType = "footer"
	SectionPricing SectionType = "pricing"
	SectionFAQ     SectionType = "faq"
	SectionGrid    SectionType = "grid"
	SectionList    SectionType = "list"
	SectionGeneric SectionType = "section"
	SectionUnknown SectionType = "unknown"
)

// Strategy is the backend-reported fetch method. Descriptive only.
type Strategy string

const (
	StrategyStatic Strategy = "static"
	StrategyJS     Strategy = "js"
	StrategyHybrid Strategy = "hybrid"
	StrategyError  Strategy = "error"
)

// Link is a hyperlink extracted from a section.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Image is an image reference extracted from a section.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Content holds the structured fields extracted from a section.
type Content struct {
	Headings []string         `json:"headings"`
	Text     string           `json:"text"`
	Links    []Link           `json:"links"`
	Images   []Image          `json:"images"`
	Lists    [][]string       `json:"lists"`
	Tables   []map[string]any `json:"tables,omitempty"`
}

// Empty reports whether the content carries nothing renderable.
func (c Content) Empty() bool {
	return len(c.Headings) == 0 && c.Text == "" && len(c.Links) == 0 &&
		len(c.Images) == 0 && len(c.Lists) == 0
}

// Section is one semantically classified block of extracted page content.
type Section struct {
	ID        string      `json:"id"`
	Type      SectionType `json:"type"`
	Label     string      `json:"label"`
	SourceURL string      `json:"sourceUrl"`
	Content   Content     `json:"content"`
	RawHTML   string      `json:"rawHtml"`
	Truncated bool        `json:"truncated"`
}

// Meta holds page-level metadata reported by the backend.
type Meta struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Language         string   `json:"language"`
	Canonical        string   `json:"canonical,omitempty"`
	Strategy         Strategy `json:"strategy,omitempty"`
	Keywords         []string `json:"keywords"`
	Author           string   `json:"author"`
	Viewport         string   `json:"viewport"`
	ThemeColor       string   `json:"themeColor"`
	OgType           string   `json:"ogType"`
	ScrapeDuration   string   `json:"scrapeDuration,omitempty"`
	InteractionDepth *int     `json:"interactionDepth,omitempty"`
}

// Interaction describes the backend's simulated-interaction replay.
type Interaction struct {
	Clicks     []string `json:"clicks"`
	Scrolls    int      `json:"scrolls"`
	Pages      []string `json:"pages"`
	TotalDepth int      `json:"totalDepth"`
}

// ScrapeError is a non-fatal error reported inside a successful result.
type ScrapeError struct {
	Message   string `json:"message"`
	Phase     string `json:"phase"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Performance carries the backend's timing counters. The backend emits
// these keys in snake_case, unlike everything else in the payload.
type Performance struct {
	DurationMS       float64 `json:"duration_ms"`
	SectionsFound    int     `json:"sections_found"`
	InteractionDepth int     `json:"interaction_depth"`
	PagesVisited     int     `json:"pages_visited"`
	UniqueSections   *int    `json:"unique_sections,omitempty"`
}

// ScrapeResult is the full payload for one scraped URL. It is immutable
// after receipt; a new request replaces it wholesale.
type ScrapeResult struct {
	URL          string        `json:"url"`
	ScrapedAt    string        `json:"scrapedAt"`
	Meta         Meta          `json:"meta"`
	Sections     []Section     `json:"sections"`
	Interactions Interaction   `json:"interactions"`
	Errors       []ScrapeError `json:"errors"`
	Performance  *Performance  `json:"performance,omitempty"`
	Warnings     []string      `json:"warnings"`
}

// ScrapeResponse is the envelope returned by POST /scrape.
type ScrapeResponse struct {
	Result  *ScrapeResult `json:"result"`
	Status  string        `json:"status"`
	Message string        `json:"message,omitempty"`
}

// HealthStatus is the payload returned by GET /healthz.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}
