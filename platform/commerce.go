package platform

import (
	"regexp"

	"github.com/fwojciec/pinmark"
)

var _ pinmark.Strategy = (*Commerce)(nil)

var amazonASIN = regexp.MustCompile(`/(?:dp|gp/product)/([A-Z0-9]{10})`)

// Commerce extracts product pages of online shops.
type Commerce struct {
	family
}

// NewCommerce creates a new Commerce strategy.
func NewCommerce() *Commerce {
	return &Commerce{family{
		name:  "commerce",
		label: "Shop",
		icon:  "🛒",
		sites: []site{
			{match: "amazon.", name: "Amazon", tag: "amazon", icon: "📦"},
			{match: "ebay.", name: "eBay", tag: "ebay", icon: "🛍️"},
			{match: "etsy.com", name: "Etsy", tag: "etsy", icon: "🧶"},
			{match: "aliexpress.", name: "AliExpress", tag: "aliexpress", icon: "🛒"},
			{match: "walmart.com", name: "Walmart", tag: "walmart", icon: "🛒"},
			{match: "bestbuy.com", name: "Best Buy", tag: "bestbuy", icon: "🛒"},
		},
	}}
}

// Extract returns the product with its price prepended to the description.
func (s *Commerce) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	d := s.baseline(page)
	entries := JSONLDEntries(jsonLDBlocks(page))
	product := jsonLDOfType(entries, "Product")

	d.Title = firstNonEmpty(
		firstText(page, "#productTitle", "h1.x-item-title__mainTitle", `h1[data-buy-box-listing-title]`),
		jsonText(product["name"]),
		d.Title,
	)
	d.Title = trimPrefixes(d.Title, "Amazon.com: ", "Amazon.co.uk: ", "Amazon.de: ")
	d.Title = trimSuffixes(d.Title, " | eBay", " - Etsy", " | Etsy", " - Walmart.com", " - Best Buy")

	d.Description = firstNonEmpty(d.Description, jsonText(product["description"]))
	d.Description = joinNonEmpty(" · ", productPrice(page, product), d.Description)

	d.Thumbnail = firstNonEmpty(
		d.Thumbnail,
		jsonImage(product["image"]),
		firstAttr(page, "#landingImage", "data-old-hires", "src"),
	)

	if m := amazonASIN.FindStringSubmatch(page.URL()); m != nil {
		d.URL = "https://" + page.Hostname() + "/dp/" + m[1]
	}

	brand := firstNonEmpty(page.Meta("product:brand"), jsonText(product["brand"]))
	d.Tags = append(d.Tags, "product")
	if tag := TagOf(brand); tag != "" {
		d.Tags = append(d.Tags, tag)
	}
	return pinmark.NewExtractionResult(d)
}

// productPrice reads the price from product meta, structured data or the
// shops' price markup.
func productPrice(page pinmark.PageContext, product map[string]any) string {
	if amount := metaFirst(page, "product:price:amount", "og:price:amount"); amount != "" {
		return joinNonEmpty(" ", amount, metaFirst(page, "product:price:currency", "og:price:currency"))
	}
	offers := jsonPath(product, "offers")
	if list, ok := offers.([]any); ok && len(list) > 0 {
		offers = list[0]
	}
	if price := jsonText(jsonPath(offers, "price")); price != "" {
		return joinNonEmpty(" ", price, jsonText(jsonPath(offers, "priceCurrency")))
	}
	if price := page.Find(`[itemprop="price"]`).Attr("content"); price != "" {
		return price
	}
	return firstText(page,
		"#corePrice_feature_div .a-offscreen",
		".a-price .a-offscreen",
		".x-price-primary span",
		`[data-testid="price-wrap"] [itemprop="price"]`,
		`[data-selenium="price"]`,
	)
}
