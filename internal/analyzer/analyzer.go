// Package analyzer turns free-text complaint descriptions into structured
// analysis results using the rule catalogs. All extraction is best-effort:
// malformed or unmatched input degrades to absent fields, never to errors.
package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/scamshield/railshield/internal/catalog"
	"github.com/scamshield/railshield/internal/models"
)

var (
	// Currency marker followed by a decimal number: "₹50", "Rs. 20", "inr 15.50".
	pricePattern = regexp.MustCompile(`(?i)(?:₹|rs\.?|inr)\s*(\d+(?:\.\d+)?)`)
	// Fallback: number followed by a currency word, "50 rupees", "20 bucks".
	priceFallbackPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:rupees|bucks)`)
)

// defaultSummary is returned for empty or whitespace-only descriptions.
const defaultSummary = "Passenger reports an onboard issue."

// Analyzer classifies complaint descriptions and extracts entities.
type Analyzer struct{}

// New creates a new Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze classifies the description and extracts item, price and train
// entities, cross-referencing the train schedule and the IRCTC menu.
// trainNo and itemName are optional hints from the reporter; the item hint
// is used verbatim only when no known item appears in the text.
func (a *Analyzer) Analyze(description, trainNo, itemName string) *models.AnalysisResult {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return &models.AnalysisResult{
			Summary:  defaultSummary,
			Entities: map[string]interface{}{},
			Category: catalog.CategoryOther,
		}
	}

	lower := strings.ToLower(trimmed)
	category := detectCategory(lower)

	item, extracted := extractItem(lower)
	if !extracted && itemName != "" {
		item = itemName
	}

	price, priceFound := extractPrice(trimmed)

	result := &models.AnalysisResult{
		Category: category,
		Entities: map[string]interface{}{},
	}

	if item != "" {
		result.Entities["itemName"] = item
	}
	if priceFound {
		result.Entities["price"] = price
	}

	if trainNo != "" {
		info := catalog.LookupTrain(trainNo)
		result.TrainInfo = &info
		result.Entities["trainInfo"] = info
	}

	if item != "" {
		if menu := catalog.LookupMenuItem(item); menu != nil {
			result.IRCTCPrice = &menu.Price
			result.IRCTCPriceDetails = menu
			result.Entities["irctcPrice"] = menu.Price
			result.Entities["irctcPriceDetails"] = *menu
		}
	}

	result.Summary = buildSummary(trimmed, category, item, price, priceFound, result.IRCTCPriceDetails)

	log.Debug().
		Str("category", category).
		Int("entities", len(result.Entities)).
		Msg("Description analyzed")

	return result
}

// detectCategory scans the category rules in order and returns the first
// category with a matching pattern, or Other.
func detectCategory(lower string) string {
	for _, rule := range catalog.CategoryRules {
		for _, pattern := range rule.Patterns {
			if pattern.MatchString(lower) {
				return rule.Category
			}
		}
	}
	return catalog.CategoryOther
}

// extractItem returns the first known item phrase contained in the text,
// rendered in title case. The second return reports whether one was found.
func extractItem(lower string) (string, bool) {
	for _, item := range catalog.KnownItems {
		if strings.Contains(lower, item) {
			return titleCase(item), true
		}
	}
	return "", false
}

// extractPrice returns the first price mentioned in the text. The currency
// prefixed pattern is tried before the currency-word suffix fallback; a
// number that fails to parse yields no price rather than an error.
func extractPrice(text string) (float64, bool) {
	match := pricePattern.FindStringSubmatch(text)
	if match == nil {
		match = priceFallbackPattern.FindStringSubmatch(text)
	}
	if match == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// buildSummary renders the deterministic one-line summary followed by the
// first 100 characters of the description. The ellipsis is always appended,
// even when the description is shorter than the window.
func buildSummary(description, category, item string, price float64, priceFound bool, menu *models.MenuItem) string {
	var b strings.Builder
	b.WriteString("Passenger reports ")
	b.WriteString(strings.ToLower(category))
	b.WriteString(" issue")

	if item != "" {
		b.WriteString(" with ")
		b.WriteString(strings.ToLower(item))
	}
	if priceFound {
		b.WriteString(", charged ₹")
		b.WriteString(formatPrice(price))
	}
	if priceFound && menu != nil && price > menu.Price {
		b.WriteString(fmt.Sprintf(" (₹%s over IRCTC price)", formatPrice(price-menu.Price)))
	}

	b.WriteString(". ")
	runes := []rune(description)
	if len(runes) > 100 {
		runes = runes[:100]
	}
	b.WriteString(string(runes))
	b.WriteString("...")

	return b.String()
}

// formatPrice renders a price without trailing zeros: 50 not 50.00.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
