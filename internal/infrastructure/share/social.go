package share

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/mixmas/v2/internal/domain/recipe"
)

var (
	measurementPrefix = regexp.MustCompile(`(?i)^[\d./\-\s]+(cup|cups|tbsp|tsp|tablespoon|teaspoon|oz|ounce|lb|pound|stick|box|bag|package|can|jar)s?\.?\s+`)
	parenthetical     = regexp.MustCompile(`\(.*?\)`)
)

// TwitterURL builds a tweet-intent link for the recipe.
func (c *Codec) TwitterURL(r recipe.MixRecipe) string {
	text := fmt.Sprintf("Check out this amazing recipe: %s", r.Title)
	return fmt.Sprintf("https://twitter.com/intent/tweet?text=%s&url=%s",
		url.QueryEscape(text), url.QueryEscape(c.Encode(r)))
}

// FacebookURL builds a share link for the recipe.
func (c *Codec) FacebookURL(r recipe.MixRecipe) string {
	return fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s",
		url.QueryEscape(c.Encode(r)))
}

// PinterestURL builds a pin-creation link for the recipe.
func (c *Codec) PinterestURL(r recipe.MixRecipe) string {
	description := fmt.Sprintf("%s - %s", r.Title, r.Description)
	return fmt.Sprintf("https://pinterest.com/pin/create/button/?url=%s&description=%s",
		url.QueryEscape(c.Encode(r)), url.QueryEscape(description))
}

// ExtractIngredientNames strips measurements and parentheticals from the
// first limit ingredient lines, leaving bare names for search queries.
func ExtractIngredientNames(ingredients []string, limit int) []string {
	if limit <= 0 || limit > len(ingredients) {
		limit = len(ingredients)
	}
	names := make([]string, 0, limit)
	for _, line := range ingredients[:limit] {
		name := measurementPrefix.ReplaceAllString(line, "")
		name = parenthetical.ReplaceAllString(name, "")
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// AmazonSearchURL builds a shopping search link from ingredient names.
func AmazonSearchURL(ingredientNames []string) string {
	return fmt.Sprintf("https://www.amazon.com/s?k=%s",
		url.QueryEscape(strings.Join(ingredientNames, " ")))
}
