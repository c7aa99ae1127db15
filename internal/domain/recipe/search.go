package recipe

import (
	"sort"
	"strings"
)

// SortOption orders a recipe listing.
type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortOldest    SortOption = "oldest"
	SortTitleAsc  SortOption = "title-asc"
	SortTitleDesc SortOption = "title-desc"
	SortRating    SortOption = "rating"
)

// Filters narrows a saved-recipe listing. Zero values mean "no constraint".
type Filters struct {
	SearchTerm    string
	Tags          []string
	FlavorProfile Vibe
	Dietary       []string
	FavoriteOnly  bool
	Collection    string
	Difficulty    DifficultyLevel
	MinRating     int
}

// Search matches recipes whose title, description, ingredients, or tags
// contain the search term, case-insensitively.
func Search(recipes []MixRecipe, term string) []MixRecipe {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return recipes
	}
	out := make([]MixRecipe, 0, len(recipes))
	for _, r := range recipes {
		if matchesTerm(&r, term) {
			out = append(out, r)
		}
	}
	return out
}

func matchesTerm(r *MixRecipe, term string) bool {
	if strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Description), term) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), term) {
			return true
		}
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Filter applies all set criteria.
func Filter(recipes []MixRecipe, f Filters) []MixRecipe {
	out := Search(recipes, f.SearchTerm)
	keep := out[:0:0]
	for _, r := range out {
		if matchesFilters(&r, f) {
			keep = append(keep, r)
		}
	}
	return keep
}

func matchesFilters(r *MixRecipe, f Filters) bool {
	for _, tag := range f.Tags {
		if !r.HasTag(tag) {
			return false
		}
	}
	if f.FlavorProfile != "" {
		if r.Preferences == nil || r.Preferences.Vibe != f.FlavorProfile {
			return false
		}
	}
	if len(f.Dietary) > 0 {
		if r.Preferences == nil || !containsAny(r.Preferences.Dietary, f.Dietary) {
			return false
		}
	}
	if f.FavoriteOnly && !r.IsFavorite {
		return false
	}
	if f.Collection != "" && r.Collection != f.Collection {
		return false
	}
	if f.Difficulty != "" && r.Difficulty != f.Difficulty {
		return false
	}
	if f.MinRating > 0 && r.Rating < f.MinRating {
		return false
	}
	return true
}

func containsAny(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// Sort returns a sorted copy; the input slice is not reordered.
func Sort(recipes []MixRecipe, by SortOption) []MixRecipe {
	out := append([]MixRecipe(nil), recipes...)
	switch by {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	case SortTitleAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case SortTitleDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title > out[j].Title })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	}
	return out
}
