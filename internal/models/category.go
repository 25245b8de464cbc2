package models

import "strings"

// Category is the closed set of section classifications. The authoring tool
// emits open-ended display-bracketed labels; ParseCategory maps every label
// to exactly one variant so dispatch is total instead of falling through
// string-prefix checks.
type Category int

const (
	CategoryOther Category = iota // unrecognized labels
	CategoryTheory
	CategoryStory
	CategoryMethod
	CategoryFact
)

// categoryKeywords are the label fragments the authoring tool uses. A label
// containing either fragment of a pair maps to that variant.
var categoryKeywords = []struct {
	category Category
	words    [2]string
}{
	{CategoryTheory, [2]string{"观点", "理念"}},
	{CategoryStory, [2]string{"故事", "案例"}},
	{CategoryMethod, [2]string{"方法", "干货"}},
	{CategoryFact, [2]string{"资讯", "事实"}},
}

// ParseCategory maps a raw category label to its variant. Accepts the
// display-bracketed Chinese labels ("【观点/理念】") and the English slugs
// ("theory", "story", "method", "fact"). Anything else is CategoryOther.
func ParseCategory(label string) Category {
	for _, k := range categoryKeywords {
		if strings.Contains(label, k.words[0]) || strings.Contains(label, k.words[1]) {
			return k.category
		}
	}
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "theory":
		return CategoryTheory
	case "story":
		return CategoryStory
	case "method":
		return CategoryMethod
	case "fact":
		return CategoryFact
	}
	return CategoryOther
}

// Label returns the English display label
func (c Category) Label() string {
	switch c {
	case CategoryTheory:
		return "Theory"
	case CategoryStory:
		return "Story"
	case CategoryMethod:
		return "Method"
	case CategoryFact:
		return "Fact"
	}
	return "Other"
}

// Color returns the UI accent color name for the category
func (c Category) Color() string {
	switch c {
	case CategoryTheory:
		return "blue"
	case CategoryStory:
		return "purple"
	case CategoryMethod:
		return "green"
	case CategoryFact:
		return "orange"
	}
	return "slate"
}

// DisplayLabel strips the CJK brackets from a raw category label for card
// badges, e.g. "【观点/理念】" -> "观点/理念".
func DisplayLabel(raw string) string {
	return strings.NewReplacer("【", "", "】", "").Replace(raw)
}
