package field

import "strings"

// typeSet is one exact-membership tier entry.
type typeSet struct {
	category Category
	ids      map[string]bool
}

func set(c Category, ids ...string) typeSet {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return typeSet{category: c, ids: m}
}

// exactSets is evaluated in order; the first set containing the id wins.
// Address and rank come before text and number because their legacy type
// strings would otherwise collide with the generic heuristics.
var exactSets = []typeSet{
	set(CategoryAddress, "address", "location", "postal_address", "mailing_address"),
	set(CategoryRank, "rank", "ranking", "priority_rank", "ranked_choice"),
	set(CategoryLayout, "heading", "section_header", "divider", "paragraph", "spacer", "static_text", "page_break"),
	set(CategoryText, "text", "short_text", "long_text", "textarea", "rich_text", "string", "single_line_text", "multi_line_text", "name", "markdown", "barcode"),
	set(CategoryNumber, "number", "integer", "decimal", "float", "currency", "percent", "percentage", "rating", "duration", "autonumber", "auto_number"),
	set(CategorySelect, "select", "single_select", "multi_select", "multiselect", "dropdown", "radio", "checkbox_group", "tags", "status", "enum", "choice"),
	set(CategoryDate, "date", "datetime", "date_time", "time", "date_range", "created_time", "last_modified_time", "created_at", "updated_at", "timestamp"),
	set(CategoryCheckbox, "checkbox", "boolean", "bool", "toggle", "switch", "yes_no"),
	set(CategoryFile, "file", "files", "attachment", "attachments", "image", "upload", "document"),
	set(CategoryLink, "url", "email", "phone", "phone_number", "link", "website"),
	set(CategoryLookup, "lookup", "link_to_table", "linked_record", "linked_records", "relation", "reference", "foreign_key", "user", "collaborator"),
	set(CategoryRollup, "rollup", "count", "aggregate"),
	set(CategoryFormula, "formula", "computed", "calculated"),
	set(CategoryRepeater, "repeater", "repeating_group", "repeatable", "list", "array"),
	set(CategoryGroup, "group", "section", "fieldset", "object", "composite"),
	set(CategoryRecommendation, "recommendation", "recommendations", "suggestions"),
}

// keywordRule is one heuristic tier entry.
type keywordRule struct {
	category Category
	keywords []string
}

// keywordRules mirrors the order of exactSets.
var keywordRules = []keywordRule{
	{CategoryAddress, []string{"address"}},
	{CategoryRank, []string{"rank"}},
	{CategoryLayout, []string{"heading", "divider", "paragraph", "spacer", "layout"}},
	{CategoryText, []string{"text"}},
	{CategoryNumber, []string{"number", "integer", "decimal", "currency", "percent", "amount", "rating"}},
	{CategorySelect, []string{"select", "dropdown", "choice", "option"}},
	{CategoryDate, []string{"date", "time"}},
	{CategoryCheckbox, []string{"check", "bool", "toggle"}},
	{CategoryFile, []string{"file", "attach", "image", "upload"}},
	{CategoryLink, []string{"url", "email", "phone", "link"}},
	{CategoryLookup, []string{"lookup", "relation", "reference"}},
	{CategoryRollup, []string{"rollup", "aggregate"}},
	{CategoryFormula, []string{"formula", "computed"}},
	{CategoryRepeater, []string{"repeat"}},
	{CategoryGroup, []string{"group", "section"}},
	{CategoryRecommendation, []string{"recommend"}},
}

func normalize(typeID string) string {
	return strings.ToLower(strings.TrimSpace(typeID))
}

// ClassifyExact returns the category whose exact type set holds typeID
// (compared case-insensitively), or CategoryUnknown.
func ClassifyExact(typeID string) Category {
	id := normalize(typeID)
	for _, s := range exactSets {
		if s.ids[id] {
			return s.category
		}
	}
	return CategoryUnknown
}

// ClassifyHeuristic tests keyword containment on the lowercased id, or
// returns CategoryUnknown.
func ClassifyHeuristic(typeID string) Category {
	id := normalize(typeID)
	if id == "" {
		return CategoryUnknown
	}
	for _, r := range keywordRules {
		for _, kw := range r.keywords {
			if strings.Contains(id, kw) {
				return r.category
			}
		}
	}
	return CategoryUnknown
}

// Classify maps a type id to its category: exact membership first, then
// the keyword heuristic. It is a pure function of the id.
func Classify(typeID string) Category {
	if c := ClassifyExact(typeID); c != CategoryUnknown {
		return c
	}
	return ClassifyHeuristic(typeID)
}

// KnownTypeIDs lists every id of the exact tier, grouped by category in
// dispatch order.
func KnownTypeIDs() map[Category][]string {
	out := make(map[Category][]string, len(exactSets))
	for _, s := range exactSets {
		for id := range s.ids {
			out[s.category] = append(out[s.category], id)
		}
	}
	return out
}

// TypeIs reports whether the normalized type id is one of ids.
func TypeIs(typeID string, ids ...string) bool {
	id := normalize(typeID)
	for _, want := range ids {
		if id == want {
			return true
		}
	}
	return false
}

// TypeContains reports whether the normalized type id contains any keyword.
func TypeContains(typeID string, keywords ...string) bool {
	id := normalize(typeID)
	for _, kw := range keywords {
		if strings.Contains(id, kw) {
			return true
		}
	}
	return false
}
