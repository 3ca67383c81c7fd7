// Package classification assigns spending categories to transactions using a
// priority-ordered keyword table.
package classification

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/Veraticus/statement-roast/internal/model"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Rule lists the keywords that select a category.
//
// A keyword containing '*' is a wildcard where '*' stands for any run of
// characters. A keyword starting with '^' only matches at the start of the
// description. Any other keyword matches anywhere. A description containing
// one of the Exclude tokens never selects the rule.
type Rule struct {
	Category model.Category
	Keywords []string
	Exclude  []string
}

type keyword struct {
	compiledRegex *regexp.Regexp
	text          string
	anchored      bool
}

func (k keyword) matches(description string) bool {
	switch {
	case k.compiledRegex != nil:
		return k.compiledRegex.MatchString(description)
	case k.anchored:
		return strings.HasPrefix(description, k.text)
	default:
		return strings.Contains(description, k.text)
	}
}

type compiledRule struct {
	category model.Category
	keywords []keyword
	exclude  []string
}

func (r compiledRule) matches(description string) bool {
	for _, token := range r.exclude {
		if strings.Contains(description, token) {
			return false
		}
	}
	for _, k := range r.keywords {
		if k.matches(description) {
			return true
		}
	}
	return false
}

// Categorizer resolves descriptions to categories. It is immutable after
// construction and safe for concurrent use.
type Categorizer struct {
	rules []compiledRule
}

// NewCategorizer compiles rules, keeping their order as the priority order.
func NewCategorizer(rules []Rule) (*Categorizer, error) {
	compiled := make([]compiledRule, 0, len(rules))
	seen := make(map[model.Category]bool, len(rules))

	for _, rule := range rules {
		if !rule.Category.IsValid() || rule.Category == model.CategoryOther {
			return nil, fmt.Errorf("rule for %q: category cannot be matched by keywords", rule.Category)
		}
		if seen[rule.Category] {
			return nil, fmt.Errorf("duplicate rule for category %s", rule.Category)
		}
		seen[rule.Category] = true

		cr := compiledRule{category: rule.Category}
		for _, raw := range rule.Keywords {
			k, err := compileKeyword(raw)
			if err != nil {
				return nil, fmt.Errorf("failed to compile keyword %q for %s: %w", raw, rule.Category, err)
			}
			cr.keywords = append(cr.keywords, k)
		}
		for _, token := range rule.Exclude {
			if token = normalize(token); token != "" {
				cr.exclude = append(cr.exclude, token)
			}
		}
		compiled = append(compiled, cr)
	}

	return &Categorizer{rules: compiled}, nil
}

// compileKeyword keeps surrounding spaces: "^atm " must not match "atmosfera".
func compileKeyword(raw string) (keyword, error) {
	text := fold(raw)
	anchored := strings.HasPrefix(text, "^")
	text = strings.TrimPrefix(text, "^")
	if strings.TrimSpace(strings.Trim(text, "*")) == "" {
		return keyword{}, fmt.Errorf("keyword is empty")
	}

	k := keyword{text: text, anchored: anchored}
	if !strings.Contains(text, "*") {
		return k, nil
	}

	parts := strings.Split(text, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	expr := strings.Join(parts, ".*")
	if anchored {
		expr = "^" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return keyword{}, err
	}
	k.compiledRegex = re
	return k, nil
}

// fold lower-cases s and strips accents.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// normalize folds s and trims surrounding space.
func normalize(s string) string {
	return strings.TrimSpace(fold(s))
}

// Categorize returns the first category in priority order whose keywords
// match description, or model.CategoryOther.
func (c *Categorizer) Categorize(description string) model.Category {
	text := normalize(description)
	if text == "" {
		return model.CategoryOther
	}

	for _, rule := range c.rules {
		if rule.matches(text) {
			return rule.category
		}
	}
	return model.CategoryOther
}

// CategorizeAll labels every transaction, preserving input order.
func (c *Categorizer) CategorizeAll(txns []model.Transaction) []model.CategorizedTransaction {
	out := make([]model.CategorizedTransaction, len(txns))
	for i, txn := range txns {
		out[i] = model.CategorizedTransaction{
			Transaction: txn,
			Category:    c.Categorize(txn.Description),
		}
	}
	return out
}

var defaultCategorizer = mustCategorizer(DefaultRules())

func mustCategorizer(rules []Rule) *Categorizer {
	c, err := NewCategorizer(rules)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in rules: %v", err))
	}
	return c
}

// Default returns the categorizer built from DefaultRules.
func Default() *Categorizer {
	return defaultCategorizer
}

// Categorize labels description with the built-in rules.
func Categorize(description string) model.Category {
	return defaultCategorizer.Categorize(description)
}

// CategorizeAll labels txns with the built-in rules.
func CategorizeAll(txns []model.Transaction) []model.CategorizedTransaction {
	return defaultCategorizer.CategorizeAll(txns)
}
