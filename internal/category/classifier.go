package category

import (
	"strings"
	"unicode"
)

// Rule binds one category to its keyword list. Rules are evaluated in
// slice order and the first keyword hit wins, so the list order is the
// priority contract: overlapping keywords across categories resolve by
// position, not specificity.
type Rule struct {
	Category Category
	Keywords []string
}

// DefaultRules returns the built-in rule table. Keyword sets merge English
// and transliterated Tamil terms into the same list.
func DefaultRules() []Rule {
	return []Rule{
		{Food, []string{
			"lunch", "dinner", "breakfast", "meal", "restaurant", "hotel",
			"biryani", "pizza", "burger", "food", "cafe", "dhaba", "mess",
			"canteen", "zomato", "swiggy", "mcdonalds", "kfc", "dominos",
			"tiffin", "parotta", "dosa", "idli", "samosa", "chaat",
			"saapadu", "sapadu", "saptu", "virundhu",
		}},
		{Transport, []string{
			"bus", "auto", "taxi", "uber", "ola", "metro", "train", "fuel",
			"petrol", "diesel", "travel", "railway", "flight", "cab",
			"rickshaw", "parking", "toll", "irctc", "redbus", "vandi",
			"bandi", "payanam",
		}},
		{Education, []string{
			"book", "course", "fee", "tuition", "exam", "college", "school",
			"academy", "coaching", "certification", "library", "stationery",
			"notebook", "xerox", "photocopy", "udemy", "coursera",
			"unacademy", "padippu", "puthagam",
		}},
		{Snacks, []string{
			"tea", "coffee", "snack", "juice", "biscuit", "chips",
			"chocolate", "ice cream", "cold drink", "lassi", "shake",
			"bakery", "pastry", "cake", "sweet", "nimbu pani", "chai",
			"kaapi", "bajji", "murukku", "vadai",
		}},
		{Shopping, []string{
			"shopping", "mall", "store", "amazon", "flipkart", "myntra",
			"ajio", "shirt", "clothes", "shoes", "bag", "mobile", "laptop",
			"electronics", "grocery", "supermarket", "market", "purchase",
			"order", "thuni", "kadai",
		}},
		{Entertainment, []string{
			"movie", "cinema", "theatre", "film", "concert", "game",
			"gaming", "music", "netflix", "prime", "hotstar", "spotify",
			"party", "festival", "event", "padam",
		}},
		{Health, []string{
			"medicine", "doctor", "hospital", "clinic", "pharmacy",
			"medical", "checkup", "treatment", "dental", "prescription",
			"tablet", "injection", "scan", "apollo", "marundhu",
		}},
		{Bills, []string{
			"electricity", "water bill", "gas", "internet", "phone", "bill",
			"recharge", "broadband", "wifi", "airtel", "jio", "bsnl",
			"vodafone", "maintenance", "rent", "emi",
		}},
		{Personal, []string{
			"haircut", "salon", "parlour", "spa", "grooming", "cosmetics",
			"shampoo", "soap", "toothpaste", "hygiene", "skincare",
			"makeup", "mudi",
		}},
	}
}

// Classifier maps descriptions to categories via an ordered rule table.
// The zero rule table classifies everything as Others.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a classifier over the given rules. Rules keep the
// order they were given in.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// NewDefaultClassifier builds a classifier over DefaultRules.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultRules())
}

// Classify resolves a description to a category. It never fails: blank or
// unmatched descriptions resolve to Others.
func (c *Classifier) Classify(description string) Category {
	clean := normalize(description)
	if clean == "" {
		return Others
	}

	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(clean, kw) {
				return rule.Category
			}
		}
	}

	return Others
}

// upiPrefixes are payment-app artifacts that precede the merchant text in
// UPI statement lines.
var upiPrefixes = []string{"upi-", "paytm-", "gpay-", "phonepe-", "payment to ", "paid to "}

// normalize lower-cases and trims a description, strips known UPI
// prefixes and squeezes punctuation to spaces.
func normalize(description string) string {
	clean := strings.ToLower(strings.TrimSpace(description))

	for _, prefix := range upiPrefixes {
		if strings.HasPrefix(clean, prefix) {
			clean = strings.TrimSpace(strings.TrimPrefix(clean, prefix))
		}
	}

	var b strings.Builder

	b.Grow(len(clean))

	for _, r := range clean {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
