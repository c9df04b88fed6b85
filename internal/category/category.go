// Package category classifies free-text transaction descriptions into the
// fixed budget categories and maps each category to its 50/30/20 bucket.
package category

// Category is one of the fixed transaction categories.
type Category string

const (
	Food          Category = "food"
	Transport     Category = "transport"
	Education     Category = "education"
	Snacks        Category = "snacks"
	Shopping      Category = "shopping"
	Entertainment Category = "entertainment"
	Health        Category = "health"
	Bills         Category = "bills"
	Personal      Category = "personal"
	Others        Category = "others"
)

// All lists every category in classification priority order.
var All = []Category{
	Food, Transport, Education, Snacks, Shopping,
	Entertainment, Health, Bills, Personal, Others,
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	for _, k := range All {
		if c == k {
			return true
		}
	}

	return false
}

// Bucket is a 50/30/20 budget bucket.
type Bucket string

const (
	Needs   Bucket = "needs"
	Wants   Bucket = "wants"
	Savings Bucket = "savings"
)

// buckets statically maps every category to its budget bucket. Goal
// deposits are attributed to Savings by the ledger, not through a category.
var buckets = map[Category]Bucket{
	Food:          Needs,
	Transport:     Needs,
	Education:     Needs,
	Health:        Needs,
	Bills:         Needs,
	Snacks:        Wants,
	Shopping:      Wants,
	Entertainment: Wants,
	Personal:      Wants,
	Others:        Wants,
}

// BucketFor returns the budget bucket for a category. Unknown categories
// fall back to Wants, same as Others.
func BucketFor(c Category) Bucket {
	if b, ok := buckets[c]; ok {
		return b
	}

	return Wants
}
