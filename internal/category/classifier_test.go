package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finla-app/finla/internal/category"
)

func TestClassify(t *testing.T) {
	type testCase struct {
		name        string
		description string
		want        category.Category
	}

	tests := []testCase{
		{name: "FoodEnglish", description: "lunch at hotel", want: category.Food},
		{name: "FoodDelivery", description: "Swiggy order #4821", want: category.Food},
		{name: "FoodTamil", description: "saapadu with friends", want: category.Food},
		{name: "TransportTamil", description: "vandi petrol", want: category.Transport},
		{name: "SnacksTamil", description: "kaapi near office", want: category.Snacks},
		{name: "EntertainmentTamil", description: "padam tickets", want: category.Entertainment},
		{name: "HealthTamil", description: "marundhu for amma", want: category.Health},
		{name: "PersonalTamil", description: "mudi cut", want: category.Personal},
		{name: "Bills", description: "Jio recharge", want: category.Bills},
		{name: "Shopping", description: "amazon order", want: category.Shopping},
		{name: "CaseInsensitive", description: "LUNCH AT HOTEL", want: category.Food},
		{name: "UPIPrefixStripped", description: "UPI-SWIGGY-1234", want: category.Food},
		{name: "PaidToPrefix", description: "Paid to Apollo Pharmacy", want: category.Health},
		{name: "PunctuationNoise", description: "lunch@hotel!!!", want: category.Food},
		{name: "NoMatch", description: "miscellaneous thing", want: category.Others},
		{name: "Empty", description: "", want: category.Others},
		{name: "Whitespace", description: "   ", want: category.Others},
	}

	c := category.NewDefaultClassifier()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.description))
		})
	}
}

// "hotel food order" could match food or shopping; food's rule comes
// first, so food wins regardless of keyword position in the text.
func TestClassifyPriorityOrder(t *testing.T) {
	c := category.NewDefaultClassifier()

	assert.Equal(t, category.Food, c.Classify("ordered food from the store"))
	assert.Equal(t, category.Transport, c.Classify("bus ticket booking fee"))
}

func TestClassifyDeterministic(t *testing.T) {
	c := category.NewDefaultClassifier()

	first := c.Classify("dinner and movie night")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify("dinner and movie night"))
	}
}

func TestClassifyEmptyRuleTable(t *testing.T) {
	c := category.NewClassifier(nil)

	assert.Equal(t, category.Others, c.Classify("lunch at hotel"))
}

func TestValid(t *testing.T) {
	for _, cat := range category.All {
		assert.True(t, cat.Valid(), "category %q", cat)
	}

	assert.False(t, category.Category("groceries").Valid())
	assert.False(t, category.Category("").Valid())
}

func TestBucketFor(t *testing.T) {
	type testCase struct {
		cat  category.Category
		want category.Bucket
	}

	tests := []testCase{
		{category.Food, category.Needs},
		{category.Transport, category.Needs},
		{category.Education, category.Needs},
		{category.Health, category.Needs},
		{category.Bills, category.Needs},
		{category.Snacks, category.Wants},
		{category.Shopping, category.Wants},
		{category.Entertainment, category.Wants},
		{category.Personal, category.Wants},
		{category.Others, category.Wants},
		{category.Category("unknown"), category.Wants},
	}

	for _, tt := range tests {
		t.Run(string(tt.cat), func(t *testing.T) {
			assert.Equal(t, tt.want, category.BucketFor(tt.cat))
		})
	}
}
