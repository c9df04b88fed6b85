// Package quotes serves a rotating daily dose of financial wisdom,
// Thirukkural couplets and Warren Buffett included. Selection keys on
// the calendar day so everyone asking on the same date sees the same
// quote.
package quotes

import (
	"strings"

	"github.com/finla-app/finla/internal/date"
)

// Quote is one piece of financial wisdom, bilingual when a Tamil
// rendering exists.
type Quote struct {
	Text        string `json:"text"`
	Tamil       string `json:"tamil,omitempty"`
	Author      string `json:"author"`
	Translation string `json:"translation,omitempty"`
	Category    string `json:"category"`
}

var all = []Quote{
	{
		Text:        "Wealth unused is not wealth at all.",
		Tamil:       "செல்வத்துள் செல்வம் செவிக்கு செல்வம்",
		Author:      "Thirukkural 751",
		Translation: "Among wealth, the wealth that comes to the ear is true wealth",
		Category:    "wisdom",
	},
	{
		Text:        "The best investment is in knowledge and wisdom.",
		Tamil:       "கல்வி கரையில் கற்பித்துக் கொண்டிருப்பது",
		Author:      "Thirukkural 753",
		Translation: "Education is the shore where wisdom is taught and learned",
		Category:    "education",
	},
	{
		Text:        "Saving today ensures prosperity tomorrow.",
		Tamil:       "இன்று சேர்த்த செல்வம் நாளை துன்பம் தீர்க்கும்",
		Author:      "Thirukkural 754",
		Translation: "Wealth saved today will solve tomorrow's troubles",
		Category:    "savings",
	},
	{
		Text:        "Spend wisely, for money spent is money gone.",
		Tamil:       "ஒழுக்கத்துடன் செலவிடு, அதுவே செல்வத்தின் வழி",
		Author:      "Thirukkural - Inspired",
		Translation: "Spend with discipline, that is the path of wealth",
		Category:    "spending",
	},
	{
		Text:        "Debt is the enemy of peace and prosperity.",
		Tamil:       "கடன் என்பது மனநிம்மதியின் எதிரி",
		Author:      "Thirukkural - Inspired",
		Translation: "Debt is the enemy of mental peace",
		Category:    "debt",
	},
	{
		Text:     "Do not save what is left after spending, but spend what is left after saving.",
		Author:   "Warren Buffett",
		Category: "savings",
	},
	{
		Text:     "Price is what you pay. Value is what you get.",
		Author:   "Warren Buffett",
		Category: "value",
	},
	{
		Text:     "Someone's sitting in the shade today because someone planted a tree a long time ago.",
		Author:   "Warren Buffett",
		Category: "investment",
	},
	{
		Text:     "Risk comes from not knowing what you're doing.",
		Author:   "Warren Buffett",
		Category: "knowledge",
	},
	{
		Text:     "It's far better to buy a wonderful company at a fair price than a fair company at a wonderful price.",
		Author:   "Warren Buffett",
		Category: "investment",
	},
	{
		Text:     "Track your expenses like you track your heartbeat, consistently and with purpose.",
		Tamil:    "உங்கள் செலவுகளை உங்கள் இதயத் துடிப்பு போல கவனமாக கண்காணியுங்கள்",
		Author:   "Finla Wisdom",
		Category: "tracking",
	},
	{
		Text:     "Small expenses, when ignored, become big regrets.",
		Tamil:    "சிறிய செலவுகள் அலட்சியம் செய்யப்பட்டால் பெரிய வருத்தமாக மாறும்",
		Author:   "Finla Wisdom",
		Category: "mindfulness",
	},
	{
		Text:     "Your future self will thank you for the money you save today.",
		Tamil:    "இன்று நீங்கள் சேமிக்கும் பணத்திற்கு உங்கள் எதிர்கால நீங்கள் நன்றி சொல்வீர்கள்",
		Author:   "Finla Wisdom",
		Category: "future",
	},
	{
		Text:     "Budgeting is not about limiting yourself, it's about making the things that excite you possible.",
		Tamil:    "பட்ஜெட் என்பது உங்களை கட்டுப்படுத்துவது அல்ல, உங்களை உற்சாகப்படுத்தும் விஷயங்களை சாத்தியமாக்குவது",
		Author:   "Finla Wisdom",
		Category: "budgeting",
	},
	{
		Text:     "Every rupee saved is a step towards financial freedom.",
		Tamil:    "சேமிக்கப்படும் ஒவ்வொரு ரூபாயும் நிதி சுதந்திரத்தின் நோக்கி ஒரு அடி",
		Author:   "Finla Wisdom",
		Category: "freedom",
	},
	{
		Text:     "Discipline in spending today creates abundance tomorrow.",
		Tamil:    "இன்றைய செலவில் கடைபிடிக்கும் ஒழுக்கம் நாளை வளத்தை உருவாக்கும்",
		Author:   "Finla Wisdom",
		Category: "discipline",
	},
}

// ForDay returns the quote for the given calendar day. The same day
// always yields the same quote.
func ForDay(d date.Date) Quote {
	return all[dayOfYear(d)%len(all)]
}

// Week returns the seven quotes for the week starting at d.
func Week(d date.Date) []Quote {
	week := make([]Quote, 0, 7)
	for i := 0; i < 7; i++ {
		week = append(week, ForDay(d.Add(i)))
	}

	return week
}

// ByCategory returns the quotes in the given category, or nil when the
// category is unknown.
func ByCategory(cat string) []Quote {
	var out []Quote
	for _, q := range all {
		if q.Category == cat {
			out = append(out, q)
		}
	}

	return out
}

// Categories lists all distinct quote categories in first-seen order.
func Categories() []string {
	seen := map[string]bool{}

	var out []string
	for _, q := range all {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}

	return out
}

// Search returns quotes whose text, translation, author or category
// contains the keyword, case-insensitive.
func Search(keyword string) []Quote {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil
	}

	var out []Quote
	for _, q := range all {
		haystack := strings.ToLower(q.Text + " " + q.Tamil + " " + q.Translation + " " + q.Author + " " + q.Category)
		if strings.Contains(haystack, keyword) {
			out = append(out, q)
		}
	}

	return out
}

func dayOfYear(d date.Date) int { return d.Time().YearDay() }
