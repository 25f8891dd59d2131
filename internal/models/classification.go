package models

// Classification is the coarse priority tag computed for a detected customer.
type Classification string

const (
	// ClassificationHNW marks customers above the salary threshold.
	ClassificationHNW Classification = "HNW"
	// ClassificationIrate is reserved for a future emotion/sentiment input.
	// No computation path produces it yet.
	ClassificationIrate Classification = "Irate"
	// ClassificationAged marks senior customers below the salary threshold.
	ClassificationAged Classification = "Aged"
	// ClassificationStandard is the fallback tag.
	ClassificationStandard Classification = "Standard"
)

const (
	// HNWSalaryThreshold is the salary slab value above which a customer is
	// classified as high net worth.
	HNWSalaryThreshold = 1_000_000

	// AgedMinimumAge is the age at which a non-HNW customer is classified
	// as Aged.
	AgedMinimumAge = 60
)

// classificationLabels maps tags to the labels shown on alert cards.
var classificationLabels = map[Classification]string{
	ClassificationHNW:      "High Net Worth",
	ClassificationIrate:    "Irate Customer",
	ClassificationAged:     "Senior Citizen",
	ClassificationStandard: "Standard",
}

// Label returns the human-readable label for the classification.
// Unknown values fall back to the Standard label.
func (c Classification) Label() string {
	if label, ok := classificationLabels[c]; ok {
		return label
	}
	return classificationLabels[ClassificationStandard]
}

// ClassifyCustomer derives the classification tag from customer fields.
// Salary takes priority over age: any customer above the salary threshold
// is HNW regardless of age.
func ClassifyCustomer(c *Customer) Classification {
	if ParseSalarySlab(c.SalarySlab) > HNWSalaryThreshold {
		return ClassificationHNW
	}
	if c.Age != nil && *c.Age >= AgedMinimumAge {
		return ClassificationAged
	}
	return ClassificationStandard
}

// ParseSalarySlab reads the leading integer of a salary slab value.
// Gateway rows carry the slab as free text ("1500000", "1500000 INR"),
// so only the leading digits count; malformed or missing values fall
// back to 0 and never fail the resolution.
func ParseSalarySlab(slab *string) int64 {
	if slab == nil {
		return 0
	}

	s := *slab
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}

	var value int64
	digits := 0
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		value = value*10 + int64(s[i]-'0')
		digits++
	}

	if digits == 0 {
		return 0
	}
	return value
}
