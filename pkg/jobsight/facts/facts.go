package facts

// MatchType identifies which extractor produced a match.
type MatchType string

const (
	TypeSalaryRange MatchType = "salary_range"
	TypeLocation    MatchType = "location"
	TypePosition    MatchType = "position"
	TypeCompany     MatchType = "company"
)

// Currency codes recognized by the salary extractor.
type Currency string

const (
	RUB Currency = "RUB"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// Tax is the salary framing: take-home vs pre-tax.
type Tax string

const (
	TaxNet   Tax = "net"
	TaxGross Tax = "gross"
)

// Grade is a seniority level.
type Grade string

const (
	GradeIntern Grade = "intern"
	GradeJunior Grade = "junior"
	GradeMiddle Grade = "middle"
	GradeSenior Grade = "senior"
	GradeLead   Grade = "lead"
)

// Title is a canonical job title.
type Title string

const (
	TitleDS         Title = "ds"
	TitleDA         Title = "da"
	TitleDE         Title = "de"
	TitleAnalyst    Title = "analyst"
	TitleResearcher Title = "researcher"
	TitleDev        Title = "dev"
)

// Fact is the interpreted value of a match. Exactly one of the concrete
// fact types implements it per match.
type Fact interface {
	isFact()
}

// Bound is one end of a salary range before normalization. Scale and
// attribute fields are zero when the corresponding token was absent.
// Bound is an intermediate value and never emitted as a match on its own.
type Bound struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency,omitempty"`
	Scale    int64    `json:"scale,omitempty"` // 1000 or 1000000, 0 if absent
	Tax      Tax      `json:"tax,omitempty"`
}

// SalaryRange is a normalized salary fork. Min < Max always holds and
// currency/tax are resolved (RUB/net defaults) before emission.
type SalaryRange struct {
	Min      int64    `json:"min"`
	Max      int64    `json:"max"`
	Currency Currency `json:"currency"`
	Tax      Tax      `json:"tax"`
}

func (SalaryRange) isFact() {}

// Location describes where the job is. At least one field is set.
type Location struct {
	City   string `json:"city,omitempty"`
	Metro  string `json:"metro,omitempty"`
	Remote bool   `json:"remote,omitempty"`
}

func (Location) isFact() {}

// Position is a seniority grade or a job title hit. One of the two
// fields is set per match.
type Position struct {
	Grade Grade `json:"grade,omitempty"`
	Title Title `json:"title,omitempty"`
}

func (Position) isFact() {}

// Company identifies an employer by its registrable domain, lowercased
// with the "www." prefix stripped.
type Company struct {
	Domain string `json:"domain"`
}

func (Company) isFact() {}

// Match is one extracted fact with its span in the normalized text.
// Start < Stop always; matches of one extractor over one text never
// overlap.
type Match struct {
	Start int
	Stop  int
	Type  MatchType
	Value Fact
}
