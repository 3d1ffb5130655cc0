package core

import "github.com/shopspring/decimal"

// PlanTier is the subscription tier attached to a mock user account. Plans are
// a capability lookup only — nothing enforces them server-side beyond the
// advisory checks below.
type PlanTier string

const (
	PlanFree       PlanTier = "free"
	PlanStarter    PlanTier = "starter"
	PlanBusiness   PlanTier = "business"
	PlanEnterprise PlanTier = "enterprise"
)

// Unlimited marks a limit with no cap.
const Unlimited = -1

// Feature is a plan-gated capability flag.
type Feature string

const (
	FeatureEmailSending Feature = "email_sending"
	FeatureTemplates    Feature = "templates"
	FeatureRecurring    Feature = "recurring"
	FeatureAnalytics    Feature = "analytics"
	FeatureTeamAccess   Feature = "team_access"
	FeatureAPIAccess    Feature = "api_access"
)

// PlanCapabilities is one row of the plan table.
type PlanCapabilities struct {
	Name         string           `json:"name"`
	MonthlyPrice decimal.Decimal  `json:"monthly_price"`
	MaxInvoices  int              `json:"max_invoices"`
	MaxCompanies int              `json:"max_companies"`
	Features     map[Feature]bool `json:"features"`
}

var planTable = map[PlanTier]PlanCapabilities{
	PlanFree: {
		Name:         "Free",
		MonthlyPrice: decimal.Zero,
		MaxInvoices:  3,
		MaxCompanies: 1,
		Features:     map[Feature]bool{},
	},
	PlanStarter: {
		Name:         "Starter",
		MonthlyPrice: decimal.NewFromInt(30),
		MaxInvoices:  200,
		MaxCompanies: 1,
		Features: map[Feature]bool{
			FeatureEmailSending: true,
			FeatureTemplates:    true,
		},
	},
	PlanBusiness: {
		Name:         "Business",
		MonthlyPrice: decimal.NewFromInt(80),
		MaxInvoices:  Unlimited,
		MaxCompanies: 5,
		Features: map[Feature]bool{
			FeatureEmailSending: true,
			FeatureTemplates:    true,
			FeatureRecurring:    true,
			FeatureAnalytics:    true,
			FeatureTeamAccess:   true,
		},
	},
	PlanEnterprise: {
		Name:         "Enterprise",
		MonthlyPrice: decimal.NewFromInt(300),
		MaxInvoices:  Unlimited,
		MaxCompanies: Unlimited,
		Features: map[Feature]bool{
			FeatureEmailSending: true,
			FeatureTemplates:    true,
			FeatureRecurring:    true,
			FeatureAnalytics:    true,
			FeatureTeamAccess:   true,
			FeatureAPIAccess:    true,
		},
	},
}

// ParsePlanTier maps a string to a known tier, defaulting to free.
func ParsePlanTier(s string) PlanTier {
	switch PlanTier(s) {
	case PlanStarter:
		return PlanStarter
	case PlanBusiness:
		return PlanBusiness
	case PlanEnterprise:
		return PlanEnterprise
	}
	return PlanFree
}

// Capabilities returns the capability row for the tier; unknown tiers get the
// free plan.
func (t PlanTier) Capabilities() PlanCapabilities {
	if caps, ok := planTable[t]; ok {
		return caps
	}
	return planTable[PlanFree]
}

// HasFeature reports whether the tier includes the given feature flag.
func (t PlanTier) HasFeature(f Feature) bool {
	return t.Capabilities().Features[f]
}

// CanCreateInvoice reports whether a user at this tier with currentCount
// invoices may create another.
func (t PlanTier) CanCreateInvoice(currentCount int) bool {
	max := t.Capabilities().MaxInvoices
	return max == Unlimited || currentCount < max
}
