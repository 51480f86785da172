package quota

// Plan identifiers as stored in user_subscriptions.plan_id.
const (
	PlanFree    = "FREE"
	PlanPro     = "PRO"
	PlanPremium = "PREMIUM"
	PlanMaster  = "MASTER"
)

// Unlimited marks a capability without a cap.
const Unlimited = -1

// Capabilities describes what a plan is allowed to do.
type Capabilities struct {
	MaxHistoryDays      int  `json:"max_history_days"`
	AllowExcel          bool `json:"allow_excel"`
	MaxRequestsPerMonth int  `json:"max_requests_per_month"`
	MaxRequestsPerMin   int  `json:"max_requests_per_min"`
	MaxSummaryTokens    int  `json:"max_summary_tokens"`
	Priority            int  `json:"priority"`
}

// Plan couples an identifier with its display name and capabilities.
type Plan struct {
	ID           string       `json:"plan_id"`
	Name         string       `json:"plan_name"`
	Capabilities Capabilities `json:"capabilities"`
}

// plans is the process-wide capability table. Values are constants, not
// configuration: billing owns the mapping user→plan, this service owns what
// each plan means.
var plans = map[string]Plan{
	PlanFree: {
		ID:   PlanFree,
		Name: "Gratuito",
		Capabilities: Capabilities{
			MaxHistoryDays:      30,
			AllowExcel:          false,
			MaxRequestsPerMonth: 10,
			MaxRequestsPerMin:   2,
			MaxSummaryTokens:    500,
			Priority:            0,
		},
	},
	PlanPro: {
		ID:   PlanPro,
		Name: "Profissional",
		Capabilities: Capabilities{
			MaxHistoryDays:      90,
			AllowExcel:          true,
			MaxRequestsPerMonth: 100,
			MaxRequestsPerMin:   10,
			MaxSummaryTokens:    1500,
			Priority:            1,
		},
	},
	PlanPremium: {
		ID:   PlanPremium,
		Name: "Premium",
		Capabilities: Capabilities{
			MaxHistoryDays:      365,
			AllowExcel:          true,
			MaxRequestsPerMonth: 500,
			MaxRequestsPerMin:   30,
			MaxSummaryTokens:    4000,
			Priority:            2,
		},
	},
	PlanMaster: {
		ID:   PlanMaster,
		Name: "Master",
		Capabilities: Capabilities{
			MaxHistoryDays:      3650,
			AllowExcel:          true,
			MaxRequestsPerMonth: Unlimited,
			MaxRequestsPerMin:   Unlimited,
			MaxSummaryTokens:    8000,
			Priority:            3,
		},
	},
}

// Lookup returns the plan for an identifier; unknown identifiers fall back
// to the FREE plan so a stale plan_id never widens access.
func Lookup(planID string) Plan {
	if p, ok := plans[planID]; ok {
		return p
	}
	return plans[PlanFree]
}

// PlanCount reports how many plans the capability table defines.
func PlanCount() int {
	return len(plans)
}
