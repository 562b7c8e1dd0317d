package assessment

// Factor is one weighted keyword rule within a ruleset
type Factor struct {
	Name     string
	Weight   int
	Keywords []string
}

// Ruleset is a static table of factors for one framework. Rulesets are data,
// not logic: scoring walks the table, so the tables can change without
// touching the assessors.
type Ruleset struct {
	Factors []Factor
}

// MaxScore returns the sum of all factor weights
func (r Ruleset) MaxScore() int {
	total := 0
	for _, f := range r.Factors {
		total += f.Weight
	}
	return total
}

// aiaRuleset covers the AIA risk areas: impact on individuals, data
// sensitivity, system autonomy and affected-population reach.
var aiaRuleset = Ruleset{Factors: []Factor{
	{Name: "affects_individuals", Weight: 4, Keywords: []string{
		"individual", "citizen", "applicant", "client", "benefit", "eligibility",
	}},
	{Name: "automated_decision", Weight: 4, Keywords: []string{
		"automated decision", "automatic approval", "without human", "auto-approve", "fully automated",
	}},
	{Name: "personal_information", Weight: 3, Keywords: []string{
		"personal information", "personal data", "pii", "health record", "biometric", "financial information",
	}},
	{Name: "vulnerable_population", Weight: 3, Keywords: []string{
		"vulnerable", "disability", "low-income", "refugee", "senior", "minor",
	}},
	{Name: "machine_learning", Weight: 2, Keywords: []string{
		"machine learning", "neural network", "deep learning", "artificial intelligence", "ai model", "llm",
	}},
	{Name: "irreversible_impact", Weight: 3, Keywords: []string{
		"irreversible", "denial", "rejection", "termination", "enforcement", "penalty",
	}},
	{Name: "large_scale", Weight: 2, Keywords: []string{
		"national", "millions", "all applicants", "province-wide", "population",
	}},
	{Name: "economic_interests", Weight: 2, Keywords: []string{
		"payment", "loan", "grant", "subsidy", "tax", "compensation",
	}},
}}

// osfiRuleset covers E-23 model risk dimensions: model complexity, usage
// criticality, data quality exposure and autonomy.
var osfiRuleset = Ruleset{Factors: []Factor{
	{Name: "credit_decisioning", Weight: 4, Keywords: []string{
		"credit", "lending", "loan approval", "underwriting", "mortgage",
	}},
	{Name: "capital_adequacy", Weight: 4, Keywords: []string{
		"capital", "irb", "stress test", "provisioning", "ifrs 9", "regulatory reporting",
	}},
	{Name: "complex_model", Weight: 3, Keywords: []string{
		"machine learning", "neural network", "deep learning", "ensemble", "gradient boosting", "llm",
	}},
	{Name: "autonomous_use", Weight: 3, Keywords: []string{
		"automated decision", "straight-through", "without human", "auto-decision",
	}},
	{Name: "third_party_model", Weight: 2, Keywords: []string{
		"vendor model", "third party", "third-party", "external provider", "purchased model",
	}},
	{Name: "customer_facing", Weight: 2, Keywords: []string{
		"customer", "retail", "client-facing", "account opening", "pricing",
	}},
	{Name: "fraud_aml", Weight: 3, Keywords: []string{
		"fraud", "anti-money laundering", "aml", "sanctions", "transaction monitoring",
	}},
}}

// materialityRules drive the E-23 materiality multiplier. Tiers are checked
// high first; the first match wins.
var materialityRules = []struct {
	Tier       string
	Multiplier float64
	Keywords   []string
}{
	{Tier: "high", Multiplier: 1.5, Keywords: []string{
		"enterprise-wide", "all branches", "billions", "capital", "systemically",
	}},
	{Tier: "medium", Multiplier: 1.2, Keywords: []string{
		"portfolio", "business line", "millions", "regional",
	}},
}

// detectorRules map free-text context onto framework tags
var detectorRules = map[string][]string{
	FrameworkAIA: {
		"government", "federal", "public sector", "treasury board", "algorithmic impact",
		"aia", "directive on automated decision", "citizen", "public service",
	},
	FrameworkOSFI: {
		"bank", "osfi", "e-23", "model risk", "financial institution", "insurer",
		"credit union", "capital", "deposit", "guideline",
	},
}

// Required content areas for the description validator
var contentAreas = map[string][]string{
	"purpose":        {"purpose", "goal", "objective", "intended", "designed to", "aims"},
	"data_sources":   {"data", "dataset", "records", "database", "information from", "inputs"},
	"decision_scope": {"decision", "determine", "assess", "approve", "score", "classify", "recommend"},
	"affected_users": {"user", "client", "customer", "applicant", "citizen", "employee", "individuals"},
	"technology":     {"model", "algorithm", "machine learning", "system", "software", "rule-based", "ai"},
}

// minDescriptionWords is the short-description floor for the validation gate
const minDescriptionWords = 40

// minCoveredAreas is how many content areas a passing description must touch
const minCoveredAreas = 4

// aiaQuestions is the manual questionnaire for full AIA assessments. The
// full Treasury Board questionnaire runs dozens of questions; this is the
// risk-scoring subset the workflow collects explicitly.
var aiaQuestions = []Question{
	{ID: "q_decision_final", Text: "Is the system's output a final decision with no human review?", Weight: 5},
	{ID: "q_vulnerable", Text: "Does the system affect vulnerable populations?", Weight: 4},
	{ID: "q_personal_info", Text: "Does the system process personal information?", Weight: 4},
	{ID: "q_health_safety", Text: "Could outcomes affect health or safety?", Weight: 5},
	{ID: "q_economic", Text: "Could outcomes affect economic interests (benefits, payments, licences)?", Weight: 4},
	{ID: "q_explainable", Text: "Is the system unable to explain how it reached a given result?", Weight: 3},
	{ID: "q_training_data", Text: "Was the system trained on data not collected for this purpose?", Weight: 3},
	{ID: "q_appeal", Text: "Is there no recourse or appeal process for affected individuals?", Weight: 4},
}

// Questions returns the AIA questionnaire
func Questions() []Question {
	out := make([]Question, len(aiaQuestions))
	copy(out, aiaQuestions)
	return out
}

// QuestionMaxScore returns the questionnaire's maximum raw score
func QuestionMaxScore() int {
	total := 0
	for _, q := range aiaQuestions {
		total += q.Weight
	}
	return total
}
