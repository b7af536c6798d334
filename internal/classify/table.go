package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oakmoney/ledgerlens/internal/model"
)

// KeywordRule is one row of a classification rule table: if any keyword
// appears in the (lowercased) description, the rule fires.
type KeywordRule struct {
	Rule       string    `yaml:"rule"`
	Tag        model.Tag `yaml:"tag"`
	Keywords   []string  `yaml:"keywords"`
	Confidence float64   `yaml:"confidence"`
}

// RuleTable holds the global safety tier and the per-profile tiers, each in
// evaluation order.
type RuleTable struct {
	Global   []KeywordRule                           `yaml:"global"`
	Profiles map[model.BusinessProfile][]KeywordRule `yaml:"profiles"`
}

// LoadRuleTable reads a YAML rule table from disk.
func LoadRuleTable(path string) (RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleTable{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	var table RuleTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return RuleTable{}, fmt.Errorf("failed to parse rules file: %w", err)
	}
	return table, nil
}

func (t RuleTable) validate() error {
	for _, row := range t.Global {
		if err := row.validate("global"); err != nil {
			return err
		}
	}
	for profile, rows := range t.Profiles {
		if !profile.Valid() {
			return fmt.Errorf("unknown profile %q", profile)
		}
		for _, row := range rows {
			if err := row.validate(string(profile)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r KeywordRule) validate(section string) error {
	if r.Rule == "" {
		return fmt.Errorf("%s: rule without an identifier", section)
	}
	if len(r.Keywords) == 0 {
		return fmt.Errorf("%s: rule %q has no keywords", section, r.Rule)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("%s: rule %q confidence %v outside [0,1]", section, r.Rule, r.Confidence)
	}
	return nil
}

// builtinTable is the default rule set. Order within each slice is the
// evaluation order.
func builtinTable() RuleTable {
	return RuleTable{
		Global: []KeywordRule{
			{
				Rule:       "Global:IntegrityCheck",
				Tag:        model.TagComplianceRisk,
				Confidence: 0.99,
				Keywords:   []string{"transfer to personal", "personal", "gym", "betting"},
			},
		},
		Profiles: map[model.BusinessProfile][]KeywordRule{
			model.ProfileService: {
				{
					Rule:       "Service:FoodIsPersonal",
					Tag:        model.TagComplianceRisk,
					Confidence: 0.95,
					Keywords:   []string{"starbucks", "pret", "costa", "lunch", "dinner"},
				},
				{
					Rule:       "Service:Equipment",
					Tag:        model.TagGrowthInvest,
					Confidence: 0.80,
					Keywords:   []string{"apple", "macbook", "laptop"},
				},
				{
					Rule:       "Service:Software",
					Tag:        model.TagAdminBloat,
					Confidence: 0.90,
					Keywords:   []string{"xero", "adobe", "subscription", "saas"},
				},
				{
					Rule:       "Service:Revenue",
					Tag:        model.TagRevenueRecur,
					Confidence: 0.95,
					Keywords:   []string{"retainer", "fee"},
				},
			},
			model.ProfileTrade: {
				{
					Rule:       "Trade:Materials",
					Tag:        model.TagCOGSEssential,
					Confidence: 0.95,
					Keywords:   []string{"screwfix", "wickes", "plumb", "timber"},
				},
				{
					Rule:       "Trade:Fuel",
					Tag:        model.TagCOGSEssential,
					Confidence: 0.90,
					Keywords:   []string{"fuel", "petrol", "shell"},
				},
				{
					Rule:       "Trade:Finance",
					Tag:        model.TagAdminBloat,
					Confidence: 0.85,
					Keywords:   []string{"lease"},
				},
			},
			model.ProfileRetail: {
				{
					Rule:       "Retail:Inventory",
					Tag:        model.TagCOGSEssential,
					Confidence: 0.95,
					Keywords:   []string{"flour", "sugar", "wholesale"},
				},
			},
		},
	}
}
