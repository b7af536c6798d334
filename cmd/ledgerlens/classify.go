package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oakmoney/ledgerlens/internal/classify"
	"github.com/oakmoney/ledgerlens/internal/common"
	"github.com/oakmoney/ledgerlens/internal/config"
	"github.com/oakmoney/ledgerlens/internal/importer"
	"github.com/oakmoney/ledgerlens/internal/model"
	"github.com/oakmoney/ledgerlens/internal/opportunity"
	"github.com/oakmoney/ledgerlens/internal/report"
	"github.com/oakmoney/ledgerlens/internal/risk"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify transactions and build the Monday-morning checklist",
		Long: `Classify transactions with business-specific keyword rules, then derive
UK scheme opportunities and compliance risks from the result.

Without --file a built-in demo transaction set for the chosen profile is
used, so you can see the full flow immediately:

  ledgerlens classify --profile service
  ledgerlens classify --profile trade --file transactions.csv
  ledgerlens classify --profile retail --rules my-rules.yaml`,
		RunE: runClassify,
	}

	cmd.Flags().StringP("profile", "p", "service", "business profile (retail, service, trade)")
	cmd.Flags().StringP("file", "f", "", "transactions CSV (date,description,amount[,type[,category]])")
	cmd.Flags().String("rules", "", "YAML rule table overriding the built-in keyword rules")
	cmd.Flags().Bool("report-only", false, "print only the checklist, not per-transaction tags")

	_ = viper.BindPFlag("classify.profile", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("classify.file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("classify.rules", cmd.Flags().Lookup("rules"))
	_ = viper.BindPFlag("classify.report_only", cmd.Flags().Lookup("report-only"))

	return cmd
}

func runClassify(_ *cobra.Command, _ []string) error {
	profile, err := model.ParseBusinessProfile(viper.GetString("classify.profile"))
	if err != nil {
		return err
	}

	classifier, err := buildClassifier()
	if err != nil {
		return err
	}

	txns, fromFile, err := loadTransactions(profile)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		return common.ErrNoTransactions
	}
	slog.Info("Loaded transactions", "count", len(txns), "profile", profile)

	var bar *progressbar.ProgressBar
	if fromFile {
		bar = progressbar.Default(int64(len(txns)), "classifying")
	}

	classified, err := classifier.Classify(txns, profile)
	if err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Set(len(txns))
		_ = bar.Finish()
	}

	if !viper.GetBool("classify.report_only") {
		for _, txn := range classified {
			fmt.Printf(" > %-24s -> %-26s (%.2f, %s)\n", txn.Description, txn.Tag, txn.Confidence, txn.RuleApplied)
		}
		fmt.Println()
	}

	// Opportunities first, then risks.
	findings := opportunity.Find(classified, profile)
	findings = append(findings, risk.Diagnose(classified)...)

	fmt.Println(report.Compose(findings))
	return nil
}

func buildClassifier() (*classify.Classifier, error) {
	rulesPath := viper.GetString("classify.rules")
	if rulesPath == "" {
		return classify.New(), nil
	}

	table, err := classify.LoadRuleTable(config.ExpandPath(rulesPath))
	if err != nil {
		return nil, common.NewUserError("could not load rules file", err)
	}
	c, err := classify.NewFromTable(table)
	if err != nil {
		return nil, common.NewUserError("could not load rules file", err)
	}
	return c, nil
}

func loadTransactions(profile model.BusinessProfile) ([]model.Transaction, bool, error) {
	path := viper.GetString("classify.file")
	if path == "" {
		return demoTransactions(profile), false, nil
	}

	txns, err := importer.ParseFile(config.ExpandPath(path))
	if err != nil {
		return nil, false, err
	}
	return txns, true, nil
}
