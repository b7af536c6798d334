package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oakmoney/ledgerlens/internal/answers"
	"github.com/oakmoney/ledgerlens/internal/common"
	"github.com/oakmoney/ledgerlens/internal/config"
	"github.com/oakmoney/ledgerlens/internal/diagnose"
	"github.com/oakmoney/ledgerlens/internal/model"
	"github.com/oakmoney/ledgerlens/internal/report"
	"github.com/oakmoney/ledgerlens/internal/storage"
	"github.com/oakmoney/ledgerlens/internal/tui"
)

func diagnoseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Run the two-minute questionnaire diagnosis",
		Long: `Answer a short questionnaire (or supply the answers as a YAML file) and
get an investor-grade scorecard, strategic insights, and a prioritized
90-day action plan.

Examples:
  ledgerlens diagnose                       # interactive questionnaire
  ledgerlens diagnose --answers answers.yaml
  ledgerlens diagnose --answers answers.yaml --email sarah@example.com`,
		RunE: runDiagnose,
	}

	cmd.Flags().StringP("answers", "a", "", "YAML answers file (skips the interactive form)")
	cmd.Flags().String("name", "", "display name used in friendly output")
	cmd.Flags().String("business-model", "", "business model context (B2B, B2C)")
	cmd.Flags().String("email", "", "opt in: save the report against this email")
	cmd.Flags().String("industry", "", "industry recorded with an opt-in save")

	_ = viper.BindPFlag("diagnose.answers", cmd.Flags().Lookup("answers"))
	_ = viper.BindPFlag("diagnose.name", cmd.Flags().Lookup("name"))
	_ = viper.BindPFlag("diagnose.business_model", cmd.Flags().Lookup("business-model"))
	_ = viper.BindPFlag("diagnose.email", cmd.Flags().Lookup("email"))
	_ = viper.BindPFlag("diagnose.industry", cmd.Flags().Lookup("industry"))

	return cmd
}

func runDiagnose(cmd *cobra.Command, _ []string) error {
	raw, ok, err := collectAnswers()
	if err != nil {
		return err
	}
	if !ok {
		slog.Info("Diagnosis aborted")
		return nil
	}

	validated, err := answers.Parse(raw)
	if err != nil {
		return err
	}

	profile := answers.Profile{
		Name:          viper.GetString("diagnose.name"),
		BusinessModel: viper.GetString("diagnose.business_model"),
	}

	result := diagnose.RunDiagnosis(validated, profile)
	fmt.Println(report.RenderResult(result))

	// Lead capture is strictly opt-in and strictly outside the core.
	if email := viper.GetString("diagnose.email"); email != "" {
		if err := saveLead(cmd, email, profile, result.Scorecard); err != nil {
			return err
		}
	}
	return nil
}

func collectAnswers() (answers.Raw, bool, error) {
	path := viper.GetString("diagnose.answers")
	if path == "" {
		return tui.RunForm()
	}

	raw, err := answers.LoadFile(config.ExpandPath(path))
	if err != nil {
		return answers.Raw{}, false, err
	}
	return raw, true, nil
}

func saveLead(cmd *cobra.Command, email string, profile answers.Profile, card *model.Scorecard) error {
	db, err := openLeadStore(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to close database", nil)
		}
	}()

	lead := storage.Lead{
		Name:     viper.GetString("diagnose.name"),
		Email:    email,
		Industry: viper.GetString("diagnose.industry"),
	}
	id, err := db.SaveLead(cmd.Context(), lead, card)
	if err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}

	common.LogInfo("Lead captured", common.Fields{"id": id, "email": email})
	fmt.Printf("Report saved for %s.\n", email)
	return nil
}

func openLeadStore(cmd *cobra.Command) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/ledgerlens/ledgerlens.db"
	}

	db, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Migrate(cmd.Context()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
