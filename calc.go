package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"insurance-agent/domain"
	"insurance-agent/repository"
	"insurance-agent/service"
)

var (
	valueModel string
	valueYear  int64

	riskText      string
	riskRulesFile string

	discountAge        int
	discountExperience int
)

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Print the suggested value for a vehicle model and year",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := domain.VehicleValueInput{Model: valueModel}
		if cmd.Flags().Changed("year") {
			input.Year = valueYear
		}

		result, err := service.NewValueService(repository.NewNoopCache()).CalculateValue(cmd.Context(), input)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Print the risk rating for a claim history (from --text or stdin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := riskText
		if !cmd.Flags().Changed("text") {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			text = string(data)
		}

		rules := service.DefaultKeywordRules()
		if riskRulesFile != "" {
			loaded, err := service.LoadKeywordRules(riskRulesFile)
			if err != nil {
				return err
			}
			rules = loaded
		}

		svc, err := service.NewRiskService(rules, repository.NewNoopCache())
		if err != nil {
			return err
		}
		result, err := svc.RateClaimHistory(cmd.Context(), domain.RiskRatingInput{ClaimHistory: text})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var discountCmd = &cobra.Command{
	Use:   "discount",
	Short: "Print the driver discount rate for an age and driving experience",
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, err := service.NewDiscountService().CalculateDiscount(discountAge, discountExperience)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), domain.DiscountResult{DiscountRate: rate})
	},
}

func init() {
	valueCmd.Flags().StringVar(&valueModel, "model", "", "vehicle model name")
	valueCmd.Flags().Int64Var(&valueYear, "year", 0, "model year")

	riskCmd.Flags().StringVar(&riskText, "text", "", "claim history text")
	riskCmd.Flags().StringVar(&riskRulesFile, "rules", os.Getenv("RISK_RULES_FILE"), "YAML keyword rule file")

	discountCmd.Flags().IntVar(&discountAge, "age", 0, "driver age in years")
	discountCmd.Flags().IntVar(&discountExperience, "experience", 0, "years of driving experience")
	_ = discountCmd.MarkFlagRequired("age")
	_ = discountCmd.MarkFlagRequired("experience")
}

func printJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
