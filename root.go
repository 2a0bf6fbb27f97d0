package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:          "insurance-agent",
	Short:        "Vehicle value, claim risk and driver discount calculators",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(valueCmd)
	rootCmd.AddCommand(riskCmd)
	rootCmd.AddCommand(discountCmd)
}
