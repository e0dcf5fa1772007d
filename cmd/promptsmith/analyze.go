package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alsokkary/promptsmith/optimizer"
)

// analyzeCmd scores a prompt and prints the analysis as JSON.
func analyzeCmd() *cobra.Command {
	var showSchema bool

	cmd := &cobra.Command{
		Use:   "analyze [prompt]",
		Short: "Score a prompt's quality",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showSchema {
				schema, err := optimizer.QualitySchema()
				if err != nil {
					return err
				}
				fmt.Println(string(schema))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("a prompt argument is required")
			}

			analysis := optimizer.New(optimizer.WithLogger(newLogger())).AnalyzeQuality(args[0])
			out, err := json.MarshalIndent(analysis, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSchema, "schema", false, "Print the JSON schema of the analysis record")
	return cmd
}
