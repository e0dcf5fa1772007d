package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alsokkary/promptsmith/optimizer"
)

// optimizeCmd runs the optimization pipeline over a prompt, a rendered
// template, or a batch of prompts read from stdin.
func optimizeCmd() *cobra.Command {
	var (
		techniques []string
		template   string
		values     []string
		batch      bool
	)

	cmd := &cobra.Command{
		Use:   "optimize [prompt]",
		Short: "Optimize a prompt, a template, or a batch from stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			po := optimizer.New(optimizer.WithLogger(newLogger()))

			if batch {
				prompts, err := readLines(os.Stdin)
				if err != nil {
					return err
				}
				for _, result := range po.BatchOptimize(prompts) {
					fmt.Println(result)
					fmt.Println("---")
				}
				return nil
			}

			if template != "" {
				substitutions, err := parseValues(values)
				if err != nil {
					return err
				}
				result, err := po.GetOptimizedPrompt(template, substitutions)
				if err != nil {
					return err
				}
				fmt.Println(result)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("a prompt argument is required unless --template or --batch is used")
			}
			fmt.Println(po.Optimize(args[0], techniques...))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&techniques, "techniques", nil,
		"Ordered technique list (clarity, specificity, context, structure, examples)")
	cmd.Flags().StringVar(&template, "template", "", "Render a registered template instead of a raw prompt")
	cmd.Flags().StringArrayVar(&values, "set", nil, "Template substitution value as key=value (repeatable)")
	cmd.Flags().BoolVar(&batch, "batch", false, "Optimize one prompt per stdin line, preserving order")

	return cmd
}

// templatesCmd lists the registered template names.
func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List registered prompt templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := optimizer.New().Templates()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func parseValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set value %q, expected key=value", pair)
		}
		values[key] = value
	}
	return values, nil
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
