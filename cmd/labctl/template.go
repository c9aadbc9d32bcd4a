package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptlab-io/labhub/internal/template"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Reconstruct or render dataset templates",
}

var templateReconstructCmd = &cobra.Command{
	Use:   "reconstruct",
	Short: "Recover a {{PARAM}} template from generated text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readTextFlag(cmd)
		if err != nil {
			return err
		}
		params, err := readParamsFlag(cmd)
		if err != nil {
			return err
		}

		reconstructed := template.Reconstruct(text, params)
		fmt.Println(reconstructed)
		return nil
	},
}

var templateRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Substitute parameter values into a template",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readTextFlag(cmd)
		if err != nil {
			return err
		}
		params, err := readParamsFlag(cmd)
		if err != nil {
			return err
		}

		fmt.Println(template.Render(text, params))
		return nil
	},
}

var templateParamsCmd = &cobra.Command{
	Use:   "params",
	Short: "List the placeholders of a template",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readTextFlag(cmd)
		if err != nil {
			return err
		}
		return writeOutput(template.ExtractParams(text))
	},
}

func readTextFlag(cmd *cobra.Command) (string, error) {
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read template file: %w", err)
		}
		return string(content), nil
	}
	text, _ := cmd.Flags().GetString("text")
	if text == "" {
		return "", fmt.Errorf("--text or --file is required")
	}
	return text, nil
}

func readParamsFlag(cmd *cobra.Command) (map[string]any, error) {
	raw, _ := cmd.Flags().GetString("params")
	if raw == "" {
		return nil, nil
	}
	var params map[string]any
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, fmt.Errorf("parse --params: %w", err)
	}
	return params, nil
}

func init() {
	for _, cmd := range []*cobra.Command{templateReconstructCmd, templateRenderCmd, templateParamsCmd} {
		cmd.Flags().String("text", "", "Template or generated text")
		cmd.Flags().String("file", "", "File holding the text")
		cmd.Flags().String("params", "", "Parameter values as a JSON object")
	}

	templateCmd.AddCommand(templateReconstructCmd)
	templateCmd.AddCommand(templateRenderCmd)
	templateCmd.AddCommand(templateParamsCmd)
}
