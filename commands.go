package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"aromi-agent-backend/knowledge"
	"aromi-agent-backend/models"
	"aromi-agent-backend/services"

	"github.com/spf13/cobra"
)

func newGenerateCommand() *cobra.Command {
	var req models.ContentRequest

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the article for a topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := services.NewContentService(knowledge.Default(), 0)
			if err != nil {
				return err
			}
			resp, err := svc.Generate(context.Background(), req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Content)
			return err
		},
	}

	cmd.Flags().StringVarP(&req.Topic, "topic", "t", "", "Article topic")
	cmd.Flags().StringVarP(&req.Language, "language", "l", "english", "Article language")
	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "Requesting user")
	return cmd
}

func newFitnessCommand() *cobra.Command {
	var req models.FitnessRequest

	cmd := &cobra.Command{
		Use:   "fitness",
		Short: "Print BMI, category and exercise plan as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := services.NewFitnessService(knowledge.Default()).BuildPlan(context.Background(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().IntVar(&req.Height, "height", 0, "Height in centimeters")
	cmd.Flags().IntVar(&req.Weight, "weight", 0, "Weight in kilograms")
	cmd.Flags().StringVarP(&req.Goal, "goal", "g", "", "Fitness goal, e.g. \"lose weight\"")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}

func newDietCommand() *cobra.Command {
	var req models.DiseaseRequest

	cmd := &cobra.Command{
		Use:   "diet",
		Short: "Print recommended and avoided foods for a condition as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := services.NewDietService(knowledge.Default()).BuildPlan(context.Background(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVarP(&req.Disease, "disease", "d", "", "Health condition")
	cmd.Flags().StringVarP(&req.Preference, "preference", "p", models.NoPreference, "Dietary preference (vegetarian, vegan, keto)")
	return cmd
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
