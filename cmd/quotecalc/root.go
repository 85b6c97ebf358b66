package main

import (
	"encoding/json"
	"fmt"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/domain/pricing"

	"github.com/spf13/cobra"
)

type estimateOptions struct {
	projectType string
	pages       int
	features    []string
	urgency     string
	asJSON      bool
}

type estimateOutput struct {
	Selection    entities.QuoteSelection `json:"selection"`
	Estimate     entities.PriceEstimate  `json:"estimate"`
	Breakdown    pricing.Breakdown       `json:"breakdown"`
	DeliveryTime string                  `json:"delivery_time"`
	RangeText    string                  `json:"range_text"`
}

func newRootCmd() *cobra.Command {
	opts := &estimateOptions{}
	cmd := &cobra.Command{
		Use:           "quotecalc",
		Short:         "Estimate the price range of a website project",
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.projectType, "project-type", "t", "", "project type (website, portfolio, dashboard, billing, ecommerce, other)")
	cmd.Flags().IntVarP(&opts.pages, "pages", "p", entities.DefaultPageCount, "page count (1, 3, 5, 8 or 10 for 10+)")
	cmd.Flags().StringArrayVarP(&opts.features, "feature", "f", nil, "add-on feature, repeatable")
	cmd.Flags().StringVarP(&opts.urgency, "urgency", "u", string(entities.UrgencyNormal), "urgency (normal, urgent, rush)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON")
	_ = cmd.MarkFlagRequired("project-type")

	cmd.AddCommand(newCatalogCmd())
	return cmd
}

func runEstimate(cmd *cobra.Command, opts *estimateOptions) error {
	features := make([]entities.FeatureID, 0, len(opts.features))
	for _, f := range opts.features {
		features = append(features, entities.FeatureID(f))
	}
	sel := entities.NewSelection(entities.ProjectType(opts.projectType), opts.pages, features, entities.Urgency(opts.urgency))

	res, err := pricing.Calculate(sel)
	if err != nil {
		return fmt.Errorf("estimate: %w", err)
	}
	if res == nil {
		return fmt.Errorf("estimate: project type is required")
	}

	out := estimateOutput{
		Selection:    sel,
		Estimate:     res.Estimate,
		Breakdown:    res.Breakdown,
		DeliveryTime: pricing.DeliveryTime(sel.ProjectType, sel.Urgency),
		RangeText:    pricing.FormatRange(res.Estimate),
	}

	w := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if !sel.ProjectType.Known() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: unrecognized project type %q, using fallback price\n", sel.ProjectType)
	}
	b := out.Breakdown
	fmt.Fprintf(w, "Estimate:      %s\n", out.RangeText)
	fmt.Fprintf(w, "Delivery:      %s\n", out.DeliveryTime)
	fmt.Fprintf(w, "Base price:    %s\n", pricing.FormatRupees(b.BasePrice))
	fmt.Fprintf(w, "Pages:         %s\n", pricing.FormatRupees(b.PageSurcharge))
	fmt.Fprintf(w, "Features:      %s\n", pricing.FormatRupees(b.FeatureSurcharge))
	fmt.Fprintf(w, "Subtotal:      %s\n", pricing.FormatRupees(b.Subtotal))
	fmt.Fprintf(w, "Urgency:       x%.2f\n", b.UrgencyMultiplier)
	return nil
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List project types, features and urgencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Project types:")
			for _, p := range entities.ProjectTypes {
				fmt.Fprintf(w, "  %-10s %s\n", p, pricing.FormatRupees(pricing.BasePrice(p)))
			}
			fmt.Fprintln(w, "Features:")
			for _, f := range pricing.FeatureCatalog() {
				fmt.Fprintf(w, "  %-13s %-28s +%s\n", f.ID, f.Label, pricing.FormatRupees(f.Surcharge))
			}
			fmt.Fprintln(w, "Urgencies:")
			for _, u := range entities.Urgencies {
				m, _ := pricing.UrgencyMultiplier(u)
				fmt.Fprintf(w, "  %-7s x%.2f\n", u, m)
			}
			return nil
		},
	}
}
