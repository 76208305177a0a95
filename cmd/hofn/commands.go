package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KasperOmsK/hofn"
	"github.com/KasperOmsK/hofn/internal/dataset"
)

func newReduceCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "reduce",
		Short: "Combine all values into one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := e.op.Reduce(e.data.Values, e.cfg.SkipMissing)
			return dataset.Encode(cmd.OutOrStdout(), dataset.FromMaybe(result))
		},
	}
}

func newCumulativeCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "cumulative",
		Short: "Running combination of the values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := e.op.Cumulative(e.data.Values, e.cfg.SkipMissing)
			return dataset.Encode(cmd.OutOrStdout(), dataset.FromMaybes(result))
		},
	}
}

func newZipCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "zip",
		Short: "Combine values and other element by element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := e.op.Zip(e.data.Values, e.data.Other, e.cfg.SkipMissing)
			if err != nil {
				return fmt.Errorf("zip values with other: %w", err)
			}
			return dataset.Encode(cmd.OutOrStdout(), dataset.FromMaybes(result))
		},
	}
}

func newAxisCommand(e *env) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "axis",
		Short: "Combine each row or each column of the matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var axis hofn.Axis
			switch by {
			case "row":
				axis = hofn.ByRow
			case "column":
				axis = hofn.ByColumn
			default:
				return fmt.Errorf("unknown axis %q: want row or column", by)
			}
			e.log.Debug("reducing matrix", "axis", axis)
			result := e.op.ReduceAxis(e.data.Matrix, axis, e.cfg.SkipMissing)
			return dataset.Encode(cmd.OutOrStdout(), dataset.FromMaybes(result))
		},
	}
	cmd.Flags().StringVar(&by, "by", "row", "axis to reduce along: row or column")
	return cmd
}

func newGroupCommand(e *env) *cobra.Command {
	var sorted bool
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Combine the values of each group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			totals, err := hofn.GroupApply(e.data.Values, e.data.Groups, func(group []hofn.Maybe[float64]) hofn.Maybe[float64] {
				return e.op.Reduce(group, e.cfg.SkipMissing)
			})
			if err != nil {
				return fmt.Errorf("group values: %w", err)
			}
			if sorted {
				totals = hofn.SortNamed(totals)
			}
			e.log.Debug("grouped values", "groups", totals.Len())

			node, err := dataset.OrderedMap(totals)
			if err != nil {
				return err
			}
			return dataset.Encode(cmd.OutOrStdout(), node)
		},
	}
	cmd.Flags().BoolVar(&sorted, "sorted", false, "order groups by name instead of first appearance")
	return cmd
}
