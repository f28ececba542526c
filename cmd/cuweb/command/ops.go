// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/momeni/clean-utils/pkg/adapter/config"
	"github.com/momeni/clean-utils/pkg/core/model"
	"github.com/momeni/clean-utils/pkg/core/usecase/textuc"
	"github.com/momeni/clean-utils/pkg/core/usecase/valueuc"
	"github.com/spf13/cobra"
)

var formatMode string

var formatCmd = &cobra.Command{
	Use:   "format TEXT",
	Short: "Convert the letters case of a text",
	Long: `Convert the letters case of TEXT to upper or lower case.
The upper case is used when the mode is default or not specified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := model.ParseCaseMode(formatMode)
		if err != nil {
			return fmt.Errorf("--mode=%q: %w", formatMode, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), textuc.FormatString(args[0], mode))
		return nil
	},
}

var dayTypeCmd = &cobra.Command{
	Use:   "day-type DAY",
	Short: "Classify a day of the week as Weekday or Weekend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := model.ParseDay(args[0])
		if err != nil {
			return fmt.Errorf("ParseDay(%q): %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.Type())
		return nil
	},
}

var squareCmd = &cobra.Command{
	Use:   "square N",
	Short: "Square a non-negative number after the configured delay",
	Long: `Square N after the delay which is configured by the
usecases.squares.delay setting of the config file. Negative numbers
are rejected after the same delay.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", args[0], err)
		}
		c, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
		}
		c.Log.Install(cmd.ErrOrStderr())
		sq, err := c.Usecases.Squares.NewUseCase()
		if err != nil {
			return fmt.Errorf("creating squares use case: %w", err)
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		v, err := sq.Square(ctx, n).Await(ctx)
		if err != nil {
			return fmt.Errorf("squaring %v: %w", n, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
		return nil
	},
}

var (
	processText   string
	processNumber float64
)

var processCmd = &cobra.Command{
	Use:   "process (--text TEXT | --number N)",
	Short: "Measure the length of a text or double a number",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var v model.Value
		switch {
		case cmd.Flags().Changed("text"):
			v = model.Text(processText)
		case cmd.Flags().Changed("number"):
			v = model.Number(processNumber)
		default:
			return errors.New("one of --text or --number is required")
		}
		r := valueuc.Process(v)
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(r, 'g', -1, 64))
		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe MAKE YEAR [MODEL]",
	Short: "Describe a vehicle, or a car if its model is given",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("parsing year %q: %w", args[1], err)
		}
		out := cmd.OutOrStdout()
		if len(args) == 2 {
			fmt.Fprintln(out, model.NewVehicle(args[0], year).Info())
			return nil
		}
		car := model.NewCar(args[0], year, args[2])
		fmt.Fprintln(out, car.Info())
		fmt.Fprintln(out, car.Model())
		return nil
	},
}

func init() {
	formatCmd.Flags().StringVarP(
		&formatMode, "mode", "m", "", "upper, lower, or default",
	)
	processCmd.Flags().StringVar(&processText, "text", "", "a text")
	processCmd.Flags().Float64Var(&processNumber, "number", 0, "a number")
	processCmd.MarkFlagsMutuallyExclusive("text", "number")
	rootCmd.AddCommand(formatCmd, dayTypeCmd, squareCmd, processCmd, describeCmd)
}
