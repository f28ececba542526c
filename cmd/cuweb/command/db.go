// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/momeni/clean-utils/pkg/adapter/config"
	"github.com/momeni/clean-utils/pkg/adapter/db/postgres/productsrp"
	"github.com/momeni/clean-utils/pkg/core/usecase/productsuc"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Catalog database management actions",
	Long: `Catalog database management actions can be chosen by
sub-commands. The database connection information are read from the
config file (or the DATABASE_URL environment variable).`,
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the products catalog table",
	Long: `Create the products catalog table in the configured database.
Existing tables are kept intact, so it is safe to run it again.`,
	RunE: initDB,
	Args: cobra.NoArgs,
}

func initDB(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	c.Log.Install(cmd.ErrOrStderr())
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	uc := productsuc.New(p, productsrp.New())
	if err = uc.InitSchema(ctx); err != nil {
		return fmt.Errorf("initializing catalog schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "products catalog is initialized")
	return nil
}

func init() {
	dbCmd.AddCommand(dbInitCmd)
	rootCmd.AddCommand(dbCmd)
}
