package main

import (
	"fmt"
	"oficina_os/internal/adapter/persistence/repository"
	"oficina_os/internal/domain/catalog"
	"oficina_os/internal/infrastructure/config"
	"oficina_os/internal/infrastructure/database"
	"oficina_os/internal/infrastructure/logging"
	"oficina_os/internal/usecase"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "oficinactl",
	Short: "Maintenance commands for the service order backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logging.Setup(cfg.LogLevel, "console")
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage DynamoDB tables",
}

var tablesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create every missing table and index",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ddb := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		created, err := database.CreateTables(ctx, ddb, database.Specs(cfg.Tables))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d table(s) created\n", len(created))
		for _, name := range created {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
		}
		return nil
	},
}

var tablesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the configured table names",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range database.Specs(cfg.Tables) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s key=%s indexes=%d\n", s.Name, s.Key, len(s.Indexes))
		}
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load default data",
}

var seedColumnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Store the default kanban columns when none exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ddb := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		t := cfg.Tables
		kanban := usecase.NewKanbanUseCase(
			repository.NewKanbanColumnDynamoRepository(ddb, t.KanbanColumns),
			repository.NewServiceOrderDynamoRepository(ddb, t.ServiceOrders),
			repository.NewCustomerDynamoRepository(ddb, t.Customers),
			repository.NewTechnicianDynamoRepository(ddb, t.Technicians),
		)
		n, err := kanban.SeedDefaults(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "columns already present, nothing to do")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d column(s) created\n", n)
		return nil
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the embedded equipment catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		eq, err := catalog.Load()
		if err != nil {
			return err
		}
		for _, et := range eq.Types {
			fmt.Fprintf(cmd.OutOrStdout(), "type  %-12s %s\n", et.Key, et.Label)
		}
		for _, b := range eq.Brands {
			fmt.Fprintf(cmd.OutOrStdout(), "brand %-12s models=%d free_text=%t\n", b.Name, len(b.Models), b.FreeText)
		}
		return nil
	},
}

func init() {
	tablesCmd.AddCommand(tablesCreateCmd)
	tablesCmd.AddCommand(tablesListCmd)
	seedCmd.AddCommand(seedColumnsCmd)

	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
