package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ojaledger/ojaledger/pkg/kv"
	"github.com/ojaledger/ojaledger/pkg/ledger"
)

var ledgerFlags struct {
	owner   string
	dataDir string
}

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Inspect and maintain the transaction ledger",
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a trader's transactions",
	RunE:  runLedgerList,
}

var ledgerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one transaction by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runLedgerDelete,
}

var ledgerDeleteDayCmd = &cobra.Command{
	Use:   "delete-day <YYYY-MM-DD>",
	Short: "Delete all of a trader's transactions from one day",
	Args:  cobra.ExactArgs(1),
	RunE:  runLedgerDeleteDay,
}

func init() {
	ledgerCmd.PersistentFlags().StringVar(&ledgerFlags.owner, "owner", "", "trader (owner) id")
	ledgerCmd.PersistentFlags().StringVar(&ledgerFlags.dataDir, "data-dir", "", "ledger data directory (overrides config)")
	ledgerCmd.MarkPersistentFlagRequired("owner")
	ledgerCmd.AddCommand(ledgerListCmd, ledgerDeleteCmd, ledgerDeleteDayCmd)
	rootCmd.AddCommand(ledgerCmd)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	debtStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
	incomeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

// openLedger opens the configured badger store for maintenance commands.
// Callers must Close the returned kv store.
func openLedger() (*ledger.Store, kv.Store, error) {
	dataDir := ledgerFlags.dataDir
	if dataDir == "" {
		cfg, err := GetConfig()
		if err != nil {
			return nil, nil, err
		}
		dataDir = cfg.DataDir
	}
	store, err := kv.OpenBadger(dataDir)
	if err != nil {
		return nil, nil, err
	}
	return ledger.NewStore(store), store, nil
}

func runLedgerList(cmd *cobra.Command, _ []string) error {
	ldg, store, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := ldg.List(cmd.Context(), ledgerFlags.owner)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println(dimStyle.Render("no transactions"))
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-20s %-12s %-8s %12s  %s", "CREATED", "CUSTOMER", "TYPE", "AMOUNT", "ID")))
	for _, rec := range records {
		style := incomeStyle
		if rec.Type == ledger.TypeDebt {
			style = debtStyle
		}
		line := fmt.Sprintf("%-20s %-12s %-8s %12d  %s",
			rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Customer, rec.Type, rec.Amount, rec.ID)
		fmt.Println(style.Render(line))
	}

	income := ledger.SumByType(records, ledger.TypeIncome)
	debt := ledger.SumByType(records, ledger.TypeDebt)
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d transactions, income %d, outstanding debt %d", len(records), income, debt)))
	return nil
}

func runLedgerDelete(cmd *cobra.Command, args []string) error {
	ldg, store, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := ldg.Delete(cmd.Context(), ledgerFlags.owner, args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func runLedgerDeleteDay(cmd *cobra.Command, args []string) error {
	day, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", args[0])
	}
	ldg, store, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := ldg.DeleteOn(cmd.Context(), ledgerFlags.owner, day)
	if err != nil {
		return err
	}
	fmt.Printf("deleted %d transactions from %s\n", n, args[0])
	return nil
}
