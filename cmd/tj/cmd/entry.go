package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/editor"
	"github.com/rustyeddy/tradejournal/journal"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one entry as an Org-mode block",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new empty entry",
	Args:  cobra.NoArgs,
	RunE:  runNew,
}

var setCmd = &cobra.Command{
	Use:   "set <id> <field> <value>",
	Short: "Edit one field of an entry",
	Long: `Edit one field of an entry through the optimistic editing pipeline:
the value is applied locally, committed to the backend, and the server's
canonical record is printed back.

Fields: date ltf htf bias kill_zone array results pnl emotions
before_trade_emotions in_trade_emotions after_trade_emotions mistake reason

Tag fields take comma-separated values; dates take YYYY-MM-DD.

Examples:
  tj set 12 pnl 150.25
  tj set 12 array "FVG, OB"
  tj set 12 date 2024-03-05`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	entry, err := client.GetEntry(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}

	fmt.Println(journal.FormatEntryOrg(entry))
	return nil
}

func runNew(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	sess := editor.NewSession(client, nil, nil)
	entry, err := sess.Store.Create(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("created entry %s\n", entry.ID)
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	entryID, fieldName, value := args[0], args[1], args[2]

	field, ok := journal.ParseField(fieldName)
	if !ok {
		return fmt.Errorf("unknown field %q", fieldName)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	entry, err := client.GetEntry(cmd.Context(), entryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}

	sess := editor.NewSession(client, nil, nil)
	sess.Store.Reset([]journal.Entry{entry})
	sess.OpenCell(editor.Target{EntryID: entryID, Field: field})
	if err := sess.BlurCell(cmd.Context(), value); err != nil {
		return err
	}

	updated, _ := sess.Store.Entry(entryID)
	fmt.Println(formatEntryLine(updated))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	sess := editor.NewSession(client, nil, nil)
	if err := sess.Store.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("deleted entry %s\n", args[0])
	return nil
}
