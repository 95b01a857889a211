package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// referenceCommandName is the name of the hidden command printing the CLI reference
const referenceCommandName = "reference"

// referenceCommandFormatter formats the reference of a single command, from its usage, example and long description
func referenceCommandFormatter(command *cobra.Command) string {
	var flags string
	if command.HasAvailableLocalFlags() {
		flags = "```\n" + strings.TrimRight(command.LocalFlags().FlagUsages(), "\n") + "\n```\n"
	}
	return fmt.Sprintf("## %s\n\n`%s`\n\n%s\n\n```sh\n%s\n```\n\n%s\n",
		command.Name(),
		command.UseLine(),
		command.Long,
		command.Example,
		flags)
}

// referencePrinter prints the markdown reference of the command and its visible subcommands
func referencePrinter(command *cobra.Command) string {
	var commandListTable [][]string
	var commandOutput strings.Builder
	for _, subcommand := range command.Commands() {
		if !subcommand.IsAvailableCommand() {
			continue
		}
		name := fmt.Sprintf("[%s](#%s)", subcommand.Name(), subcommand.Name())
		commandListTable = append(commandListTable, []string{name, subcommand.Short})
		commandOutput.WriteString(referenceCommandFormatter(subcommand))
	}

	tableOutput := new(bytes.Buffer)
	table := tablewriter.NewWriter(tableOutput)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetHeader([]string{"Name", "Description"})
	table.SetColWidth(10000)
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(commandListTable)
	table.Render()

	return fmt.Sprintf("# %s\n\n%s\n\n```sh\n%s\n```\n\n## Commands\n\n%s\n%s",
		command.Name(),
		command.Long,
		command.Example,
		tableOutput.String(),
		commandOutput.String())
}

// newCmdReference creates the hidden command printing the markdown reference of the whole CLI
func newCmdReference(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    referenceCommandName,
		Short:  "Print the markdown reference of the kexec commands",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), referencePrinter(root))
			return err
		},
	}
}
