package ui

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/GAMOps/gamops/pkg/models"
)

// Header opens a workflow run. Everything after it is the streamed gam
// output plus log lines, so there are no spinners to fight with.
func Header(title string) {
	pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println(title)
	fmt.Println()
}

// ShowDriveSummary prints every drive created during a run, in creation
// order, with the ID and browse URL the operator pastes elsewhere.
func ShowDriveSummary(entries []models.DriveSummaryEntry) {
	fmt.Println()
	pterm.DefaultSection.Println("Shared Drives")

	tableData := pterm.TableData{
		{"Variant", "Name", "ID", "URL"},
	}
	for _, e := range entries {
		tableData = append(tableData, []string{
			e.Label,
			e.Name,
			e.ID,
			e.URL,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// ShowOffboardSummary prints the per-user outcome table after an
// offboarding batch.
func ShowOffboardSummary(results []models.OffboardResult) {
	fmt.Println()
	pterm.DefaultSection.Println("Offboarding Summary")

	tableData := pterm.TableData{
		{"User", "Manager", "Groups transferred", "Steps", "Warnings"},
	}
	for _, r := range results {
		warnings := pterm.Green("none")
		if len(r.Warnings) > 0 {
			warnings = pterm.Yellow(fmt.Sprintf("%d", len(r.Warnings)))
		}
		tableData = append(tableData, []string{
			r.User,
			r.Manager,
			fmt.Sprintf("%d", len(r.TransferredGroups)),
			fmt.Sprintf("%d", r.StepsCompleted),
			warnings,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()

	for _, r := range results {
		for _, w := range r.Warnings {
			pterm.Warning.Printfln("%s: %s", r.User, w)
		}
	}
}

func Info(msg string) {
	pterm.Info.Println(msg)
}

func Success(msg string) {
	pterm.Success.Println(msg)
}

func Warning(msg string) {
	pterm.Warning.Println(msg)
}

func Error(msg string) {
	pterm.Error.Println(msg)
}

func Fatal(msg string) {
	pterm.Fatal.Println(msg)
}
