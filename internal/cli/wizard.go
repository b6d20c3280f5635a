package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/averyhale/briefer/internal/cli/formatter"
	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/progress"
	"github.com/averyhale/briefer/internal/role"
	"github.com/averyhale/briefer/internal/store"
	"github.com/averyhale/briefer/internal/wizard"
	"github.com/charmbracelet/huh"
)

// navAction is what the user chose to do after finishing a step's editor.
type navAction string

const (
	navNext navAction = "next"
	navBack navAction = "back"
	navJump navAction = "jump"
	navQuit navAction = "quit"
)

// runWizard drives the step loop for the active role until the user finishes
// the review step or quits. Auto-save runs in the background for the whole
// session; a final explicit save happens on exit.
func runWizard(app *App, machine *wizard.Machine) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	saver := store.NewAutoSaver(app.Store, store.DefaultAutoSaveInterval)
	saver.OnError = func(err error) {
		fmt.Fprintf(os.Stderr, "auto-save failed: %v\n", err)
	}
	go saver.Run(ctx)

	cfg := role.Get(machine.Role())

	for {
		app.Store.SetStepIndex(machine.Index())
		step := machine.Current()
		printStepHeader(app, machine, cfg)

		var err error
		switch step.Kind {
		case role.KindForm:
			err = runFormStep(app, step, cfg)
		case role.KindShotList:
			err = runShotBoard(app)
		case role.KindCrew:
			err = runCrewEditor(app)
		case role.KindBudget:
			err = runBudgetStep(app, step, cfg)
		case role.KindEquipment:
			err = runEquipmentEditor(app)
		case role.KindReview:
			done, reviewErr := runReviewStep(app, cfg)
			if reviewErr != nil {
				return reviewErr
			}
			if done {
				return app.Store.SaveNow(ctx)
			}
			machine.Prev()
			continue
		}
		if err != nil {
			return err
		}

		action, jumpTo, err := promptNavigation(machine)
		if err != nil {
			return err
		}

		switch action {
		case navNext:
			snapshot := app.Store.Snapshot()
			if !machine.Next(snapshot) {
				printGatingErrors(machine, snapshot)
			}
		case navBack:
			machine.Prev()
		case navJump:
			machine.GoTo(jumpTo)
		case navQuit:
			app.Store.SetStepIndex(machine.Index())
			return app.Store.SaveNow(ctx)
		}
	}
}

// printStepHeader renders the step position, title, and completion bar.
func printStepHeader(app *App, machine *wizard.Machine, cfg role.Config) {
	snapshot := app.Store.Snapshot()
	pct := progress.Percentage(snapshot, cfg.RequiredFields)

	fmt.Println()
	fmt.Println(formatter.Header(fmt.Sprintf("Step %d/%d — %s",
		machine.Index()+1, len(machine.Steps()), machine.Current().Title)))
	fmt.Printf("  %s %s\n\n", formatter.Dim(cfg.DisplayName), formatter.RenderProgress(float64(pct)/100, 24))
}

// printGatingErrors lists the required fields blocking the advance.
func printGatingErrors(machine *wizard.Machine, brief *domain.Brief) {
	fmt.Println(formatter.StyleRed.Render("  Please fill in the required fields before continuing:"))
	for _, f := range machine.MissingGatingFields(brief) {
		fmt.Printf("  %s %s\n", formatter.StyleRed.Render("•"), domain.Label(f))
	}
	fmt.Println()
}

// runFormStep shows the step's field form and applies changed values.
func runFormStep(app *App, step role.Step, cfg role.Config) error {
	if err := maybeDraftOverview(app, step); err != nil {
		return err
	}
	form, bindings := buildStepForm(step, app.Store.Snapshot(), cfg)
	if err := form.Run(); err != nil {
		return err
	}
	return applyBindings(app, bindings)
}

// maybeDraftOverview offers a generated overview suggestion when the step
// edits the overview field and it is still blank. The suggestion pre-fills
// the form; the user edits or replaces it like any typed value.
func maybeDraftOverview(app *App, step role.Step) error {
	if app.OverviewDraft == nil {
		return nil
	}
	if !role.HasPermission(app.Store.Role(), func(p role.Permissions) bool { return p.UseAssist }) {
		return nil
	}
	editsOverview := false
	for _, f := range step.Fields {
		if f == domain.FieldOverview {
			editsOverview = true
			break
		}
	}
	snapshot := app.Store.Snapshot()
	if !editsOverview || snapshot.Overview != "" || snapshot.ProjectName == "" {
		return nil
	}

	var wantDraft bool
	if err := wizardConfirm("Draft an overview suggestion from what you've entered so far?", &wantDraft).Run(); err != nil {
		return err
	}
	if !wantDraft {
		return nil
	}

	release, ok := app.Drafts.Begin("overview-draft")
	if !ok {
		return nil
	}
	defer release()

	fmt.Println("  " + formatter.Dim("Drafting..."))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	text, err := app.OverviewDraft.Draft(ctx, snapshot, app.Store.Role())
	if err != nil {
		fmt.Println("  " + formatter.StyleRed.Render("Draft failed: "+err.Error()))
		return nil
	}
	return app.Store.UpdateField(domain.FieldOverview, text)
}

// applyBindings writes edited form values back into the document. Unchanged
// scalars are skipped so an untouched form does not dirty the session.
func applyBindings(app *App, bindings []*fieldValue) error {
	for _, fv := range bindings {
		if fv.isList {
			if err := app.Store.UpdateField(fv.field, fv.list); err != nil {
				return err
			}
			continue
		}
		if fv.text == fv.initial {
			continue
		}
		if err := app.Store.UpdateField(fv.field, fv.text); err != nil {
			return err
		}
	}
	return nil
}

// promptNavigation asks where to go after a step editor closes.
func promptNavigation(machine *wizard.Machine) (navAction, int, error) {
	options := []huh.Option[string]{}
	if !machine.AtEnd() {
		options = append(options, huh.NewOption("Continue →", string(navNext)))
	}
	if machine.Index() > 0 {
		options = append(options, huh.NewOption("← Back", string(navBack)))
	}
	options = append(options,
		huh.NewOption("Jump to step...", string(navJump)),
		huh.NewOption("Save & exit", string(navQuit)),
	)

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where to?").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(brieferHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return navQuit, 0, err
	}

	if navAction(choice) != navJump {
		return navAction(choice), 0, nil
	}

	stepOptions := make([]huh.Option[string], 0, len(machine.Steps()))
	for i, s := range machine.Steps() {
		stepOptions = append(stepOptions, huh.NewOption(
			fmt.Sprintf("%d. %s", i+1, s.Title), strconv.Itoa(i)))
	}
	var target string
	jumpForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Jump to").
				Options(stepOptions...).
				Value(&target),
		),
	).WithTheme(brieferHuhTheme()).WithShowHelp(false)
	if err := jumpForm.Run(); err != nil {
		return navQuit, 0, err
	}
	idx, _ := strconv.Atoi(target)
	return navJump, idx, nil
}

// runReviewStep renders the summary and asks whether the brief is finished.
// Returns true when the user confirms completion.
func runReviewStep(app *App, cfg role.Config) (bool, error) {
	snapshot := app.Store.Snapshot()
	fmt.Println(formatter.FormatStatus(snapshot, cfg, app.Store.LastSaved()))

	if missing := progress.Missing(snapshot, cfg.RequiredFields); len(missing) > 0 {
		fmt.Println(formatter.StyleYellow.Render("  The brief can be finished later; missing fields are listed above."))
	}

	var done bool
	if err := wizardConfirm("Finish and save this brief?", &done).Run(); err != nil {
		return false, err
	}
	return done, nil
}
