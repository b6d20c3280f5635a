package cli

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/role"
	"github.com/charmbracelet/huh"
)

// Checkbox option catalogs for the deliverables step.
var (
	deliverableOptions = []huh.Option[string]{
		huh.NewOption("Photography", "Photography"),
		huh.NewOption("Video", "Video"),
		huh.NewOption("Social Assets", "Social Assets"),
		huh.NewOption("Other", "Other"),
	}
	fileTypeOptions = []huh.Option[string]{
		huh.NewOption("JPEG", "JPEG"),
		huh.NewOption("TIFF", "TIFF"),
		huh.NewOption("PSD", "PSD"),
		huh.NewOption("InDesign/PDF", "InDesign/PDF"),
	}
	usageRightsOptions = []huh.Option[string]{
		huh.NewOption("Print", "Print"),
		huh.NewOption("Website", "Website"),
		huh.NewOption("Social Media", "Social Media"),
		huh.NewOption("Advertising", "Advertising"),
		huh.NewOption("Internal Use", "Internal Use"),
		huh.NewOption("Other", "Other"),
	}
	socialPlatformOptions = []huh.Option[string]{
		huh.NewOption("Instagram Feed (1:1, 4:5)", "Instagram Feed"),
		huh.NewOption("Instagram Story (9:16)", "Instagram Story"),
		huh.NewOption("Facebook Post", "Facebook Post"),
		huh.NewOption("LinkedIn Post", "LinkedIn Post"),
		huh.NewOption("X / Twitter Post", "X / Twitter Post"),
		huh.NewOption("Other", "Other"),
	}
)

// stringListFields are edited as checkbox groups rather than free text.
var stringListFieldOptions = map[domain.Field][]huh.Option[string]{
	domain.FieldDeliverables:    deliverableOptions,
	domain.FieldFileTypes:       fileTypeOptions,
	domain.FieldUsageRights:     usageRightsOptions,
	domain.FieldSocialPlatforms: socialPlatformOptions,
}

// longTextFields get a multi-line text box instead of a single-line input.
var longTextFields = map[domain.Field]bool{
	domain.FieldOverview:              true,
	domain.FieldObjectives:            true,
	domain.FieldNotes:                 true,
	domain.FieldSchedule:              true,
	domain.FieldStyleReferences:       true,
	domain.FieldBrandGuidelines:       true,
	domain.FieldCateringNotes:         true,
	domain.FieldTransportationDetails: true,
}

// fieldTitle returns the on-screen label for a field input.
func fieldTitle(f domain.Field) string {
	switch f {
	case domain.FieldClientName:
		return "Your Name"
	case domain.FieldClientCompany:
		return "Company"
	case domain.FieldClientEmail:
		return "Email"
	case domain.FieldClientPhone:
		return "Phone"
	case domain.FieldProjectName:
		return "Project Name"
	case domain.FieldProjectType:
		return "Project Type"
	case domain.FieldOverview:
		return "Project Overview"
	case domain.FieldObjectives:
		return "Key Objectives"
	case domain.FieldAudience:
		return "Target Audience"
	case domain.FieldMoodboardLink:
		return "Mood Board Link"
	case domain.FieldStyleReferences:
		return "Style References"
	case domain.FieldBrandGuidelines:
		return "Brand Guidelines"
	case domain.FieldShootDates:
		return "Shoot Date(s)"
	case domain.FieldShootStartTime:
		return "Start Time"
	case domain.FieldShootFinishTime:
		return "Finish Time"
	case domain.FieldShootStatus:
		return "Shoot Status"
	case domain.FieldLocation:
		return "Location"
	case domain.FieldDeliverables:
		return "Which deliverables are required?"
	case domain.FieldFileTypes:
		return "Required File Formats"
	case domain.FieldUsageRights:
		return "Image Usage Rights"
	case domain.FieldSocialPlatforms:
		return "Social Platforms / Aspect Ratios"
	case domain.FieldTurnaroundTime:
		return "Turnaround Time"
	case domain.FieldSchedule:
		return "Day Schedule"
	case domain.FieldEmergencyContact:
		return "Emergency Contact"
	case domain.FieldNearestHospital:
		return "Nearest Hospital"
	case domain.FieldCateringNotes:
		return "Catering Notes"
	case domain.FieldTransportationDetails:
		return "Transportation"
	case domain.FieldNotes:
		return "Additional Notes"
	case domain.FieldBudget:
		return "Budget Range"
	case domain.FieldCurrency:
		return "Currency"
	default:
		return domain.Label(f)
	}
}

// fieldPlaceholder returns the role-flavored hint for a field, if any.
func fieldPlaceholder(f domain.Field, cfg role.Config) string {
	switch f {
	case domain.FieldOverview:
		return cfg.Placeholders.Overview
	case domain.FieldObjectives:
		return cfg.Placeholders.Objectives
	case domain.FieldNotes:
		return cfg.Placeholders.Notes
	case domain.FieldProjectType:
		return "e.g., Food Photography, Corporate Headshots"
	case domain.FieldShootDates:
		return "YYYY-MM-DD"
	case domain.FieldShootStartTime, domain.FieldShootFinishTime:
		return "HH:MM"
	case domain.FieldMoodboardLink:
		return "https://..."
	default:
		return ""
	}
}

// validateOptionalEmail accepts empty or an RFC 5322 address.
func validateOptionalEmail(s string) error {
	if s == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

// validateOptionalTime accepts empty or HH:MM.
func validateOptionalTime(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}

// fieldValue holds the binding between one form input and its brief field.
type fieldValue struct {
	field   domain.Field
	text    string
	list    []string
	isList  bool
	initial string
}

// buildStepForm creates a huh form editing every field of a form-kind step,
// pre-filled from the current document. Returns the form plus the bindings to
// apply after the form completes.
func buildStepForm(step role.Step, brief *domain.Brief, cfg role.Config) (*huh.Form, []*fieldValue) {
	var fields []huh.Field
	var bindings []*fieldValue

	for _, f := range step.Fields {
		if options, ok := stringListFieldOptions[f]; ok {
			fv := &fieldValue{field: f, isList: true}
			fv.list = listValue(brief, f)
			fields = append(fields, huh.NewMultiSelect[string]().
				Title(fieldTitle(f)).
				Options(options...).
				Value(&fv.list))
			bindings = append(bindings, fv)
			continue
		}

		if f == domain.FieldShootStatus {
			fv := &fieldValue{field: f, text: string(brief.ShootStatus), initial: string(brief.ShootStatus)}
			fields = append(fields, huh.NewSelect[string]().
				Title(fieldTitle(f)).
				Options(
					huh.NewOption("Confirmed", string(domain.ShootConfirmed)),
					huh.NewOption("Pencil", string(domain.ShootPencil)),
					huh.NewOption("Proposed", string(domain.ShootProposed)),
					huh.NewOption("TBD", string(domain.ShootTBD)),
				).
				Value(&fv.text))
			bindings = append(bindings, fv)
			continue
		}

		if f == domain.FieldCurrency {
			fv := &fieldValue{field: f, text: string(brief.Currency), initial: string(brief.Currency)}
			fields = append(fields, huh.NewSelect[string]().
				Title(fieldTitle(f)).
				Options(
					huh.NewOption("USD", string(domain.CurrencyUSD)),
					huh.NewOption("EUR", string(domain.CurrencyEUR)),
					huh.NewOption("GBP", string(domain.CurrencyGBP)),
					huh.NewOption("CAD", string(domain.CurrencyCAD)),
					huh.NewOption("AUD", string(domain.CurrencyAUD)),
				).
				Value(&fv.text))
			bindings = append(bindings, fv)
			continue
		}

		fv := &fieldValue{field: f}
		fv.text = domain.StringValue(brief, f)
		fv.initial = fv.text

		if longTextFields[f] {
			fields = append(fields, huh.NewText().
				Title(fieldTitle(f)).
				Placeholder(fieldPlaceholder(f, cfg)).
				Lines(4).
				Value(&fv.text))
		} else {
			input := huh.NewInput().
				Title(fieldTitle(f)).
				Placeholder(fieldPlaceholder(f, cfg)).
				Value(&fv.text)
			switch f {
			case domain.FieldClientEmail:
				input = input.Validate(validateOptionalEmail)
			case domain.FieldShootStartTime, domain.FieldShootFinishTime:
				input = input.Validate(validateOptionalTime)
			}
			fields = append(fields, input)
		}
		bindings = append(bindings, fv)
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(brieferHuhTheme()).
		WithShowHelp(false)
	return form, bindings
}

// listValue returns the current contents of a string-list field.
func listValue(b *domain.Brief, f domain.Field) []string {
	switch f {
	case domain.FieldDeliverables:
		return append([]string(nil), b.Deliverables...)
	case domain.FieldFileTypes:
		return append([]string(nil), b.FileTypes...)
	case domain.FieldUsageRights:
		return append([]string(nil), b.UsageRights...)
	case domain.FieldSocialPlatforms:
		return append([]string(nil), b.SocialPlatforms...)
	default:
		return nil
	}
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(brieferHuhTheme()).WithShowHelp(false)
}

// wizardSelectRole creates a huh form to pick the editing role.
func wizardSelectRole(result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(role.All))
	for _, r := range role.All {
		cfg := role.Get(r)
		options = append(options, huh.NewOption(
			fmt.Sprintf("%s — %s", cfg.DisplayName, cfg.Description), string(r)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("I am a...").
				Options(options...).
				Value(result),
		),
	).WithTheme(brieferHuhTheme()).WithShowHelp(false)
}
