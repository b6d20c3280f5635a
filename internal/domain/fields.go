package domain

import (
	"errors"
	"fmt"
)

// Field names a single updatable slot on the Brief. The wizard, the role
// registry, and the completion calculator all speak in these tokens, so there
// is exactly one source of truth for what a field is and when it counts as
// filled.
type Field string

const (
	FieldClientName    Field = "clientName"
	FieldClientCompany Field = "clientCompany"
	FieldClientEmail   Field = "clientEmail"
	FieldClientPhone   Field = "clientPhone"

	FieldProjectName       Field = "projectName"
	FieldProjectType       Field = "projectType"
	FieldBudget            Field = "budget"
	FieldOverview          Field = "overview"
	FieldObjectives        Field = "objectives"
	FieldAudience          Field = "audience"
	FieldBrandGuidelines   Field = "brandGuidelines"
	FieldStyleReferences   Field = "styleReferences"
	FieldLegalRequirements Field = "legalRequirements"

	FieldShootDates      Field = "shootDates"
	FieldShootStartTime  Field = "shootStartTime"
	FieldShootFinishTime Field = "shootFinishTime"
	FieldShootStatus     Field = "shootStatus"
	FieldLocation        Field = "location"
	FieldMoodboardLink   Field = "moodboardLink"

	FieldPermitsRequired       Field = "permitsRequired"
	FieldInsuranceDetails      Field = "insuranceDetails"
	FieldSafetyProtocols       Field = "safetyProtocols"
	FieldBackupPlan            Field = "backupPlan"
	FieldPowerRequirements     Field = "powerRequirements"
	FieldInternetRequired      Field = "internetRequired"
	FieldCateringNotes         Field = "cateringNotes"
	FieldTransportationDetails Field = "transportationDetails"

	FieldEditingRequirements Field = "editingRequirements"
	FieldColorGradingNotes   Field = "colorGradingNotes"
	FieldTurnaroundTime      Field = "turnaroundTime"
	FieldRevisionRounds      Field = "revisionRounds"
	FieldFinalDeliveryFormat Field = "finalDeliveryFormat"

	FieldSchedule         Field = "schedule"
	FieldEmergencyContact Field = "emergencyContact"
	FieldNearestHospital  Field = "nearestHospital"
	FieldNotes            Field = "notes"

	FieldDeliverables    Field = "deliverables"
	FieldFileTypes       Field = "fileTypes"
	FieldUsageRights     Field = "usageRights"
	FieldSocialPlatforms Field = "socialPlatforms"

	FieldCurrency Field = "currency"

	// List-valued pseudo-fields: mutated through the list engine, but they
	// still participate in required-field gating and completion scoring.
	FieldShotList        Field = "shotList"
	FieldCrew            Field = "crew"
	FieldBudgetLineItems Field = "budgetLineItems"
	FieldEquipment       Field = "equipment"
)

// ErrUnknownField is returned for a field name outside the registry.
var ErrUnknownField = errors.New("unknown brief field")

// Apply merges a single value into the brief. String fields take string,
// bool fields bool, string-list fields []string. List entities (shotList,
// crew, budget, equipment) are mutated through the list engine instead and
// are rejected here.
func Apply(b *Brief, f Field, value any) error {
	switch f {
	case FieldClientName:
		return setString(&b.ClientName, f, value)
	case FieldClientCompany:
		return setString(&b.ClientCompany, f, value)
	case FieldClientEmail:
		return setString(&b.ClientEmail, f, value)
	case FieldClientPhone:
		return setString(&b.ClientPhone, f, value)
	case FieldProjectName:
		return setString(&b.ProjectName, f, value)
	case FieldProjectType:
		return setString(&b.ProjectType, f, value)
	case FieldBudget:
		return setString(&b.Budget, f, value)
	case FieldOverview:
		return setString(&b.Overview, f, value)
	case FieldObjectives:
		return setString(&b.Objectives, f, value)
	case FieldAudience:
		return setString(&b.Audience, f, value)
	case FieldBrandGuidelines:
		return setString(&b.BrandGuidelines, f, value)
	case FieldStyleReferences:
		return setString(&b.StyleReferences, f, value)
	case FieldLegalRequirements:
		return setString(&b.LegalRequirements, f, value)
	case FieldShootDates:
		return setString(&b.ShootDates, f, value)
	case FieldShootStartTime:
		return setString(&b.ShootStartTime, f, value)
	case FieldShootFinishTime:
		return setString(&b.ShootFinishTime, f, value)
	case FieldShootStatus:
		s, err := asString(f, value)
		if err != nil {
			return err
		}
		b.ShootStatus = ShootStatus(s)
		return nil
	case FieldLocation:
		return setString(&b.Location, f, value)
	case FieldMoodboardLink:
		return setString(&b.MoodboardLink, f, value)
	case FieldPermitsRequired:
		return setString(&b.PermitsRequired, f, value)
	case FieldInsuranceDetails:
		return setString(&b.InsuranceDetails, f, value)
	case FieldSafetyProtocols:
		return setString(&b.SafetyProtocols, f, value)
	case FieldBackupPlan:
		return setString(&b.BackupPlan, f, value)
	case FieldPowerRequirements:
		return setString(&b.PowerRequirements, f, value)
	case FieldInternetRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field %s: expected bool, got %T", f, value)
		}
		b.InternetRequired = v
		return nil
	case FieldCateringNotes:
		return setString(&b.CateringNotes, f, value)
	case FieldTransportationDetails:
		return setString(&b.TransportationDetails, f, value)
	case FieldEditingRequirements:
		return setString(&b.EditingRequirements, f, value)
	case FieldColorGradingNotes:
		return setString(&b.ColorGradingNotes, f, value)
	case FieldTurnaroundTime:
		return setString(&b.TurnaroundTime, f, value)
	case FieldRevisionRounds:
		return setString(&b.RevisionRounds, f, value)
	case FieldFinalDeliveryFormat:
		return setString(&b.FinalDeliveryFormat, f, value)
	case FieldSchedule:
		return setString(&b.Schedule, f, value)
	case FieldEmergencyContact:
		return setString(&b.EmergencyContact, f, value)
	case FieldNearestHospital:
		return setString(&b.NearestHospital, f, value)
	case FieldNotes:
		return setString(&b.Notes, f, value)
	case FieldDeliverables:
		return setStrings(&b.Deliverables, f, value)
	case FieldFileTypes:
		return setStrings(&b.FileTypes, f, value)
	case FieldUsageRights:
		return setStrings(&b.UsageRights, f, value)
	case FieldSocialPlatforms:
		return setStrings(&b.SocialPlatforms, f, value)
	case FieldCurrency:
		s, err := asString(f, value)
		if err != nil {
			return err
		}
		b.Currency = Currency(s)
		return nil
	case FieldShotList, FieldCrew, FieldBudgetLineItems, FieldEquipment:
		return fmt.Errorf("field %s: list entities are mutated through the list engine", f)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
}

// Present reports whether a field counts as filled: non-empty string for
// scalars, non-empty slice for list-valued fields. Unknown fields are never
// present.
func Present(b *Brief, f Field) bool {
	switch f {
	case FieldShotList:
		return len(b.ShotList) > 0
	case FieldCrew:
		return len(b.Crew) > 0
	case FieldBudgetLineItems:
		return len(b.BudgetLineItems) > 0
	case FieldEquipment:
		return len(b.Equipment) > 0
	case FieldDeliverables:
		return len(b.Deliverables) > 0
	case FieldFileTypes:
		return len(b.FileTypes) > 0
	case FieldUsageRights:
		return len(b.UsageRights) > 0
	case FieldSocialPlatforms:
		return len(b.SocialPlatforms) > 0
	case FieldInternetRequired:
		return b.InternetRequired
	default:
		return StringValue(b, f) != ""
	}
}

// StringValue returns the current value of a scalar string field, or "" for
// list-valued and unknown fields. Used by the wizard forms to pre-fill inputs.
func StringValue(b *Brief, f Field) string {
	switch f {
	case FieldClientName:
		return b.ClientName
	case FieldClientCompany:
		return b.ClientCompany
	case FieldClientEmail:
		return b.ClientEmail
	case FieldClientPhone:
		return b.ClientPhone
	case FieldProjectName:
		return b.ProjectName
	case FieldProjectType:
		return b.ProjectType
	case FieldBudget:
		return b.Budget
	case FieldOverview:
		return b.Overview
	case FieldObjectives:
		return b.Objectives
	case FieldAudience:
		return b.Audience
	case FieldBrandGuidelines:
		return b.BrandGuidelines
	case FieldStyleReferences:
		return b.StyleReferences
	case FieldLegalRequirements:
		return b.LegalRequirements
	case FieldShootDates:
		return b.ShootDates
	case FieldShootStartTime:
		return b.ShootStartTime
	case FieldShootFinishTime:
		return b.ShootFinishTime
	case FieldShootStatus:
		return string(b.ShootStatus)
	case FieldLocation:
		return b.Location
	case FieldMoodboardLink:
		return b.MoodboardLink
	case FieldPermitsRequired:
		return b.PermitsRequired
	case FieldInsuranceDetails:
		return b.InsuranceDetails
	case FieldSafetyProtocols:
		return b.SafetyProtocols
	case FieldBackupPlan:
		return b.BackupPlan
	case FieldPowerRequirements:
		return b.PowerRequirements
	case FieldCateringNotes:
		return b.CateringNotes
	case FieldTransportationDetails:
		return b.TransportationDetails
	case FieldEditingRequirements:
		return b.EditingRequirements
	case FieldColorGradingNotes:
		return b.ColorGradingNotes
	case FieldTurnaroundTime:
		return b.TurnaroundTime
	case FieldRevisionRounds:
		return b.RevisionRounds
	case FieldFinalDeliveryFormat:
		return b.FinalDeliveryFormat
	case FieldSchedule:
		return b.Schedule
	case FieldEmergencyContact:
		return b.EmergencyContact
	case FieldNearestHospital:
		return b.NearestHospital
	case FieldNotes:
		return b.Notes
	case FieldCurrency:
		return string(b.Currency)
	default:
		return ""
	}
}

// Label returns a human-readable name for a field, for gating messages and
// the status display.
func Label(f Field) string {
	switch f {
	case FieldClientName:
		return "Your Name"
	case FieldClientEmail:
		return "Email"
	case FieldProjectName:
		return "Project Name"
	case FieldProjectType:
		return "Project Type"
	case FieldOverview:
		return "Overview"
	case FieldObjectives:
		return "Objectives"
	case FieldBudget:
		return "Budget"
	case FieldShootDates:
		return "Shoot Dates"
	case FieldLocation:
		return "Location"
	case FieldDeliverables:
		return "Deliverables"
	case FieldShotList:
		return "Shot List"
	case FieldCrew:
		return "Crew"
	default:
		return string(f)
	}
}

func setString(dst *string, f Field, value any) error {
	s, err := asString(f, value)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

func asString(f Field, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %s: expected string, got %T", f, value)
	}
	return s, nil
}

func setStrings(dst *[]string, f Field, value any) error {
	v, ok := value.([]string)
	if !ok {
		return fmt.Errorf("field %s: expected []string, got %T", f, value)
	}
	*dst = append([]string(nil), v...)
	return nil
}
