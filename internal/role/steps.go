package role

import "github.com/averyhale/briefer/internal/domain"

// StepID is a stable string token identifying one wizard page. External
// consumers (the sidebar, exporters) treat these as an opaque enumerated set;
// the one guarantee is that "review" is always the terminal step.
type StepID string

const (
	StepClientInfo     StepID = "client-info"
	StepProjectDetails StepID = "project-details"
	StepMoodboard      StepID = "moodboard"
	StepContact        StepID = "contact"
	StepLocationDate   StepID = "location-date"
	StepDeliverables   StepID = "deliverables"
	StepShotList       StepID = "shot-list"
	StepEquipment      StepID = "equipment"
	StepCrew           StepID = "crew"
	StepCallSheet      StepID = "call-sheet"
	StepBudget         StepID = "budget"
	StepReview         StepID = "review"
)

// StepKind selects how a step is edited. Dispatch is an explicit switch in
// the wizard runner; there is no duck typing on step contents.
type StepKind string

const (
	KindForm      StepKind = "form"
	KindShotList  StepKind = "shotlist"
	KindCrew      StepKind = "crew"
	KindBudget    StepKind = "budget"
	KindEquipment StepKind = "equipment"
	KindReview    StepKind = "review"
)

// Step describes one wizard page: which fields it edits and which of them
// gate forward navigation. Optional steps never gate.
type Step struct {
	ID       StepID
	Kind     StepKind
	Title    string
	Fields   []domain.Field
	Gating   []domain.Field
	Optional bool
}

// The step catalog. Gating is not stored here: it is derived per role as the
// intersection of a step's fields with the role's required-field set, so the
// wizard and the completion calculator can never disagree about what
// "required" means.
var allSteps = map[StepID]Step{
	StepClientInfo: {
		ID: StepClientInfo, Kind: KindForm, Title: "Your Information",
		Fields: []domain.Field{domain.FieldClientName, domain.FieldClientCompany, domain.FieldClientEmail, domain.FieldClientPhone},
	},
	StepProjectDetails: {
		ID: StepProjectDetails, Kind: KindForm, Title: "Project Details",
		Fields: []domain.Field{domain.FieldProjectName, domain.FieldProjectType, domain.FieldOverview, domain.FieldObjectives, domain.FieldAudience},
	},
	StepMoodboard: {
		ID: StepMoodboard, Kind: KindForm, Title: "Mood Board",
		Fields:   []domain.Field{domain.FieldMoodboardLink, domain.FieldStyleReferences, domain.FieldBrandGuidelines},
		Optional: true,
	},
	StepContact: {
		ID: StepContact, Kind: KindForm, Title: "Contact Info",
		Fields: []domain.Field{domain.FieldClientPhone, domain.FieldClientCompany, domain.FieldEmergencyContact},
	},
	StepLocationDate: {
		ID: StepLocationDate, Kind: KindForm, Title: "Date & Location",
		Fields: []domain.Field{domain.FieldShootDates, domain.FieldShootStartTime, domain.FieldShootFinishTime, domain.FieldShootStatus, domain.FieldLocation},
	},
	StepDeliverables: {
		ID: StepDeliverables, Kind: KindForm, Title: "Deliverables",
		Fields: []domain.Field{domain.FieldDeliverables, domain.FieldFileTypes, domain.FieldUsageRights, domain.FieldSocialPlatforms, domain.FieldTurnaroundTime},
	},
	StepShotList: {
		ID: StepShotList, Kind: KindShotList, Title: "Shot List",
		Fields:   []domain.Field{domain.FieldShotList},
		Optional: true,
	},
	StepEquipment: {
		ID: StepEquipment, Kind: KindEquipment, Title: "Equipment",
		Fields:   []domain.Field{domain.FieldEquipment},
		Optional: true,
	},
	StepCrew: {
		ID: StepCrew, Kind: KindCrew, Title: "Crew & Talent",
		Fields:   []domain.Field{domain.FieldCrew},
		Optional: true,
	},
	StepCallSheet: {
		ID: StepCallSheet, Kind: KindForm, Title: "Call Sheet & Logistics",
		Fields: []domain.Field{domain.FieldSchedule, domain.FieldEmergencyContact, domain.FieldNearestHospital, domain.FieldCateringNotes, domain.FieldTransportationDetails, domain.FieldNotes},
		Optional: true,
	},
	StepBudget: {
		ID: StepBudget, Kind: KindBudget, Title: "Budget",
		Fields: []domain.Field{domain.FieldBudget, domain.FieldCurrency, domain.FieldBudgetLineItems},
	},
	StepReview: {
		ID: StepReview, Kind: KindReview, Title: "Review & Distribute",
	},
}

// Lookup returns the catalog entry for a step ID.
func Lookup(id StepID) (Step, bool) {
	s, ok := allSteps[id]
	return s, ok
}

var roleSteps = map[Role][]StepID{
	Client: {
		StepClientInfo, StepProjectDetails, StepMoodboard, StepContact,
		StepDeliverables, StepShotList, StepReview,
	},
	Photographer: {
		StepClientInfo, StepProjectDetails, StepMoodboard, StepLocationDate,
		StepDeliverables, StepShotList, StepEquipment, StepCrew, StepReview,
	},
	Producer: {
		StepClientInfo, StepProjectDetails, StepBudget, StepLocationDate,
		StepMoodboard, StepDeliverables, StepShotList, StepEquipment,
		StepCallSheet, StepReview,
	},
}

// stepLabels holds role-specific step title overrides.
var stepLabels = map[StepID]map[Role]string{
	StepShotList: {
		Client:       "Shot Ideas",
		Photographer: "Shot List & Technical Specs",
		Producer:     "Production Shot List",
	},
	StepDeliverables: {
		Client:       "What You Need",
		Photographer: "Deliverables & Usage",
		Producer:     "Production Requirements",
	},
	StepReview: {
		Client:       "Review & Submit",
		Photographer: "Review & Share",
		Producer:     "Review & Distribute",
	},
}

// stepsFor materializes the ordered step sequence for a role, applying
// role-specific titles and deriving each step's gating fields from the
// role's required set. Optional steps never gate.
func stepsFor(r Role, required []domain.Field) []Step {
	ids, ok := roleSteps[r]
	if !ok {
		ids = roleSteps[Client]
	}
	requiredSet := make(map[domain.Field]bool, len(required))
	for _, f := range required {
		requiredSet[f] = true
	}
	steps := make([]Step, 0, len(ids))
	for _, id := range ids {
		s := allSteps[id]
		if label, ok := stepLabels[id][r]; ok {
			s.Title = label
		}
		if !s.Optional {
			for _, f := range s.Fields {
				if requiredSet[f] {
					s.Gating = append(s.Gating, f)
				}
			}
		}
		steps = append(steps, s)
	}
	return steps
}
