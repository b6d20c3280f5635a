// Package role is the static registry mapping each persona to its permission
// set, its ordered wizard step sequence, its required fields, and its copy.
// Get is total: an unknown role falls back to the Client configuration.
package role

import "github.com/averyhale/briefer/internal/domain"

// Role is one of the three fixed personas.
type Role string

const (
	Client       Role = "Client"
	Photographer Role = "Photographer"
	Producer     Role = "Producer"
)

// All lists the roles in presentation order.
var All = []Role{Client, Photographer, Producer}

// Valid reports whether r names a known role.
func Valid(r Role) bool {
	switch r {
	case Client, Photographer, Producer:
		return true
	}
	return false
}

// Permissions gates optional features per role.
type Permissions struct {
	EditBudget      bool
	ManageCrew      bool
	TechnicalSpecs  bool
	UseAssist       bool
	ManageEquipment bool
	CallSheet       bool
	ReorderShots    bool
	SetShotPriority bool
	ExportCSV       bool
	ExportCalendar  bool
}

// Placeholders carries role-flavored input hints.
type Placeholders struct {
	Overview   string `yaml:"overview"`
	Objectives string `yaml:"objectives"`
	Notes      string `yaml:"notes"`
}

// Config is everything the engine needs to know about a role.
type Config struct {
	Role           Role
	DisplayName    string
	Description    string
	Permissions    Permissions
	Steps          []Step
	RequiredFields []domain.Field
	Placeholders   Placeholders
	WelcomeMessage string

	// AssistContext flavors generated-text prompts for this persona.
	AssistContext string
}

var configs = map[Role]Config{
	Client: {
		Role:        Client,
		DisplayName: "Client",
		Description: "Create a brief to communicate your vision and requirements",
		Permissions: Permissions{
			EditBudget:      true,
			UseAssist:       true,
			SetShotPriority: true,
		},
		RequiredFields: []domain.Field{
			domain.FieldProjectName, domain.FieldProjectType, domain.FieldOverview,
			domain.FieldObjectives, domain.FieldClientName, domain.FieldClientEmail,
			domain.FieldShootDates, domain.FieldLocation, domain.FieldDeliverables,
		},
		Placeholders: Placeholders{
			Overview:   "Describe what you want to achieve with this photoshoot...",
			Objectives: "What are your main goals? (e.g., increase brand awareness, showcase new products...)",
			Notes:      "Any additional details or special requests...",
		},
		WelcomeMessage: "Let's create a detailed brief to bring your vision to life.",
		AssistContext:  "Focus on clear communication, visual concepts, and non-technical language suitable for a client audience.",
	},
	Photographer: {
		Role:        Photographer,
		DisplayName: "Photographer",
		Description: "Plan your shoot with detailed shot lists and technical specs",
		Permissions: Permissions{
			EditBudget:      true,
			ManageCrew:      true,
			TechnicalSpecs:  true,
			UseAssist:       true,
			ManageEquipment: true,
			CallSheet:       true,
			ReorderShots:    true,
			SetShotPriority: true,
			ExportCSV:       true,
			ExportCalendar:  true,
		},
		RequiredFields: []domain.Field{
			domain.FieldProjectName, domain.FieldProjectType, domain.FieldOverview,
			domain.FieldShootDates, domain.FieldLocation, domain.FieldShotList,
		},
		Placeholders: Placeholders{
			Overview:   "Technical approach, style, and creative direction for this project...",
			Objectives: "Creative objectives and technical goals for this shoot...",
			Notes:      "Technical notes, backup plans, contingencies...",
		},
		WelcomeMessage: "Ready to plan your shoot? Build shot lists, manage equipment, and coordinate your crew.",
		AssistContext:  "Include technical specifications, camera settings, lighting details, and professional photography terminology.",
	},
	Producer: {
		Role:        Producer,
		DisplayName: "Producer",
		Description: "Manage production logistics, crew, budgets, and schedules",
		Permissions: Permissions{
			EditBudget:      true,
			ManageCrew:      true,
			TechnicalSpecs:  true,
			UseAssist:       true,
			ManageEquipment: true,
			CallSheet:       true,
			ReorderShots:    true,
			SetShotPriority: true,
			ExportCSV:       true,
			ExportCalendar:  true,
		},
		RequiredFields: []domain.Field{
			domain.FieldProjectName, domain.FieldProjectType, domain.FieldOverview,
			domain.FieldBudget, domain.FieldShootDates, domain.FieldLocation,
			domain.FieldCrew,
		},
		Placeholders: Placeholders{
			Overview:   "Production overview, key deliverables, and coordination requirements...",
			Objectives: "Production objectives, timeline requirements, and success metrics...",
			Notes:      "Logistics notes, crew information, production details...",
		},
		WelcomeMessage: "Let's coordinate this production from pre-production to wrap.",
		AssistContext:  "Focus on production logistics, crew coordination, budget considerations, and timeline management.",
	},
}

// Get returns the configuration for a role. Unknown roles fall back to the
// Client config rather than failing.
func Get(r Role) Config {
	cfg, ok := configs[r]
	if !ok {
		cfg = configs[Client]
	}
	cfg.RequiredFields = append([]domain.Field(nil), cfg.RequiredFields...)
	cfg.Steps = stepsFor(cfg.Role, cfg.RequiredFields)
	return cfg
}

// HasPermission reports a single permission flag for a role.
func HasPermission(r Role, pick func(Permissions) bool) bool {
	return pick(Get(r).Permissions)
}
