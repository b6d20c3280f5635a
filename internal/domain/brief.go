package domain

import (
	"time"

	"github.com/google/uuid"
)

// Brief is the single in-progress production brief being edited.
// Every scalar field is optional until filled; which fields are mandatory
// is decided by the active role, not by this type.
type Brief struct {
	// Metadata
	ID        string    `json:"id"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// LastID is the high-water mark of the list-item ID allocator.
	// Persisted so IDs of removed items are never recycled across sessions.
	LastID int64 `json:"lastId"`

	// Contact
	ClientName    string `json:"clientName,omitempty"`
	ClientCompany string `json:"clientCompany,omitempty"`
	ClientEmail   string `json:"clientEmail,omitempty"`
	ClientPhone   string `json:"clientPhone,omitempty"`

	// Project
	ProjectName       string `json:"projectName,omitempty"`
	ProjectType       string `json:"projectType,omitempty"`
	Budget            string `json:"budget,omitempty"`
	Overview          string `json:"overview,omitempty"`
	Objectives        string `json:"objectives,omitempty"`
	Audience          string `json:"audience,omitempty"`
	BrandGuidelines   string `json:"brandGuidelines,omitempty"`
	StyleReferences   string `json:"styleReferences,omitempty"`
	LegalRequirements string `json:"legalRequirements,omitempty"`

	// Shoot
	ShootDates      string      `json:"shootDates,omitempty"`
	ShootStartTime  string      `json:"shootStartTime,omitempty"`
	ShootFinishTime string      `json:"shootFinishTime,omitempty"`
	ShootStatus     ShootStatus `json:"shootStatus,omitempty"`
	Location        string      `json:"location,omitempty"`
	MoodboardLink   string      `json:"moodboardLink,omitempty"`

	// Production logistics
	PermitsRequired       string `json:"permitsRequired,omitempty"`
	InsuranceDetails      string `json:"insuranceDetails,omitempty"`
	SafetyProtocols       string `json:"safetyProtocols,omitempty"`
	BackupPlan            string `json:"backupPlan,omitempty"`
	PowerRequirements     string `json:"powerRequirements,omitempty"`
	InternetRequired      bool   `json:"internetRequired,omitempty"`
	CateringNotes         string `json:"cateringNotes,omitempty"`
	TransportationDetails string `json:"transportationDetails,omitempty"`

	// Post-production
	EditingRequirements string `json:"editingRequirements,omitempty"`
	ColorGradingNotes   string `json:"colorGradingNotes,omitempty"`
	TurnaroundTime      string `json:"turnaroundTime,omitempty"`
	RevisionRounds      string `json:"revisionRounds,omitempty"`
	FinalDeliveryFormat string `json:"finalDeliveryFormat,omitempty"`

	// Call sheet
	Schedule         string `json:"schedule,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	NearestHospital  string `json:"nearestHospital,omitempty"`
	Notes            string `json:"notes,omitempty"`

	// Deliverables
	Deliverables    []string `json:"deliverables"`
	FileTypes       []string `json:"fileTypes"`
	UsageRights     []string `json:"usageRights"`
	SocialPlatforms []string `json:"socialPlatforms"`

	// Budget
	Currency        Currency         `json:"currency"`
	BudgetLineItems []BudgetLineItem `json:"budgetLineItems"`

	// Lists
	ShotList  []Shot          `json:"shotList"`
	Crew      []CrewMember    `json:"crew"`
	Equipment []EquipmentItem `json:"equipment"`
}

// NewBrief returns the empty initial document shape.
func NewBrief() *Brief {
	now := time.Now().UTC()
	return &Brief{
		ID:              uuid.New().String(),
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
		Currency:        CurrencyUSD,
		Deliverables:    []string{},
		FileTypes:       []string{},
		UsageRights:     []string{},
		SocialPlatforms: []string{},
		BudgetLineItems: []BudgetLineItem{},
		ShotList:        []Shot{},
		Crew:            []CrewMember{},
		Equipment:       []EquipmentItem{},
	}
}

// Touch stamps the modification time.
func (b *Brief) Touch() {
	b.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy of the brief. Exporters and renderers work from
// a clone so an in-flight edit can never produce a half-written artifact.
func (b *Brief) Clone() *Brief {
	c := *b
	c.Deliverables = append([]string(nil), b.Deliverables...)
	c.FileTypes = append([]string(nil), b.FileTypes...)
	c.UsageRights = append([]string(nil), b.UsageRights...)
	c.SocialPlatforms = append([]string(nil), b.SocialPlatforms...)
	c.BudgetLineItems = append([]BudgetLineItem(nil), b.BudgetLineItems...)
	c.ShotList = append([]Shot(nil), b.ShotList...)
	c.Crew = append([]CrewMember(nil), b.Crew...)
	c.Equipment = append([]EquipmentItem(nil), b.Equipment...)
	return &c
}
