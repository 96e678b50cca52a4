package document

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("document not found")

// Slot names the fixed positions a document can occupy on an application.
// The set is a closed schema; uploads outside it are rejected.
type Slot string

const (
	SlotEmploymentProof Slot = "employment_proof"
	SlotSponsor1Doc     Slot = "sponsor1_doc"
	SlotSponsor2Doc     Slot = "sponsor2_doc"
	SlotTermsDoc        Slot = "terms_doc"
	SlotLocalGovtLetter Slot = "local_govt_letter"
	SlotTitleDeed       Slot = "title_deed"
	SlotVehicleRegCard  Slot = "vehicle_reg_card"
	SlotCSEECertificate Slot = "csee_certificate"
	SlotACSECertificate Slot = "acse_certificate"
	SlotHigherEduCert   Slot = "higher_edu_certificate"
)

var allSlots = map[Slot]bool{
	SlotEmploymentProof: true,
	SlotSponsor1Doc:     true,
	SlotSponsor2Doc:     true,
	SlotTermsDoc:        true,
	SlotLocalGovtLetter: true,
	SlotTitleDeed:       true,
	SlotVehicleRegCard:  true,
	SlotCSEECertificate: true,
	SlotACSECertificate: true,
	SlotHigherEduCert:   true,
}

func ValidSlot(s Slot) bool { return allSlots[s] }

// RequiredSlots returns the slots every application must carry. Employment
// proof is required only for employed applicants.
func RequiredSlots(employed bool) []Slot {
	req := []Slot{SlotSponsor1Doc, SlotSponsor2Doc, SlotTermsDoc}
	if employed {
		req = append(req, SlotEmploymentProof)
	}
	return req
}

type Document struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"id"`
	ApplicationID uint64    `gorm:"column:loan_application_id;not null;index:idx_documents_application" json:"loan_application_id"`
	Slot          Slot      `gorm:"size:50;not null" json:"slot"`
	Filename      string    `gorm:"size:255;not null" json:"filename"`
	ObjectKey     string    `gorm:"size:255;not null" json:"object_key"`
	UploadedAt    time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (Document) TableName() string { return "documents" }
