package model

import (
	"encoding/json"
	"fmt"
)

// ContractType is the discriminant of the contract union
type ContractType string

const (
	TypeEquipmentTrade        ContractType = "equipment-trade"
	TypeVideoService          ContractType = "video-service"
	TypeFilmmakerHire         ContractType = "filmmaker-hire"
	TypeEditorHire            ContractType = "editor-hire"
	TypeMaterialAuthorization ContractType = "material-authorization"
)

// ContractTypes lists the supported discriminants in menu order
var ContractTypes = []ContractType{
	TypeVideoService,
	TypeEquipmentTrade,
	TypeFilmmakerHire,
	TypeEditorHire,
	TypeMaterialAuthorization,
}

// Contract is implemented by every contract variant
type Contract interface {
	Type() ContractType
}

// ContractParty identifies a person or company signing a contract.
// Any field may be empty.
type ContractParty struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// CompanyIdentity is the service provider. LegalTaxID and LegalAddress
// describe the registered seat, printed where a contract needs it instead
// of the general address.
type CompanyIdentity struct {
	Name         string `json:"name" yaml:"name"`
	TaxID        string `json:"tax_id" yaml:"tax_id"`
	Address      string `json:"address" yaml:"address"`
	Email        string `json:"email" yaml:"email"`
	LegalTaxID   string `json:"legal_tax_id,omitempty" yaml:"legal_tax_id"`
	LegalAddress string `json:"legal_address,omitempty" yaml:"legal_address"`
}

// Signing holds the fields every contract closes with
type Signing struct {
	Forum string `json:"forum"`
	City  string `json:"city"`
	Date  string `json:"date"`
}

// EquipmentTradeContract trades a piece of equipment for production services
type EquipmentTradeContract struct {
	Party                ContractParty `json:"party"`
	EquipmentDescription string        `json:"equipment_description"`
	EquipmentValue       string        `json:"equipment_value"`
	ServiceDescription   string        `json:"service_description"`
	PaymentClause        string        `json:"payment_clause,omitempty"`
	Conditions           string        `json:"conditions"`
	TransferClause       string        `json:"transfer_clause"`
	GeneralDispositions  string        `json:"general_dispositions,omitempty"`
	Signing
}

func (EquipmentTradeContract) Type() ContractType { return TypeEquipmentTrade }

// PaymentPlanKind selects how the video service is paid
type PaymentPlanKind string

const (
	PaymentFullUpfront         PaymentPlanKind = "full-upfront"
	PaymentDepositPlusDelivery PaymentPlanKind = "deposit-plus-delivery"
	PaymentOther               PaymentPlanKind = "other"
)

// PaymentPlan carries the fields of the selected plan. DepositPercent is
// only read for deposit-plus-delivery, OtherDescription only for other.
type PaymentPlan struct {
	Kind             PaymentPlanKind `json:"kind"`
	DepositPercent   string          `json:"deposit_percent,omitempty"`
	OtherDescription string          `json:"other_description,omitempty"`
}

// VideoServiceContract hires the company to produce a video. Parties are
// listed in signature order.
type VideoServiceContract struct {
	Parties                  []ContractParty `json:"parties"`
	ServiceObject            string          `json:"service_object"`
	TotalValue               string          `json:"total_value"`
	PaymentPlan              PaymentPlan     `json:"payment_plan"`
	DeliveryDeadline         string          `json:"delivery_deadline"`
	ProviderResponsibilities string          `json:"provider_responsibilities"`
	ClientResponsibilities   string          `json:"client_responsibilities"`
	CopyrightClause          string          `json:"copyright_clause"`
	RescissionNoticeDays     string          `json:"rescission_notice_days"`
	RescissionPenaltyPercent string          `json:"rescission_penalty_percent"`
	GeneralDispositions      string          `json:"general_dispositions,omitempty"`
	Signing
}

func (VideoServiceContract) Type() ContractType { return TypeVideoService }

// PaymentFrequency is how often a hired professional is paid
type PaymentFrequency string

const (
	FrequencyMonthly    PaymentFrequency = "monthly"
	FrequencyWeekly     PaymentFrequency = "weekly"
	FrequencyPerProject PaymentFrequency = "per-project"
)

// NonCompete is an optional restriction clause
type NonCompete struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text,omitempty"`
}

// Hire holds the fields shared by the filmmaker and editor contracts
type Hire struct {
	Party                    ContractParty    `json:"party"`
	Remuneration             string           `json:"remuneration"`
	PaymentFrequency         PaymentFrequency `json:"payment_frequency"`
	ConfidentialityPenalty   string           `json:"confidentiality_penalty"`
	RescissionNoticeDays     string           `json:"rescission_notice_days"`
	RescissionPenaltyPercent string           `json:"rescission_penalty_percent"`
	NonCompete               NonCompete       `json:"non_compete"`
	Signing
}

// FilmmakerHireContract hires a filmmaker for the company's productions
type FilmmakerHireContract struct {
	Hire
	DeliveryDeadline        string `json:"delivery_deadline"`
	EquipmentResponsibility string `json:"equipment_responsibility"`
}

func (FilmmakerHireContract) Type() ContractType { return TypeFilmmakerHire }

// EditorHireContract hires a video editor
type EditorHireContract struct {
	Hire
	LateDeliveryPenaltyPercent string `json:"late_delivery_penalty_percent"`
}

func (EditorHireContract) Type() ContractType { return TypeEditorHire }

// MaterialAuthorizationContract lets a party use material the company
// produced for a client project
type MaterialAuthorizationContract struct {
	Party         ContractParty `json:"party"`
	ProjectName   string        `json:"project_name"`
	FinalClient   string        `json:"final_client"`
	ExecutionDate string        `json:"execution_date"`
	UsageLinks    string        `json:"usage_links"`
	MisusePenalty string        `json:"misuse_penalty"`
	Signing
}

func (MaterialAuthorizationContract) Type() ContractType { return TypeMaterialAuthorization }

// UnknownContract carries a discriminant no variant is registered for
type UnknownContract struct {
	Kind ContractType `json:"type"`
}

func (u UnknownContract) Type() ContractType { return u.Kind }

// Envelope is the wire form of a contract: {"type": "...", "data": {...}}
type Envelope struct {
	Type ContractType    `json:"type" binding:"required"`
	Data json.RawMessage `json:"data"`
}

var decoders = map[ContractType]func(json.RawMessage) (Contract, error){
	TypeEquipmentTrade:        decodeAs[EquipmentTradeContract],
	TypeVideoService:          decodeAs[VideoServiceContract],
	TypeFilmmakerHire:         decodeAs[FilmmakerHireContract],
	TypeEditorHire:            decodeAs[EditorHireContract],
	TypeMaterialAuthorization: decodeAs[MaterialAuthorizationContract],
}

// DecodeContract reads an envelope. An unknown type is not an error; it
// decodes to UnknownContract.
func DecodeContract(raw []byte) (Contract, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode contract envelope: %w", err)
	}
	return env.Decode()
}

// Decode turns the envelope data into the variant named by Type
func (e Envelope) Decode() (Contract, error) {
	decode, ok := decoders[e.Type]
	if !ok {
		return UnknownContract{Kind: e.Type}, nil
	}
	c, err := decode(e.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s contract: %w", e.Type, err)
	}
	return c, nil
}

func decodeAs[T Contract](data json.RawMessage) (Contract, error) {
	var v T
	if len(data) == 0 || string(data) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
