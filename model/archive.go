package model

import (
	"time"
)

// ArchivedDocument is a rendered contract stored in object storage
type ArchivedDocument struct {
	ID           string       `json:"id"`
	Tenant       string       `json:"tenant"`
	ContractType ContractType `json:"contract_type"`
	Title        string       `json:"title"`
	ObjectName   string       `json:"object_name"`
	URL          string       `json:"url"`
	Size         int64        `json:"size"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
