package dto

import (
	"tripavail/shared/constant"
	"tripavail/shared/model"
	"tripavail/shared/timezone"
)

// Metadata is the audit trail rendered on every resource: RFC 3339 timestamps
// in the service timezone and the user ids that created and last changed it.
type Metadata struct {
	CreatedAt  string `json:"createdAt"`
	ModifiedAt string `json:"modifiedAt"`
	CreatedBy  string `json:"createdBy"`
	ModifiedBy string `json:"modifiedBy"`
}

func (m *Metadata) FromModel(metadata model.Metadata) {
	m.CreatedAt = timezone.Format(metadata.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(metadata.ModifiedAt, constant.DateFormat)
	m.CreatedBy = metadata.CreatedBy
	m.ModifiedBy = metadata.ModifiedBy
}
