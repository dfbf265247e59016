package dto

import (
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/report"
)

type SessionResponse struct {
	Phase     string                `json:"phase"`
	RequestID uint64                `json:"request_id"`
	Busy      bool                  `json:"busy"`
	Message   string                `json:"message,omitempty"`
	Result    *domain.GroupedResult `json:"result,omitempty"`
	View      *report.View          `json:"view,omitempty"`
}
