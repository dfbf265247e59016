package dto

import (
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/report"
	"transport-optimizer/internal/services"
)

// FromSessionState converts a session snapshot for the presentation layer.
// The view model is only attached to successful results.
func FromSessionState(st services.SessionState) SessionResponse {
	res := SessionResponse{
		Phase:     string(st.Phase),
		RequestID: st.RequestID,
		Busy:      st.Phase == services.PhaseSubmitting,
	}

	switch st.Phase {
	case services.PhaseSuccess:
		result := st.Result
		if result.Groups == nil {
			result.Groups = []domain.StopGroup{}
		}
		view := report.BuildView(result)
		res.Result = &result
		res.View = &view
	case services.PhaseFailure:
		res.Message = st.Message
	}

	return res
}
