package v1

import (
	"github.com/jbjulia/mccmnc/internal/models"
	"github.com/jbjulia/mccmnc/internal/services"
)

// NewNetworkFromModel converts a store entry to an API Network.
func NewNetworkFromModel(key string, r models.Record) Network {
	return Network{
		Plmn:    key,
		Mcc:     r.MCC,
		Mnc:     r.MNC,
		Iso:     r.ISO,
		Country: r.Country,
		Cc:      r.CC,
		Network: r.Network,
	}
}

func NewNetworkList(result *services.LookupResult) NetworkList {
	networks := make([]Network, 0, len(result.Matches))
	for _, m := range result.Matches {
		networks = append(networks, NewNetworkFromModel(m.Key, m.Record))
	}
	return NetworkList{
		Total:    result.Total,
		Networks: networks,
	}
}

// ToLookupParams converts query parameters to service params.
func (p GetPlmnParams) ToLookupParams() services.LookupParams {
	return services.LookupParams{
		CC:   p.Cc,
		MCC:  p.Mcc,
		MNC:  p.Mnc,
		PLMN: p.Plmn,
	}
}

func NewUpdateResult(r *models.UpdateResult) *UpdateResult {
	if r == nil {
		return nil
	}
	collisions := make([]Collision, 0, len(r.Collisions))
	for _, c := range r.Collisions {
		collisions = append(collisions, Collision{Plmn: c.PLMN, Key: c.Key})
	}
	return &UpdateResult{
		Source:     r.Source,
		Format:     r.Format,
		Rows:       r.Rows,
		Collisions: collisions,
		Bytes:      r.Bytes,
		StartedAt:  r.StartedAt,
		DurationMs: r.Duration.Milliseconds(),
	}
}

func NewUpdateStatus(status models.UpdateStatus, done, total int) UpdateStatus {
	var s UpdateStatus

	switch status.State {
	case models.UpdateStateFetching:
		s.State = UpdateStatusStateFetching
	case models.UpdateStateParsing:
		s.State = UpdateStatusStateParsing
	case models.UpdateStateBuilding:
		s.State = UpdateStatusStateBuilding
	case models.UpdateStatePersisting:
		s.State = UpdateStatusStatePersisting
	case models.UpdateStateDone:
		s.State = UpdateStatusStateDone
	case models.UpdateStateFailed:
		s.State = UpdateStatusStateFailed
	default:
		s.State = UpdateStatusStateIdle
	}

	if total > 0 {
		s.Progress = &UpdateProgress{Done: done, Total: total}
	}
	s.LastResult = NewUpdateResult(status.LastResult)

	if status.Error != nil {
		e := status.Error.Error()
		s.Error = &e
	}

	return s
}
