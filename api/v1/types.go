// Package v1 holds the wire types of the HTTP API and of the JSON output of
// the query command.
package v1

import "time"

// Network is one store entry. Plmn is the store key, which carries a
// "-<suffix>" for rows that collided on ingestion.
type Network struct {
	Plmn    string `json:"plmn"`
	Mcc     string `json:"mcc"`
	Mnc     string `json:"mnc"`
	Iso     string `json:"iso"`
	Country string `json:"country"`
	Cc      string `json:"cc"`
	Network string `json:"network"`
}

type NetworkList struct {
	Total    int       `json:"total"`
	Networks []Network `json:"networks"`
}

// GetPlmnParams defines parameters for GetPlmn.
type GetPlmnParams struct {
	Cc   string `form:"cc"`
	Mcc  string `form:"mcc"`
	Mnc  string `form:"mnc"`
	Plmn string `form:"plmn"`
}

// UpdateStatusState defines model for UpdateStatus.State.
type UpdateStatusState string

const (
	UpdateStatusStateIdle       UpdateStatusState = "idle"
	UpdateStatusStateFetching   UpdateStatusState = "fetching"
	UpdateStatusStateParsing    UpdateStatusState = "parsing"
	UpdateStatusStateBuilding   UpdateStatusState = "building"
	UpdateStatusStatePersisting UpdateStatusState = "persisting"
	UpdateStatusStateDone       UpdateStatusState = "done"
	UpdateStatusStateFailed     UpdateStatusState = "failed"
)

type UpdateProgress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

type Collision struct {
	Plmn string `json:"plmn"`
	Key  string `json:"key"`
}

type UpdateResult struct {
	Source     string      `json:"source"`
	Format     string      `json:"format"`
	Rows       int         `json:"rows"`
	Collisions []Collision `json:"collisions"`
	Bytes      int64       `json:"bytes"`
	StartedAt  time.Time   `json:"startedAt"`
	DurationMs int64       `json:"durationMs"`
}

type UpdateStatus struct {
	State      UpdateStatusState `json:"state"`
	Progress   *UpdateProgress   `json:"progress,omitempty"`
	LastResult *UpdateResult     `json:"lastResult,omitempty"`
	Error      *string           `json:"error,omitempty"`
}

type Health struct {
	Status   string `json:"status"`
	Updating bool   `json:"updating"`
}

type Error struct {
	Error string `json:"error"`
}
