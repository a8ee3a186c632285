package models

// SyncStats summarises one reconciliation pass over many sessions.
type SyncStats struct {
	SessionsTotal  int `json:"sessions_total"`
	SessionsSynced int `json:"sessions_synced"`
	SessionsNoData int `json:"sessions_no_data"`
	SessionsFailed int `json:"sessions_failed"`
	RowsUpdated    int `json:"rows_updated"`
}
