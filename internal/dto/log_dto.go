package dto

type LogEntryResponse struct {
	Id        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Module    string `json:"module"`
	Message   string `json:"message"`
}

type LogsResponse struct {
	Logs      []LogEntryResponse `json:"logs"`
	LastLogId int64              `json:"last_log_id"`
}
