package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToAdmins(msgType string, payload interface{})
}

// MsgResultRecorded is sent to admins whenever a diagnosis is stored
const MsgResultRecorded = "result_recorded"
