package telemetry

import (
	"math/rand/v2"
	"os"
	"os/user"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// SessionInfo holds the fields attached to every event emitted by one process.
type SessionInfo struct {
	SessionID  int64
	Username   string
	Hostname   string
	OS         string
	OSVersion  string
	AppVersion string
}

// NewSessionInfo collects session fields for the current process. Lookups that
// fail leave their field empty.
func NewSessionInfo(appVersion string) SessionInfo {
	info := SessionInfo{
		SessionID:  int64(rand.Uint32()), //nolint:gosec // correlation id, not a secret
		OS:         runtime.GOOS,
		AppVersion: appVersion,
	}
	if u, err := user.Current(); err == nil {
		info.Username = u.Username
	}
	if h, err := os.Hostname(); err == nil {
		info.Hostname = h
	}
	if v, err := host.KernelVersion(); err == nil {
		info.OSVersion = v
	}
	return info
}

// Populate writes the session defaults and the event type into e.
func (s SessionInfo) Populate(eventType string, e *DynamicEvent) {
	e.AddInt(FieldSessionID, s.SessionID)
	e.AddString(FieldType, eventType)
	e.AddString(FieldUser, s.Username)
	e.AddString(FieldHost, s.Hostname)
	e.AddString(FieldOS, s.OS)
	e.AddString(FieldOSVersion, s.OSVersion)
	e.AddString(FieldAppVersion, s.AppVersion)
}
