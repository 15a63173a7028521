package module

import "piptrade/internal/services/records/domain"

// Ports holds the ports exposed by the records module
type Ports struct {
	Records domain.RecordsPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Records: m.svc} }
